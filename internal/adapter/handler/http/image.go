package http

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/merchstudio/customizer/internal/core/domain"
	"github.com/merchstudio/customizer/internal/core/port"
)

type ImageHandler struct {
	Handler
	store       port.ImageStore
	maxFileSize int64
}

func NewImageHandler(store port.ImageStore, maxFileSize int64, logger *zap.Logger) (*ImageHandler, error) {
	return &ImageHandler{
		Handler:     *NewHandler(logger),
		store:       store,
		maxFileSize: maxFileSize,
	}, nil
}

type uploadResponse struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"imageUrl"`
	Filename string `json:"filename"`
}

type deleteImageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (ih *ImageHandler) Upload(ctx *gin.Context) {
	file, err := ctx.FormFile("image")
	if err != nil {
		ih.handleError(ctx, domain.ErrNoImageFile, "Failed to upload image")
		return
	}

	if file.Size > ih.maxFileSize {
		ih.handleError(ctx, domain.ErrImageTooLarge, "Failed to upload image")
		return
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		ih.handleError(ctx, domain.ErrNotAnImage, "Failed to upload image")
		return
	}

	filename := fmt.Sprintf("image-%d-%d%s",
		time.Now().UnixMilli(), rand.Int63n(1_000_000_000), filepath.Ext(file.Filename))

	src, err := file.Open()
	if err != nil {
		ih.handleError(ctx, err, "Failed to upload image")
		return
	}
	defer func() { _ = src.Close() }()

	url, err := ih.store.Save(filename, src)
	if err != nil {
		ih.handleError(ctx, err, "Failed to upload image")
		return
	}

	ih.handleSuccess(ctx, uploadResponse{
		Success:  true,
		ImageURL: url,
		Filename: filename,
	})
}

func (ih *ImageHandler) Delete(ctx *gin.Context) {
	filename := ctx.Param("filename")

	if err := ih.store.Remove(filename); err != nil {
		ih.handleError(ctx, err, "Failed to delete image")
		return
	}

	ih.handleSuccess(ctx, deleteImageResponse{
		Success: true,
		Message: "Image deleted successfully",
	})
}
