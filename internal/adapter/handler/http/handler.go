// Package http contains the gin handlers for the storefront API.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"

	"github.com/merchstudio/customizer/internal/core/domain"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrOrderNotFound:   http.StatusNotFound,
	domain.ErrImageNotFound:   http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrBadRequest:               http.StatusBadRequest,
	domain.ErrProductTypeColorRequired: http.StatusBadRequest,
	domain.ErrMaterialRequired:         http.StatusBadRequest,
	domain.ErrNoImageFile:              http.StatusBadRequest,
	domain.ErrNotAnImage:               http.StatusBadRequest,
	domain.ErrImageTooLarge:            http.StatusBadRequest,
}

// jsonDecimal renders a decimal as a bare JSON number.
type jsonDecimal decimal.Decimal

func (j jsonDecimal) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(j).String()), nil
}

type errorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleError maps known errors to their status and message. Anything
// unmapped is logged and reported as a 500 with the operation's fixed
// message; the cause never reaches the caller.
func (h *Handler) handleError(ctx *gin.Context, err error, fallback string) {
	statusCode, ok := errorStatusMap[err]
	message := err.Error()
	if !ok {
		statusCode = http.StatusInternalServerError
		message = fallback
		h.logger.Error("error processing request", zap.Error(err))
	}
	ctx.AbortWithStatusJSON(statusCode, errorResponse{Error: message})
}

// handleSuccess sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
