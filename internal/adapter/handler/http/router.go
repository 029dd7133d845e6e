package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/merchstudio/customizer/internal/adapter/config"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	uploads *config.Uploads,
	orderHandler *OrderHandler,
	ratesHandler *RatesHandler,
	imageHandler *ImageHandler,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Uploaded images are served back as static files
	router.Static("/uploads", uploads.Dir)

	api := router.Group("/api")
	{
		orders := api.Group("/orders")
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.PUT("/:id", orderHandler.UpdateOrder)
			orders.DELETE("/:id", orderHandler.DeleteOrder)
		}

		api.GET("/exchange-rates", ratesHandler.ExchangeRates)

		api.POST("/upload", imageHandler.Upload)
		api.DELETE("/upload/:filename", imageHandler.Delete)
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
