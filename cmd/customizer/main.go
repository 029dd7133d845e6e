package main

import (
	"context"
	"fmt"

	"github.com/merchstudio/customizer/internal/adapter/client/rates"
	"github.com/merchstudio/customizer/internal/adapter/config"
	"github.com/merchstudio/customizer/internal/adapter/handler/http"
	"github.com/merchstudio/customizer/internal/adapter/logger"
	"github.com/merchstudio/customizer/internal/adapter/storage"
	"github.com/merchstudio/customizer/internal/adapter/storage/files"
	"github.com/merchstudio/customizer/internal/adapter/storage/memory"
	"github.com/merchstudio/customizer/internal/adapter/storage/repository"
	"github.com/merchstudio/customizer/internal/core/port"
	"github.com/merchstudio/customizer/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	// Orders live in memory unless a database DSN is configured.
	var repo port.OrderRepository
	if conf.Database.DSN != "" {
		db, err := storage.NewDBStorage(ctx, conf.Database)
		if err != nil {
			log.Error("database error", zap.Error(err))
			return
		}
		err = db.RunMigrations()
		if err != nil {
			log.Error("database migration error", zap.Error(err))
			return
		}
		repo, err = repository.NewRepository(db)
		if err != nil {
			log.Error("order repo creating error", zap.Error(err))
			return
		}
	} else {
		repo, err = memory.NewRepository()
		if err != nil {
			log.Error("order repo creating error", zap.Error(err))
			return
		}
	}

	rateClient, err := rates.NewClient(conf.Rates, log.Named("Rates"))
	if err != nil {
		log.Error("rate client creating error", zap.Error(err))
		return
	}

	svc, err := service.NewService(repo, rateClient, log.Named("Service"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}

	imageStore, err := files.NewStore(conf.Uploads.Dir)
	if err != nil {
		log.Error("image store creating error", zap.Error(err))
		return
	}

	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	ratesHandler, err := http.NewRatesHandler(svc, log.Named("Rates handler"))
	if err != nil {
		log.Error("rates handler creating error", zap.Error(err))
		return
	}
	imageHandler, err := http.NewImageHandler(imageStore, conf.Uploads.MaxFileSize, log.Named("Image handler"))
	if err != nil {
		log.Error("image handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, conf.Uploads, orderHandler, ratesHandler, imageHandler, log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
