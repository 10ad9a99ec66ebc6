package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eternity-labs/catalog-admin/app/server"
	"github.com/eternity-labs/catalog-admin/app/web"
	"github.com/eternity-labs/catalog-admin/config"
	"github.com/eternity-labs/catalog-admin/models"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("starting",
		zap.String("app", cfg.AppName),
		zap.String("env", cfg.Env),
		zap.String("port", cfg.HTTPPort),
	)

	db := config.InitDB(cfg)
	categories := models.NewCategoriesRepository(db)
	labels := models.NewLabelsRepository(db)
	productsRepo := models.NewProductsRepository(db)

	engine := server.New(server.Options{
		TemplateGlob:  "templates/*.html",
		SessionSecret: cfg.SessionSecret,
		Logger:        logger,
		Categories:    categories,
		Labels:        labels,
		Products:      productsRepo,
		CategoryRefs:  categories,
		LabelRefs:     labels,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: web.MethodOverride(engine),
	}
	logger.Info("http server start", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("http server", zap.Error(err))
	}
}
