package main

import (
	"context"
	"time"

	"taskdesk/pkg/translator"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpadapter "taskdesk/internal/adapter/http"
	httpmiddleware "taskdesk/internal/adapter/http/middleware"
	"taskdesk/internal/app"
	"taskdesk/internal/config"
)

const startupTimeout = 15 * time.Second

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageId},
	})

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	store, closeStore, err := app.OpenStore(ctx, cfg)
	if err != nil {
		cancel()
		logger.Fatal("failed to open storage", zap.String("driver", cfg.StorageDriver), zap.Error(err))
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn("failed to close storage", zap.Error(err))
		}
	}()

	application, err := app.New(ctx, cfg, store)
	cancel()
	if err != nil {
		logger.Fatal("storage is not available", zap.String("driver", cfg.StorageDriver), zap.Error(err))
	}

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger), cors.New(corsConfig(cfg)))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("proxies", cfg.TrustedProxies), zap.Error(err))
	}
	httpadapter.Mount(r, application, cfg)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr), zap.String("storage_driver", cfg.StorageDriver))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	if len(cfg.CorsAllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CorsAllowedOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "Accept-Language")
	corsCfg.ExposeHeaders = []string{"Content-Disposition"}
	return corsCfg
}
