package main // Entry point package

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/textwise/text-analysis-service/internal/config"
	"github.com/textwise/text-analysis-service/internal/handler"
	"github.com/textwise/text-analysis-service/internal/logger"
	"github.com/textwise/text-analysis-service/internal/metrics"
	"github.com/textwise/text-analysis-service/internal/middleware"
	"github.com/textwise/text-analysis-service/internal/router"
)

func main() {
	// .env is a local development convenience; in deployment the platform
	// injects real environment variables.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)
	defer log.Sync()

	rlCfg := config.LoadRateLimitConfig()
	mCfg := config.LoadMetricsConfig()
	rdb := config.NewRedisClient() // nil when no Redis is configured

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.JSONErrorHandler(log)

	m := metrics.New(mCfg)

	e.Use(echomw.Recover())
	e.Use(echomw.BodyLimit(cfg.MaxBodySize))
	e.Use(middleware.RequestLogger(log))
	if mCfg.Enabled {
		e.Use(m.Middleware())
	}

	a := handler.NewAnalyzeHandler(log, m)
	router.RegisterRoutes(e, a, middleware.NewTokenBucket(rlCfg, rdb, log))
	router.RegisterMetrics(e, mCfg, m)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()
	log.Info("listening",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.Env),
		zap.Bool("rate_limit", rlCfg.Enabled),
		zap.Bool("metrics", mCfg.Enabled),
	)

	// The platform sends SIGTERM before killing the instance; drain in-flight
	// requests within the configured grace period.
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
}
