package server

import (
	"context"
	"fmt"
	"honeydew-api/core/cache"
	"honeydew-api/core/config"
	"honeydew-api/core/database"
	"honeydew-api/core/logger"
	"honeydew-api/core/middleware"
	"honeydew-api/core/queue"
	"honeydew-api/modules/auth"
	"honeydew-api/modules/availability"
	"honeydew-api/modules/badge"
	"honeydew-api/modules/group"
	"honeydew-api/modules/meeting"
	"honeydew-api/modules/task"
	"honeydew-api/modules/upload"
	"honeydew-api/modules/user"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// Run boots the API server and the background worker and blocks until a
// shutdown signal arrives.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.LogLevel)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}

	c, err := cache.Init(cfg.Redis)
	if err != nil {
		// Redis backs token revocation and the task queue; without it those
		// degrade but the API still serves.
		logger.Warn("redis unavailable, token blacklist and background badge evaluation disabled", "error", err)
		c = nil
	}

	var q *queue.Queue
	if c != nil {
		q = queue.Init(cfg.Redis)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(ctx echo.Context, v echoMiddleware.RequestLoggerValues) error {
			logger.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	}))
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowCredentials: true,
	}))

	mw := middleware.New(c)
	mux := asynq.NewServeMux()

	auth.Init(e, db, c, mw)
	user.Init(e, db, mw)
	task.Init(e, db, q, mw)
	group.Init(e, db, q, mw)
	availability.Init(e, db, mw)
	meeting.Init(e, db, mw)
	badge.Init(e, db, mw, mux)
	upload.Init(e, cfg.S3, mw)

	var worker *asynq.Server
	if c != nil {
		worker = queue.NewWorkerServer(cfg.Redis)
		go func() {
			if err := worker.Run(mux); err != nil {
				logger.Error("worker server stopped", err)
			}
		}()
	}

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", err)
		}
	}()
	logger.Info("server started", "port", cfg.Server.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if worker != nil {
		worker.Shutdown()
	}
	if q != nil {
		q.Close()
	}

	return e.Shutdown(shutdownCtx)
}
