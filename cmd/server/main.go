package main

import (
	"Diarium/internal/config"
	"Diarium/internal/handlers"
	"Diarium/internal/middleware"
	"Diarium/internal/repo"
	"Diarium/internal/service"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Production() {
		return zap.NewProduction()
	}
	zcfg := zap.NewDevelopmentConfig()
	if lvl, err := zapcore.ParseLevel(cfg.LogLevel); err == nil && cfg.LogLevel != "" {
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return zcfg.Build()
}

func main() {
	cfg := config.NewConfig()

	// создаём регистратор zap
	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		sugar.Fatalw("failed to get sql pool", "error", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			sugar.Errorw("failed to close database", "error", err)
		}
	}()

	users := repo.NewUserRepository(gormDB)
	tokens := repo.NewTokenRepository(gormDB)
	posts := repo.NewPostRepository(gormDB)

	h := handlers.NewHandler(handlers.Services{
		Auth:     service.NewAuthService(users, tokens, sugar),
		Diaries:  service.NewDiaryService(repo.NewDiaryRepository(gormDB), sugar),
		Posts:    service.NewPostService(posts, sugar),
		Comments: service.NewCommentService(repo.NewCommentRepository(gormDB), posts, sugar),
		DB:       sqlDB,
	}, sugar, cfg)

	srv := &http.Server{
		Addr:              cfg.BaseURL,
		Handler:           h.Router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"ShutdownTimeout", cfg.ShutdownTimeout,
	)

	errCh := make(chan error, 1)
	go func() {
		sugar.Infow("Starting server", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			sugar.Errorw("Server failed", "error", err)
		}
		return
	case <-ctx.Done():
	}

	sugar.Infow("Shutting down", "timeout", cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("graceful shutdown failed", "error", err)
	}
}
