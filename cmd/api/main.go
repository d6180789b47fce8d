package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Folio-25-26J-118/portfolio-backend/config"
	"github.com/Folio-25-26J-118/portfolio-backend/internal/backup"
	"github.com/Folio-25-26J-118/portfolio-backend/internal/bootstrap"
	"github.com/Folio-25-26J-118/portfolio-backend/internal/kv"
	"github.com/Folio-25-26J-118/portfolio-backend/internal/logging"
	"github.com/Folio-25-26J-118/portfolio-backend/internal/portfolio/domain"
	"github.com/Folio-25-26J-118/portfolio-backend/internal/portfolio/repository"
	"github.com/Folio-25-26J-118/portfolio-backend/internal/portfolio/service"
	"github.com/Folio-25-26J-118/portfolio-backend/internal/session"
	"github.com/Folio-25-26J-118/portfolio-backend/internal/web"
)

const serviceName = "portfolio-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer func() { _ = client.Close() }()

	store := kv.NewRedisStore(client)
	notifier := web.NewFlashNotifier(store, logger)

	projects := service.NewProjectService(
		repository.NewCollection[domain.Project](store, repository.ProjectsKey), notifier, logger)
	experiences := service.NewExperienceService(
		repository.NewCollection[domain.Experience](store, repository.ExperiencesKey), notifier, logger)

	// First-run seeding only; emptied collections stay empty.
	if err := projects.Bootstrap(ctx); err != nil {
		logger.Fatal("failed to seed projects", zap.Error(err))
	}
	if err := experiences.Bootstrap(ctx); err != nil {
		logger.Fatal("failed to seed experiences", zap.Error(err))
	}

	gate := session.NewGate(store, cfg.Session.Window, logger)

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:       serviceName,
		Version:           cfg.App.Version,
		Store:             store,
		Gate:              gate,
		Projects:          projects,
		Experiences:       experiences,
		AdminPasswordHash: cfg.Admin.PasswordHash,
		PendingTTL:        cfg.Session.PendingTTL,
		Logger:            logger,
	})

	if cfg.Backup.Enabled {
		scheduler := backup.NewScheduler(projects, experiences, cfg.Backup.Dir, cfg.Backup.Spec, logger)
		if err := scheduler.Start(); err != nil {
			logger.Fatal("failed to start backup scheduler", zap.Error(err))
		}
		defer scheduler.Stop()
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Info("listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
