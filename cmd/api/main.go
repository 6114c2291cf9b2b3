package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/bornebyte/notes/internal/api/http"
	"github.com/bornebyte/notes/internal/api/http/handlers"
	"github.com/bornebyte/notes/internal/auth"
	"github.com/bornebyte/notes/internal/cache"
	"github.com/bornebyte/notes/internal/config"
	"github.com/bornebyte/notes/internal/events"
	"github.com/bornebyte/notes/internal/observability"
	"github.com/bornebyte/notes/internal/persistence"
	"github.com/bornebyte/notes/internal/ratelimit"
	"github.com/bornebyte/notes/internal/repository"
	"github.com/bornebyte/notes/internal/service"
	"github.com/bornebyte/notes/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	noteRepo := repository.NewNoteRepository(pool)
	targetRepo := repository.NewTargetRepository(pool)
	messageRepo := repository.NewMessageRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)
	tokenRepo := repository.NewTokenRepository(pool)
	passwordRepo := repository.NewPasswordRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	recorder := service.NewNotificationRecorder(notificationRepo, dispatcher, logger)
	worker.StartNotificationRecorder(recorder)

	var noteCache *cache.NoteCache
	if cfg.Cache.Enabled {
		noteCache = cache.NewNoteCache(redis.Client, cfg.Cache.TTL(), logger)
	}

	noteService := service.NewNoteService(service.NoteDependencies{
		NoteRepo:   noteRepo,
		Dispatcher: dispatcher,
		Cache:      noteCache,
	})
	targetService := service.NewTargetService(targetRepo, dispatcher)
	messageService := service.NewMessageService(messageRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	settingsService := service.NewSettingsService(service.SettingsDependencies{
		PasswordRepo: passwordRepo,
		TokenRepo:    tokenRepo,
		Dispatcher:   dispatcher,
		BcryptCost:   cfg.Auth.BcryptCost,
	})

	limiter := ratelimit.NewLimiter()
	limiter.StartSweeper(ctx, cfg.RateLimit.SweepInterval(), cfg.RateLimit.SweepAfter(), logger)

	verifier := auth.NewVerifier(tokenRepo, logger)
	guard := auth.NewGuard(verifier, limiter, *cfg)
	sessions := auth.NewSessionManager(cfg.Auth.SessionSecret, cfg.Auth.SessionTTLMinutes)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:        handlers.NewHealthHandler(pg, redis, metrics),
		Auth:          handlers.NewAuthHandler(settingsService, sessions, cfg.Auth.SessionCookie),
		Notes:         handlers.NewNotesHandler(noteService),
		Targets:       handlers.NewTargetsHandler(targetService),
		Messages:      handlers.NewMessagesHandler(messageService),
		Notifications: handlers.NewNotificationsHandler(notificationService),
		Settings:      handlers.NewSettingsHandler(settingsService),
		Guard:         guard,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	cancel()
	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
