package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/SujitD0/Student-Dashboard/internal/api"
	"github.com/SujitD0/Student-Dashboard/internal/app"
	"github.com/SujitD0/Student-Dashboard/internal/config"
	"github.com/SujitD0/Student-Dashboard/internal/controller"
	"github.com/SujitD0/Student-Dashboard/internal/repository"
	"github.com/SujitD0/Student-Dashboard/internal/service"
	"github.com/SujitD0/Student-Dashboard/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting student dashboard bot",
		zap.String("environment", cfg.Environment),
		zap.String("api_base_url", cfg.APIBaseURL))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	migrator, err := app.NewMigrator(pool, "migrations")
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	sessionRepo := repository.NewSessionRepository(pool)
	sessions := session.NewStore(sessionRepo, logger)

	client := api.NewClient(cfg.APIBaseURL, logger)

	authService := service.NewAuthService(client, sessions, logger)
	slotService := service.NewSlotService(client, logger)
	bookingService := service.NewBookingService(client, logger)

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	notifier := app.NewNotifier(b, logger)

	botController := controller.NewBotController(
		b,
		authService,
		slotService,
		bookingService,
		sessions,
		notifier,
		logger,
	)

	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Fatal("Failed to register handlers", zap.Error(err))
	}

	logger.Info("🚀 Bot is running, press Ctrl+C to stop")

	if err := botController.Start(ctx); err != nil {
		logger.Error("Bot stopped with error", zap.Error(err))
	}

	logger.Info("Bot stopped")
}
