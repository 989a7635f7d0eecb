package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/aliskhannn/guess-the-flag-bot/internal/config"
	"github.com/aliskhannn/guess-the-flag-bot/internal/delivery/telegram"
	"github.com/aliskhannn/guess-the-flag-bot/internal/infra/postgres"
	"github.com/aliskhannn/guess-the-flag-bot/internal/logger"
	"github.com/aliskhannn/guess-the-flag-bot/internal/repository"
	"github.com/aliskhannn/guess-the-flag-bot/internal/service"
	"github.com/aliskhannn/guess-the-flag-bot/internal/storage"
)

func main() {
	// A missing .env is fine, the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		lg.Fatal("failed to create bot", zap.Error(err))
	}
	bot.Debug = cfg.Env != "production"
	lg.Info("authorized", zap.String("account", bot.Self.UserName))

	commands := []tgbotapi.BotCommand{
		{
			Command:     "play",
			Description: "Start a round",
		},
		{
			Command:     "score",
			Description: "Show your score",
		},
		{
			Command:     "restart",
			Description: "Start over",
		},
		{
			Command:     "help",
			Description: "How to play",
		},
	}
	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store service.RoundStore
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB.URL, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			lg.Fatal("failed to connect to database", zap.Error(err))
		}
		defer pool.Close()

		store = repository.NewRoundRepository(pool)
		lg.Info("rounds are kept in postgres")
	} else {
		store = storage.NewRoundStorage()
		lg.Info("rounds are kept in memory")
	}

	gameService := service.NewGameService(store, service.NewRand(cfg.Game.Seed), lg)

	handler := telegram.NewHandler(bot, lg, gameService, cfg.Game.AnswerDelay)
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("handler stopped", zap.Error(err))
	}

	lg.Info("shutdown signal received")
}
