package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/guess-the-flag-bot/internal/domain/entities"
)

// BotAPI is the part of *tgbotapi.BotAPI used by the handler.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type GameService interface {
	NewGame(ctx context.Context, chatID int64) (entities.RoundState, error)
	Restart(ctx context.Context, chatID int64) (entities.RoundState, error)
	Current(ctx context.Context, chatID int64) (entities.RoundState, error)
	Answer(ctx context.Context, chatID int64, gameRef string, questionNumber, selectedIndex int) (entities.RoundState, entities.AnswerResult, error)
	Next(ctx context.Context, chatID int64, gameRef string, questionNumber int) (entities.RoundState, error)
}
