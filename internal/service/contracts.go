package service

import (
	"context"

	"github.com/aliskhannn/guess-the-flag-bot/internal/domain/entities"
)

// RoundStore keeps the running round of every chat.
type RoundStore interface {
	Get(ctx context.Context, chatID int64) (*entities.RoundState, error)
	Save(ctx context.Context, chatID int64, state *entities.RoundState) error
	// Update loads the round, applies fn and saves the result atomically.
	// Nothing is saved when fn returns an error.
	Update(ctx context.Context, chatID int64, fn func(state *entities.RoundState) error) error
}
