package telegram

import (
	"context"
	"errors"
	"fmt"

	"github.com/aliskhannn/guess-the-flag-bot/internal/service"
)

// playHandler starts a new round and sends its first question.
func (h *Handler) playHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		state, err := h.gameService.NewGame(ctx, chatID)
		if err != nil {
			return fmt.Errorf("new game: %w", err)
		}

		msg := newMessage(chatID, questionText(state))
		msg.ReplyMarkup = buildQuestionKeyboard(state)
		h.send(msg)

		return nil
	}
}

// scoreHandler reports the score of the running round.
func (h *Handler) scoreHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		state, err := h.gameService.Current(ctx, chatID)
		if err != nil {
			if errors.Is(err, service.ErrGameNotFound) {
				h.send(newPlainMessage(chatID, msgNoGame))
				return nil
			}
			return fmt.Errorf("current game: %w", err)
		}

		h.send(newMessage(chatID, scoreText(state)))
		return nil
	}
}
