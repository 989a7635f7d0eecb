package telegram

import (
	"context"

	"go.uber.org/zap"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

// withErrorHandling logs a failed command and tells the player something went wrong.
// The game state is left as the failing command found it.
func (h *Handler) withErrorHandling(command string, fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := fn(ctx, chatID); err != nil {
			h.logger.Error("command failed",
				zap.String("command", command),
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.send(newPlainMessage(chatID, msgInternalError))
		}
		return nil
	}
}
