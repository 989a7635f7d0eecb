package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/guess-the-flag-bot/internal/domain/entities"
	"github.com/aliskhannn/guess-the-flag-bot/internal/service"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil || cb.Message.Chat == nil {
		h.answerCallback(cb.ID, "")
		return
	}

	data := decodeCallback(cb.Data)

	var err error
	switch data.Action {
	case actionAnswer:
		err = h.handleAnswerCallback(ctx, cb, data)
	case actionNext:
		err = h.handleNextCallback(ctx, cb, data)
	case actionPlay, actionRestart:
		err = h.handleRestartCallback(ctx, cb)
	default:
		h.logger.Debug("unknown callback action", zap.String("data", cb.Data))
		h.answerCallback(cb.ID, msgBadButton)
		return
	}

	if err == nil {
		return
	}

	chatID := cb.Message.Chat.ID
	switch {
	case errors.Is(err, errBadCallback), errors.Is(err, service.ErrInvalidIndex):
		h.logger.Debug("invalid callback values", zap.String("data", cb.Data), zap.Error(err))
		h.answerCallback(cb.ID, msgBadButton)
	case errors.Is(err, service.ErrStaleQuestion):
		h.answerCallback(cb.ID, msgStaleQuestion)
	case errors.Is(err, service.ErrGameNotFound):
		h.answerCallback(cb.ID, msgNoGame)
	default:
		h.logger.Error("callback error",
			zap.Int64("chat_id", chatID),
			zap.String("data", cb.Data),
			zap.Error(err),
		)
		h.answerCallback(cb.ID, "")
		h.send(newPlainMessage(chatID, msgInternalError))
	}
}

// handleAnswerCallback records a tapped flag and reveals the result after the answer delay.
func (h *Handler) handleAnswerCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) error {
	gameRef, err := data.stringParam(0)
	if err != nil {
		return err
	}
	questionNum, err := data.intParam(1)
	if err != nil {
		return err
	}
	index, err := data.intParam(2)
	if err != nil {
		return err
	}

	chatID := cb.Message.Chat.ID
	msgID := cb.Message.MessageID

	state, result, err := h.gameService.Answer(ctx, chatID, gameRef, questionNum, index)
	if err != nil {
		return err
	}

	h.answerCallback(cb.ID, "")
	h.send(newEdit(chatID, msgID, checkingText(state, result), nil))

	h.afterDelay(ctx, func() {
		kb := buildContinueKeyboard(state)
		h.send(newEdit(chatID, msgID, resultText(state, result), &kb))
	})

	return nil
}

// handleNextCallback moves to the next question or shows the final score.
func (h *Handler) handleNextCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) error {
	gameRef, err := data.stringParam(0)
	if err != nil {
		return err
	}
	questionNum, err := data.intParam(1)
	if err != nil {
		return err
	}

	state, err := h.gameService.Next(ctx, cb.Message.Chat.ID, gameRef, questionNum)
	if err != nil {
		return err
	}

	h.answerCallback(cb.ID, "")
	h.showRound(cb.Message.Chat.ID, cb.Message.MessageID, state)

	return nil
}

func (h *Handler) handleRestartCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	state, err := h.gameService.Restart(ctx, cb.Message.Chat.ID)
	if err != nil {
		return err
	}

	h.answerCallback(cb.ID, "")
	h.showRound(cb.Message.Chat.ID, cb.Message.MessageID, state)

	return nil
}

// showRound edits msgID to show either the current question or the game over screen.
func (h *Handler) showRound(chatID int64, msgID int, state entities.RoundState) {
	if state.IsRoundOver {
		kb := buildGameOverKeyboard()
		h.send(newEdit(chatID, msgID, gameOverText(state), &kb))
		return
	}

	kb := buildQuestionKeyboard(state)
	h.send(newEdit(chatID, msgID, questionText(state), &kb))
}
