package telegram

import (
	"context"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Handler struct {
	bot         BotAPI
	logger      *zap.Logger
	gameService GameService
	answerDelay time.Duration
	wg          sync.WaitGroup
}

func NewHandler(
	bot BotAPI,
	logger *zap.Logger,
	gameService GameService,
	answerDelay time.Duration,
) *Handler {
	return &Handler{
		bot:         bot,
		logger:      logger,
		gameService: gameService,
		answerDelay: answerDelay,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.wg.Wait()

	for {
		select {
		case <-ctx.Done():
			h.bot.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID

	if !update.Message.IsCommand() {
		h.send(newPlainMessage(chatID, msgUseButtons))
		return
	}

	command := update.Message.Command()
	switch command {
	case "start":
		msg := newMessage(chatID, welcomeText())
		msg.ReplyMarkup = buildWelcomeKeyboard()
		h.send(msg)

	case "play", "restart":
		_ = h.withErrorHandling(command, h.playHandler())(ctx, chatID)

	case "score":
		_ = h.withErrorHandling(command, h.scoreHandler())(ctx, chatID)

	case "help":
		h.send(newMessage(chatID, helpText()))

	default:
		h.send(newPlainMessage(chatID, msgUnknownCommand))
	}
}

// afterDelay runs fn once the answer delay has passed, unless ctx is cancelled first.
func (h *Handler) afterDelay(ctx context.Context, fn func()) {
	if h.answerDelay <= 0 {
		fn()
		return
	}

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()

		timer := time.NewTimer(h.answerDelay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
		case <-timer.C:
			fn()
		}
	}()
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}

// answerCallback removes the loading indicator, optionally showing a toast.
func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.logger.Error("callback answer error", zap.Error(err))
	}
}
