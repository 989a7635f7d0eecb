package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/guess-the-flag-bot/internal/domain/entities"
)

// buildQuestionKeyboard builds one flag button per option.
func buildQuestionKeyboard(state entities.RoundState) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(state.Options))
	for i, country := range state.Options {
		button := tgbotapi.NewInlineKeyboardButtonData(country.Flag(), buildAnswerCallback(state.GameRef(), state.QuestionNumber, i))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildContinueKeyboard builds the keyboard shown under an answer result.
func buildContinueKeyboard(state entities.RoundState) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Continue ▶️", buildNextCallback(state.GameRef(), state.QuestionNumber)),
		),
	)
}

// buildGameOverKeyboard builds keyboard for the final score screen.
func buildGameOverKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Restart Game", buildRestartCallback()),
		),
	)
}

func buildWelcomeKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎯 Play", buildPlayCallback()),
		),
	)
}
