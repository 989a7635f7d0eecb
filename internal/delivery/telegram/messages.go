// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/guess-the-flag-bot/internal/domain/entities"
)

// Error and hint messages.
const (
	msgInternalError  = "Something went wrong. Please try again later."
	msgUnknownCommand = "Unknown command.\n\n/play — start a round\n/score — show your score\n/help — how to play"
	msgUseButtons     = "Use the flag buttons to answer, or send /play to start a round."
	msgNoGame         = "No game in progress. Send /play to start."
	msgStaleQuestion  = "This question is already closed."
	msgBadButton      = "This button is not valid any more."
)

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without MarkdownV2 parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newEdit creates an edit with MarkdownV2 parse mode.
func newEdit(chatID int64, msgID int, text string, kb *tgbotapi.InlineKeyboardMarkup) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	edit.ReplyMarkup = kb
	return edit
}

func welcomeText() string {
	var sb strings.Builder

	sb.WriteString(bold("Guess the flag"))
	sb.WriteString("\n\n")
	sb.WriteString(md(fmt.Sprintf(
		"Every round has %d questions. Each time you get %d flags and a country name: tap the flag of that country.",
		entities.TotalQuestions, entities.OptionsPerQuestion,
	)))
	sb.WriteString("\n\n")
	sb.WriteString(md("Press Play or send /play to begin."))

	return sb.String()
}

func helpText() string {
	var sb strings.Builder

	sb.WriteString(bold("How to play"))
	sb.WriteString("\n\n")
	sb.WriteString(md("/play — start a new round"))
	sb.WriteString("\n")
	sb.WriteString(md("/restart — drop the current round and start over"))
	sb.WriteString("\n")
	sb.WriteString(md("/score — show the score of the current round"))

	return sb.String()
}

// progressLine renders "Question k/8 · Score: n".
func progressLine(state entities.RoundState) string {
	return md(fmt.Sprintf("Question %d/%d · Score: %d", state.QuestionNumber, entities.TotalQuestions, state.Score))
}

func questionText(state entities.RoundState) string {
	var sb strings.Builder

	sb.WriteString(bold("Guess the flag"))
	sb.WriteString("\n\n")
	sb.WriteString(md("Tap the flag of"))
	sb.WriteString("\n")
	sb.WriteString(bold(state.Target().String()))
	sb.WriteString("\n\n")
	sb.WriteString(progressLine(state))

	return sb.String()
}

// checkingText is shown while the answer delay runs.
func checkingText(state entities.RoundState, result entities.AnswerResult) string {
	var sb strings.Builder

	sb.WriteString(md("Tap the flag of"))
	sb.WriteString("\n")
	sb.WriteString(bold(result.CorrectCountry.String()))
	sb.WriteString("\n\n")
	sb.WriteString(md(fmt.Sprintf("You picked %s …", result.Selected.Flag())))
	sb.WriteString("\n\n")
	sb.WriteString(md(fmt.Sprintf("Question %d/%d", state.QuestionNumber, entities.TotalQuestions)))

	return sb.String()
}

// resultTitle mirrors the alert title of the game: "Correct" or the country that was tapped.
func resultTitle(result entities.AnswerResult) string {
	if result.IsCorrect {
		return "Correct"
	}
	return fmt.Sprintf("Wrong! That's the flag of %s", result.Selected)
}

func resultText(state entities.RoundState, result entities.AnswerResult) string {
	var sb strings.Builder

	if result.IsCorrect {
		sb.WriteString("✅ ")
	} else {
		sb.WriteString("❌ ")
	}
	sb.WriteString(bold(resultTitle(result)))
	sb.WriteString("\n\n")
	sb.WriteString(md(fmt.Sprintf("%s %s", result.CorrectCountry.Flag(), result.CorrectCountry)))
	sb.WriteString("\n\n")
	sb.WriteString(md(fmt.Sprintf("Your score is %d", state.Score)))

	return sb.String()
}

func gameOverText(state entities.RoundState) string {
	var sb strings.Builder

	sb.WriteString("🏁 ")
	sb.WriteString(bold("Game Over"))
	sb.WriteString("\n\n")
	sb.WriteString(md(fmt.Sprintf("Your final score is %d/%d", state.Score, entities.TotalQuestions)))

	return sb.String()
}

func scoreText(state entities.RoundState) string {
	if state.IsRoundOver {
		return gameOverText(state)
	}
	return progressLine(state)
}
