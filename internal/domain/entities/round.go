package entities

import (
	"github.com/google/uuid"
)

const (
	TotalQuestions     = 8 // questions in one round
	OptionsPerQuestion = 3 // flags shown per question
)

// Phase is the state of a round.
type Phase string

const (
	PhasePlaying      Phase = "playing"       // waiting for the player to pick a flag
	PhaseAwaitingNext Phase = "awaiting_next" // answer recorded, waiting for the next question
	PhaseRoundOver    Phase = "round_over"    // all questions asked, only restart leaves this phase
)

// IsValid reports whether p is one of the known phases.
func (p Phase) IsValid() bool {
	switch p {
	case PhasePlaying, PhaseAwaitingNext, PhaseRoundOver:
		return true
	default:
		return false
	}
}

// AnswerResult is the outcome of a single answer.
type AnswerResult struct {
	SelectedIndex  int     `json:"selected_index"`  // index of the tapped flag
	Selected       Country `json:"selected"`        // country of the tapped flag
	IsCorrect      bool    `json:"is_correct"`      // whether the tapped flag is the target
	CorrectCountry Country `json:"correct_country"` // the target country
}

// RoundState is the full state of one running game.
type RoundState struct {
	GameID         uuid.UUID                   `json:"game_id"`         // identifies the game, renewed on restart
	Options        [OptionsPerQuestion]Country `json:"options"`         // flags shown for the current question
	CorrectIndex   int                         `json:"correct_index"`   // index of the target country in Options
	Score          int                         `json:"score"`           // correct answers so far
	QuestionNumber int                         `json:"question_number"` // 1-based question counter
	IsRoundOver    bool                        `json:"is_round_over"`   // set once the counter passes TotalQuestions
	Phase          Phase                       `json:"phase"`           // current phase of the round
	LastResult     *AnswerResult               `json:"last_result"`     // result of the last answer, nil before the first one
}

// Target returns the country the player is asked to find.
func (s RoundState) Target() Country {
	if s.CorrectIndex < 0 || s.CorrectIndex >= OptionsPerQuestion {
		return ""
	}
	return s.Options[s.CorrectIndex]
}

// GameRef returns a short prefix of GameID, enough to tell games of one chat apart.
func (s RoundState) GameRef() string {
	return s.GameID.String()[:8]
}

// Answered returns the number of questions answered or skipped so far.
func (s RoundState) Answered() int {
	switch s.Phase {
	case PhaseAwaitingNext:
		return s.QuestionNumber
	case PhaseRoundOver:
		return TotalQuestions
	default:
		return s.QuestionNumber - 1
	}
}
