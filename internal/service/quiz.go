package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/guess-the-flag-bot/internal/domain/entities"
)

var (
	ErrInvalidIndex = errors.New("invalid option index")
	ErrInvalidState = errors.New("invalid round state")
)

// Rand is the source of randomness used to shuffle the pool and pick answers.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a seeded random source. A zero seed means "seed from the clock".
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// QuizStateMachine drives a single round of the flag quiz.
// It is not safe for concurrent use.
type QuizStateMachine struct {
	rnd   Rand
	pool  []entities.Country
	state entities.RoundState
}

// NewQuizStateMachine creates a state machine over the fixed country pool.
// Call Start or Restore before using it.
func NewQuizStateMachine(rnd Rand) *QuizStateMachine {
	return &QuizStateMachine{
		rnd:  rnd,
		pool: entities.Countries(),
	}
}

// Start begins a new round: score 0, question 1, fresh options.
func (m *QuizStateMachine) Start() entities.RoundState {
	m.state = entities.RoundState{
		GameID:         uuid.New(),
		Score:          0,
		QuestionNumber: 1,
		IsRoundOver:    false,
		Phase:          entities.PhasePlaying,
	}
	m.draw("")

	return m.State()
}

// Restart is Start under another name; the previous round is discarded.
func (m *QuizStateMachine) Restart() entities.RoundState {
	return m.Start()
}

// Answer checks the selected option against the target country.
// Only the first answer to a question counts towards the score.
// ErrInvalidState is returned before Start or Restore.
func (m *QuizStateMachine) Answer(selectedIndex int) (entities.AnswerResult, error) {
	if m.state.Phase == "" {
		return entities.AnswerResult{}, fmt.Errorf("%w: round not started", ErrInvalidState)
	}
	if selectedIndex < 0 || selectedIndex >= entities.OptionsPerQuestion {
		return entities.AnswerResult{}, fmt.Errorf("%w: %d", ErrInvalidIndex, selectedIndex)
	}

	result := entities.AnswerResult{
		SelectedIndex:  selectedIndex,
		Selected:       m.state.Options[selectedIndex],
		IsCorrect:      selectedIndex == m.state.CorrectIndex,
		CorrectCountry: m.state.Target(),
	}

	if m.state.Phase != entities.PhasePlaying {
		return result, nil
	}

	if result.IsCorrect {
		m.state.Score++
	}
	r := result
	m.state.LastResult = &r
	m.state.Phase = entities.PhaseAwaitingNext

	return result, nil
}

// Next moves to the following question, or ends the round after the last one.
// Once the round is over Next does nothing until Restart; before Start it does nothing at all.
func (m *QuizStateMachine) Next() entities.RoundState {
	if m.state.Phase == "" || m.state.Phase == entities.PhaseRoundOver {
		return m.State()
	}

	previous := m.state.Target()
	m.state.QuestionNumber++

	if m.state.QuestionNumber > entities.TotalQuestions {
		m.state.IsRoundOver = true
		m.state.Phase = entities.PhaseRoundOver
		return m.State()
	}

	m.draw(previous)
	m.state.Phase = entities.PhasePlaying
	m.state.LastResult = nil

	return m.State()
}

// State returns a copy of the current round state.
func (m *QuizStateMachine) State() entities.RoundState {
	s := m.state
	if s.LastResult != nil {
		r := *s.LastResult
		s.LastResult = &r
	}
	return s
}

// Pool returns a copy of the country pool in its current order.
func (m *QuizStateMachine) Pool() []entities.Country {
	pool := make([]entities.Country, len(m.pool))
	copy(pool, m.pool)
	return pool
}

// Restore resumes a previously saved round.
func (m *QuizStateMachine) Restore(s entities.RoundState) error {
	if err := validateState(s); err != nil {
		return err
	}

	m.state = s
	if s.LastResult != nil {
		r := *s.LastResult
		m.state.LastResult = &r
	}

	return nil
}

// draw reshuffles the pool, takes the first options and picks the target.
// The target never repeats the previous question's target.
func (m *QuizStateMachine) draw(previous entities.Country) {
	m.rnd.Shuffle(len(m.pool), func(i, j int) {
		m.pool[i], m.pool[j] = m.pool[j], m.pool[i]
	})

	candidates := make([]int, 0, entities.OptionsPerQuestion)
	for i := 0; i < entities.OptionsPerQuestion; i++ {
		m.state.Options[i] = m.pool[i]
		if m.pool[i] != previous {
			candidates = append(candidates, i)
		}
	}

	m.state.CorrectIndex = candidates[m.rnd.Intn(len(candidates))]
}

func validateState(s entities.RoundState) error {
	if s.GameID == uuid.Nil {
		return fmt.Errorf("%w: empty game id", ErrInvalidState)
	}
	if !s.Phase.IsValid() {
		return fmt.Errorf("%w: unknown phase %q", ErrInvalidState, s.Phase)
	}
	if s.IsRoundOver != (s.Phase == entities.PhaseRoundOver) {
		return fmt.Errorf("%w: round over flag does not match phase %q", ErrInvalidState, s.Phase)
	}
	if s.QuestionNumber < 1 || s.QuestionNumber > entities.TotalQuestions+1 {
		return fmt.Errorf("%w: question number %d", ErrInvalidState, s.QuestionNumber)
	}
	if (s.QuestionNumber > entities.TotalQuestions) != s.IsRoundOver {
		return fmt.Errorf("%w: question number %d with round over=%t", ErrInvalidState, s.QuestionNumber, s.IsRoundOver)
	}
	if s.CorrectIndex < 0 || s.CorrectIndex >= entities.OptionsPerQuestion {
		return fmt.Errorf("%w: correct index %d", ErrInvalidState, s.CorrectIndex)
	}
	if s.Score < 0 || s.Score > s.Answered() {
		return fmt.Errorf("%w: score %d", ErrInvalidState, s.Score)
	}

	seen := make(map[entities.Country]bool, entities.OptionsPerQuestion)
	for _, c := range s.Options {
		if !c.IsKnown() {
			return fmt.Errorf("%w: unknown country %q", ErrInvalidState, c)
		}
		if seen[c] {
			return fmt.Errorf("%w: duplicate country %q", ErrInvalidState, c)
		}
		seen[c] = true
	}

	return nil
}
