package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/guess-the-flag-bot/internal/domain/entities"
	"github.com/aliskhannn/guess-the-flag-bot/internal/repository"
)

var (
	ErrGameNotFound  = errors.New("game not found")
	ErrStaleQuestion = errors.New("question is no longer active")
)

// GameService keeps one round per chat in a RoundStore and drives it
// through QuizStateMachine.
type GameService struct {
	store  RoundStore
	rnd    Rand
	logger *zap.Logger
}

// NewGameService creates a new GameService.
func NewGameService(store RoundStore, rnd Rand, logger *zap.Logger) *GameService {
	return &GameService{
		store:  store,
		rnd:    rnd,
		logger: logger,
	}
}

// NewGame starts a fresh round for the chat, replacing any running one.
func (s *GameService) NewGame(ctx context.Context, chatID int64) (entities.RoundState, error) {
	state := NewQuizStateMachine(s.rnd).Start()

	if err := s.store.Save(ctx, chatID, &state); err != nil {
		return entities.RoundState{}, fmt.Errorf("save round: %w", err)
	}

	s.logger.Info("round started",
		zap.Int64("chat_id", chatID),
		zap.String("game_id", state.GameID.String()),
	)

	return state, nil
}

// Restart resets score and question counter of the chat's round.
func (s *GameService) Restart(ctx context.Context, chatID int64) (entities.RoundState, error) {
	return s.NewGame(ctx, chatID)
}

// Current returns the chat's round.
func (s *GameService) Current(ctx context.Context, chatID int64) (entities.RoundState, error) {
	state, err := s.store.Get(ctx, chatID)
	if err != nil {
		return entities.RoundState{}, mapStoreErr(err)
	}
	return *state, nil
}

// Answer records the answer to question questionNumber of game gameRef.
// ErrStaleQuestion is returned when that question is not waiting for an answer.
func (s *GameService) Answer(
	ctx context.Context, chatID int64, gameRef string, questionNumber, selectedIndex int,
) (entities.RoundState, entities.AnswerResult, error) {
	var (
		updated entities.RoundState
		result  entities.AnswerResult
	)

	err := s.store.Update(ctx, chatID, func(state *entities.RoundState) error {
		if !isCurrent(state, gameRef, questionNumber, entities.PhasePlaying) {
			return ErrStaleQuestion
		}

		m, err := s.restore(*state)
		if err != nil {
			return err
		}

		result, err = m.Answer(selectedIndex)
		if err != nil {
			return err
		}

		*state = m.State()
		updated = *state
		return nil
	})
	if err != nil {
		return entities.RoundState{}, entities.AnswerResult{}, mapStoreErr(err)
	}

	s.logger.Debug("answer recorded",
		zap.Int64("chat_id", chatID),
		zap.String("game_id", updated.GameID.String()),
		zap.Int("question", questionNumber),
		zap.Bool("correct", result.IsCorrect),
		zap.Int("score", updated.Score),
	)

	return updated, result, nil
}

// Next advances the chat's round past question questionNumber of game gameRef.
func (s *GameService) Next(ctx context.Context, chatID int64, gameRef string, questionNumber int) (entities.RoundState, error) {
	var updated entities.RoundState

	err := s.store.Update(ctx, chatID, func(state *entities.RoundState) error {
		if !isCurrent(state, gameRef, questionNumber, entities.PhaseAwaitingNext) {
			return ErrStaleQuestion
		}

		m, err := s.restore(*state)
		if err != nil {
			return err
		}

		*state = m.Next()
		updated = *state
		return nil
	})
	if err != nil {
		return entities.RoundState{}, mapStoreErr(err)
	}

	if updated.IsRoundOver {
		s.logger.Info("round finished",
			zap.Int64("chat_id", chatID),
			zap.String("game_id", updated.GameID.String()),
			zap.Int("score", updated.Score),
		)
	}

	return updated, nil
}

func (s *GameService) restore(state entities.RoundState) (*QuizStateMachine, error) {
	m := NewQuizStateMachine(s.rnd)
	if err := m.Restore(state); err != nil {
		return nil, err
	}
	return m, nil
}

// isCurrent reports whether a button for gameRef/questionNumber still applies to state.
func isCurrent(state *entities.RoundState, gameRef string, questionNumber int, phase entities.Phase) bool {
	return state.GameRef() == gameRef &&
		state.QuestionNumber == questionNumber &&
		state.Phase == phase
}

func mapStoreErr(err error) error {
	if errors.Is(err, repository.ErrRoundNotFound) {
		return ErrGameNotFound
	}
	return err
}
