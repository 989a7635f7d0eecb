package service_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/guess-the-flag-bot/internal/domain/entities"
	"github.com/aliskhannn/guess-the-flag-bot/internal/service"
	"github.com/aliskhannn/guess-the-flag-bot/internal/storage"
)

const chatID int64 = 42

func newGameService() *service.GameService {
	return service.NewGameService(storage.NewRoundStorage(), rand.New(rand.NewSource(1)), zap.NewNop())
}

func TestGameServiceNewGame(t *testing.T) {
	ctx := context.Background()
	gs := newGameService()

	_, err := gs.Current(ctx, chatID)
	assert.ErrorIs(t, err, service.ErrGameNotFound)

	state, err := gs.NewGame(ctx, chatID)
	require.NoError(t, err)

	current, err := gs.Current(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, state, current)
	assert.Equal(t, 1, current.QuestionNumber)
}

func TestGameServiceFullRound(t *testing.T) {
	ctx := context.Background()
	gs := newGameService()

	state, err := gs.NewGame(ctx, chatID)
	require.NoError(t, err)

	for q := 1; q <= entities.TotalQuestions; q++ {
		require.Equal(t, q, state.QuestionNumber)

		var result entities.AnswerResult
		state, result, err = gs.Answer(ctx, chatID, state.GameRef(), q, state.CorrectIndex)
		require.NoError(t, err)
		assert.True(t, result.IsCorrect)
		assert.Equal(t, q, state.Score)
		assert.Equal(t, entities.PhaseAwaitingNext, state.Phase)

		state, err = gs.Next(ctx, chatID, state.GameRef(), q)
		require.NoError(t, err)
	}

	assert.True(t, state.IsRoundOver)
	assert.Equal(t, entities.TotalQuestions, state.Score)

	state, err = gs.Restart(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, 0, state.Score)
	assert.Equal(t, 1, state.QuestionNumber)
	assert.False(t, state.IsRoundOver)
}

func TestGameServiceStaleQuestion(t *testing.T) {
	ctx := context.Background()
	gs := newGameService()

	state, err := gs.NewGame(ctx, chatID)
	require.NoError(t, err)

	t.Run("next before answer", func(t *testing.T) {
		_, err := gs.Next(ctx, chatID, state.GameRef(), 1)
		assert.ErrorIs(t, err, service.ErrStaleQuestion)
	})

	t.Run("answer for another question", func(t *testing.T) {
		_, _, err := gs.Answer(ctx, chatID, state.GameRef(), 2, 0)
		assert.ErrorIs(t, err, service.ErrStaleQuestion)
	})

	t.Run("double tap", func(t *testing.T) {
		_, _, err := gs.Answer(ctx, chatID, state.GameRef(), 1, state.CorrectIndex)
		require.NoError(t, err)

		_, _, err = gs.Answer(ctx, chatID, state.GameRef(), 1, state.CorrectIndex)
		assert.ErrorIs(t, err, service.ErrStaleQuestion)

		current, err := gs.Current(ctx, chatID)
		require.NoError(t, err)
		assert.Equal(t, 1, current.Score)
	})
}

func TestGameServiceInvalidIndex(t *testing.T) {
	ctx := context.Background()
	gs := newGameService()

	state, err := gs.NewGame(ctx, chatID)
	require.NoError(t, err)

	_, _, err = gs.Answer(ctx, chatID, state.GameRef(), 1, 5)
	assert.ErrorIs(t, err, service.ErrInvalidIndex)

	current, err := gs.Current(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, 0, current.Score)
	assert.Equal(t, entities.PhasePlaying, current.Phase)
}

func TestGameServiceUnknownChat(t *testing.T) {
	ctx := context.Background()
	gs := newGameService()

	_, _, err := gs.Answer(ctx, chatID, "deadbeef", 1, 0)
	assert.ErrorIs(t, err, service.ErrGameNotFound)

	_, err = gs.Next(ctx, chatID, "deadbeef", 1)
	assert.ErrorIs(t, err, service.ErrGameNotFound)
}

func TestGameServiceButtonsOfPreviousGame(t *testing.T) {
	ctx := context.Background()
	gs := newGameService()

	old, err := gs.NewGame(ctx, chatID)
	require.NoError(t, err)

	t.Run("answer after restart", func(t *testing.T) {
		fresh, err := gs.Restart(ctx, chatID)
		require.NoError(t, err)
		require.NotEqual(t, old.GameRef(), fresh.GameRef())

		_, _, err = gs.Answer(ctx, chatID, old.GameRef(), 1, old.CorrectIndex)
		assert.ErrorIs(t, err, service.ErrStaleQuestion)

		current, err := gs.Current(ctx, chatID)
		require.NoError(t, err)
		assert.Equal(t, entities.PhasePlaying, current.Phase)
		assert.Nil(t, current.LastResult)
	})

	t.Run("continue after restart", func(t *testing.T) {
		answered, err := gs.NewGame(ctx, chatID)
		require.NoError(t, err)
		_, _, err = gs.Answer(ctx, chatID, answered.GameRef(), 1, 0)
		require.NoError(t, err)

		fresh, err := gs.Restart(ctx, chatID)
		require.NoError(t, err)
		_, _, err = gs.Answer(ctx, chatID, fresh.GameRef(), 1, 0)
		require.NoError(t, err)

		_, err = gs.Next(ctx, chatID, answered.GameRef(), 1)
		assert.ErrorIs(t, err, service.ErrStaleQuestion)

		current, err := gs.Current(ctx, chatID)
		require.NoError(t, err)
		assert.Equal(t, 1, current.QuestionNumber)
		assert.Equal(t, entities.PhaseAwaitingNext, current.Phase)
	})
}
