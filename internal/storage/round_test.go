package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/guess-the-flag-bot/internal/domain/entities"
	"github.com/aliskhannn/guess-the-flag-bot/internal/repository"
)

func TestRoundStorage(t *testing.T) {
	ctx := context.Background()
	s := NewRoundStorage()

	_, err := s.Get(ctx, 1)
	assert.ErrorIs(t, err, repository.ErrRoundNotFound)

	state := &entities.RoundState{
		GameID:         uuid.New(),
		Options:        [3]entities.Country{entities.CountryUK, entities.CountryUS, entities.CountryItaly},
		QuestionNumber: 1,
		Phase:          entities.PhasePlaying,
		LastResult:     &entities.AnswerResult{Selected: entities.CountryUK},
	}
	require.NoError(t, s.Save(ctx, 1, state))

	t.Run("get returns a copy", func(t *testing.T) {
		got, err := s.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, state, got)

		got.Score = 7
		got.LastResult.Selected = entities.CountrySpain

		again, err := s.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, again.Score)
		assert.Equal(t, entities.CountryUK, again.LastResult.Selected)
	})

	t.Run("update saves changes", func(t *testing.T) {
		err := s.Update(ctx, 1, func(st *entities.RoundState) error {
			st.Score = 1
			return nil
		})
		require.NoError(t, err)

		got, err := s.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Score)
	})

	t.Run("failed update saves nothing", func(t *testing.T) {
		boom := errors.New("boom")
		err := s.Update(ctx, 1, func(st *entities.RoundState) error {
			st.Score = 5
			return boom
		})
		assert.ErrorIs(t, err, boom)

		got, err := s.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Score)
	})

	t.Run("update of unknown chat", func(t *testing.T) {
		err := s.Update(ctx, 2, func(*entities.RoundState) error { return nil })
		assert.ErrorIs(t, err, repository.ErrRoundNotFound)
	})
}
