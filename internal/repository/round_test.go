package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/guess-the-flag-bot/internal/domain/entities"
)

func TestRoundRow(t *testing.T) {
	state := &entities.RoundState{
		GameID:         uuid.New(),
		Options:        [3]entities.Country{entities.CountryNigeria, entities.CountryPoland, entities.CountryRussia},
		CorrectIndex:   2,
		Score:          2,
		QuestionNumber: 3,
		Phase:          entities.PhaseAwaitingNext,
		LastResult: &entities.AnswerResult{
			SelectedIndex:  2,
			Selected:       entities.CountryRussia,
			IsCorrect:      true,
			CorrectCountry: entities.CountryRussia,
		},
	}

	row, err := newRoundRow(state)
	require.NoError(t, err)
	assert.Equal(t, []string{"Nigeria", "Poland", "Russia"}, row.Options)
	assert.Equal(t, "awaiting_next", row.Phase)

	got, err := row.toState()
	require.NoError(t, err)
	assert.Equal(t, state, got)

	t.Run("no last result", func(t *testing.T) {
		s := *state
		s.LastResult = nil

		row, err := newRoundRow(&s)
		require.NoError(t, err)
		assert.Nil(t, row.LastResult)

		got, err := row.toState()
		require.NoError(t, err)
		assert.Nil(t, got.LastResult)
	})

	t.Run("wrong number of options", func(t *testing.T) {
		_, err := roundRow{Options: []string{"UK"}}.toState()
		assert.Error(t, err)
	})
}
