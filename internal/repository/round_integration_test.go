package repository

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/guess-the-flag-bot/internal/domain/entities"
	"github.com/aliskhannn/guess-the-flag-bot/internal/infra/postgres"
)

// newTestRepository connects to TEST_DATABASE_URL and applies the schema.
// Tests are skipped when the variable is not set.
func newTestRepository(t *testing.T) (*RoundRepository, *pgxpool.Pool) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{MaxConns: 8})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	schema, err := os.ReadFile("../../migrations/0001_rounds.sql")
	require.NoError(t, err)
	_, err = pool.Exec(ctx, string(schema))
	require.NoError(t, err)

	return NewRoundRepository(pool), pool
}

func testChat(t *testing.T, pool *pgxpool.Pool) int64 {
	t.Helper()

	chatID := int64(uuid.New().ID())
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), "DELETE FROM rounds WHERE chat_id = $1", chatID)
	})
	return chatID
}

func testRound() *entities.RoundState {
	return &entities.RoundState{
		GameID:         uuid.New(),
		Options:        [3]entities.Country{entities.CountryIreland, entities.CountryItaly, entities.CountryUS},
		CorrectIndex:   1,
		QuestionNumber: 1,
		Phase:          entities.PhasePlaying,
	}
}

func TestRoundRepositoryGetSave(t *testing.T) {
	repo, pool := newTestRepository(t)
	ctx := context.Background()
	chatID := testChat(t, pool)

	_, err := repo.Get(ctx, chatID)
	assert.ErrorIs(t, err, ErrRoundNotFound)

	first := testRound()
	require.NoError(t, repo.Save(ctx, chatID, first))

	got, err := repo.Get(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	second := testRound()
	second.Phase = entities.PhaseAwaitingNext
	second.Score = 1
	second.LastResult = &entities.AnswerResult{SelectedIndex: 1, Selected: entities.CountryItaly, IsCorrect: true, CorrectCountry: entities.CountryItaly}
	require.NoError(t, repo.Save(ctx, chatID, second))

	got, err = repo.Get(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestRoundRepositoryUpdate(t *testing.T) {
	repo, pool := newTestRepository(t)
	ctx := context.Background()
	chatID := testChat(t, pool)

	err := repo.Update(ctx, chatID, func(*entities.RoundState) error { return nil })
	assert.ErrorIs(t, err, ErrRoundNotFound)

	require.NoError(t, repo.Save(ctx, chatID, testRound()))

	t.Run("failed update is rolled back", func(t *testing.T) {
		boom := errors.New("boom")
		err := repo.Update(ctx, chatID, func(s *entities.RoundState) error {
			s.Score = 1
			return boom
		})
		assert.ErrorIs(t, err, boom)

		got, err := repo.Get(ctx, chatID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Score)
	})

	t.Run("concurrent updates are serialized", func(t *testing.T) {
		const workers = 5

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, repo.Update(ctx, chatID, func(s *entities.RoundState) error {
					s.QuestionNumber++
					return nil
				}))
			}()
		}
		wg.Wait()

		got, err := repo.Get(ctx, chatID)
		require.NoError(t, err)
		assert.Equal(t, 1+workers, got.QuestionNumber)
	})
}
