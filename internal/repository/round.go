package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aliskhannn/guess-the-flag-bot/internal/domain/entities"
	"github.com/aliskhannn/guess-the-flag-bot/internal/infra/postgres"
)

var ErrRoundNotFound = errors.New("round not found")

// RoundRepository keeps the running round of each chat in PostgreSQL.
// Only one row per chat exists; starting a new game overwrites it.
type RoundRepository struct {
	db         postgres.DBTX
	transactor *postgres.Transactor
}

// NewRoundRepository creates a new RoundRepository with the provided database pool.
func NewRoundRepository(pool *pgxpool.Pool) *RoundRepository {
	return &RoundRepository{
		db:         pool,
		transactor: postgres.NewTransactor(pool),
	}
}

// roundRow is the database representation of a round.
type roundRow struct {
	GameID         uuid.UUID
	Options        []string
	CorrectIndex   int
	Score          int
	QuestionNumber int
	IsRoundOver    bool
	Phase          string
	LastResult     []byte
	UpdatedAt      time.Time
}

// Get retrieves the round of a chat.
func (r *RoundRepository) Get(ctx context.Context, chatID int64) (*entities.RoundState, error) {
	return r.get(ctx, r.db, chatID, false)
}

// Save inserts or replaces the round of a chat.
func (r *RoundRepository) Save(ctx context.Context, chatID int64, state *entities.RoundState) error {
	return r.save(ctx, r.db, chatID, state)
}

// Update locks the chat's row, applies fn and writes the result back
// in the same transaction.
func (r *RoundRepository) Update(
	ctx context.Context, chatID int64, fn func(state *entities.RoundState) error,
) error {
	return r.transactor.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		state, err := r.get(ctx, tx, chatID, true)
		if err != nil {
			return err
		}

		if err := fn(state); err != nil {
			return err
		}

		return r.save(ctx, tx, chatID, state)
	})
}

func (r *RoundRepository) get(ctx context.Context, db postgres.DBTX, chatID int64, forUpdate bool) (*entities.RoundState, error) {
	query := `
		SELECT game_id, options, correct_index, score, question_number,
		       is_round_over, phase, last_result, updated_at
		FROM rounds
		WHERE chat_id = $1
	`
	if forUpdate {
		query += " FOR UPDATE"
	}

	var row roundRow
	err := db.QueryRow(ctx, query, chatID).Scan(
		&row.GameID,
		&row.Options,
		&row.CorrectIndex,
		&row.Score,
		&row.QuestionNumber,
		&row.IsRoundOver,
		&row.Phase,
		&row.LastResult,
		&row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoundNotFound
		}
		return nil, fmt.Errorf("get round: %w", err)
	}

	return row.toState()
}

func (r *RoundRepository) save(ctx context.Context, db postgres.DBTX, chatID int64, state *entities.RoundState) error {
	row, err := newRoundRow(state)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO rounds (
			chat_id, game_id, options, correct_index, score,
			question_number, is_round_over, phase, last_result, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (chat_id) DO UPDATE SET
			game_id         = EXCLUDED.game_id,
			options         = EXCLUDED.options,
			correct_index   = EXCLUDED.correct_index,
			score           = EXCLUDED.score,
			question_number = EXCLUDED.question_number,
			is_round_over   = EXCLUDED.is_round_over,
			phase           = EXCLUDED.phase,
			last_result     = EXCLUDED.last_result,
			updated_at      = NOW()
	`

	_, err = db.Exec(
		ctx,
		query,
		chatID,
		row.GameID,
		row.Options,
		row.CorrectIndex,
		row.Score,
		row.QuestionNumber,
		row.IsRoundOver,
		row.Phase,
		row.LastResult,
	)
	if err != nil {
		return fmt.Errorf("save round: %w", err)
	}

	return nil
}

func newRoundRow(state *entities.RoundState) (roundRow, error) {
	row := roundRow{
		GameID:         state.GameID,
		Options:        make([]string, 0, len(state.Options)),
		CorrectIndex:   state.CorrectIndex,
		Score:          state.Score,
		QuestionNumber: state.QuestionNumber,
		IsRoundOver:    state.IsRoundOver,
		Phase:          string(state.Phase),
	}

	for _, c := range state.Options {
		row.Options = append(row.Options, string(c))
	}

	if state.LastResult != nil {
		data, err := json.Marshal(state.LastResult)
		if err != nil {
			return roundRow{}, fmt.Errorf("marshal last result: %w", err)
		}
		row.LastResult = data
	}

	return row, nil
}

func (row roundRow) toState() (*entities.RoundState, error) {
	if len(row.Options) != entities.OptionsPerQuestion {
		return nil, fmt.Errorf("round has %d options, want %d", len(row.Options), entities.OptionsPerQuestion)
	}

	state := &entities.RoundState{
		GameID:         row.GameID,
		CorrectIndex:   row.CorrectIndex,
		Score:          row.Score,
		QuestionNumber: row.QuestionNumber,
		IsRoundOver:    row.IsRoundOver,
		Phase:          entities.Phase(row.Phase),
	}
	for i, c := range row.Options {
		state.Options[i] = entities.Country(c)
	}

	if len(row.LastResult) > 0 {
		var result entities.AnswerResult
		if err := json.Unmarshal(row.LastResult, &result); err != nil {
			return nil, fmt.Errorf("unmarshal last result: %w", err)
		}
		state.LastResult = &result
	}

	return state, nil
}
