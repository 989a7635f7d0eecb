package storage

import (
	"context"
	"sync"

	"github.com/aliskhannn/guess-the-flag-bot/internal/domain/entities"
	"github.com/aliskhannn/guess-the-flag-bot/internal/repository"
)

// RoundStorage provides in-memory storage for running rounds by chat ID.
type RoundStorage struct {
	mu     sync.RWMutex
	rounds map[int64]entities.RoundState
}

// NewRoundStorage creates a new RoundStorage.
func NewRoundStorage() *RoundStorage {
	return &RoundStorage{
		rounds: make(map[int64]entities.RoundState),
	}
}

// Get retrieves a copy of the round for a given chat ID.
func (s *RoundStorage) Get(_ context.Context, chatID int64) (*entities.RoundState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.rounds[chatID]
	if !ok {
		return nil, repository.ErrRoundNotFound
	}
	return cloneRound(state), nil
}

// Save stores a copy of the round for a given chat ID.
func (s *RoundStorage) Save(_ context.Context, chatID int64, state *entities.RoundState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rounds[chatID] = *cloneRound(*state)
	return nil
}

// Update applies fn to the round of a chat under the write lock.
func (s *RoundStorage) Update(_ context.Context, chatID int64, fn func(state *entities.RoundState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.rounds[chatID]
	if !ok {
		return repository.ErrRoundNotFound
	}

	state := cloneRound(current)
	if err := fn(state); err != nil {
		return err
	}

	s.rounds[chatID] = *cloneRound(*state)
	return nil
}

func cloneRound(state entities.RoundState) *entities.RoundState {
	if state.LastResult != nil {
		r := *state.LastResult
		state.LastResult = &r
	}
	return &state
}
