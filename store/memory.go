package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nigeshu/YoutubeSangam/model"
)

// MemoryDocumentStore implements DocumentStore in process memory. It backs
// local development without a Dapr sidecar and the handler tests.
type MemoryDocumentStore struct {
	mu    sync.RWMutex
	goals map[string][]model.Goal
	games map[string][]model.LibraryGame
}

// NewMemoryDocumentStore creates an empty in-memory store.
func NewMemoryDocumentStore() *MemoryDocumentStore {
	return &MemoryDocumentStore{
		goals: make(map[string][]model.Goal),
		games: make(map[string][]model.LibraryGame),
	}
}

// Close is a no-op for the in-memory store.
func (s *MemoryDocumentStore) Close() error {
	return nil
}

// ListGoals returns the owner's goals, newest first.
func (s *MemoryDocumentStore) ListGoals(ctx context.Context, ownerID string) ([]model.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	goals := make([]model.Goal, len(s.goals[ownerID]))
	copy(goals, s.goals[ownerID])
	return goals, nil
}

// AddGoal creates a new incomplete goal at the head of the owner's list.
func (s *MemoryDocumentStore) AddGoal(ctx context.Context, ownerID, text string) (model.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goal := model.Goal{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Text:      text,
		Completed: false,
		CreatedAt: time.Now().UTC(),
	}
	s.goals[ownerID] = append([]model.Goal{goal}, s.goals[ownerID]...)
	return goal, nil
}

// UpdateGoal sets the completion flag of one goal.
func (s *MemoryDocumentStore) UpdateGoal(ctx context.Context, ownerID, goalID string, completed bool) (model.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals := s.goals[ownerID]
	for i := range goals {
		if goals[i].ID == goalID {
			goals[i].Completed = completed
			return goals[i], nil
		}
	}
	return model.Goal{}, ErrNotFound
}

// DeleteGoal removes one goal.
func (s *MemoryDocumentStore) DeleteGoal(ctx context.Context, ownerID, goalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals := s.goals[ownerID]
	for i := range goals {
		if goals[i].ID == goalID {
			s.goals[ownerID] = append(goals[:i], goals[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ListGames returns the owner's game library, newest first.
func (s *MemoryDocumentStore) ListGames(ctx context.Context, ownerID string) ([]model.LibraryGame, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	games := make([]model.LibraryGame, len(s.games[ownerID]))
	copy(games, s.games[ownerID])
	return games, nil
}

// AddGame adds a game at the head of the owner's library.
func (s *MemoryDocumentStore) AddGame(ctx context.Context, ownerID string, game model.LibraryGame) (model.LibraryGame, error) {
	if game.Status == "" {
		game.Status = model.GameStatusPlanned
	}
	if !model.ValidGameStatus(game.Status) {
		return model.LibraryGame{}, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	game.ID = uuid.NewString()
	game.OwnerID = ownerID
	game.Rating = clampRating(game.Rating)
	game.AddedAt = time.Now().UTC()

	s.games[ownerID] = append([]model.LibraryGame{game}, s.games[ownerID]...)
	return game, nil
}

// UpdateGame sets the status and rating of one library entry.
func (s *MemoryDocumentStore) UpdateGame(ctx context.Context, ownerID, gameID string, status model.GameStatus, rating int) (model.LibraryGame, error) {
	if !model.ValidGameStatus(status) {
		return model.LibraryGame{}, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	games := s.games[ownerID]
	for i := range games {
		if games[i].ID == gameID {
			games[i].Status = status
			games[i].Rating = clampRating(rating)
			return games[i], nil
		}
	}
	return model.LibraryGame{}, ErrNotFound
}

// DeleteGame removes one library entry.
func (s *MemoryDocumentStore) DeleteGame(ctx context.Context, ownerID, gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	games := s.games[ownerID]
	for i := range games {
		if games[i].ID == gameID {
			s.games[ownerID] = append(games[:i], games[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
