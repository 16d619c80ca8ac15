// Package store persists per-user documents: goal lists and game libraries.
// Documents are owner-scoped; one user can never see or edit another user's
// documents.
package store

import (
	"context"
	"errors"

	"github.com/nigeshu/YoutubeSangam/model"
)

// ErrNotFound is returned when a document id does not exist under the given
// owner.
var ErrNotFound = errors.New("document not found")

// ErrInvalidStatus is returned when a game update carries an unknown play
// status.
var ErrInvalidStatus = errors.New("invalid game status")

// DocumentStore is the persistence interface for per-user documents.
type DocumentStore interface {
	// ListGoals returns the owner's goals, newest first.
	ListGoals(ctx context.Context, ownerID string) ([]model.Goal, error)

	// AddGoal creates a new incomplete goal and returns it.
	AddGoal(ctx context.Context, ownerID, text string) (model.Goal, error)

	// UpdateGoal sets the completion flag of one goal.
	UpdateGoal(ctx context.Context, ownerID, goalID string, completed bool) (model.Goal, error)

	// DeleteGoal removes one goal.
	DeleteGoal(ctx context.Context, ownerID, goalID string) error

	// ListGames returns the owner's game library, newest first.
	ListGames(ctx context.Context, ownerID string) ([]model.LibraryGame, error)

	// AddGame adds a game to the library. The stored document gets a fresh
	// id and timestamp; rating is clamped to 0-5.
	AddGame(ctx context.Context, ownerID string, game model.LibraryGame) (model.LibraryGame, error)

	// UpdateGame sets the status and rating of one library entry.
	UpdateGame(ctx context.Context, ownerID, gameID string, status model.GameStatus, rating int) (model.LibraryGame, error)

	// DeleteGame removes one library entry.
	DeleteGame(ctx context.Context, ownerID, gameID string) error

	// Close releases the underlying connection.
	Close() error
}

// clampRating bounds a rating to the 0-5 scale, 0 meaning unrated.
func clampRating(rating int) int {
	if rating < 0 {
		return 0
	}
	if rating > 5 {
		return 5
	}
	return rating
}
