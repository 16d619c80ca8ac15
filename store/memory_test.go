package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nigeshu/YoutubeSangam/model"
)

func TestGoalLifecycle(t *testing.T) {
	s := NewMemoryDocumentStore()
	ctx := context.Background()

	first, err := s.AddGoal(ctx, "user-1", "hit 1k subscribers")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "user-1", first.OwnerID)
	assert.False(t, first.Completed)

	second, err := s.AddGoal(ctx, "user-1", "upload weekly")
	require.NoError(t, err)

	goals, err := s.ListGoals(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.Equal(t, second.ID, goals[0].ID, "newest goal listed first")

	updated, err := s.UpdateGoal(ctx, "user-1", first.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Completed)

	require.NoError(t, s.DeleteGoal(ctx, "user-1", second.ID))
	goals, err = s.ListGoals(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, first.ID, goals[0].ID)
}

func TestGoalsAreOwnerScoped(t *testing.T) {
	s := NewMemoryDocumentStore()
	ctx := context.Background()

	mine, err := s.AddGoal(ctx, "user-1", "mine")
	require.NoError(t, err)
	_, err = s.AddGoal(ctx, "user-2", "theirs")
	require.NoError(t, err)

	goals, err := s.ListGoals(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "mine", goals[0].Text)

	// Another owner cannot touch the document even with the right id.
	_, err = s.UpdateGoal(ctx, "user-2", mine.ID, true)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(s.DeleteGoal(ctx, "user-2", mine.ID), ErrNotFound))
}

func TestGoalNotFound(t *testing.T) {
	s := NewMemoryDocumentStore()
	ctx := context.Background()

	_, err := s.UpdateGoal(ctx, "user-1", "missing", true)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(s.DeleteGoal(ctx, "user-1", "missing"), ErrNotFound))
}

func TestGameLifecycle(t *testing.T) {
	s := NewMemoryDocumentStore()
	ctx := context.Background()

	added, err := s.AddGame(ctx, "user-1", model.LibraryGame{
		GameID:          42,
		Name:            "Hades",
		BackgroundImage: "https://img/hades.jpg",
		Released:        "2020-09-17",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, model.GameStatusPlanned, added.Status, "status defaults to Planned")
	assert.Equal(t, 0, added.Rating)

	updated, err := s.UpdateGame(ctx, "user-1", added.ID, model.GameStatusCompleted, 5)
	require.NoError(t, err)
	assert.Equal(t, model.GameStatusCompleted, updated.Status)
	assert.Equal(t, 5, updated.Rating)

	require.NoError(t, s.DeleteGame(ctx, "user-1", added.ID))
	games, err := s.ListGames(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestGameStatusValidation(t *testing.T) {
	s := NewMemoryDocumentStore()
	ctx := context.Background()

	_, err := s.AddGame(ctx, "user-1", model.LibraryGame{Name: "X", Status: "Backlog"})
	assert.True(t, errors.Is(err, ErrInvalidStatus))

	added, err := s.AddGame(ctx, "user-1", model.LibraryGame{Name: "X", Status: model.GameStatusPlaying})
	require.NoError(t, err)

	_, err = s.UpdateGame(ctx, "user-1", added.ID, "Backlog", 3)
	assert.True(t, errors.Is(err, ErrInvalidStatus))
}

func TestGameRatingClamped(t *testing.T) {
	s := NewMemoryDocumentStore()
	ctx := context.Background()

	added, err := s.AddGame(ctx, "user-1", model.LibraryGame{Name: "X", Rating: 9})
	require.NoError(t, err)
	assert.Equal(t, 5, added.Rating)

	updated, err := s.UpdateGame(ctx, "user-1", added.ID, model.GameStatusPlaying, -2)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Rating)
}

func TestListCopiesAreIsolated(t *testing.T) {
	s := NewMemoryDocumentStore()
	ctx := context.Background()

	_, err := s.AddGoal(ctx, "user-1", "original")
	require.NoError(t, err)

	goals, err := s.ListGoals(ctx, "user-1")
	require.NoError(t, err)
	goals[0].Text = "mutated"

	again, err := s.ListGoals(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "original", again[0].Text)
}
