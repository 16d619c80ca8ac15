package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"time"

	daprc "github.com/dapr/go-sdk/client"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/nigeshu/YoutubeSangam/model"
)

const defaultStateStoreName = "statestore"

// DaprDocumentStore implements DocumentStore on a Dapr state store component.
// Each owner's goals and library live under one key each, as JSON arrays.
type DaprDocumentStore struct {
	client         daprc.Client
	stateStoreName string
}

func getEnvValue(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// NewDaprDocumentStore connects to the Dapr sidecar over gRPC and returns a
// store bound to the named state store component. An empty name selects the
// default component.
func NewDaprDocumentStore(stateStoreName string) (*DaprDocumentStore, error) {
	if stateStoreName == "" {
		stateStoreName = defaultStateStoreName
	}

	daprPort := getEnvValue("DAPR_GRPC_PORT", "50001")

	conn, err := grpc.Dial(
		net.JoinHostPort("127.0.0.1", daprPort),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection: %w", err)
	}

	client := daprc.NewClientWithConnection(conn)

	log.Info().Str("state_store", stateStoreName).Msg("Connected to Dapr state store")

	return &DaprDocumentStore{
		client:         client,
		stateStoreName: stateStoreName,
	}, nil
}

// Close releases the Dapr client connection.
func (s *DaprDocumentStore) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}

func goalsKey(ownerID string) string {
	return fmt.Sprintf("goals/%s", ownerID)
}

func gamesKey(ownerID string) string {
	return fmt.Sprintf("games/%s", ownerID)
}

// loadDocuments reads one owner-scoped JSON array. A missing key yields an
// empty slice.
func loadDocuments[T any](ctx context.Context, s *DaprDocumentStore, key string) ([]T, error) {
	response, err := s.client.GetState(ctx, s.stateStoreName, key, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get state for key %s: %w", key, err)
	}

	if len(response.Value) == 0 {
		return []T{}, nil
	}

	var docs []T
	if err := json.Unmarshal(response.Value, &docs); err != nil {
		return nil, fmt.Errorf("failed to parse state for key %s: %w", key, err)
	}
	return docs, nil
}

func saveDocuments[T any](ctx context.Context, s *DaprDocumentStore, key string, docs []T) error {
	data, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("failed to marshal state for key %s: %w", key, err)
	}

	if err := s.client.SaveState(ctx, s.stateStoreName, key, data, nil); err != nil {
		return fmt.Errorf("failed to save state for key %s: %w", key, err)
	}
	return nil
}

// ListGoals returns the owner's goals, newest first.
func (s *DaprDocumentStore) ListGoals(ctx context.Context, ownerID string) ([]model.Goal, error) {
	return loadDocuments[model.Goal](ctx, s, goalsKey(ownerID))
}

// AddGoal creates a new incomplete goal at the head of the owner's list.
func (s *DaprDocumentStore) AddGoal(ctx context.Context, ownerID, text string) (model.Goal, error) {
	goals, err := s.ListGoals(ctx, ownerID)
	if err != nil {
		return model.Goal{}, err
	}

	goal := model.Goal{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Text:      text,
		Completed: false,
		CreatedAt: time.Now().UTC(),
	}

	goals = append([]model.Goal{goal}, goals...)
	if err := saveDocuments(ctx, s, goalsKey(ownerID), goals); err != nil {
		return model.Goal{}, err
	}

	log.Debug().Str("owner_id", ownerID).Str("goal_id", goal.ID).Msg("Goal added")
	return goal, nil
}

// UpdateGoal sets the completion flag of one goal.
func (s *DaprDocumentStore) UpdateGoal(ctx context.Context, ownerID, goalID string, completed bool) (model.Goal, error) {
	goals, err := s.ListGoals(ctx, ownerID)
	if err != nil {
		return model.Goal{}, err
	}

	for i := range goals {
		if goals[i].ID != goalID {
			continue
		}
		goals[i].Completed = completed
		if err := saveDocuments(ctx, s, goalsKey(ownerID), goals); err != nil {
			return model.Goal{}, err
		}
		return goals[i], nil
	}
	return model.Goal{}, ErrNotFound
}

// DeleteGoal removes one goal.
func (s *DaprDocumentStore) DeleteGoal(ctx context.Context, ownerID, goalID string) error {
	goals, err := s.ListGoals(ctx, ownerID)
	if err != nil {
		return err
	}

	for i := range goals {
		if goals[i].ID != goalID {
			continue
		}
		goals = append(goals[:i], goals[i+1:]...)
		return saveDocuments(ctx, s, goalsKey(ownerID), goals)
	}
	return ErrNotFound
}

// ListGames returns the owner's game library, newest first.
func (s *DaprDocumentStore) ListGames(ctx context.Context, ownerID string) ([]model.LibraryGame, error) {
	return loadDocuments[model.LibraryGame](ctx, s, gamesKey(ownerID))
}

// AddGame adds a game at the head of the owner's library.
func (s *DaprDocumentStore) AddGame(ctx context.Context, ownerID string, game model.LibraryGame) (model.LibraryGame, error) {
	if game.Status == "" {
		game.Status = model.GameStatusPlanned
	}
	if !model.ValidGameStatus(game.Status) {
		return model.LibraryGame{}, ErrInvalidStatus
	}

	games, err := s.ListGames(ctx, ownerID)
	if err != nil {
		return model.LibraryGame{}, err
	}

	game.ID = uuid.NewString()
	game.OwnerID = ownerID
	game.Rating = clampRating(game.Rating)
	game.AddedAt = time.Now().UTC()

	games = append([]model.LibraryGame{game}, games...)
	if err := saveDocuments(ctx, s, gamesKey(ownerID), games); err != nil {
		return model.LibraryGame{}, err
	}

	log.Debug().Str("owner_id", ownerID).Str("game_id", game.ID).Str("name", game.Name).Msg("Game added to library")
	return game, nil
}

// UpdateGame sets the status and rating of one library entry.
func (s *DaprDocumentStore) UpdateGame(ctx context.Context, ownerID, gameID string, status model.GameStatus, rating int) (model.LibraryGame, error) {
	if !model.ValidGameStatus(status) {
		return model.LibraryGame{}, ErrInvalidStatus
	}

	games, err := s.ListGames(ctx, ownerID)
	if err != nil {
		return model.LibraryGame{}, err
	}

	for i := range games {
		if games[i].ID != gameID {
			continue
		}
		games[i].Status = status
		games[i].Rating = clampRating(rating)
		if err := saveDocuments(ctx, s, gamesKey(ownerID), games); err != nil {
			return model.LibraryGame{}, err
		}
		return games[i], nil
	}
	return model.LibraryGame{}, ErrNotFound
}

// DeleteGame removes one library entry.
func (s *DaprDocumentStore) DeleteGame(ctx context.Context, ownerID, gameID string) error {
	games, err := s.ListGames(ctx, ownerID)
	if err != nil {
		return err
	}

	for i := range games {
		if games[i].ID != gameID {
			continue
		}
		games = append(games[:i], games[i+1:]...)
		return saveDocuments(ctx, s, gamesKey(ownerID), games)
	}
	return ErrNotFound
}
