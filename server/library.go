package server

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/nigeshu/YoutubeSangam/model"
	"github.com/nigeshu/YoutubeSangam/store"
)

// handleListLibrary handles GET /api/library
func (s *Server) handleListLibrary(c fiber.Ctx) error {
	owner, ok := requireOwner(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "MISSING_USER", "X-User-ID header is required")
	}

	games, err := s.store.ListGames(c.Context(), owner)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list library")
	}
	return c.JSON(fiber.Map{"games": games})
}

type addLibraryGameRequest struct {
	GameID          int64            `json:"gameId"`
	Name            string           `json:"name"`
	BackgroundImage string           `json:"backgroundImage"`
	Released        string           `json:"released"`
	Status          model.GameStatus `json:"status"`
	Rating          int              `json:"rating"`
}

// handleAddLibraryGame handles POST /api/library
func (s *Server) handleAddLibraryGame(c fiber.Ctx) error {
	owner, ok := requireOwner(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "MISSING_USER", "X-User-ID header is required")
	}

	var req addLibraryGameRequest
	if err := c.Bind().Body(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Request body must be JSON")
	}
	if strings.TrimSpace(req.Name) == "" {
		return errorResponse(c, fiber.StatusBadRequest, "EMPTY_NAME", "Game name must not be empty")
	}

	game, err := s.store.AddGame(c.Context(), owner, model.LibraryGame{
		GameID:          req.GameID,
		Name:            req.Name,
		BackgroundImage: req.BackgroundImage,
		Released:        req.Released,
		Status:          req.Status,
		Rating:          req.Rating,
	})
	if err != nil {
		if errors.Is(err, store.ErrInvalidStatus) {
			return errorResponse(c, fiber.StatusBadRequest, "INVALID_STATUS", "Unknown game status")
		}
		return errorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add game")
	}
	return c.Status(fiber.StatusCreated).JSON(game)
}

type updateLibraryGameRequest struct {
	Status model.GameStatus `json:"status"`
	Rating int              `json:"rating"`
}

// handleUpdateLibraryGame handles PATCH /api/library/:id
func (s *Server) handleUpdateLibraryGame(c fiber.Ctx) error {
	owner, ok := requireOwner(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "MISSING_USER", "X-User-ID header is required")
	}

	var req updateLibraryGameRequest
	if err := c.Bind().Body(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Request body must be JSON")
	}

	game, err := s.store.UpdateGame(c.Context(), owner, c.Params("id"), req.Status, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return errorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Game not found in library")
		case errors.Is(err, store.ErrInvalidStatus):
			return errorResponse(c, fiber.StatusBadRequest, "INVALID_STATUS", "Unknown game status")
		default:
			return errorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update game")
		}
	}
	return c.JSON(game)
}

// handleDeleteLibraryGame handles DELETE /api/library/:id
func (s *Server) handleDeleteLibraryGame(c fiber.Ctx) error {
	owner, ok := requireOwner(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "MISSING_USER", "X-User-ID header is required")
	}

	if err := s.store.DeleteGame(c.Context(), owner, c.Params("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Game not found in library")
		}
		return errorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete game")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
