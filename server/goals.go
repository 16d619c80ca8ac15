package server

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/nigeshu/YoutubeSangam/store"
)

// handleListGoals handles GET /api/goals
func (s *Server) handleListGoals(c fiber.Ctx) error {
	owner, ok := requireOwner(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "MISSING_USER", "X-User-ID header is required")
	}

	goals, err := s.store.ListGoals(c.Context(), owner)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list goals")
	}
	return c.JSON(fiber.Map{"goals": goals})
}

type addGoalRequest struct {
	Text string `json:"text"`
}

// handleAddGoal handles POST /api/goals
func (s *Server) handleAddGoal(c fiber.Ctx) error {
	owner, ok := requireOwner(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "MISSING_USER", "X-User-ID header is required")
	}

	var req addGoalRequest
	if err := c.Bind().Body(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Request body must be JSON with a text field")
	}
	if strings.TrimSpace(req.Text) == "" {
		return errorResponse(c, fiber.StatusBadRequest, "EMPTY_TEXT", "Goal text must not be empty")
	}

	goal, err := s.store.AddGoal(c.Context(), owner, strings.TrimSpace(req.Text))
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add goal")
	}
	return c.Status(fiber.StatusCreated).JSON(goal)
}

type updateGoalRequest struct {
	Completed bool `json:"completed"`
}

// handleUpdateGoal handles PATCH /api/goals/:id
func (s *Server) handleUpdateGoal(c fiber.Ctx) error {
	owner, ok := requireOwner(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "MISSING_USER", "X-User-ID header is required")
	}

	var req updateGoalRequest
	if err := c.Bind().Body(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Request body must be JSON with a completed field")
	}

	goal, err := s.store.UpdateGoal(c.Context(), owner, c.Params("id"), req.Completed)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Goal not found")
		}
		return errorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update goal")
	}
	return c.JSON(goal)
}

// handleDeleteGoal handles DELETE /api/goals/:id
func (s *Server) handleDeleteGoal(c fiber.Ctx) error {
	owner, ok := requireOwner(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "MISSING_USER", "X-User-ID header is required")
	}

	if err := s.store.DeleteGoal(c.Context(), owner, c.Params("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Goal not found")
		}
		return errorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete goal")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
