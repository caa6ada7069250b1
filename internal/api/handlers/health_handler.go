package handlers

import (
	"recipe-catalog/domain"
	"recipe-catalog/internal/api/presenters"

	"github.com/gofiber/fiber/v2"
)

type (
	HealthHandler interface {
		Health(c *fiber.Ctx) error
	}

	healthHandler struct{}
)

func NewHealthHandler() HealthHandler {
	return &healthHandler{}
}

// Health reports liveness only; it never touches the database.
func (h *healthHandler) Health(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, domain.HealthResponse{
		Status:  domain.StatusOK,
		Message: domain.MessageHealthy,
	}, fiber.StatusOK)
}
