package middleware

import (
	"errors"
	"log"

	"synapse/services"

	"github.com/gofiber/fiber/v2"
)

// HandleServiceError translates the services error taxonomy into HTTP
// responses. Only safe, user-actionable messages cross the boundary; raw
// causes stay in the server log.
func HandleServiceError(c *fiber.Ctx, err error) error {
	var insufficient *services.InsufficientCreditsError
	if errors.As(err, &insufficient) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":     "Insufficient credits",
			"required":  insufficient.Required,
			"available": insufficient.Available,
		})
	}

	var genErr *services.GenerationError
	if errors.As(err, &genErr) {
		log.Printf("Generation failed [%v]: %v", c.Locals("requestid"), genErr.Err)
		return ErrorResponse(c, fiber.StatusBadGateway, genErr.Message)
	}

	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return ErrorResponse(c, fiber.StatusNotFound, "User not found. Please try logging in again.")
	case errors.Is(err, services.ErrRecordNotFound):
		return ErrorResponse(c, fiber.StatusNotFound, "Not found")
	}

	log.Printf("Unexpected error [%v] %s %s: %v", c.Locals("requestid"), c.Method(), c.Path(), err)
	return ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
}
