package middleware

import (
	"strings"

	"synapse/config"

	"github.com/gofiber/fiber/v2"
)

// IsAdminEmail reports whether the email is on the static admin allow-list
func IsAdminEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, adminEmail := range config.AppConfig.AdminEmails {
		if email == adminEmail {
			return true
		}
	}
	return false
}

// AdminMiddleware gates a route to allow-listed admin emails. Must run after
// JWTMiddleware so the verified email is in the request context.
func AdminMiddleware(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok || email == "" {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized: User email not found")
	}

	if !IsAdminEmail(email) {
		return ErrorResponse(c, fiber.StatusForbidden, "Forbidden: Admin access required")
	}

	return c.Next()
}
