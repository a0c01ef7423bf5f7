package userValidators

import (
	"strings"

	"synapse/middleware"

	"github.com/gofiber/fiber/v2"
)

func SyncUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			DisplayName string `json:"displayName"`
		})

		// Body is optional on sync; an empty body means "keep what we have"
		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
			}
		}

		errors := make(map[string]string)

		reqData.DisplayName = strings.TrimSpace(reqData.DisplayName)
		if len(reqData.DisplayName) > 100 {
			errors["displayName"] = "Display name must not exceed 100 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSyncUser", reqData)
		return c.Next()
	}
}
