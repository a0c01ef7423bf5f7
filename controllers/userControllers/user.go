package userControllers

import (
	"synapse/middleware"
	"synapse/services"
	"synapse/utils"

	"github.com/gofiber/fiber/v2"
)

// SyncUser upserts the account for the verified identity. New accounts get
// the initial free credit grant.
func SyncUser(c *fiber.Ctx) error {
	authUid := c.Locals("authUid").(string)
	email := c.Locals("email").(string)

	reqData, ok := c.Locals("validatedSyncUser").(*struct {
		DisplayName string `json:"displayName"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	user, isNewUser, err := services.SyncUser(authUid, email, reqData.DisplayName)
	if err != nil {
		return middleware.HandleServiceError(c, err)
	}

	if isNewUser {
		utils.SendWelcomeEmail(user.Email, user.DisplayName, user.Credits)
	}

	statusCode := fiber.StatusOK
	message := "User profile synced successfully"
	if isNewUser {
		statusCode = fiber.StatusCreated
		message = "User profile created successfully with free credits!"
	}

	return c.Status(statusCode).JSON(fiber.Map{
		"user":      user,
		"isNewUser": isNewUser,
		"message":   message,
	})
}

// GetProfile returns the current user's account
func GetProfile(c *fiber.Ctx) error {
	authUid := c.Locals("authUid").(string)

	user, err := services.GetUserByAuthUID(authUid)
	if err != nil {
		return middleware.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"user": user})
}

// GetCredits returns the current user's balance
func GetCredits(c *fiber.Ctx) error {
	authUid := c.Locals("authUid").(string)

	user, err := services.GetUserByAuthUID(authUid)
	if err != nil {
		return middleware.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"credits": user.Credits})
}
