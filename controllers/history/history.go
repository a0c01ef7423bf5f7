package historyControllers

import (
	"strconv"

	"synapse/middleware"
	"synapse/services"
	"synapse/utils"

	"github.com/gofiber/fiber/v2"
)

// GetHistory returns the user's generation history, newest first
func GetHistory(c *fiber.Ctx) error {
	authUid := c.Locals("authUid").(string)

	user, err := services.GetUserByAuthUID(authUid)
	if err != nil {
		return middleware.HandleServiceError(c, err)
	}

	page, limit := utils.ValidatePagination(c.QueryInt("page", 1), c.QueryInt("limit", utils.DefaultPageLimit))

	result, err := services.GetUserHistory(user.ID, page, limit)
	if err != nil {
		return middleware.HandleServiceError(c, err)
	}

	return c.JSON(result)
}

// GetHistoryByID returns one generation record owned by the caller
func GetHistoryByID(c *fiber.Ctx) error {
	authUid := c.Locals("authUid").(string)

	user, err := services.GetUserByAuthUID(authUid)
	if err != nil {
		return middleware.HandleServiceError(c, err)
	}

	recordID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid generation id")
	}

	record, err := services.GetGenerationByID(user.ID, uint(recordID))
	if err != nil {
		return middleware.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"generation": record})
}

// DeleteHistoryByID removes one generation record owned by the caller
func DeleteHistoryByID(c *fiber.Ctx) error {
	authUid := c.Locals("authUid").(string)

	user, err := services.GetUserByAuthUID(authUid)
	if err != nil {
		return middleware.HandleServiceError(c, err)
	}

	recordID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid generation id")
	}

	if err := services.DeleteGeneration(user.ID, uint(recordID)); err != nil {
		return middleware.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Generation deleted successfully"})
}
