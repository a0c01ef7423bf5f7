package adminValidators

import (
	"strings"

	"synapse/middleware"
	"synapse/models"

	"github.com/gofiber/fiber/v2"
)

func UpdateCredits() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Credits int    `json:"credits"`
			Action  string `json:"action"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		errors := make(map[string]string)

		if reqData.Credits < 0 {
			errors["credits"] = "Credits must not be negative!"
		}

		reqData.Action = strings.ToLower(strings.TrimSpace(reqData.Action))
		switch reqData.Action {
		case "set", "add", "deduct":
		default:
			errors["action"] = "Invalid action! Use: set, add, or deduct"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateCredits", reqData)
		return c.Next()
	}
}

func UsersList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page   int    `query:"page"`
			Limit  int    `query:"limit"`
			Search string `query:"search"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid query parameters")
		}

		reqData.Search = strings.TrimSpace(reqData.Search)

		c.Locals("validatedUsersList", reqData)
		return c.Next()
	}
}

func TicketList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page     int    `query:"page"`
			Limit    int    `query:"limit"`
			Status   string `query:"status"`
			Priority string `query:"priority"`
			Category string `query:"category"`
			Search   string `query:"search"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid query parameters")
		}

		errors := make(map[string]string)

		reqData.Status = strings.ToLower(strings.TrimSpace(reqData.Status))
		if reqData.Status != "" && !models.ValidTicketStatuses[models.TicketStatus(reqData.Status)] {
			errors["status"] = "Invalid status! Allowed: open, in_progress, waiting_response, resolved, closed"
		}

		reqData.Priority = strings.ToLower(strings.TrimSpace(reqData.Priority))
		if reqData.Priority != "" && !models.ValidTicketPriorities[models.TicketPriority(reqData.Priority)] {
			errors["priority"] = "Invalid priority! Allowed: low, medium, high, urgent"
		}

		reqData.Category = strings.ToLower(strings.TrimSpace(reqData.Category))
		if reqData.Category != "" && !models.ValidTicketCategories[models.TicketCategory(reqData.Category)] {
			errors["category"] = "Invalid category! Allowed: technical, billing, feature_request, bug_report, account, other"
		}

		reqData.Search = strings.TrimSpace(reqData.Search)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAdminTicketList", reqData)
		return c.Next()
	}
}

func UpdateTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status     string `json:"status"`
			AssignedTo uint   `json:"assignedTo"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		errors := make(map[string]string)

		reqData.Status = strings.ToLower(strings.TrimSpace(reqData.Status))
		if reqData.Status != "" && !models.ValidTicketStatuses[models.TicketStatus(reqData.Status)] {
			errors["status"] = "Invalid status! Allowed: open, in_progress, waiting_response, resolved, closed"
		}

		if reqData.Status == "" && reqData.AssignedTo == 0 {
			errors["status"] = "Provide a status or an assignee to update!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateTicket", reqData)
		return c.Next()
	}
}
