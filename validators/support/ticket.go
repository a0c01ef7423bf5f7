package supportValidators

import (
	"strings"

	"synapse/middleware"
	"synapse/models"

	"github.com/gofiber/fiber/v2"
)

func CreateTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Subject     string   `json:"subject"`
			Category    string   `json:"category"`
			Priority    string   `json:"priority"`
			Description string   `json:"description"`
			Tags        []string `json:"tags"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		errors := make(map[string]string)

		reqData.Subject = strings.TrimSpace(reqData.Subject)
		if reqData.Subject == "" {
			errors["subject"] = "Subject is required!"
		} else if len(reqData.Subject) > 200 {
			errors["subject"] = "Subject must not exceed 200 characters!"
		}

		reqData.Description = strings.TrimSpace(reqData.Description)
		if reqData.Description == "" {
			errors["description"] = "Description is required!"
		}

		reqData.Category = strings.ToLower(strings.TrimSpace(reqData.Category))
		if reqData.Category == "" {
			reqData.Category = string(models.TicketCategoryOther)
		} else if !models.ValidTicketCategories[models.TicketCategory(reqData.Category)] {
			errors["category"] = "Invalid category! Allowed: technical, billing, feature_request, bug_report, account, other"
		}

		reqData.Priority = strings.ToLower(strings.TrimSpace(reqData.Priority))
		if reqData.Priority == "" {
			reqData.Priority = string(models.TicketPriorityMedium)
		} else if !models.ValidTicketPriorities[models.TicketPriority(reqData.Priority)] {
			errors["priority"] = "Invalid priority! Allowed: low, medium, high, urgent"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateTicket", reqData)
		return c.Next()
	}
}

func TicketList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page     int    `query:"page"`
			Limit    int    `query:"limit"`
			Status   string `query:"status"`
			Category string `query:"category"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid query parameters")
		}

		errors := make(map[string]string)

		reqData.Status = strings.ToLower(strings.TrimSpace(reqData.Status))
		if reqData.Status != "" && !models.ValidTicketStatuses[models.TicketStatus(reqData.Status)] {
			errors["status"] = "Invalid status! Allowed: open, in_progress, waiting_response, resolved, closed"
		}

		reqData.Category = strings.ToLower(strings.TrimSpace(reqData.Category))
		if reqData.Category != "" && !models.ValidTicketCategories[models.TicketCategory(reqData.Category)] {
			errors["category"] = "Invalid category! Allowed: technical, billing, feature_request, bug_report, account, other"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTicketList", reqData)
		return c.Next()
	}
}

func TicketReply() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Message string `json:"message"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		reqData.Message = strings.TrimSpace(reqData.Message)
		if reqData.Message == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"message": "Message is required!",
			})
		}

		c.Locals("validatedTicketReply", reqData)
		return c.Next()
	}
}
