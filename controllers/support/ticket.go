package supportControllers

import (
	"errors"
	"strconv"
	"strings"

	"synapse/database"
	"synapse/middleware"
	"synapse/models"
	"synapse/services"
	"synapse/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateTicket opens a new support ticket for the authenticated user
func CreateTicket(c *fiber.Ctx) error {
	authUid := c.Locals("authUid").(string)
	email := c.Locals("email").(string)

	user, err := services.GetUserByAuthUID(authUid)
	if err != nil {
		return middleware.HandleServiceError(c, err)
	}

	reqData, ok := c.Locals("validatedCreateTicket").(*struct {
		Subject     string   `json:"subject"`
		Category    string   `json:"category"`
		Priority    string   `json:"priority"`
		Description string   `json:"description"`
		Tags        []string `json:"tags"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	ticketNumber, err := utils.GenerateTicketNumber()
	if err != nil {
		return middleware.HandleServiceError(c, err)
	}

	userName := user.DisplayName
	if userName == "" {
		userName = strings.Split(email, "@")[0]
	}

	ticket := models.SupportTicket{
		TicketNumber: ticketNumber,
		UserID:       user.ID,
		UserEmail:    email,
		UserName:     userName,
		Subject:      reqData.Subject,
		Category:     models.TicketCategory(reqData.Category),
		Priority:     models.TicketPriority(reqData.Priority),
		Status:       models.TicketStatusOpen,
		Description:  reqData.Description,
		Tags:         strings.Join(reqData.Tags, ","),
	}

	if err := database.Database.Db.Create(&ticket).Error; err != nil {
		return middleware.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"ticket":  ticket,
		"message": "Support ticket created successfully",
	})
}

// TicketList returns the caller's tickets with optional filters
func TicketList(c *fiber.Ctx) error {
	authUid := c.Locals("authUid").(string)

	user, err := services.GetUserByAuthUID(authUid)
	if err != nil {
		return middleware.HandleServiceError(c, err)
	}

	reqData, ok := c.Locals("validatedTicketList").(*struct {
		Page     int    `query:"page"`
		Limit    int    `query:"limit"`
		Status   string `query:"status"`
		Category string `query:"category"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	page, limit := utils.ValidatePagination(reqData.Page, reqData.Limit)
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.SupportTicket{}).Where("user_id = ?", user.ID)
	if reqData.Status != "" {
		db = db.Where("status = ?", reqData.Status)
	}
	if reqData.Category != "" {
		db = db.Where("category = ?", reqData.Category)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return middleware.HandleServiceError(c, err)
	}

	var tickets []models.SupportTicket
	if err := db.Preload("Responses", func(db *gorm.DB) *gorm.DB {
		return db.Order("ticket_responses.created_at ASC, ticket_responses.id ASC")
	}).Order("created_at DESC").Offset(offset).Limit(limit).Find(&tickets).Error; err != nil {
		return middleware.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"tickets": tickets,
		"pagination": fiber.Map{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

// GetTicket returns one ticket with its response thread. Only the owner can
// read it.
func GetTicket(c *fiber.Ctx) error {
	authUid := c.Locals("authUid").(string)

	user, err := services.GetUserByAuthUID(authUid)
	if err != nil {
		return middleware.HandleServiceError(c, err)
	}

	ticket, err := findTicket(c.Params("id"))
	if err != nil {
		return middleware.HandleServiceError(c, err)
	}

	if ticket.UserID != user.ID {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "Access denied")
	}

	return c.JSON(fiber.Map{"ticket": ticket})
}

// ReplyTicket appends a user response to an owned ticket. Replying to a
// resolved or closed ticket reopens it.
func ReplyTicket(c *fiber.Ctx) error {
	authUid := c.Locals("authUid").(string)
	email := c.Locals("email").(string)

	user, err := services.GetUserByAuthUID(authUid)
	if err != nil {
		return middleware.HandleServiceError(c, err)
	}

	reqData, ok := c.Locals("validatedTicketReply").(*struct {
		Message string `json:"message"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	ticket, err := findTicket(c.Params("id"))
	if err != nil {
		return middleware.HandleServiceError(c, err)
	}

	if ticket.UserID != user.ID {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "Access denied")
	}

	response := models.TicketResponse{
		TicketID:       ticket.ID,
		ResponderID:    user.ID,
		ResponderName:  user.DisplayName,
		ResponderEmail: email,
		IsAdmin:        false,
		Message:        reqData.Message,
	}

	ticket.ApplyResponseTransition(false)

	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&response).Error; err != nil {
			return err
		}
		return tx.Save(ticket).Error
	})
	if err != nil {
		return middleware.HandleServiceError(c, err)
	}

	ticket.Responses = append(ticket.Responses, response)

	return c.JSON(fiber.Map{
		"ticket":  ticket,
		"message": "Response added successfully",
	})
}

// findTicket loads a ticket and its ordered response thread by path id
func findTicket(idParam string) (*models.SupportTicket, error) {
	ticketID, err := strconv.ParseUint(idParam, 10, 64)
	if err != nil {
		return nil, services.ErrRecordNotFound
	}

	var ticket models.SupportTicket
	err = database.Database.Db.Preload("Responses", func(db *gorm.DB) *gorm.DB {
		return db.Order("ticket_responses.created_at ASC, ticket_responses.id ASC")
	}).First(&ticket, uint(ticketID)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrRecordNotFound
		}
		return nil, err
	}
	return &ticket, nil
}
