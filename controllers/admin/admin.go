package adminControllers

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

// GetStats returns dashboard numbers: user and generation totals, credits in
// circulation, and the most recent signups.
func GetStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers int64
	if err := db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		return middleware.HandleServiceError(c, err)
	}

	var totalCredits int64
	if err := db.Model(&models.User{}).Select("COALESCE(SUM(credits), 0)").Scan(&totalCredits).Error; err != nil {
		return middleware.HandleServiceError(c, err)
	}

	totalGenerations, err := services.CountGenerations()
	if err != nil {
		return middleware.HandleServiceError(c, err)
	}

	var recentUsers []models.User
	if err := db.Select("id", "email", "display_name", "credits", "created_at").
		Order("created_at DESC").Limit(5).Find(&recentUsers).Error; err != nil {
		return middleware.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"totalUsers":           totalUsers,
		"totalCreditsInSystem": totalCredits,
		"totalGenerations":     totalGenerations,
		"recentUsers":          recentUsers,
	})
}

// GetUsers lists users with optional search over email and display name
func GetUsers(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUsersList").(*struct {
		Page   int    `query:"page"`
		Limit  int    `query:"limit"`
		Search string `query:"search"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	page, limit := utils.ValidatePagination(reqData.Page, reqData.Limit)
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.User{})
	if reqData.Search != "" {
		pattern := "%" + strings.ToLower(reqData.Search) + "%"
		db = db.Where("LOWER(email) LIKE ? OR LOWER(display_name) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return middleware.HandleServiceError(c, err)
	}

	var users []models.User
	if err := db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return middleware.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"users":       users,
		"totalUsers":  total,
		"totalPages":  (total + int64(limit) - 1) / int64(limit),
		"currentPage": page,
	})
}

// UpdateUserCredits lets an admin set, add to, or deduct from a user's
// balance. Deduct clamps at zero instead of failing.
func UpdateUserCredits(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUpdateCredits").(*struct {
		Credits int    `json:"credits"`
		Action  string `json:"action"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	userID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var user models.User
	if err := database.Database.Db.First(&user, uint(userID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
		}
		return middleware.HandleServiceError(c, err)
	}

	oldCredits := user.Credits
	newCredits := oldCredits
	switch reqData.Action {
	case "set":
		newCredits = reqData.Credits
	case "add":
		newCredits = oldCredits + reqData.Credits
	case "deduct":
		newCredits = oldCredits - reqData.Credits
		if newCredits < 0 {
			newCredits = 0
		}
	}

	if err := services.SetCredits(user.ID, newCredits); err != nil {
		return middleware.HandleServiceError(c, err)
	}
	user.Credits = newCredits

	return c.JSON(fiber.Map{
		"message": "Credits updated successfully",
		"user": fiber.Map{
			"id":          user.ID,
			"email":       user.Email,
			"displayName": user.DisplayName,
			"credits":     user.Credits,
			"oldCredits":  oldCredits,
		},
	})
}

// GetTickets lists all tickets with filters, free-text search, and per-status
// counts for the dashboard.
func GetTickets(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAdminTicketList").(*struct {
		Page     int    `query:"page"`
		Limit    int    `query:"limit"`
		Status   string `query:"status"`
		Priority string `query:"priority"`
		Category string `query:"category"`
		Search   string `query:"search"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	page, limit := utils.ValidatePagination(reqData.Page, reqData.Limit)
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.SupportTicket{})
	if reqData.Status != "" {
		db = db.Where("status = ?", reqData.Status)
	}
	if reqData.Priority != "" {
		db = db.Where("priority = ?", reqData.Priority)
	}
	if reqData.Category != "" {
		db = db.Where("category = ?", reqData.Category)
	}
	if reqData.Search != "" {
		pattern := "%" + strings.ToLower(reqData.Search) + "%"
		db = db.Where("LOWER(ticket_number) LIKE ? OR LOWER(subject) LIKE ? OR LOWER(user_email) LIKE ?",
			pattern, pattern, pattern)
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

	stats, err := ticketStatusCounts()
	if err != nil {
		return middleware.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"tickets": tickets,
		"stats":   stats,
		"pagination": fiber.Map{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

// ticketStatusCounts aggregates ticket totals per status across all filters
func ticketStatusCounts() (map[models.TicketStatus]int64, error) {
	var rows []struct {
		Status models.TicketStatus
		Count  int64
	}
	err := database.Database.Db.Model(&models.SupportTicket{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := map[models.TicketStatus]int64{
		models.TicketStatusOpen:            0,
		models.TicketStatusInProgress:      0,
		models.TicketStatusWaitingResponse: 0,
		models.TicketStatusResolved:        0,
		models.TicketStatusClosed:          0,
	}
	for _, row := range rows {
		stats[row.Status] = row.Count
	}
	return stats, nil
}

// UpdateTicket applies admin-driven status and assignee changes
func UpdateTicket(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUpdateTicket").(*struct {
		Status     string `json:"status"`
		AssignedTo uint   `json:"assignedTo"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	ticket, err := findTicket(c.Params("id"))
	if err != nil {
		return middleware.HandleServiceError(c, err)
	}

	if reqData.Status != "" {
		ticket.SetStatus(models.TicketStatus(reqData.Status))
	}

	if reqData.AssignedTo != 0 {
		var assignee models.User
		if err := database.Database.Db.First(&assignee, reqData.AssignedTo).Error; err == nil {
			ticket.AssignedTo = &assignee.ID
			name := assignee.DisplayName
			if name == "" {
				name = assignee.Email
			}
			ticket.AssignedToName = name
		}
	}

	if err := database.Database.Db.Save(ticket).Error; err != nil {
		return middleware.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"ticket":  ticket,
		"message": "Ticket updated successfully",
	})
}

// ReplyTicket appends an admin response and notifies the ticket owner.
// Replying to an open ticket moves it to in_progress.
func ReplyTicket(c *fiber.Ctx) error {
	authUid := c.Locals("authUid").(string)
	email := c.Locals("email").(string)

	reqData, ok := c.Locals("validatedTicketReply").(*struct {
		Message string `json:"message"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data")
	}

	admin, err := services.GetUserByAuthUID(authUid)
	if err != nil {
		return middleware.HandleServiceError(c, err)
	}

	ticket, err := findTicket(c.Params("id"))
	if err != nil {
		return middleware.HandleServiceError(c, err)
	}

	responderName := admin.DisplayName
	if responderName == "" {
		responderName = "Support Team"
	}

	response := models.TicketResponse{
		TicketID:       ticket.ID,
		ResponderID:    admin.ID,
		ResponderName:  responderName,
		ResponderEmail: email,
		IsAdmin:        true,
		Message:        reqData.Message,
	}

	ticket.ApplyResponseTransition(true)

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

	utils.SendTicketReplyEmail(ticket.UserEmail, ticket.UserName, ticket.TicketNumber, reqData.Message)

	return c.JSON(fiber.Map{
		"ticket":  ticket,
		"message": "Response added successfully",
	})
}

// findTicket loads a ticket with its ordered thread by path id
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
