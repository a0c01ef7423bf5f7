package utils

import (
	"fmt"
	"time"

	"synapse/database"
	"synapse/models"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 50
)

// ValidatePagination clamps page and limit query values into usable bounds
func ValidatePagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

// GenerateTicketNumber produces the next ticket number. Uniqueness comes from
// the millisecond timestamp; the running count keeps numbers roughly
// monotonic and human-orderable.
func GenerateTicketNumber() (string, error) {
	var count int64
	if err := database.Database.Db.Model(&models.SupportTicket{}).Count(&count).Error; err != nil {
		return "", err
	}
	return FormatTicketNumber(time.Now().UnixMilli(), count+1), nil
}

// FormatTicketNumber renders a ticket number from its parts
func FormatTicketNumber(unixMilli, seq int64) string {
	return fmt.Sprintf("TICKET-%d-%d", unixMilli, seq)
}
