package middleware

import (
	"testing"

	"synapse/config"

	"github.com/stretchr/testify/assert"
)

func TestIsAdminEmail(t *testing.T) {
	config.AppConfig = &config.Config{
		AdminEmails: []string{"admin@example.com", "ops@example.com"},
	}

	assert.True(t, IsAdminEmail("admin@example.com"))
	assert.True(t, IsAdminEmail("  Admin@Example.COM "))
	assert.True(t, IsAdminEmail("ops@example.com"))
	assert.False(t, IsAdminEmail("user@example.com"))
	assert.False(t, IsAdminEmail(""))
}
