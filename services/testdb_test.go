package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"synapse/config"
	"synapse/database"
	"synapse/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB wires an isolated in-memory sqlite database into the global
// database instance for the duration of one test. A single open connection
// keeps sqlite access serialized, which mirrors how the conditional deduct
// must hold up under concurrent callers.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	setupTestConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.GenerationRecord{},
		&models.SupportTicket{},
		&models.TicketResponse{},
	))

	database.Database = database.DbInstance{Db: db}
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

func setupTestConfig() {
	config.AppConfig = &config.Config{
		Port:               "3000",
		JWTKey:             "test-secret",
		GeminiModel:        "gemini-2.5-pro",
		CreditCostSocial:   10,
		CreditCostBlog:     15,
		CreditCostCode:     20,
		CreditCostFullBlog: 30,
		InitialCredits:     100,
		GenerationTimeout:  90 * time.Second,
		AdminEmails:        []string{"admin@example.com"},
	}
}

// createTestUser inserts a user with the given balance
func createTestUser(t *testing.T, db *gorm.DB, authUID string, credits int) *models.User {
	t.Helper()
	user := &models.User{
		AuthUID:     authUID,
		Email:       authUID + "@example.com",
		DisplayName: "Test " + authUID,
		Credits:     credits,
		LastLoginAt: time.Now(),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
