package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	JWTKey string

	GeminiApiKey string
	GeminiModel  string

	// Per-tool credit costs
	CreditCostSocial   int
	CreditCostBlog     int
	CreditCostCode     int
	CreditCostFullBlog int

	InitialCredits    int
	GenerationTimeout time.Duration

	AdminEmails []string // lowercased allow-list

	EmailSender string
	Password    string // SMTP Password

	KeepAliveURL string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:   getEnv("PORT", "3000"),
		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		GeminiApiKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-pro"),

		CreditCostSocial:   getEnvInt("CREDIT_COST_SOCIAL", 10),
		CreditCostBlog:     getEnvInt("CREDIT_COST_BLOG", 15),
		CreditCostCode:     getEnvInt("CREDIT_COST_CODE", 20),
		CreditCostFullBlog: getEnvInt("CREDIT_COST_FULL_BLOG", 30),

		InitialCredits:    getEnvInt("INITIAL_CREDITS", 100),
		GenerationTimeout: time.Duration(getEnvInt("GENERATION_TIMEOUT_SECONDS", 90)) * time.Second,

		AdminEmails: getEnvList("ADMIN_EMAILS", "admin@example.com"),

		EmailSender: getEnv("EMAIL_SENDER", ""),
		Password:    getEnv("PASSWORD", ""),

		KeepAliveURL: getEnv("KEEP_ALIVE_URL", ""),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.GeminiApiKey == "" {
		log.Println("Warning: GEMINI_API_KEY is not set. Generation requests will fail.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvList retrieves a comma separated environment variable as a lowercased slice
func getEnvList(key, defaultValue string) []string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.ToLower(strings.TrimSpace(item))
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
