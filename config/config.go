package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/scholarbridge/backend/utils"
)

// Config holds all configuration for the application
type Config struct {
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	JWTSecret     string
	SessionSecret string
	Port          string
	Env           string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	// External CSV-generation service for admin payment exports. When the
	// service fails, the export controller falls back to serializing the
	// record set itself.
	CSVExportServiceURL string

	FrontendURL string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading .env file: %v", err)
	}

	config := &Config{
		DBHost:              getEnv("DB_HOST", utils.DefaultDBHost),
		DBPort:              getEnv("DB_PORT", utils.DefaultDBPort),
		DBUser:              getEnv("DB_USER", utils.DefaultDBUser),
		DBPassword:          getEnv("DB_PASSWORD", utils.DefaultDBPassword),
		DBName:              getEnv("DB_NAME", utils.DefaultDBName),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		SessionSecret:       os.Getenv("SESSION_SECRET"),
		Port:                getEnv("PORT", utils.DefaultPort),
		Env:                 os.Getenv("ENV"),
		SMTPHost:            os.Getenv("SMTP_HOST"),
		SMTPPort:            os.Getenv("SMTP_PORT"),
		SMTPUsername:        os.Getenv("SMTP_USERNAME"),
		SMTPPassword:        os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:            os.Getenv("SMTP_FROM"),
		CSVExportServiceURL: os.Getenv("CSV_EXPORT_SERVICE_URL"),
		FrontendURL:         os.Getenv("FRONTEND_URL"),
	}

	return config, nil
}

// getEnv reads an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
