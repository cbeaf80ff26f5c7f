package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string

	// Database configuration
	DBType               string // mysql, postgres, sqlite, sqlserver, etc.
	DBHost               string
	DBPort               string
	DBAppDatabase        string
	DBAppUser            string
	DBAppPassword        string
	DBAppConnectionLimit int
	DBUser               string
	DBPassword           string
	DBConnectionLimit    int
	SeedTemplates        bool

	// Authorizer configuration
	AuthzURL         string
	AuthzClientID    string
	AuthzRedirectURL string
	AuthzJWTSecret   string
	AuthDisabled     bool

	// Fallback creator for project provisioning when no identity is resolved, 0 disables it
	DefaultCreatorUserID uint64

	// Slack configuration
	SlackWebhooks       map[string]string
	SlackBotToken       string
	SlackTimeoutSeconds int
}

// Load loads configuration from environment variables, after merging an optional .env file
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:                 getEnv("PORT", "3000"),
		DBType:               getEnv("DB_TYPE", "mysql"),
		DBHost:               getEnv("DB_HOST", "localhost"),
		DBPort:               getEnv("DB_PORT", "3306"),
		DBAppDatabase:        getEnv("DB_APP_DATABASE", ""),
		DBAppUser:            getEnv("DB_APP_USER", ""),
		DBAppPassword:        getEnv("DB_APP_PASSWORD", ""),
		DBAppConnectionLimit: getEnvAsInt("DB_APP_CONNECTION_LIMIT", 5),
		DBUser:               getEnv("DB_USER", ""),
		DBPassword:           getEnv("DB_PASSWORD", ""),
		DBConnectionLimit:    getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		SeedTemplates:        getEnvAsBool("SEED_TEMPLATES", false),
		AuthzURL:             getEnv("AUTHZ_URL", ""),
		AuthzClientID:        getEnv("AUTHZ_CLIENT_ID", ""),
		AuthzRedirectURL:     getEnv("AUTHZ_REDIRECT_URL", ""),
		AuthzJWTSecret:       getEnv("AUTHZ_JWT_SECRET", ""),
		AuthDisabled:         getEnvAsBool("AUTH_DISABLED", false),
		DefaultCreatorUserID: uint64(getEnvAsInt("DEFAULT_CREATOR_USER_ID", 0)),
		SlackWebhooks:        slackWebhooks(),
		SlackBotToken:        getEnv("SLACK_BOT_TOKEN", ""),
		SlackTimeoutSeconds:  getEnvAsInt("SLACK_TIMEOUT_SECONDS", 10),
	}

	// Validate required fields
	if cfg.DBAppDatabase == "" {
		return nil, fmt.Errorf("DB_APP_DATABASE is required")
	}
	if cfg.DBType != "sqlite" {
		if cfg.DBAppUser == "" {
			return nil, fmt.Errorf("DB_APP_USER is required")
		}
		if cfg.DBUser == "" {
			return nil, fmt.Errorf("DB_USER is required")
		}
	}
	if !cfg.AuthDisabled {
		if cfg.AuthzURL == "" {
			return nil, fmt.Errorf("AUTHZ_URL is required")
		}
		if cfg.AuthzClientID == "" {
			return nil, fmt.Errorf("AUTHZ_CLIENT_ID is required")
		}
	}

	return cfg, nil
}

// loadEnvFile merges ENV_FILE (or ./.env when present) into the process environment.
// Variables already set in the environment win.
func loadEnvFile() error {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("failed to load %s: %w", envFile, err)
	}
	return nil
}

// slackWebhooks collects the per-team incoming webhook URLs.
// SLACK_WEBHOOK_URL is the "default" team, SLACK_SOFTWARE_TEAM_WEBHOOK_URL the "software" team,
// and SLACK_TEAM_WEBHOOKS adds more as team=url pairs separated by commas.
func slackWebhooks() map[string]string {
	hooks := make(map[string]string)
	if url := getEnv("SLACK_WEBHOOK_URL", ""); url != "" {
		hooks["default"] = url
	}
	if url := getEnv("SLACK_SOFTWARE_TEAM_WEBHOOK_URL", ""); url != "" {
		hooks["software"] = url
	}
	for _, pair := range strings.Split(getEnv("SLACK_TEAM_WEBHOOKS", ""), ",") {
		team, url, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || team == "" || url == "" {
			continue
		}
		hooks[strings.TrimSpace(team)] = strings.TrimSpace(url)
	}
	return hooks
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool gets an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
