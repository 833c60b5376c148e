package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/cyberclub/staffhub-backend-go/internal/domain/payplan"
	"github.com/cyberclub/staffhub-backend-go/internal/fixtures"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Roster   RosterConfig
	PayPlan  payplan.Plan
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// RosterConfig points at the externally maintained schedule spreadsheet.
type RosterConfig struct {
	CSVURL   string
	CacheTTL string
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "staffhub"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	config.Roster = RosterConfig{
		CSVURL:   getEnv("ROSTER_CSV_URL", ""),
		CacheTTL: getEnv("ROSTER_CACHE_TTL", "10m"),
	}

	plan, err := loadPayPlan(getEnv("PAY_PLAN_PATH", ""))
	if err != nil {
		return nil, err
	}
	config.PayPlan = plan

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadPayPlan reads the pay plan from a JSON file, falling back to the
// built-in defaults. The plan is validated here so a broken tier table
// stops the server at startup instead of producing wrong pay silently.
func loadPayPlan(path string) (payplan.Plan, error) {
	if path == "" {
		return fixtures.DefaultPayPlan(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return payplan.Plan{}, fmt.Errorf("failed to read pay plan file: %w", err)
	}

	var plan payplan.Plan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return payplan.Plan{}, fmt.Errorf("failed to parse pay plan file: %w", err)
	}

	if err := plan.Validate(); err != nil {
		return payplan.Plan{}, fmt.Errorf("invalid pay plan: %w", err)
	}
	return plan, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key, fallback string) []string {
	return strings.Split(getEnv(key, fallback), ",")
}
