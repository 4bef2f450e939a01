package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	CORS     CORSConfig
	Email    EmailConfig
	Redis    RedisConfig
	Catalog  CatalogConfig
	Intake   IntakeConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name    string
	Version string
	Debug   bool
	Port    string
	Host    string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	URL string
}

// AuthConfig holds admin session configuration
type AuthConfig struct {
	SecretKey              string
	SessionExpiryMinutes   int
	CSRFExpiryMinutes      int
	CookieName             string
	SecureCookie           bool
	AdminUsername          string
	AdminPassword          string
	LoginAttemptsPerMinute int // per client address; 0 disables the limit
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int
}

// EmailConfig holds notification email configuration
type EmailConfig struct {
	Provider             string // "console", "smtp", "directmail"
	SMTPHost             string
	SMTPPort             int
	Username             string
	Password             string
	FromEmail            string
	FromName             string
	DirectMail           DirectMailConfig
	DefaultRecipient     string
	NotifyTimeoutSeconds int
}

// DirectMailConfig holds Alibaba Cloud DirectMail credentials
type DirectMailConfig struct {
	Endpoint        string
	AccessKeyID     string
	AccessKeySecret string
	AccountName     string
	FromAlias       string
}

// RedisConfig holds the optional store for session revocation and login throttling
type RedisConfig struct {
	URL string
}

// CatalogConfig holds inventory bootstrap options
type CatalogConfig struct {
	SeedSamples bool
}

// IntakeConfig holds the inquiry intake policy
type IntakeConfig struct {
	MaskFailures bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		App: AppConfig{
			Name:    getEnv("APP_NAME", "Unichip Catalog"),
			Version: getEnv("APP_VERSION", "1.0.0"),
			Debug:   getEnvAsBool("DEBUG", false),
			Port:    getEnv("PORT", "5000"),
			Host:    getEnv("HOST", "0.0.0.0"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", getEnv("POSTGRES_URL", "sqlite:///./instance/local.db")),
		},
		Auth: AuthConfig{
			SecretKey:              getEnv("SECRET_KEY", ""),
			SessionExpiryMinutes:   getEnvAsInt("SESSION_EXPIRE_MINUTES", 480),
			CSRFExpiryMinutes:      getEnvAsInt("CSRF_EXPIRE_MINUTES", 60),
			CookieName:             getEnv("SESSION_COOKIE_NAME", "unichip_session"),
			SecureCookie:           getEnvAsBool("SESSION_COOKIE_SECURE", true),
			AdminUsername:          getEnv("ADMIN_USERNAME", "admin"),
			AdminPassword:          getEnv("ADMIN_PASSWORD", ""),
			LoginAttemptsPerMinute: getEnvAsInt("LOGIN_RATE_LIMIT", 5),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("ALLOWED_HOSTS", []string{"*"}),
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"},
			AllowedHeaders: []string{"Content-Type", "Authorization", "X-CSRF-Token", "X-Request-ID"},
			MaxAge:         86400,
		},
		Email: EmailConfig{
			Provider:  strings.ToLower(getEnv("EMAIL_PROVIDER", "console")),
			SMTPHost:  getEnv("MAIL_SERVER", "smtp.qiye.aliyun.com"),
			SMTPPort:  getEnvAsInt("MAIL_PORT", 587),
			Username:  getEnv("MAIL_USERNAME", ""),
			Password:  getEnv("MAIL_PASSWORD", ""),
			FromEmail: getEnv("MAIL_DEFAULT_SENDER", getEnv("MAIL_USERNAME", "")),
			FromName:  getEnv("MAIL_FROM_NAME", "Unichip"),
			DirectMail: DirectMailConfig{
				Endpoint:        getEnv("ALIYUN_DM_ENDPOINT", "https://dm.aliyuncs.com/"),
				AccessKeyID:     getEnv("ALIYUN_ACCESS_KEY_ID", ""),
				AccessKeySecret: getEnv("ALIYUN_ACCESS_KEY_SECRET", ""),
				AccountName:     getEnv("ALIYUN_ACCOUNT_NAME", ""),
				FromAlias:       getEnv("ALIYUN_FROM_ALIAS", ""),
			},
			DefaultRecipient:     getEnv("EMAIL_RECIPIENT", getEnv("MAIL_USERNAME", "sales@unichip.hk")),
			NotifyTimeoutSeconds: getEnvAsInt("NOTIFY_TIMEOUT_SECONDS", 10),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", ""),
		},
		Catalog: CatalogConfig{
			SeedSamples: getEnvAsBool("CATALOG_SEED_SAMPLES", true),
		},
		Intake: IntakeConfig{
			MaskFailures: getEnvAsBool("INTAKE_MASK_FAILURES", true),
		},
	}

	// Validate configuration
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if cfg.App.Port == "" {
		return fmt.Errorf("PORT must be set")
	}
	if cfg.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL must be set")
	}
	if len(cfg.Auth.SecretKey) < 32 {
		return fmt.Errorf("SECRET_KEY must be set and at least 32 characters")
	}
	if cfg.Auth.SessionExpiryMinutes <= 0 {
		return fmt.Errorf("SESSION_EXPIRE_MINUTES must be greater than 0")
	}
	if cfg.Auth.CSRFExpiryMinutes <= 0 {
		return fmt.Errorf("CSRF_EXPIRE_MINUTES must be greater than 0")
	}
	if cfg.Email.NotifyTimeoutSeconds <= 0 {
		return fmt.Errorf("NOTIFY_TIMEOUT_SECONDS must be greater than 0")
	}
	switch cfg.Email.Provider {
	case "console", "smtp", "directmail":
	default:
		return fmt.Errorf("unsupported EMAIL_PROVIDER: %s", cfg.Email.Provider)
	}
	return nil
}

// SessionTTL is the lifetime of an admin session token
func (c *AuthConfig) SessionTTL() time.Duration {
	return time.Duration(c.SessionExpiryMinutes) * time.Minute
}

// CSRFTTL is the lifetime of a form token
func (c *AuthConfig) CSRFTTL() time.Duration {
	return time.Duration(c.CSRFExpiryMinutes) * time.Minute
}

// NotifyTimeout bounds a single notification attempt
func (c *EmailConfig) NotifyTimeout() time.Duration {
	return time.Duration(c.NotifyTimeoutSeconds) * time.Second
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

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

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// IsPostgres checks if the database URL is for PostgreSQL
func (c *DatabaseConfig) IsPostgres() bool {
	return strings.HasPrefix(c.URL, "postgresql://") || strings.HasPrefix(c.URL, "postgres://") ||
		strings.Contains(c.URL, "host=")
}

// GetPostgresDSN returns the connection string handed to pgx. URLs and
// key=value strings pass through untouched; sslmode defaults to disable
// when a URL leaves it out.
func (c *DatabaseConfig) GetPostgresDSN() string {
	dsn := c.URL
	if !strings.HasPrefix(dsn, "postgresql://") && !strings.HasPrefix(dsn, "postgres://") {
		return dsn
	}
	if strings.Contains(dsn, "sslmode=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&sslmode=disable"
	}
	return dsn + "?sslmode=disable"
}

// GetSQLitePath extracts SQLite database path from URL
func (c *DatabaseConfig) GetSQLitePath() string {
	if strings.HasPrefix(c.URL, "sqlite:///") {
		return c.URL[len("sqlite:///"):]
	}
	return c.URL
}
