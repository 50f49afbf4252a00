package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Completion policies for the meeting ledger
const (
	CompletionNonDecreasing      = "non_decreasing"
	CompletionStrictlyIncreasing = "strictly_increasing"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret     string        `mapstructure:"JWT_SECRET"`
	JWTExpiration time.Duration `mapstructure:"JWT_EXPIRATION"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Redis configuration, empty disables notification publishing
	RedisURL string `mapstructure:"REDIS_URL"`

	// Project tracking rules
	CompletionPolicy     string        `mapstructure:"COMPLETION_POLICY"`
	InvitationStaleAfter time.Duration `mapstructure:"INVITATION_STALE_AFTER"`
	ProofMaxBytes        int64         `mapstructure:"PROOF_MAX_BYTES"`

	// Seed data
	SeedDataDir string `mapstructure:"SEED_DATA_DIR"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "teampro")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRATION", "12h")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	viper.SetDefault("REDIS_URL", "")

	// Project tracking defaults
	viper.SetDefault("COMPLETION_POLICY", CompletionNonDecreasing)
	viper.SetDefault("INVITATION_STALE_AFTER", "24h")
	viper.SetDefault("PROOF_MAX_BYTES", 5*1024*1024)

	viper.SetDefault("SEED_DATA_DIR", "scripts/data")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	switch config.CompletionPolicy {
	case CompletionNonDecreasing, CompletionStrictlyIncreasing:
	default:
		return fmt.Errorf("unknown COMPLETION_POLICY %q", config.CompletionPolicy)
	}

	if config.InvitationStaleAfter <= 0 {
		return fmt.Errorf("INVITATION_STALE_AFTER must be positive")
	}
	if config.ProofMaxBytes <= 0 {
		return fmt.Errorf("PROOF_MAX_BYTES must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// StrictCompletion reports whether each meeting must raise completion
func (c *Config) StrictCompletion() bool {
	return c.CompletionPolicy == CompletionStrictlyIncreasing
}
