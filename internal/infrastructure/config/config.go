package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment"`
	App         AppConfig       `mapstructure:"app"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	Security    SecurityConfig  `mapstructure:"security"`
	Search      SearchConfig    `mapstructure:"search"`
	Payment     PaymentConfig   `mapstructure:"payment"`
	RateLimit   RateLimitConfig `mapstructure:"rateLimit"`
	Metrics     MetricsConfig   `mapstructure:"metrics"`
}

// AppConfig contains public facing application settings
type AppConfig struct {
	PublicURL  string `mapstructure:"publicUrl"`
	CORSOrigin string `mapstructure:"corsOrigin"`
	Debug      bool   `mapstructure:"debug"`
	BaseURI    string `mapstructure:"baseUri"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	// TrustedProxies lists the proxy addresses or CIDRs whose X-Forwarded-For
	// is believed. Empty means the peer address is always the client.
	TrustedProxies []string `mapstructure:"trustedProxies"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	LogLevel        string        `mapstructure:"logLevel"`
	SlowThreshold   time.Duration `mapstructure:"slowThreshold"` // milliseconds
}

// DSN returns the postgres connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
	)
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// SecurityConfig controls authentication
type SecurityConfig struct {
	Enabled            bool          `mapstructure:"enabled"`
	ImpersonateUserID  uint64        `mapstructure:"impersonateUserId"`
	TokenTTL           time.Duration `mapstructure:"tokenTTL"` // hours
	BcryptCost         int           `mapstructure:"bcryptCost"`
	BootstrapEmail     string        `mapstructure:"bootstrapEmail"`
	BootstrapPassword  string        `mapstructure:"bootstrapPassword"`
	TokenPurgeInterval time.Duration `mapstructure:"tokenPurgeInterval"` // minutes
}

// SearchConfig bounds list endpoints
type SearchConfig struct {
	DefaultLimit int `mapstructure:"defaultLimit"`
	MaxLimit     int `mapstructure:"maxLimit"`
}

// PaymentConfig contains payment gateway settings
type PaymentConfig struct {
	StripeAPIKey string `mapstructure:"stripeApiKey"`
	StripeURL    string `mapstructure:"stripeUrl"`
}

// RateLimitConfig contains per-client request limits
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requestsPerSecond"`
	Burst             int     `mapstructure:"burst"`
}

// MetricsConfig contains prometheus exposition settings
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Validate checks that the loaded configuration can start the service
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Database.Driver != "postgres" {
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}
	if c.Database.Host == "" {
		return errors.New("database host is required")
	}
	if c.Database.Username == "" {
		return errors.New("database username is required")
	}
	if c.Database.Database == "" {
		return errors.New("database name is required")
	}
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.Database.MaxOpenConns)
	}

	validSSLModes := map[string]bool{
		"disable":     true,
		"require":     true,
		"verify-ca":   true,
		"verify-full": true,
		"prefer":      true,
	}
	if !validSSLModes[c.Database.SSLMode] {
		return fmt.Errorf("invalid SSL mode: %s", c.Database.SSLMode)
	}

	if !strings.HasPrefix(c.App.BaseURI, "/") {
		return fmt.Errorf("app base uri must start with '/': %q", c.App.BaseURI)
	}
	if c.Search.DefaultLimit <= 0 || c.Search.MaxLimit < c.Search.DefaultLimit {
		return fmt.Errorf("invalid search limits: default=%d max=%d", c.Search.DefaultLimit, c.Search.MaxLimit)
	}
	if c.Security.Enabled && c.Security.TokenTTL <= 0 {
		return errors.New("security token ttl must be positive")
	}
	if !c.Security.Enabled && c.Security.ImpersonateUserID == 0 {
		return errors.New("security.impersonateUserId is required when security is disabled")
	}
	if c.Security.BcryptCost < 4 || c.Security.BcryptCost > 31 {
		return fmt.Errorf("bcrypt cost out of range: %d", c.Security.BcryptCost)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return errors.New("rate limit requires positive requestsPerSecond and burst")
	}

	return nil
}

// IsProduction reports whether the service runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}
