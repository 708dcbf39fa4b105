package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "SMORES"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration for the environment named by SMORES_ENV
func LoadConfig() (*Config, error) {
	// A missing .env file is normal outside of local development
	_ = loadDotEnvFile()

	return LoadConfigFrom(getEnvironment(), ConfigPaths...)
}

// LoadConfigFrom reads <env>.yaml from the given directories, applies
// defaults and environment overrides
func LoadConfigFrom(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	config.App.BaseURI = normalizeBaseURI(config.App.BaseURI)

	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.publicUrl", "http://localhost:8080")
	v.SetDefault("app.corsOrigin", "*")
	v.SetDefault("app.debug", false)
	v.SetDefault("app.baseUri", "/v1")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.trustedProxies", []string{})

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.database", "smores")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 10)    // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 2) // seconds
	v.SetDefault("database.logLevel", "warn")
	v.SetDefault("database.slowThreshold", 200) // milliseconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("security.enabled", true)
	v.SetDefault("security.impersonateUserId", 0)
	v.SetDefault("security.tokenTTL", 24) // hours
	v.SetDefault("security.bcryptCost", 12)
	v.SetDefault("security.tokenPurgeInterval", 60) // minutes

	v.SetDefault("search.defaultLimit", 50)
	v.SetDefault("search.maxLimit", 500)

	v.SetDefault("rateLimit.enabled", true)
	v.SetDefault("rateLimit.requestsPerSecond", 20)
	v.SetDefault("rateLimit.burst", 40)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// getEnvironment determines the environment to use based on SMORES_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides maps the flat, conventional variable names onto nested keys.
// AutomaticEnv only covers names derived from the key path.
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"DB_HOST":            "database.host",
		"DB_USERNAME":        "database.username",
		"DB_PASSWORD":        "database.password",
		"DB_NAME":            "database.database",
		"DB_SSL_MODE":        "database.sslMode",
		"SERVER_HOST":        "server.host",
		"LOGGER_LEVEL":       "logger.level",
		"CORS_ORIGIN":        "app.corsOrigin",
		"STRIPE_API_KEY":     "payment.stripeApiKey",
		"BOOTSTRAP_EMAIL":    "security.bootstrapEmail",
		"BOOTSTRAP_PASSWORD": "security.bootstrapPassword",
	}
	for name, key := range stringOverrides {
		if value := os.Getenv(EnvPrefix + "_" + name); value != "" {
			v.Set(key, value)
		}
	}

	intOverrides := map[string]string{
		"DB_PORT":              "database.port",
		"DB_MAX_OPEN_CONNS":    "database.maxOpenConns",
		"DB_MAX_IDLE_CONNS":    "database.maxIdleConns",
		"SERVER_PORT":          "server.port",
		"TOKEN_TTL_HOURS":      "security.tokenTTL",
		"IMPERSONATE_USER_ID":  "security.impersonateUserId",
		"SEARCH_DEFAULT_LIMIT": "search.defaultLimit",
		"SEARCH_MAX_LIMIT":     "search.maxLimit",
	}
	for name, key := range intOverrides {
		if value := getEnvInt(EnvPrefix+"_"+name, -1); value >= 0 {
			v.Set(key, value)
		}
	}

	if proxies := os.Getenv(EnvPrefix + "_TRUSTED_PROXIES"); proxies != "" {
		var list []string
		for _, p := range strings.Split(proxies, ",") {
			if p = strings.TrimSpace(p); p != "" {
				list = append(list, p)
			}
		}
		v.Set("server.trustedProxies", list)
	}

	if security := os.Getenv(EnvPrefix + "_SECURITY_ENABLED"); security != "" {
		if enabled, err := strconv.ParseBool(security); err == nil {
			v.Set("security.enabled", enabled)
		}
	}
	if debug := os.Getenv(EnvPrefix + "_DEBUG"); debug != "" {
		if enabled, err := strconv.ParseBool(debug); err == nil {
			v.Set("app.debug", enabled)
		}
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// normalizeBaseURI turns "v1", "/v1/" and "/v1" into "/v1"
func normalizeBaseURI(uri string) string {
	uri = strings.Trim(strings.TrimSpace(uri), "/")
	if uri == "" {
		return "/"
	}
	return "/" + uri
}

// processDurations converts the plain numbers read from yaml into durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second
	config.Database.SlowThreshold = time.Duration(config.Database.SlowThreshold) * time.Millisecond

	config.Security.TokenTTL = time.Duration(config.Security.TokenTTL) * time.Hour
	config.Security.TokenPurgeInterval = time.Duration(config.Security.TokenPurgeInterval) * time.Minute
}
