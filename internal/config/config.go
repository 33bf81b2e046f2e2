package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Cache drivers understood by the persistence layer
const (
	CacheDriverFile     = "file"
	CacheDriverPostgres = "postgres"
	CacheDriverMemory   = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Env      string
	Server   ServerConfig
	GitHub   GitHubConfig
	Cache    CacheConfig
	Database DatabaseConfig
	Log      LogConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port               string
	Host               string
	ReadTimeout        int
	WriteTimeout       int
	IdleTimeout        int
	CorsAllowedOrigins []string
}

// GitHubConfig holds settings for the remote repository listing
type GitHubConfig struct {
	APIURL           string
	Org              string
	UserAgent        string
	Timeout          time.Duration
	MaxPages         int
	ProgressEstimate int
}

// CacheConfig selects where the cache record lives
type CacheConfig struct {
	Driver string
	Dir    string
	Key    string
}

// DatabaseConfig holds database configuration, used by the postgres cache driver
type DatabaseConfig struct {
	Driver   string
	DSN      string
	MaxConns int
	MinConns int
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// .env file is optional
	_ = godotenv.Load()

	config := &Config{
		Env: getEnv("APP_ENV", "production"),
		Server: ServerConfig{
			Port:               getEnv("SERVER_PORT", "8080"),
			Host:               getEnv("SERVER_HOST", "0.0.0.0"),
			ReadTimeout:        getEnvAsInt("SERVER_READ_TIMEOUT", 30),
			WriteTimeout:       getEnvAsInt("SERVER_WRITE_TIMEOUT", 120),
			IdleTimeout:        getEnvAsInt("SERVER_IDLE_TIMEOUT", 120),
			CorsAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", ",", []string{"*"}),
		},
		GitHub: GitHubConfig{
			APIURL:           strings.TrimRight(getEnv("GITHUB_API_URL", "https://api.github.com"), "/"),
			Org:              getEnv("GITHUB_ORG", "azerothcore"),
			UserAgent:        getEnv("GITHUB_USER_AGENT", "repo-catalog"),
			Timeout:          getEnvAsDuration("GITHUB_TIMEOUT", 30*time.Second),
			MaxPages:         getEnvAsInt("MAX_PAGES", 50),
			ProgressEstimate: getEnvAsInt("PROGRESS_ESTIMATE", 300),
		},
		Cache: CacheConfig{
			Driver: strings.ToLower(getEnv("CACHE_DRIVER", CacheDriverFile)),
			Dir:    getEnv("CACHE_DIR", "./data/cache"),
			Key:    getEnv("CACHE_KEY", "azerothcore_repositories_cache"),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "postgres"),
			DSN:      getEnv("DB_DSN", ""),
			MaxConns: getEnvAsInt("DB_MAX_CONNS", 5),
			MinConns: getEnvAsInt("DB_MIN_CONNS", 1),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.GitHub.Org == "" {
		return fmt.Errorf("GITHUB_ORG is required")
	}
	if !strings.HasPrefix(c.GitHub.APIURL, "http://") && !strings.HasPrefix(c.GitHub.APIURL, "https://") {
		return fmt.Errorf("GITHUB_API_URL must be a valid HTTP(S) URL")
	}
	if c.GitHub.MaxPages < 1 {
		return fmt.Errorf("MAX_PAGES must be at least 1")
	}
	if c.GitHub.ProgressEstimate < 1 {
		return fmt.Errorf("PROGRESS_ESTIMATE must be at least 1")
	}
	if c.Cache.Key == "" {
		return fmt.Errorf("CACHE_KEY is required")
	}

	switch c.Cache.Driver {
	case CacheDriverFile:
		if c.Cache.Dir == "" {
			return fmt.Errorf("CACHE_DIR is required for the file cache driver")
		}
	case CacheDriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("DB_DSN is required for the postgres cache driver")
		}
	case CacheDriverMemory:
	default:
		return fmt.Errorf("unsupported CACHE_DRIVER %q", c.Cache.Driver)
	}

	return nil
}

// IsDev reports whether the process runs in development mode
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// GetServerAddress returns the server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvAsInt gets an environment variable as integer with a fallback value
func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getEnvAsDuration accepts Go duration strings ("45s") or plain seconds
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		if sec, err := strconv.Atoi(value); err == nil {
			return time.Duration(sec) * time.Second
		}
	}
	return fallback
}

// getEnvAsSlice gets an environment variable as slice with a fallback value
func getEnvAsSlice(key, separator string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, separator)
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return fallback
}
