package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	completion "github.com/reelworthy/ragchat/internal/completion/openai"
	embedding "github.com/reelworthy/ragchat/internal/embedding/openai"
	redisstore "github.com/reelworthy/ragchat/internal/store/redis"
)

// Config represents the application configuration.
type Config struct {
	Server      ServerConfig
	CORS        CORSConfig
	Redis       redisstore.Config
	Embeddings  embedding.Config
	Completions completion.Config
	App         AppConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int `env:"SERVER_PORT"          envDefault:"8080"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"30"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// AppConfig contains the retrieval and caching tunables.
type AppConfig struct {
	MaxSearchResults         int     `env:"MAX_SEARCH_RESULTS"         envDefault:"20"`
	MinSimilarityScore       float64 `env:"MIN_SIMILARITY_SCORE"       envDefault:"0.02"`
	CacheSimilarityThreshold float64 `env:"CACHE_SIMILARITY_THRESHOLD" envDefault:"0.99"`
	ChatHistoryLimit         int     `env:"CHAT_HISTORY_LIMIT"         envDefault:"3"`
	CacheTTL                 int     `env:"CACHE_TTL"                  envDefault:"0"` // seconds, 0 = keep forever
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*ServerConfig
	*CORSConfig
	*redisstore.Config
	*AppConfig
}

// Load loads environment files, parses and validates configuration.
func Load() (*Config, error) {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		dig.Out{},
		&cfg.Server,
		&cfg.CORS,
		&cfg.Redis,
		&cfg.App,
	}
}

// Validate enforces the numeric ranges of the recognized options.
func (c *Config) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.Server.Port > 0 && c.Server.Port < 65536, "SERVER_PORT must be in (0, 65536)"},
		{c.Embeddings.Dimensions > 0, "OPENAI_EMBEDDINGS_DIMENSIONS must be positive"},
		{c.App.MaxSearchResults >= 1 && c.App.MaxSearchResults <= 100, "MAX_SEARCH_RESULTS must be in [1, 100]"},
		{c.App.MinSimilarityScore >= 0 && c.App.MinSimilarityScore <= 1, "MIN_SIMILARITY_SCORE must be in [0, 1]"},
		{c.App.CacheSimilarityThreshold >= 0 && c.App.CacheSimilarityThreshold <= 1, "CACHE_SIMILARITY_THRESHOLD must be in [0, 1]"},
		{c.App.ChatHistoryLimit >= 1 && c.App.ChatHistoryLimit <= 10, "CHAT_HISTORY_LIMIT must be in [1, 10]"},
		{c.App.CacheTTL >= 0, "CACHE_TTL must not be negative"},
		{c.Redis.ConnectTimeout >= 1, "REDIS_CONNECT_TIMEOUT must be at least 1"},
		{c.Redis.MaxConnectRetries >= 0, "REDIS_MAX_CONNECT_RETRIES must not be negative"},
		{c.Embeddings.Timeout >= 1, "OPENAI_TIMEOUT must be at least 1"},
	}

	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("invalid config: %s", check.msg)
		}
	}

	return nil
}
