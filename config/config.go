package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Status policies accepted by STATUS_POLICY.
const (
	StatusPolicyPermissive = "permissive"
	StatusPolicyOneWay     = "one_way"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	GinMode     string `env:"GIN_MODE" envDefault:"debug"`
	LogLevel    int    `env:"LOG_LEVEL" envDefault:"0"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`

	DBUrl            string `env:"DATABASE_URL"`
	DBSimpleProtocol bool   `env:"DB_SIMPLE_PROTOCOL" envDefault:"true"`
	DBMaxConns       int32  `env:"DB_MAX_CONNS" envDefault:"25"`
	RunMigrations    bool   `env:"RUN_MIGRATIONS" envDefault:"true"`

	Session Session `envPrefix:"SESSION_"`
	Login   Login   `envPrefix:"LOGIN_"`

	BcryptCost    int           `env:"BCRYPT_COST" envDefault:"10"`
	StatusPolicy  string        `env:"STATUS_POLICY" envDefault:"permissive"`
	ResetTokenTTL time.Duration `env:"RESET_TOKEN_TTL" envDefault:"1h"`

	// Redis backs the rate limiter; empty URL means in-memory fallback.
	RedisURL      string `env:"REDIS_URL"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	RateLimitWindowSeconds   int `env:"RATE_LIMIT_WINDOW_SECONDS" envDefault:"60"`
	RateLimitLoginThreshold  int `env:"RATE_LIMIT_LOGIN_THRESHOLD" envDefault:"10"`
	RateLimitGlobalThreshold int `env:"RATE_LIMIT_GLOBAL_THRESHOLD" envDefault:"100"`
}

// Session holds the session token parameters.
type Session struct {
	Secret        string        `env:"SECRET"`
	TTL           time.Duration `env:"TTL" envDefault:"168h"`
	PurgeInterval time.Duration `env:"PURGE_INTERVAL" envDefault:"1h"`
}

// Login holds the per-username lockout settings. It needs Redis.
type Login struct {
	MaxAttempts   int           `env:"MAX_ATTEMPTS" envDefault:"5"`
	AttemptWindow time.Duration `env:"ATTEMPT_WINDOW" envDefault:"15m"`
	BlockDuration time.Duration `env:"BLOCK_DURATION" envDefault:"15m"`
}

func LoadConfig() (*Config, error) {
	// .env is optional; production injects the environment directly
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.FrontendURL = strings.TrimRight(cfg.FrontendURL, "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if c.Session.Secret == "" {
		return errors.New("SESSION_SECRET is required")
	}
	if c.Session.TTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	switch c.StatusPolicy {
	case StatusPolicyPermissive, StatusPolicyOneWay:
	default:
		return fmt.Errorf("STATUS_POLICY must be %q or %q, got %q", StatusPolicyPermissive, StatusPolicyOneWay, c.StatusPolicy)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}
