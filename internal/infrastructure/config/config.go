package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the process-wide configuration, loaded once at startup and passed
// explicitly into the components that need it.
type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	JWTSecret string `env:"JWT_SECRET, required"`

	Admin   AdminConfig
	Team    TeamConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	Limiter LimiterConfig
}

type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME, required"`
	Password string `env:"ADMIN_PASSWORD, required"`
}

// TeamConfig describes the team seeded at startup when absent.
type TeamConfig struct {
	ID   string `env:"TEAM_ID,   default=tib-damen-50"`
	Name string `env:"TEAM_NAME, default=TiB Damen 50"`
	Type string `env:"TEAM_TYPE, default=tennis"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=roster"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// LimiterConfig tunes the admin-login attempt limiter.
type LimiterConfig struct {
	MaxAttempts int           `env:"LOGIN_MAX_ATTEMPTS, default=5"`
	Window      time.Duration `env:"LOGIN_WINDOW,       default=15m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}
