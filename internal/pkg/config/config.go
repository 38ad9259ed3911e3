package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Addr     string `env:"ADDR, default=127.0.0.1:3000"`
	Env      string `env:"ENV, default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	API   APIConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// APIConfig describes the remote JobHub API.
type APIConfig struct {
	BaseURL         string        `env:"API_BASE_URL, default=http://localhost:8000"`
	Timeout         time.Duration `env:"API_TIMEOUT, default=10s"`
	RegisterTimeout time.Duration `env:"REGISTER_TIMEOUT, default=5s"`
	SessionCookie   string        `env:"SESSION_COOKIE, default=session_token"`

	VerifyPath      string `env:"VERIFY_PATH, default=/auth/check"`
	LoginPath       string `env:"LOGIN_PATH, default=/api/v1/auth/login"`
	LogoutPath      string `env:"LOGOUT_PATH, default=/api/v1/auth/logout"`
	RegisterPath    string `env:"REGISTER_PATH, default=/api/v1/auth/register"`
	JobSearchPath   string `env:"JOB_SEARCH_PATH, default=/api/v1/jobs"`
	JobListPath     string `env:"JOB_LIST_PATH, default=/api/v1/jobs/all"`
	StatsPath       string `env:"STATS_PATH, default=/api/v1/statscharts"`
	EligibilityPath string `env:"ELIGIBILITY_PATH, default=/api/v1/eligibility/check"`
}

// MongoConfig enables the mongo application repository when URI is set.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=jobhub_dashboard"`
}

// RedisConfig enables the redis credential store when Addr is set.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration through the given lookuper.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Development reports whether the dashboard runs in development mode.
func (c *Config) Development() bool {
	return c.Env == "development"
}
