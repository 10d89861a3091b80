package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the process-wide configuration, read once at startup.  The JWT
// secret lives here so the token codec can receive it explicitly instead of
// reading the environment at call sites.
type Config struct {
	Env         string `env:"APP_ENV" env-default:"local"`
	DatabaseURL string `env:"DATABASE_URL" env-required:"true"`
	JWTSecret   string `env:"JWT_SECRET"`
	HTTPServer
}

type HTTPServer struct {
	Address      string        `env:"HTTP_ADDRESS" env-default:":8080"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// MustLoad reads configuration from the environment and panics on failure.
// Callers load .env files beforehand when running outside a managed
// deployment.
func MustLoad() *Config {
	cfg, err := load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Production reports whether the process runs in a production-like
// environment.  The session cookie's Secure flag follows this.
func (c *Config) Production() bool {
	return c.Env == "production" || c.Env == "prod"
}
