package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Bursar"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"bursar"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		// HMAC secret for verifying bearer tokens issued by the admin panel.
		Secret string `envconfig:"AUTH_SECRET"`
	}

	Renderer struct {
		// External report renderer that produces statement PDFs.
		URL   string `envconfig:"RENDERER_URL" default:"http://localhost:3500/render"`
		Token string `envconfig:"RENDERER_TOKEN"`
	}

	Terms struct {
		// How long a current-term lookup may be served from cache.
		CacheTTL time.Duration `envconfig:"TERM_CACHE_TTL" default:"5m"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
