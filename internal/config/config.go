package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config/local.yaml"

type Config struct {
	Env     string  `yaml:"env" env:"ENV" env-default:"local"`
	API     API     `yaml:"api"`
	Session Session `yaml:"session"`
	Listing Listing `yaml:"listing"`
	Stub    Stub    `yaml:"stub"`
}

type API struct {
	BaseURL string        `yaml:"base_url" env:"API_BASE_URL" env-default:"http://localhost:8070"`
	Timeout time.Duration `yaml:"timeout" env:"API_TIMEOUT" env-default:"5s"`
}

// Session selects where the login token and cached lists are kept.
type Session struct {
	Driver   string        `yaml:"driver" env:"SESSION_DRIVER" env-default:"file"`
	Path     string        `yaml:"path" env:"SESSION_PATH"`
	RedisURL string        `yaml:"redis_url" env:"SESSION_REDIS_URL"`
	Prefix   string        `yaml:"prefix" env:"SESSION_PREFIX" env-default:"internhub:"`
	TTL      time.Duration `yaml:"ttl" env:"SESSION_TTL" env-default:"24h"`
}

type Listing struct {
	PageSize int `yaml:"page_size" env:"LISTING_PAGE_SIZE" env-default:"10"`
}

// Stub configures the local backend double.
type Stub struct {
	Address   string        `yaml:"address" env:"STUB_ADDRESS" env-default:"localhost:8070"`
	DSN       string        `yaml:"dsn" env:"STUB_DB_DSN"`
	JWTSecret string        `yaml:"jwt_secret" env:"STUB_JWT_SECRET" env-default:"dev-secret"`
	TokenTTL  time.Duration `yaml:"token_ttl" env:"STUB_TOKEN_TTL" env-default:"24h"`
	Seed      bool          `yaml:"seed" env:"STUB_SEED" env-default:"true"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config %s: %v", configPath, err)
	}
	return cfg
}

// Load reads the YAML file at path with env overrides. An empty path falls
// back to ./config/local.yaml and, when that file is absent, to env only.
func Load(path string) (*Config, error) {
	var cfg Config
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, err
		}
	case errors.Is(statErr, fs.ErrNotExist) && !explicit:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
	default:
		return nil, statErr
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() error {
	c.API.BaseURL = strings.TrimRight(strings.TrimSpace(c.API.BaseURL), "/")
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if c.Listing.PageSize <= 0 {
		c.Listing.PageSize = 10
	}

	c.Session.Driver = strings.ToLower(strings.TrimSpace(c.Session.Driver))
	switch c.Session.Driver {
	case "", "file":
		c.Session.Driver = "file"
		if c.Session.Path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("resolve session path: %w", err)
			}
			c.Session.Path = filepath.Join(home, ".internhub", "session.json")
		}
	case "redis":
		if c.Session.RedisURL == "" {
			return fmt.Errorf("session.redis_url is required for the redis driver")
		}
	default:
		return fmt.Errorf("unknown session driver %q", c.Session.Driver)
	}
	return nil
}
