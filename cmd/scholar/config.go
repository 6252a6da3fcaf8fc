package main

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/sirius-scholar/scholar/clients/api"
)

type Configuration struct {
	Server struct {
		Addr   string `toml:"addr"`
		Secret string `toml:"secret"`
	} `toml:"server"`
	API struct {
		BaseURL string `toml:"base_url"`
		// Timeout bounds each backend call. Zero leaves calls unbounded.
		Timeout time.Duration `toml:"timeout"`
	} `toml:"api"`
	Sessions struct {
		// Store is one of memory, bolt or redis.
		Store string        `toml:"store"`
		Idle  time.Duration `toml:"idle"`
		Sweep string        `toml:"sweep"`

		BoltPath string `toml:"bolt_path"`

		RedisAddr     string `toml:"redis_addr"`
		RedisPassword string `toml:"redis_password"`
		RedisDB       int    `toml:"redis_db"`
	} `toml:"sessions"`
}

// loadConfiguration reads the toml file at path. ${VAR} references are
// replaced by the environment, which a .env file of the working directory
// can complete.
func loadConfiguration(path string) (Configuration, error) {
	_ = godotenv.Load()

	var cfg Configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("error reading configuration: %w", err)
	}

	if _, err := toml.Decode(os.ExpandEnv(string(data)), &cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	cfg.setDefaults()
	return cfg, cfg.validate()
}

func (cfg *Configuration) setDefaults() {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = api.DefaultBaseURL
	}
	if cfg.Sessions.Store == "" {
		cfg.Sessions.Store = "memory"
	}
	if cfg.Sessions.Idle == 0 {
		cfg.Sessions.Idle = 24 * time.Hour
	}
	if cfg.Sessions.Sweep == "" {
		cfg.Sessions.Sweep = "@every 10m"
	}
	if cfg.Sessions.BoltPath == "" {
		cfg.Sessions.BoltPath = "data/sessions.db"
	}
}

func (cfg *Configuration) validate() error {
	if cfg.Server.Secret == "" {
		return fmt.Errorf("server.secret is required")
	}

	switch cfg.Sessions.Store {
	case "memory", "bolt":
	case "redis":
		if cfg.Sessions.RedisAddr == "" {
			return fmt.Errorf("sessions.redis_addr is required by the redis store")
		}
	default:
		return fmt.Errorf("unknown session store %q", cfg.Sessions.Store)
	}
	return nil
}
