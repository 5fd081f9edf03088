package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr          string        `yaml:"addr"`
	JWTSecret     string        `yaml:"jwt_secret"`
	APITimeout    time.Duration `yaml:"timeout"`
	DatabasePath  string        `yaml:"database_path"`
	TokenDuration time.Duration `yaml:"token_duration"`
	AdminKeyHash  string        `yaml:"admin_key_hash"`
}

// LoadConfig builds the configuration from defaults, environment variables
// and, when path is non-empty, a YAML file layered on top.
func LoadConfig(path string) (*Config, error) {
	apiTimeout := 15 * time.Second
	tokenDuration := 1 * time.Hour

	cfg := &Config{
		Addr:          getEnv("MENTOR_ADDR", ":8080"),
		JWTSecret:     getEnv("MENTOR_JWT_SECRET", "supersecretkey"),
		APITimeout:    apiTimeout,
		DatabasePath:  getEnv("MENTOR_DATABASE_PATH", "mentorship.db"),
		TokenDuration: tokenDuration,
		AdminKeyHash:  getEnv("MENTOR_ADMIN_KEY_HASH", ""),
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate rejects configurations that must not reach production. The
// MENTOR_ENV variable opts into the relaxed development rules.
func (c *Config) Validate() error {
	env := os.Getenv("MENTOR_ENV")
	if env != "development" {
		if c.JWTSecret == "" || c.JWTSecret == "supersecretkey" {
			return fmt.Errorf("insecure jwt_secret; set MENTOR_JWT_SECRET")
		}
		if c.AdminKeyHash == "" {
			return fmt.Errorf("admin_key_hash is required outside development")
		}
	}
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path must not be empty")
	}
	if c.APITimeout <= 0 {
		c.APITimeout = 15 * time.Second
	}
	if c.TokenDuration <= 0 {
		c.TokenDuration = 1 * time.Hour
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
