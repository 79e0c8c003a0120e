// Package config loads application settings from the environment, with
// an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the full application configuration.
type Config struct {
	App    AppConfig
	Server ServerConfig
	SMTP   SMTPConfig
}

// AppConfig names the service and its runtime environment.
type AppConfig struct {
	Name string
	Env  string
}

// ServerConfig holds the HTTP bind address.
type ServerConfig struct {
	Host string
	Port int
}

// SMTPConfig holds the mail transport settings. The transport is
// considered unconfigured unless host, port, user and password are all
// present.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Secure   bool
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "abbas-delight-bakry"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnvAsInt("HTTP_PORT", 3000),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvAsInt("SMTP_PORT", 0),
			User:     getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASS", ""),
			Secure:   getEnv("SMTP_SECURE", "false") == "true",
		},
	}

	return cfg, cfg.validate()
}

// Address formats the HTTP bind address.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Configured reports whether the mail transport is fully set up.
func (s SMTPConfig) Configured() bool {
	return s.Host != "" && s.Port > 0 && s.User != "" && s.Password != ""
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("HTTP_PORT is invalid")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
