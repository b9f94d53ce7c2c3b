package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server ServerConfig
	Engine EngineConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `mapstructure:"SERVER_HOST"`
	Port         int           `mapstructure:"SERVER_PORT"`
	ReadTimeout  time.Duration `mapstructure:"SERVER_READ_TIMEOUT"`
	WriteTimeout time.Duration `mapstructure:"SERVER_WRITE_TIMEOUT"`
	IdleTimeout  time.Duration `mapstructure:"SERVER_IDLE_TIMEOUT"`
}

// EngineConfig holds the synthesis engine tunables. The max span is a
// safety/engineering policy value, not a per-request parameter; it is
// surfaced here (rather than as a hidden constant) so deployments and
// tests can adjust it.
type EngineConfig struct {
	MaxSpanMeters float64 `mapstructure:"ENGINE_MAX_SPAN_METERS"`
	EarthRadiusM  float64 `mapstructure:"ENGINE_EARTH_RADIUS_M"`
}

// ServerAddr returns the HTTP listen address in host:port format.
func (s *ServerConfig) ServerAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load reads configuration from environment variables and .env file.
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// ── Defaults ────────────────────────────────────────
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("SERVER_READ_TIMEOUT", "5s")
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "10s")
	viper.SetDefault("SERVER_IDLE_TIMEOUT", "120s")

	viper.SetDefault("ENGINE_MAX_SPAN_METERS", 50.0)
	viper.SetDefault("ENGINE_EARTH_RADIUS_M", 6_371_000.0)

	// Try to read .env file. If it doesn't exist (e.g., inside Docker),
	// env vars injected by the container runtime are used instead.
	_ = viper.ReadInConfig()

	cfg := &Config{}

	// ── Server ──────────────────────────────────────────
	cfg.Server = ServerConfig{
		Host:         viper.GetString("SERVER_HOST"),
		Port:         viper.GetInt("SERVER_PORT"),
		ReadTimeout:  viper.GetDuration("SERVER_READ_TIMEOUT"),
		WriteTimeout: viper.GetDuration("SERVER_WRITE_TIMEOUT"),
		IdleTimeout:  viper.GetDuration("SERVER_IDLE_TIMEOUT"),
	}

	// ── Engine ──────────────────────────────────────────
	cfg.Engine = EngineConfig{
		MaxSpanMeters: viper.GetFloat64("ENGINE_MAX_SPAN_METERS"),
		EarthRadiusM:  viper.GetFloat64("ENGINE_EARTH_RADIUS_M"),
	}

	return cfg, nil
}
