// Package config loads settings from configs/config.yml, an optional .env file
// and BOOKING_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix = "BOOKING"

	DriverJSON   = "json"
	DriverSQLite = "sqlite"
)

type Config struct {
	Port    string        `mapstructure:"port"`
	Log     LogConfig     `mapstructure:"log"`
	Store   StoreConfig   `mapstructure:"store"`
	Booking BookingConfig `mapstructure:"booking"`
	Auth    AuthConfig    `mapstructure:"auth"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console | json
}

type StoreConfig struct {
	Driver string `mapstructure:"driver"` // json | sqlite
	Path   string `mapstructure:"path"`
}

type BookingConfig struct {
	HorizonDays int           `mapstructure:"horizon_days"`
	Timezone    string        `mapstructure:"timezone"`
	SessionTTL  time.Duration `mapstructure:"session_ttl"`
}

type AuthConfig struct {
	SigningKey      string        `mapstructure:"signing_key"`
	TokenTTL        time.Duration `mapstructure:"token_ttl"`
	RegistrationKey string        `mapstructure:"registration_key"`
}

var (
	ErrMissingSigningKey = errors.New("auth.signing_key is required (set BOOKING_AUTH_SIGNING_KEY)")
	ErrUnknownDriver     = errors.New("store.driver must be json or sqlite")
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("store.driver", DriverJSON)
	v.SetDefault("store.path", "data.json")
	v.SetDefault("booking.horizon_days", 15)
	v.SetDefault("booking.timezone", "America/Argentina/Buenos_Aires")
	v.SetDefault("booking.session_ttl", "30m")
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", "1h")
	v.SetDefault("auth.registration_key", "")
}

// Load reads configuration. configDir is searched for config.yml; a missing file is not an error.
func Load(configDir string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(configDir)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// the registration key has a shorter, deployment-facing name
	if err := v.BindEnv("auth.registration_key", envPrefix+"_REGISTRATION_KEY", envPrefix+"_AUTH_REGISTRATION_KEY"); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case DriverJSON, DriverSQLite:
	default:
		return fmt.Errorf("%w (got %q)", ErrUnknownDriver, c.Store.Driver)
	}
	if c.Store.Path == "" {
		return errors.New("store.path is required")
	}
	if c.Booking.HorizonDays <= 0 {
		return fmt.Errorf("booking.horizon_days must be positive (got %d)", c.Booking.HorizonDays)
	}
	if _, err := time.LoadLocation(c.Booking.Timezone); err != nil {
		return fmt.Errorf("booking.timezone: %w", err)
	}
	return nil
}

// RequireSigningKey fails when no token signing key is configured. Only the HTTP
// server issues tokens, so the terminal commands run without one.
func (c *Config) RequireSigningKey() error {
	if strings.TrimSpace(c.Auth.SigningKey) == "" {
		return ErrMissingSigningKey
	}
	return nil
}

// Location returns the booking timezone. Load has already validated it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Booking.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
