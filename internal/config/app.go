package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rgehrsitz/ctcgo/internal/logging"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. CTCGO_DATABASE_DSN.
const EnvPrefix = "CTCGO"

// AppConfig holds all runtime configuration for ctcgo.
type AppConfig struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  logging.Config `mapstructure:"logging"`
	Ats      AtsConfig      `mapstructure:"ats"`
	Rules    RulesConfig    `mapstructure:"rules"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Address       string   `mapstructure:"address"`
	AllowOrigins  []string `mapstructure:"allowOrigins"`
	MaxUploadSize int64    `mapstructure:"maxUploadSize"` // bytes
}

// DatabaseConfig configures persistence. An empty DSN selects the in-memory store.
type DatabaseConfig struct {
	DSN         string `mapstructure:"dsn"`
	AutoMigrate bool   `mapstructure:"autoMigrate"`
}

// AtsConfig configures resume-check rate limiting.
type AtsConfig struct {
	MaxTries   int `mapstructure:"maxTries"`
	ResetHours int `mapstructure:"resetHours"`
}

// RulesConfig points at an optional statutory rules file.
type RulesConfig struct {
	File string `mapstructure:"file"`
}

// SetDefaults registers the built-in values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.allowOrigins", []string{"*"})
	v.SetDefault("server.maxUploadSize", 2*1024*1024)
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.autoMigrate", true)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("ats.maxTries", 3)
	v.SetDefault("ats.resetHours", 12)
	v.SetDefault("rules.file", "")
}

// LoadAppConfig reads configPath (or ctcgo.yaml from the working directory or
// $HOME/.ctcgo when empty), then applies .env and CTCGO_* overrides.
// A missing config file is not an error; the defaults apply.
func LoadAppConfig(configPath string) (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("ctcgo")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.ctcgo")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks ranges that viper cannot.
func (c *AppConfig) Validate() error {
	if c.Server.MaxUploadSize <= 0 {
		return fmt.Errorf("server.maxUploadSize must be positive")
	}
	if c.Ats.MaxTries <= 0 {
		return fmt.Errorf("ats.maxTries must be positive")
	}
	if c.Ats.ResetHours <= 0 {
		return fmt.Errorf("ats.resetHours must be positive")
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}
