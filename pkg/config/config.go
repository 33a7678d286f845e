package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	// Registration rules
	InstitutionDomain string `mapstructure:"institution_domain"`

	// Registry settings
	RegistryBackend string `mapstructure:"registry_backend"` // "memory" or "sqlite"

	// Credential hashing
	PasswordHasher string `mapstructure:"password_hasher"` // "argon2id" or "bcrypt"
	BcryptCost     int    `mapstructure:"bcrypt_cost"`
	Argon2Time     uint32 `mapstructure:"argon2_time"`
	Argon2Memory   uint32 `mapstructure:"argon2_memory"` // KiB
	Argon2Threads  uint8  `mapstructure:"argon2_threads"`

	// Optional logging settings
	LogFile  string `mapstructure:"log_file"`
	LogLevel string `mapstructure:"log_level"`

	ConfigPath string
}

const (
	DefaultConfigPath        = "/etc/uccpay/config.yml"
	DefaultInstitutionDomain = "ucc.edu"
	DefaultRegistryBackend   = "memory"
	DefaultPasswordHasher    = "argon2id"
	DefaultBcryptCost        = 10
	DefaultArgon2Time        = 1
	DefaultArgon2Memory      = 64 * 1024
	DefaultArgon2Threads     = 4
	DefaultLogLevel          = "info"

	EnvPrefix = "UCCPAY"
)

// Load reads the YAML file at configPath on top of the defaults. Environment
// variables prefixed with UCCPAY_ override both. An explicit configPath must
// exist; the default path is optional.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	explicit := configPath != ""
	if !explicit {
		configPath = DefaultConfigPath
	}

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetDefault("institution_domain", DefaultInstitutionDomain)
	v.SetDefault("registry_backend", DefaultRegistryBackend)
	v.SetDefault("password_hasher", DefaultPasswordHasher)
	v.SetDefault("bcrypt_cost", DefaultBcryptCost)
	v.SetDefault("argon2_time", DefaultArgon2Time)
	v.SetDefault("argon2_memory", DefaultArgon2Memory)
	v.SetDefault("argon2_threads", DefaultArgon2Threads)
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", DefaultLogLevel)

	// Allow environment variable overrides
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		configPath = ""
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.ConfigPath = configPath

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.InstitutionDomain) == "" {
		return fmt.Errorf("institution_domain is required")
	}
	if strings.ContainsAny(c.InstitutionDomain, "@ \t") {
		return fmt.Errorf("institution_domain must be a bare domain, got %q", c.InstitutionDomain)
	}

	if c.RegistryBackend != "memory" && c.RegistryBackend != "sqlite" {
		return fmt.Errorf("registry_backend must be 'memory' or 'sqlite'")
	}

	if c.PasswordHasher != "argon2id" && c.PasswordHasher != "bcrypt" {
		return fmt.Errorf("password_hasher must be 'argon2id' or 'bcrypt'")
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

func (c *Config) IsDevMode() bool {
	return os.Getenv(EnvPrefix+"_DEV_MODE") == "1"
}
