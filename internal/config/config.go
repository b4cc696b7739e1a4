// Package config provides configuration management for the real-estate
// catalog.
//
// Settings come from a YAML file, then a .env file and the process
// environment override the connection details:
//   - DB_DRIVER, DB_URL, DB_USER, DB_PASSWORD
//   - REALESTATE_ADDR
//   - REDIS_URL
//
// Config file locations (priority order):
//  1. $REALESTATE_CONFIG
//  2. ./realestate.yaml
//  3. $XDG_CONFIG_HOME/realestate/config.yaml
//  4. ~/.config/realestate/config.yaml
//  5. /etc/realestate/config.yaml
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAddr    = ":7070"
	DefaultDriver  = "sqlite"
	DefaultDSN     = "./realestate.db"
	DefaultChannel = "realestate.events"
)

// Load finds and loads the config file, or returns defaults if none found.
// Environment overrides are applied in both cases.
func Load() (*Config, string, error) {
	path := FindConfigPath()

	var (
		cfg *Config
		err error
	)
	if path == "" {
		cfg = DefaultConfig()
	} else {
		cfg, path, err = LoadFromPath(path)
		if err != nil {
			return nil, path, err
		}
	}

	cfg.ApplyEnv()
	return cfg, path, nil
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, path, nil
}

// ApplyEnv loads a .env file from the working directory, if present, and
// overrides connection settings from the environment.
func (c *Config) ApplyEnv() {
	// Missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	if v := os.Getenv("DB_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("DB_URL"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		c.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REALESTATE_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		c.Events.RedisURL = v
	}
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns sensible defaults for a new installation
func DefaultConfig() *Config {
	cfg := &Config{Version: 1}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}

	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = Duration(15 * time.Second)
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = Duration(15 * time.Second)
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = Duration(60 * time.Second)
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = []string{"*"}
	}

	if c.Database.Driver == "" {
		c.Database.Driver = DefaultDriver
	}
	if c.Database.DSN == "" && IsSQLite(c.Database.Driver) {
		c.Database.DSN = DefaultDSN
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = Duration(30 * time.Minute)
	}

	if c.Events.Channel == "" {
		c.Events.Channel = DefaultChannel
	}
}

// Validate reports settings the server cannot start with
func (c *Config) Validate() error {
	switch strings.ToLower(c.Database.Driver) {
	case "sqlite", "sqlite3", "pgx", "postgres", "pq":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("database dsn is required for driver %q", c.Database.Driver)
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("max_idle_conns (%d) exceeds max_open_conns (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns)
	}
	return nil
}

// IsSQLite reports whether driver names the embedded sqlite store
func IsSQLite(driver string) bool {
	switch strings.ToLower(driver) {
	case "sqlite", "sqlite3":
		return true
	}
	return false
}

// Summary returns a human-readable config summary with secrets omitted
func (c *Config) Summary() string {
	events := "sse"
	if c.Events.RedisURL != "" {
		events = "sse+redis(" + c.Events.Channel + ")"
	}
	return fmt.Sprintf("Listen: %s, Database: %s, Events: %s",
		c.Server.Addr, c.Database.Driver, events)
}
