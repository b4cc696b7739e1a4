package config

import (
	"time"
)

// Config is the root configuration structure
type Config struct {
	Version  int            `yaml:"version"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Events   EventsConfig   `yaml:"events"`
}

// ServerConfig holds REST API listener settings
type ServerConfig struct {
	Addr         string   `yaml:"addr"`
	ReadTimeout  Duration `yaml:"read_timeout"`
	WriteTimeout Duration `yaml:"write_timeout"`
	IdleTimeout  Duration `yaml:"idle_timeout"`
	CORSOrigins  []string `yaml:"cors_origins,omitempty"`
}

// DatabaseConfig describes how to reach the relational store.
//
// Driver is one of "sqlite", "pgx" or "postgres" (lib/pq). DSN is a file
// path or ":memory:" for sqlite and a postgres:// URL or keyword string for
// the postgres drivers. User and Password, when set, are applied to a
// postgres DSN.
type DatabaseConfig struct {
	Driver          string   `yaml:"driver"`
	DSN             string   `yaml:"dsn"`
	User            string   `yaml:"user,omitempty"`
	Password        string   `yaml:"password,omitempty"`
	MaxOpenConns    int      `yaml:"max_open_conns"`
	MaxIdleConns    int      `yaml:"max_idle_conns"`
	ConnMaxLifetime Duration `yaml:"conn_max_lifetime"`
}

// EventsConfig controls where change events are fanned out besides the
// in-process SSE hub. An empty RedisURL disables the Redis publisher.
type EventsConfig struct {
	RedisURL string `yaml:"redis_url,omitempty"`
	Channel  string `yaml:"channel"`
}

// Duration wraps time.Duration for YAML unmarshaling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}
