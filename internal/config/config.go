// Package config holds the server's runtime settings.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
)

// ErrInvalidConfig indicates a setting that failed validation.
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	ProfileNone = ""
	ProfileCPU  = "cpu"
	ProfileMem  = "mem"
)

// Config is the full set of server settings.
type Config struct {
	// Addr is the listen address, e.g. ":3000".
	Addr string
	// AllowOrigins is the comma separated CORS and websocket origin list.
	AllowOrigins string
	// LogLevel is one of trace, debug, info, warn, error.
	LogLevel string
	// Profile turns on pkg/profile: "", "cpu" or "mem".
	Profile string
}

// NewConfig returns the defaults.
func NewConfig() *Config {
	return &Config{
		Addr:         ":3000",
		AllowOrigins: "http://localhost:5173",
		LogLevel:     "info",
		Profile:      ProfileNone,
	}
}

// Load parses args over the defaults. Environment variables, when set,
// replace the defaults before flags are applied.
func Load(args []string, getenv func(string) string) (*Config, error) {
	cfg := NewConfig()
	if getenv == nil {
		getenv = os.Getenv
	}
	cfg.applyEnv(getenv)

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.StringVar(&cfg.AllowOrigins, "origins", cfg.AllowOrigins, "comma separated allowed origins")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: trace, debug, info, warn, error")
	fs.StringVar(&cfg.Profile, "profile", cfg.Profile, "profile mode: cpu or mem")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv("CHESS_ADDR"); v != "" {
		c.Addr = v
	}
	if v := getenv("CHESS_ALLOW_ORIGINS"); v != "" {
		c.AllowOrigins = v
	}
	if v := getenv("CHESS_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv("CHESS_PROFILE"); v != "" {
		c.Profile = v
	}
}

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidConfig)
	}
	origins := c.Origins()
	if len(origins) == 0 {
		return fmt.Errorf("%w: no allowed origins", ErrInvalidConfig)
	}
	for _, o := range origins {
		if o == "*" {
			return fmt.Errorf("%w: wildcard origin with credentials", ErrInvalidConfig)
		}
	}
	switch strings.ToLower(c.LogLevel) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	switch c.Profile {
	case ProfileNone, ProfileCPU, ProfileMem:
	default:
		return fmt.Errorf("%w: unknown profile mode %q", ErrInvalidConfig, c.Profile)
	}
	return nil
}

// Origins splits AllowOrigins into its entries.
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
