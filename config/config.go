// Package config loads the site configuration from YAML with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all raw2hdr-site configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Assets   AssetsConfig   `yaml:"assets"`
	Sessions SessionsConfig `yaml:"sessions"`
	Stream   StreamConfig   `yaml:"stream"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port            string `yaml:"port"`
	TemplatesDir    string `yaml:"templates_dir"`
	StaticDir       string `yaml:"static_dir"`
	ContentDir      string `yaml:"content_dir"`
	RequestTimeout  string `yaml:"request_timeout"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
	// Dev reloads templates when files under TemplatesDir or ContentDir change.
	Dev bool `yaml:"dev"`
}

// AssetsConfig locates files served from disk.
type AssetsConfig struct {
	Dir      string `yaml:"dir"`
	Download string `yaml:"download"` // relative to Dir unless absolute
}

// SessionsConfig configures explainer session state.
type SessionsConfig struct {
	TTL           string `yaml:"ttl"`
	SweepInterval string `yaml:"sweep_interval"`
	StatePath     string `yaml:"state_path"` // empty disables persistence
	// Max caps open sessions; the least recently seen is evicted when full.
	Max int `yaml:"max"`
}

// StreamConfig configures the frame stream.
type StreamConfig struct {
	FPS int `yaml:"fps"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8000",
			TemplatesDir:    "templates",
			StaticDir:       "static",
			ContentDir:      "content",
			RequestTimeout:  "30s",
			ShutdownTimeout: "10s",
		},
		Assets: AssetsConfig{
			Dir:      "data/assets",
			Download: "raw2hdr.zip",
		},
		Sessions: SessionsConfig{
			TTL:           "30m",
			SweepInterval: "1m",
			StatePath:     "data/sessions.json",
			Max:           1000,
		},
		Stream: StreamConfig{
			FPS: 30,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("RAW2HDR_TEMPLATES_DIR"); v != "" {
		c.Server.TemplatesDir = v
	}
	if v := os.Getenv("RAW2HDR_STATIC_DIR"); v != "" {
		c.Server.StaticDir = v
	}
	if v := os.Getenv("RAW2HDR_CONTENT_DIR"); v != "" {
		c.Server.ContentDir = v
	}
	if v := os.Getenv("RAW2HDR_DEV"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Server.Dev = b
		}
	}
	if v := os.Getenv("RAW2HDR_ASSETS_DIR"); v != "" {
		c.Assets.Dir = v
	}
	if v := os.Getenv("RAW2HDR_DOWNLOAD"); v != "" {
		c.Assets.Download = v
	}
	if v := os.Getenv("RAW2HDR_SESSION_TTL"); v != "" {
		c.Sessions.TTL = v
	}
	if v := os.Getenv("RAW2HDR_SESSION_STATE"); v != "" {
		c.Sessions.StatePath = v
	}
	if v := os.Getenv("RAW2HDR_MAX_SESSIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Sessions.Max = n
		}
	}
	if v := os.Getenv("RAW2HDR_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// GetRequestTimeout returns the per-request timeout as a duration.
func (c *Config) GetRequestTimeout() time.Duration {
	return parseDuration(c.Server.RequestTimeout, 30*time.Second)
}

// GetShutdownTimeout returns the graceful shutdown timeout as a duration.
func (c *Config) GetShutdownTimeout() time.Duration {
	return parseDuration(c.Server.ShutdownTimeout, 10*time.Second)
}

// GetSessionTTL returns the explainer session TTL as a duration.
func (c *Config) GetSessionTTL() time.Duration {
	return parseDuration(c.Sessions.TTL, 30*time.Minute)
}

// GetSweepInterval returns how often idle sessions are swept.
func (c *Config) GetSweepInterval() time.Duration {
	return parseDuration(c.Sessions.SweepInterval, time.Minute)
}

// GetFrameInterval returns the tick period of the frame stream.
func (c *Config) GetFrameInterval() time.Duration {
	fps := c.Stream.FPS
	if fps <= 0 {
		fps = 30
	}
	return time.Second / time.Duration(fps)
}

// ValidLogLevels lists the accepted logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("invalid port: %q", c.Server.Port)
	}
	if c.Server.TemplatesDir == "" {
		return fmt.Errorf("templates_dir must be set")
	}
	if c.Stream.FPS < 1 || c.Stream.FPS > 120 {
		return fmt.Errorf("invalid stream fps: %d (valid: 1-120)", c.Stream.FPS)
	}
	if c.Sessions.Max < 1 {
		return fmt.Errorf("invalid sessions.max: %d (must be at least 1)", c.Sessions.Max)
	}
	for _, d := range []struct{ name, v string }{
		{"request_timeout", c.Server.RequestTimeout},
		{"shutdown_timeout", c.Server.ShutdownTimeout},
		{"sessions.ttl", c.Sessions.TTL},
		{"sessions.sweep_interval", c.Sessions.SweepInterval},
	} {
		if _, err := time.ParseDuration(d.v); err != nil {
			return fmt.Errorf("invalid %s: %w", d.name, err)
		}
	}

	validLevel := false
	for _, l := range ValidLogLevels {
		if c.Logging.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	return nil
}
