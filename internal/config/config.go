// Package config loads siteboard settings from ~/.siteboard/config.yaml.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"siteboard/internal/prefkv"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	// HomeEnv overrides the ~/.siteboard base directory.
	HomeEnv = "SITEBOARD_HOME"
	// ConfigEnv overrides the config file path.
	ConfigEnv = "SITEBOARD_CONFIG"
	// ProjectDirEnv overrides projects_dir.
	ProjectDirEnv = "SITEBOARD_PROJECTS_DIR"

	defaultHomeDir = ".siteboard"
	configFileName = "config.yaml"
)

// Storage backends.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config is the on-disk configuration.
type Config struct {
	Storage struct {
		Backend string `yaml:"backend"` // memory, file, or sqlite
		Path    string `yaml:"path"`    // default depends on backend
	} `yaml:"storage"`
	ProjectsDir string `yaml:"projects_dir"`
	Log         struct {
		Level string `yaml:"level"` // debug, info, warn, error
		File  string `yaml:"file"`  // TUI log destination
	} `yaml:"log"`
	Telemetry struct {
		ServiceName string `yaml:"service_name"`
	} `yaml:"telemetry"`

	home string
}

// HomeDir returns SITEBOARD_HOME if set, otherwise ~/.siteboard.
func HomeDir() (string, error) {
	if h := os.Getenv(HomeEnv); h != "" {
		return h, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, defaultHomeDir), nil
}

// DefaultPath returns SITEBOARD_CONFIG if set, otherwise <home>/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv(ConfigEnv); p != "" {
		return p, nil
	}
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configFileName), nil
}

// Load reads the config from DefaultPath.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the config at path. A missing file yields defaults.
// Unset fields keep their defaults.
func LoadFile(path string) (*Config, error) {
	home, err := HomeDir()
	if err != nil {
		return nil, err
	}
	cfg := defaults(home)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if dir := os.Getenv(ProjectDirEnv); dir != "" {
		cfg.ProjectsDir = dir
	}
	cfg.fillPaths()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Default returns the configuration used when no file exists, rooted at home.
func Default(home string) *Config {
	cfg := defaults(home)
	cfg.fillPaths()
	return cfg
}

// defaults sets everything except the home-relative paths, which depend on
// what the file chooses.
func defaults(home string) *Config {
	cfg := &Config{home: home}
	cfg.Storage.Backend = BackendFile
	cfg.Log.Level = "info"
	cfg.Telemetry.ServiceName = "siteboard"
	return cfg
}

// fillPaths sets path defaults that depend on home and the chosen backend.
func (c *Config) fillPaths() {
	if c.ProjectsDir == "" {
		c.ProjectsDir = filepath.Join(c.home, "projects")
	}
	if c.Log.File == "" {
		c.Log.File = filepath.Join(c.home, "siteboard.log")
	}
	if c.Storage.Path == "" {
		switch c.Storage.Backend {
		case BackendFile:
			c.Storage.Path = filepath.Join(c.home, "prefs.json")
		case BackendSQLite:
			c.Storage.Path = filepath.Join(c.home, "prefs.db")
		}
	}
}

// SetBackend switches backend and recomputes its default path unless the
// config pins one explicitly for that backend.
func (c *Config) SetBackend(backend string) {
	if backend == c.Storage.Backend {
		return
	}
	prevDefault := ""
	switch c.Storage.Backend {
	case BackendFile:
		prevDefault = filepath.Join(c.home, "prefs.json")
	case BackendSQLite:
		prevDefault = filepath.Join(c.home, "prefs.db")
	}
	if c.Storage.Path == prevDefault {
		c.Storage.Path = ""
	}
	c.Storage.Backend = backend
	c.fillPaths()
}

// Validate checks backend and log level.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}
	switch c.Storage.Backend {
	case BackendMemory, BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("invalid storage backend: %q", c.Storage.Backend)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %q", c.Log.Level)
	}
	return lvl, nil
}

// nopCloser is returned for backends that hold no resources.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenStorage builds the configured backend. The returned closer must be
// closed when the storage is no longer used.
func OpenStorage(c *Config) (prefkv.Storage, io.Closer, error) {
	switch c.Storage.Backend {
	case BackendMemory:
		return prefkv.NewMemory(), nopCloser{}, nil
	case BackendFile:
		return prefkv.NewFile(c.Storage.Path), nopCloser{}, nil
	case BackendSQLite:
		db, err := prefkv.OpenSQLite(c.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		return db, db, nil
	}
	return nil, nil, fmt.Errorf("invalid storage backend: %q", c.Storage.Backend)
}

// Save writes the configuration to path, creating parent directories.
func Save(c *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
