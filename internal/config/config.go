package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/shiftlog-dev/shiftlog/internal/blob"
	"github.com/shiftlog-dev/shiftlog/internal/log"
	"github.com/shiftlog-dev/shiftlog/internal/report"
)

// FileName is the config file name inside the data directory.
const FileName = "shiftlog.yaml"

// Environment variables that override config values.
const (
	EnvDir      = "SHIFTLOG_DIR"
	EnvBackend  = "SHIFTLOG_BACKEND"
	EnvLogLevel = "SHIFTLOG_LOG_LEVEL"
)

// Config represents shiftlog.yaml.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
	Git     GitConfig     `yaml:"git"`
}

// StorageConfig selects where entries are persisted.
type StorageConfig struct {
	Backend string `yaml:"backend"` // file, sqlite, memory
	Path    string `yaml:"path"`    // relative to the data directory
	Key     string `yaml:"key"`     // blob name (sqlite row key)
}

// DisplayConfig controls how month groups are ordered.
type DisplayConfig struct {
	Order string `yaml:"order"` // first-seen, calendar
}

// LogConfig controls diagnostics on stderr.
type LogConfig struct {
	Level string `yaml:"level"`
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a shiftlog.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default().
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new data directory.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: string(blob.BackendFile),
			Path:    "timesheet.json",
			Key:     "timesheetEntries",
		},
		Display: DisplayConfig{
			Order: string(report.OrderFirstSeen),
		},
		Log: LogConfig{
			Level: "info",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Shiftlog",
			AuthorEmail: "shiftlog@localhost",
		},
	}
}

// LoadDotEnv loads .env from the working directory when present. Variables
// already set in the environment win.
func LoadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// ApplyEnv overlays environment overrides onto cfg.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvBackend)); v != "" {
		c.Storage.Backend = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Log.Level = v
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if !blob.Backend(c.Storage.Backend).IsValid() {
		problems = append(problems, fmt.Sprintf("invalid storage backend %q: must be file, sqlite or memory", c.Storage.Backend))
	}
	if c.Storage.Backend != string(blob.BackendMemory) && strings.TrimSpace(c.Storage.Path) == "" {
		problems = append(problems, "storage path cannot be empty")
	}
	if strings.TrimSpace(c.Storage.Key) == "" {
		problems = append(problems, "storage key cannot be empty")
	}
	if !report.Order(c.Display.Order).IsValid() {
		problems = append(problems, fmt.Sprintf("invalid display order %q: must be first-seen or calendar", c.Display.Order))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// BlobConfig returns the blob backend settings rooted at dir.
func (c *Config) BlobConfig(dir string) blob.Config {
	return blob.Config{
		Backend: blob.Backend(c.Storage.Backend),
		Path:    c.Storage.Path,
		Key:     c.Storage.Key,
		Dir:     dir,
	}
}
