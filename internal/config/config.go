package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"movieform/internal/eventbus"
)

// FileName is the config file looked up in the user config directory
const FileName = "config.toml"

// Config represents the application configuration
type Config struct {
	Version int            `toml:"version"`
	Search  SearchSettings `toml:"search"`
	UI      UISettings     `toml:"ui"`
	Log     LogSettings    `toml:"log"`
}

// SearchSettings configures the title autocomplete
type SearchSettings struct {
	Endpoint       string `toml:"endpoint"`
	Path           string `toml:"path"`
	TimeoutMS      int    `toml:"timeout_ms"`
	DebounceMS     int    `toml:"debounce_ms"`
	MinQueryLength int    `toml:"min_query_length"`
	Offline        bool   `toml:"offline"`
	CatalogFile    string `toml:"catalog_file,omitempty"`
	CacheSize      int    `toml:"cache_size"`
	CacheTTLMS     int    `toml:"cache_ttl_ms"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	DropdownHeight int `toml:"dropdown_height"`
	ToastMS        int `toml:"toast_ms"`
}

// LogSettings controls the log file
type LogSettings struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Timeout returns the per-request timeout
func (s SearchSettings) Timeout() time.Duration {
	return time.Duration(s.TimeoutMS) * time.Millisecond
}

// Debounce returns the quiet interval before a search fires
func (s SearchSettings) Debounce() time.Duration {
	return time.Duration(s.DebounceMS) * time.Millisecond
}

// CacheTTL returns how long a cached result stays valid
func (s SearchSettings) CacheTTL() time.Duration {
	return time.Duration(s.CacheTTLMS) * time.Millisecond
}

// ToastLifetime returns how long a toast stays on screen
func (u UISettings) ToastLifetime() time.Duration {
	return time.Duration(u.ToastMS) * time.Millisecond
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service rooted in the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "movieform", FileName),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support.
// An empty path selects the default location.
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	if path != "" {
		cs.filePath = path
	}
	return cs
}

// Path returns the file Load and Save operate on
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when the
// file does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:     cs.filePath,
			Endpoint: cfg.Search.Endpoint,
			Offline:  cfg.Search.Offline,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from the
// file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate rejects settings the autocomplete cannot run with
func (c *Config) Validate() error {
	s := c.Search
	switch {
	case !s.Offline && s.Endpoint == "":
		return fmt.Errorf("invalid config: search.endpoint is required unless search.offline is set")
	case s.MinQueryLength < 1:
		return fmt.Errorf("invalid config: search.min_query_length must be at least 1, got %d", s.MinQueryLength)
	case s.DebounceMS < 0 || s.TimeoutMS < 0 || s.CacheTTLMS < 0:
		return fmt.Errorf("invalid config: durations must not be negative")
	case s.CacheSize < 0:
		return fmt.Errorf("invalid config: search.cache_size must not be negative, got %d", s.CacheSize)
	case c.UI.DropdownHeight < 1:
		return fmt.Errorf("invalid config: ui.dropdown_height must be at least 1, got %d", c.UI.DropdownHeight)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Search: SearchSettings{
			Endpoint:       "http://localhost:5000",
			Path:           "/api/movies/search",
			TimeoutMS:      5000,
			DebounceMS:     300,
			MinQueryLength: 2,
			CacheSize:      64,
			CacheTTLMS:     60000,
		},
		UI: UISettings{
			DropdownHeight: 6,
			ToastMS:        3000,
		},
		Log: LogSettings{
			File:  "movieform.log",
			Level: "info",
		},
	}
}
