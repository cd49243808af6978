package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"dropdown/internal/domain"
	"dropdown/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Label        string         `toml:"label"`
	Language     string         `toml:"language"`
	ChoicesFile  string         `toml:"choices_file"`
	Watch        bool           `toml:"watch"`
	ExitOnSelect bool           `toml:"exit_on_select"`
	UI           UISettings     `toml:"ui"`
	Log          LogSettings    `toml:"log"`
	Choices      []ChoiceConfig `toml:"choices,omitempty"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Width      int `toml:"width"`
	MaxVisible int `toml:"max_visible"`
}

// LogSettings controls the diagnostics log
type LogSettings struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// ChoiceConfig is an inline choice, used when no choices file is given
type ChoiceConfig struct {
	ID       string `toml:"id"`
	Text     string `toml:"text"`
	Value    string `toml:"value"`
	Disabled bool   `toml:"disabled"`
	Selected bool   `toml:"selected"`
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

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "dropdown", "config.toml")
}

// NewConfigService creates a config service for path. An empty path uses
// DefaultPath.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file Load and Save use
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields the defaults.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	// Publish ConfigLoaded event if bus is available
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:     cs.filePath,
			Language: cfg.Language,
		})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	// Publish ConfigSaved event if bus is available
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, os.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
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

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		UI: UISettings{
			Width:      40,
			MaxVisible: 8,
		},
		Log: LogSettings{
			Level: "info",
			File:  "dropdown.log",
		},
	}
}

// Validate reports the first setting that cannot be used
func (c *Config) Validate() error {
	if c.UI.Width < 0 {
		return fmt.Errorf("ui.width must be >= 0, got %d", c.UI.Width)
	}
	if c.UI.MaxVisible < 0 {
		return fmt.Errorf("ui.max_visible must be >= 0, got %d", c.UI.MaxVisible)
	}
	if lvl := strings.TrimSpace(c.Log.Level); lvl != "" {
		if _, err := log.ParseLevel(lvl); err != nil {
			return fmt.Errorf("invalid log.level: %q", c.Log.Level)
		}
	}
	if tag := strings.TrimSpace(c.Language); tag != "" {
		if _, err := language.Parse(strings.ReplaceAll(tag, "_", "-")); err != nil {
			return fmt.Errorf("invalid language: %q", c.Language)
		}
	}

	seen := map[string]struct{}{}
	for i, ch := range c.Choices {
		if strings.TrimSpace(ch.Text) == "" {
			return fmt.Errorf("choices[%d].text is required", i)
		}
		if ch.ID == "" {
			continue
		}
		if _, ok := seen[ch.ID]; ok {
			return fmt.Errorf("choices[%d].id is duplicated: %s", i, ch.ID)
		}
		seen[ch.ID] = struct{}{}
	}
	return nil
}

// DomainChoices converts the inline choices. Missing ids and values are
// filled from the position, the same way choice files are read.
func (c *Config) DomainChoices() []domain.Choice {
	out := make([]domain.Choice, 0, len(c.Choices))
	for i, ch := range c.Choices {
		choice := domain.Choice{
			ID:       ch.ID,
			Text:     ch.Text,
			Value:    ch.Value,
			Disabled: ch.Disabled,
			Selected: ch.Selected,
		}
		out = append(out, choice.WithPositionDefaults(i))
	}
	return out
}

// LogLevel returns the configured level, info when unset
func (c *Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(strings.TrimSpace(c.Log.Level))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
