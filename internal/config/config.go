package config

import (
	"fmt"
	"os"
	"path/filepath"

	"logbook/internal/errors"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Sort orders accepted by listing.sort.
const (
	SortByName = "name" // alphabetical
	SortNone   = "none" // filesystem enumeration order
)

// Config represents the application configuration structure.
// It controls how the root directory is listed, the color theme and logging.
// It never changes where the metadata directory lives.
type Config struct {
	Listing struct {
		Sort string   `yaml:"sort"` // Entry order: name or none
		Hide []string `yaml:"hide"` // Glob patterns for names left out of the listing
	} `yaml:"listing"`
	Theme struct {
		Name     string `yaml:"name"`     // Theme name (default, dark, light, etc.)
		Primary  string `yaml:"primary"`  // Primary color for titles and the selected row
		Success  string `yaml:"success"`  // Color of the input text while editing
		Warning  string `yaml:"warning"`  // Warning message color
		Error    string `yaml:"error"`    // Error message color
		Info     string `yaml:"info"`     // Help line color
		Emphasis string `yaml:"emphasis"` // Command names in the reference list
		Border   string `yaml:"border"`   // Border color for boxes
	} `yaml:"theme"`
	Log struct {
		Debug bool   `yaml:"debug"` // Enable debug entries
		JSON  bool   `yaml:"json"`  // One JSON object per line
		File  string `yaml:"file"`  // Log file used while the TUI is running
	} `yaml:"log"`
}

// DefaultPath returns $HOME/.config/logbook/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "logbook", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location
// (~/.config/logbook/config.yaml).
func LoadConfig() (*Config, error) {
	configPath, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.FromOS("error reading config file", path, errors.ConfigNotFound, err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	if tempCfg.Listing.Sort != "" {
		cfg.Listing.Sort = tempCfg.Listing.Sort
	}
	if len(tempCfg.Listing.Hide) > 0 {
		cfg.Listing.Hide = tempCfg.Listing.Hide
	}

	if tempCfg.Theme.Name != "" {
		cfg.ApplyTheme(tempCfg.Theme.Name)
	}
	mergeColor(&cfg.Theme.Primary, tempCfg.Theme.Primary)
	mergeColor(&cfg.Theme.Success, tempCfg.Theme.Success)
	mergeColor(&cfg.Theme.Warning, tempCfg.Theme.Warning)
	mergeColor(&cfg.Theme.Error, tempCfg.Theme.Error)
	mergeColor(&cfg.Theme.Info, tempCfg.Theme.Info)
	mergeColor(&cfg.Theme.Emphasis, tempCfg.Theme.Emphasis)
	mergeColor(&cfg.Theme.Border, tempCfg.Theme.Border)

	cfg.Log = tempCfg.Log

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func mergeColor(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

// defaultConfig returns the default configuration.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Listing.Sort = SortByName
	cfg.Listing.Hide = []string{}

	cfg.ApplyTheme("default")

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.FromOS("failed to create config directory", dir, errors.FileCreateFailed, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.FromOS("failed to write config file", path, errors.FileCreateFailed, err)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}

	switch c.Listing.Sort {
	case SortByName, SortNone:
	default:
		return errors.NewConfigError(fmt.Sprintf("invalid sort order %q", c.Listing.Sort), "listing.sort", errors.InvalidConfig, nil)
	}

	for i, pattern := range c.Listing.Hide {
		if pattern == "" {
			return errors.NewConfigError(fmt.Sprintf("hide pattern %d is empty", i), "listing.hide", errors.InvalidConfig, nil)
		}
		if _, err := glob.Compile(pattern); err != nil {
			return errors.NewConfigError(fmt.Sprintf("hide pattern %q", pattern), "listing.hide", errors.InvalidConfig, err)
		}
	}

	if !knownTheme(c.Theme.Name) {
		return errors.NewConfigError(fmt.Sprintf("unknown theme %q", c.Theme.Name), "theme.name", errors.InvalidConfig, nil)
	}

	return nil
}

// HidePatterns compiles listing.hide. Call Validate first; patterns that fail
// to compile are skipped.
func (c *Config) HidePatterns() []glob.Glob {
	patterns := make([]glob.Glob, 0, len(c.Listing.Hide))
	for _, p := range c.Listing.Hide {
		g, err := glob.Compile(p)
		if err != nil {
			continue
		}
		patterns = append(patterns, g)
	}
	return patterns
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// GetTheme returns a predefined theme configuration by name.
// If the theme doesn't exist, returns the default theme.
func GetTheme(name string) map[string]string {
	themes := map[string]map[string]string{
		"default": {
			"primary":  "213", // Purple
			"success":  "114", // Green
			"warning":  "220", // Yellow
			"error":    "196", // Red
			"info":     "39",  // Blue
			"emphasis": "212", // Light Pink
			"border":   "213", // Purple
		},
		"dark": {
			"primary":  "105", // Dark Blue
			"success":  "78",  // Dark Green
			"warning":  "214", // Dark Yellow
			"error":    "160", // Dark Red
			"info":     "33",  // Dark Blue
			"emphasis": "147", // Light Blue
			"border":   "105", // Dark Blue
		},
		"light": {
			"primary":  "135", // Light Purple
			"success":  "150", // Light Green
			"warning":  "222", // Light Yellow
			"error":    "210", // Light Red
			"info":     "117", // Light Blue
			"emphasis": "219", // Very Light Pink
			"border":   "135", // Light Purple
		},
		"monochrome": {
			"primary":  "245", // Light Grey
			"success":  "252", // White
			"warning":  "241", // Medium Grey
			"error":    "232", // Black
			"info":     "248", // Grey
			"emphasis": "255", // Bright White
			"border":   "245", // Light Grey
		},
		"ocean": {
			"primary":  "31",  // Teal
			"success":  "36",  // Green-Blue
			"warning":  "220", // Yellow
			"error":    "196", // Red
			"info":     "33",  // Blue
			"emphasis": "51",  // Cyan
			"border":   "31",  // Teal
		},
		"sunset": {
			"primary":  "208", // Orange
			"success":  "154", // Green
			"warning":  "214", // Dark Yellow
			"error":    "196", // Red
			"info":     "69",  // Light Green
			"emphasis": "203", // Pink-Orange
			"border":   "208", // Orange
		},
	}

	if theme, exists := themes[name]; exists {
		return theme
	}

	return themes["default"]
}

// ApplyTheme sets the theme in the configuration.
// It updates the theme colors based on the theme name.
func (c *Config) ApplyTheme(name string) {
	theme := GetTheme(name)

	c.Theme.Name = name
	c.Theme.Primary = theme["primary"]
	c.Theme.Success = theme["success"]
	c.Theme.Warning = theme["warning"]
	c.Theme.Error = theme["error"]
	c.Theme.Info = theme["info"]
	c.Theme.Emphasis = theme["emphasis"]
	c.Theme.Border = theme["border"]
}

// ListThemes returns a list of available theme names.
func ListThemes() []string {
	return []string{"default", "dark", "light", "monochrome", "ocean", "sunset"}
}

func knownTheme(name string) bool {
	for _, t := range ListThemes() {
		if t == name {
			return true
		}
	}
	return false
}
