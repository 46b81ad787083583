package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	ViewBoard = "board"
	ViewWeek  = "week"
)

// Config holds the unified application configuration
type Config struct {
	Seed         string `json:"seed"`
	IntakeColumn string `json:"intake_column"`
	Theme        string `json:"theme"`
	DefaultView  string `json:"default_view"`
	LogDir       string `json:"log_dir"`
}

// Settings represents the config file structure
type Settings struct {
	Seed         string `json:"seed,omitempty"`
	IntakeColumn string `json:"intake_column,omitempty"`
	Theme        string `json:"theme,omitempty"`
	DefaultView  string `json:"default_view,omitempty"`
	LogDir       string `json:"log_dir,omitempty"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	Seed  string
	View  string
	Theme string
}

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	cfg := &Config{
		IntakeColumn: "todo",
		Theme:        ThemeLight,
		DefaultView:  ViewBoard,
	}

	// Try loading config file first for base values
	configPath, err := getConfigPath()
	if err == nil {
		if fileConfig, err := loadConfigFile(configPath); err == nil {
			cfg.apply(*fileConfig)
		}
	}

	// Priority 2: Environment variables override config file
	cfg.apply(Settings{
		Seed:   os.Getenv("TASKBOARD_SEED"),
		Theme:  os.Getenv("TASKBOARD_THEME"),
		LogDir: os.Getenv("TASKBOARD_LOG_DIR"),
	})

	// Priority 1: CLI flags override everything
	cfg.apply(Settings{
		Seed:        flags.Seed,
		Theme:       flags.Theme,
		DefaultView: flags.View,
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) apply(s Settings) {
	if s.Seed != "" {
		c.Seed = expandPath(s.Seed)
	}
	if s.IntakeColumn != "" {
		c.IntakeColumn = s.IntakeColumn
	}
	if s.Theme != "" {
		c.Theme = strings.ToLower(s.Theme)
	}
	if s.DefaultView != "" {
		c.DefaultView = strings.ToLower(s.DefaultView)
	}
	if s.LogDir != "" {
		c.LogDir = expandPath(s.LogDir)
	}
}

// Validate rejects unknown themes and views
func (c *Config) Validate() error {
	if c.Theme != ThemeLight && c.Theme != ThemeDark {
		return fmt.Errorf("invalid theme %q (want light or dark)", c.Theme)
	}
	if c.DefaultView != ViewBoard && c.DefaultView != ViewWeek {
		return fmt.Errorf("invalid view %q (want board or week)", c.DefaultView)
	}
	return nil
}

// IsDark reports whether the dark theme is selected
func (c *Config) IsDark() bool {
	return c.Theme == ThemeDark
}

// getConfigPath returns the path to the configuration file
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "taskboard", "config.json"), nil
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

func writeConfigFile(path string, settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	return writeConfigFile(configPath, Settings{
		IntakeColumn: "todo",
		Theme:        ThemeLight,
		DefaultView:  ViewBoard,
	})
}

// SaveTheme persists the theme preference, keeping the rest of the file
func SaveTheme(dark bool) error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	settings := Settings{}
	if existing, err := loadConfigFile(configPath); err == nil {
		settings = *existing
	}

	settings.Theme = ThemeLight
	if dark {
		settings.Theme = ThemeDark
	}

	return writeConfigFile(configPath, settings)
}

// ParseCommaSeparated splits a comma-separated string into a slice
func ParseCommaSeparated(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
