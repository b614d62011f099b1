// Package config provides configuration management for hyprspace.
// It handles loading, merging, and accessing configuration from default and user config files.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

//go:embed default.toml
var defaultConfigData string

// Config структура
type Config struct {
	ScriptsDir    string             `toml:"scripts_dir"`
	Notifications NotificationConfig `toml:"notifications"`
	UI            UIConfig           `toml:"ui"`
}

// NotificationConfig за desktop notifications
type NotificationConfig struct {
	Enabled        bool   `toml:"enabled"`
	Tool           string `toml:"tool"`
	Timeout        int    `toml:"timeout"`
	Urgency        string `toml:"urgency"`
	ShowInTerminal bool   `toml:"show_in_terminal"`
}

// UIConfig за selector интерфейса
type UIConfig struct {
	ShowNumbers bool   `toml:"show_numbers"`
	Highlight   string `toml:"highlight"`
}

// NotificationConfigFile е за четене от TOML (с pointers за optional полета)
type NotificationConfigFile struct {
	Enabled        *bool   `toml:"enabled"`
	Tool           *string `toml:"tool"`
	Timeout        *int    `toml:"timeout"`
	Urgency        *string `toml:"urgency"`
	ShowInTerminal *bool   `toml:"show_in_terminal"`
}

// UIConfigFile е за четене от TOML
type UIConfigFile struct {
	ShowNumbers *bool   `toml:"show_numbers"`
	Highlight   *string `toml:"highlight"`
}

// ConfigFile е за четене от TOML файл
type ConfigFile struct {
	ScriptsDir    *string                `toml:"scripts_dir"`
	Notifications NotificationConfigFile `toml:"notifications"`
	UI            UIConfigFile           `toml:"ui"`
}

var globalConfig *Config

// GetUserConfigPath връща пътя до user config
func GetUserConfigPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "hyprspace", "config.toml")
}

// Load зарежда config с merge на defaults + user config
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	// 1. Зареди defaults
	defaultCfg, err := loadDefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	// 2. Опитай да заредиш user config
	userConfigPath := GetUserConfigPath()
	if _, err := os.Stat(userConfigPath); err == nil {
		userCfg, err := loadConfigFromFile(userConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load user config: %v\n", err)
			fmt.Fprintf(os.Stderr, "Using default configuration\n")
			globalConfig = defaultCfg
			return globalConfig, nil
		}
		// Merge user config с defaults
		globalConfig = mergeConfigs(defaultCfg, userCfg)
		return globalConfig, nil
	}

	// 3. Няма user config - използвай defaults
	globalConfig = defaultCfg
	return globalConfig, nil
}

// Get връща глобалния config (lazy load)
func Get() *Config {
	if globalConfig == nil {
		globalConfig, _ = Load()
	}
	return globalConfig
}

// ScriptsDirExpanded връща scripts директорията с разширено ~
func (c *Config) ScriptsDirExpanded() string {
	dir := c.ScriptsDir
	if len(dir) > 0 && dir[0] == '~' {
		dir = filepath.Join(os.Getenv("HOME"), dir[1:])
	}
	return dir
}

// loadDefaultConfig зарежда вградения default config
func loadDefaultConfig() (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(defaultConfigData, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadConfigFromFile зарежда config от файл
func loadConfigFromFile(path string) (*ConfigFile, error) {
	var cfg ConfigFile
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeConfigs merge user config с defaults (user override defaults)
func mergeConfigs(defaultCfg *Config, userCfg *ConfigFile) *Config {
	merged := *defaultCfg

	if userCfg.ScriptsDir != nil && *userCfg.ScriptsDir != "" {
		merged.ScriptsDir = *userCfg.ScriptsDir
	}

	mergeNotificationConfig(&merged.Notifications, &userCfg.Notifications)
	mergeUIConfig(&merged.UI, &userCfg.UI)

	return &merged
}

// mergeNotificationConfig мерджва notification конфигурация
func mergeNotificationConfig(merged *NotificationConfig, user *NotificationConfigFile) {
	if user.Enabled != nil {
		merged.Enabled = *user.Enabled
	}
	if user.Tool != nil && *user.Tool != "" {
		merged.Tool = *user.Tool
	}
	if user.Timeout != nil {
		merged.Timeout = *user.Timeout
	}
	if user.Urgency != nil && *user.Urgency != "" {
		merged.Urgency = *user.Urgency
	}
	if user.ShowInTerminal != nil {
		merged.ShowInTerminal = *user.ShowInTerminal
	}
}

// mergeUIConfig мерджва UI конфигурация
func mergeUIConfig(merged *UIConfig, user *UIConfigFile) {
	if user.ShowNumbers != nil {
		merged.ShowNumbers = *user.ShowNumbers
	}
	if user.Highlight != nil && *user.Highlight != "" {
		merged.Highlight = *user.Highlight
	}
}

// InitUserConfig копира default config в user config директорията
func InitUserConfig() error {
	userConfigPath := GetUserConfigPath()
	userConfigDir := filepath.Dir(userConfigPath)

	// Провери дали вече съществува
	if _, err := os.Stat(userConfigPath); err == nil {
		return fmt.Errorf("config already exists: %s", userConfigPath)
	}

	// Създай директорията
	if err := os.MkdirAll(userConfigDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Запиши default config
	if err := os.WriteFile(userConfigPath, []byte(defaultConfigData), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetDefaultConfigContent връща съдържанието на default config
func GetDefaultConfigContent() string {
	return defaultConfigData
}
