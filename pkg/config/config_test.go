package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg, err := loadDefaultConfig()
	if err != nil {
		t.Fatalf("embedded default config does not decode: %v", err)
	}

	if cfg.ScriptsDir != "~/.config/hyprspace" {
		t.Errorf("ScriptsDir = %q", cfg.ScriptsDir)
	}
	if !cfg.Notifications.Enabled {
		t.Error("notifications disabled by default")
	}
	if cfg.Notifications.Timeout != 5000 {
		t.Errorf("Timeout = %d, want 5000", cfg.Notifications.Timeout)
	}
	if !cfg.UI.ShowNumbers {
		t.Error("UI.ShowNumbers false by default")
	}
	if cfg.UI.Highlight == "" {
		t.Error("UI.Highlight empty by default")
	}
}

func TestMergeConfigsUserOverrides(t *testing.T) {
	defaults, err := loadDefaultConfig()
	if err != nil {
		t.Fatal(err)
	}

	scriptsDir := "~/layouts"
	enabled := false
	highlight := "5"
	user := &ConfigFile{
		ScriptsDir:    &scriptsDir,
		Notifications: NotificationConfigFile{Enabled: &enabled},
		UI:            UIConfigFile{Highlight: &highlight},
	}

	merged := mergeConfigs(defaults, user)

	if merged.ScriptsDir != "~/layouts" {
		t.Errorf("ScriptsDir = %q, want user override", merged.ScriptsDir)
	}
	if merged.Notifications.Enabled {
		t.Error("Notifications.Enabled not overridden")
	}
	if merged.UI.Highlight != "5" {
		t.Errorf("UI.Highlight = %q, want %q", merged.UI.Highlight, "5")
	}

	// Полета без user стойност запазват defaults
	if merged.Notifications.Timeout != defaults.Notifications.Timeout {
		t.Errorf("Timeout = %d, default lost", merged.Notifications.Timeout)
	}
	if merged.UI.ShowNumbers != defaults.UI.ShowNumbers {
		t.Error("ShowNumbers default lost")
	}
}

func TestMergeConfigsEmptyUserKeepsDefaults(t *testing.T) {
	defaults, err := loadDefaultConfig()
	if err != nil {
		t.Fatal(err)
	}

	merged := mergeConfigs(defaults, &ConfigFile{})

	if *merged != *defaults {
		t.Errorf("empty user config changed defaults: %+v", merged)
	}
}

func TestScriptsDirExpanded(t *testing.T) {
	t.Setenv("HOME", "/home/test")

	cfg := &Config{ScriptsDir: "~/.config/hyprspace"}
	if got := cfg.ScriptsDirExpanded(); got != "/home/test/.config/hyprspace" {
		t.Errorf("ScriptsDirExpanded = %q", got)
	}

	cfg = &Config{ScriptsDir: "/abs/path"}
	if got := cfg.ScriptsDirExpanded(); got != "/abs/path" {
		t.Errorf("absolute path changed: %q", got)
	}
}

func TestInitUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := InitUserConfig(); err != nil {
		t.Fatalf("InitUserConfig: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(home, ".config", "hyprspace", "config.toml"))
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if string(data) != defaultConfigData {
		t.Error("written config differs from embedded defaults")
	}

	// Повторен init не трябва да презаписва
	err = InitUserConfig()
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("second init did not refuse: %v", err)
	}
}
