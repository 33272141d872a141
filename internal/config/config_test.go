package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/matui/internal/app"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := app.Config{
		Tick:         100 * time.Millisecond,
		HelpKey:      "alt+?",
		QuitKey:      "ctrl+d",
		SyncInterval: 250 * time.Millisecond,
	}
	if cfg.App != want {
		t.Fatalf("expected %#v, got %#v", want, cfg.App)
	}
	if cfg.Logging.Trace || cfg.Logging.FilePath != "" {
		t.Fatalf("unexpected logging config %#v", cfg.Logging)
	}
	if cfg.File != "" {
		t.Fatalf("expected no config file, got %q", cfg.File)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadArgsFlags(t *testing.T) {
	args := []string{
		"--tick", "50ms", "--width", "100", "--height", "30",
		"--help-key", "ctrl+h", "--quit-key", "ctrl+q",
		"--hide-help", "--trace", "--verbose", "--log-file", "/tmp/matui.log",
	}
	cfg, err := LoadArgs(args, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Tick != 50*time.Millisecond || cfg.App.Width != 100 || cfg.App.Height != 30 {
		t.Fatalf("unexpected sizes %#v", cfg.App)
	}
	if cfg.App.HelpKey != "ctrl+h" || cfg.App.QuitKey != "ctrl+q" {
		t.Fatalf("unexpected keys %#v", cfg.App)
	}
	if !cfg.App.HideHelp || !cfg.App.Verbose || !cfg.Logging.Trace {
		t.Fatalf("expected boolean flags set, got %#v / %#v", cfg.App, cfg.Logging)
	}
	if cfg.Logging.FilePath != "/tmp/matui.log" {
		t.Fatalf("expected log file, got %q", cfg.Logging.FilePath)
	}
	if cfg.Flags["width"] != "100" || cfg.Flags["tick"] != "50ms" {
		t.Fatalf("unexpected flag summary %#v", cfg.Flags)
	}
	if len(cfg.Args) != len(args) {
		t.Fatalf("expected args to be recorded, got %#v", cfg.Args)
	}
}

func TestEnvironmentUnderFlags(t *testing.T) {
	env := []string{
		"MATUI_WIDTH=90",
		"MATUI_HEIGHT=20",
		"MATUI_HIDE_HELP=true",
		"MATUI_TICK=200ms",
		"MATUI_QUIT_KEY=ctrl+x",
	}
	cfg, err := LoadArgs([]string{"--height", "40"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 90 {
		t.Fatalf("expected env width 90, got %d", cfg.App.Width)
	}
	if cfg.App.Height != 40 {
		t.Fatalf("expected flag height 40 to win, got %d", cfg.App.Height)
	}
	if !cfg.App.HideHelp || cfg.App.Tick != 200*time.Millisecond || cfg.App.QuitKey != "ctrl+x" {
		t.Fatalf("env values not applied: %#v", cfg.App)
	}
}

func TestConfigFileUnderEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "matui.toml")
	content := "width = 70\nheight = 25\nverbose = true\nhelp-key = \"f1\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadArgs([]string{"--config", path}, []string{"MATUI_HEIGHT=22"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.File != path {
		t.Fatalf("expected config file %q, got %q", path, cfg.File)
	}
	if cfg.App.Width != 70 || cfg.App.Height != 22 {
		t.Fatalf("expected width from file and height from env, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if !cfg.App.Verbose || cfg.App.HelpKey != "f1" {
		t.Fatalf("file values not applied: %#v", cfg.App)
	}
}

func TestDefaultConfigFileFromHome(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".config", "matui")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("width: 64\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadArgs(nil, []string{"HOME=" + home})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 64 {
		t.Fatalf("expected width from default config, got %d", cfg.App.Width)
	}

	cfg, err = LoadArgs(nil, []string{"HOME=" + t.TempDir()})
	if err != nil {
		t.Fatalf("missing default config should not fail: %v", err)
	}
	if cfg.File != "" {
		t.Fatalf("expected no config file, got %q", cfg.File)
	}
}

func TestLoadArgsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  []string
		want string
	}{
		{"unknown flag", []string{"--socket", "x"}, nil, "unknown flag"},
		{"bad env tick", nil, []string{"MATUI_TICK=soon"}, "tick"},
		{"bad env width", nil, []string{"MATUI_WIDTH=wide"}, "width"},
		{"missing config", []string{"--config", "/nonexistent/matui.toml"}, nil, "read config"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadArgs(tc.args, tc.env)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	base, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tick", func(c *Config) { c.App.Tick = 0 }},
		{"negative width", func(c *Config) { c.App.Width = -1 }},
		{"negative height", func(c *Config) { c.App.Height = -1 }},
		{"empty help key", func(c *Config) { c.App.HelpKey = "" }},
		{"empty quit key", func(c *Config) { c.App.QuitKey = "" }},
		{"same keys", func(c *Config) { c.App.QuitKey = c.App.HelpKey }},
		{"negative sync interval", func(c *Config) { c.App.SyncInterval = -time.Second }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			if err := Validate(cfg); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
