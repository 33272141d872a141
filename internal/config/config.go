package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/matui/internal/app"
	"github.com/atomicstack/matui/internal/client"
	"github.com/atomicstack/matui/internal/ui"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	// File is the config file that was read, if any.
	File  string
	Flags map[string]string
	Args  []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const envPrefix = "MATUI"

const (
	keyTick         = "tick"
	keyWidth        = "width"
	keyHeight       = "height"
	keyHelpKey      = "help-key"
	keyQuitKey      = "quit-key"
	keyHideHelp     = "hide-help"
	keyTrace        = "trace"
	keyVerbose      = "verbose"
	keyLogFile      = "log-file"
	keySyncInterval = "sync-interval"
	keyConfig       = "config"
)

var settingKeys = []string{
	keyTick, keyWidth, keyHeight, keyHelpKey, keyQuitKey, keyHideHelp,
	keyTrace, keyVerbose, keyLogFile, keySyncInterval,
}

// RegisterFlags adds every option to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Duration(keyTick, app.DefaultTick, "animation and input polling period")
	fs.Int(keyWidth, 0, "viewport width in cells (0 uses terminal width)")
	fs.Int(keyHeight, 0, "viewport height in rows (0 uses terminal height)")
	fs.String(keyHelpKey, ui.DefaultHelpKey, "key chord toggling the help footer")
	fs.String(keyQuitKey, ui.DefaultQuitKey, "key chord asking to exit")
	fs.Bool(keyHideHelp, false, "start with the help footer hidden")
	fs.Bool(keyTrace, false, "enable JSON trace logging")
	fs.Bool(keyVerbose, false, "append underlying errors to failure messages")
	fs.String(keyLogFile, "", "path to the log file")
	fs.Duration(keySyncInterval, client.DefaultSyncInterval, "minimum spacing between sync passes")
	fs.String(keyConfig, "", "path to a TOML or YAML config file")
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("matui", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return Resolve(fs, environ, args)
}

// Resolve layers parsed flags over MATUI_* variables from environ, then the
// config file, then the flag defaults.
func Resolve(fs *pflag.FlagSet, environ []string, args []string) (Config, error) {
	env := parseEnv(environ)
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}

	file, err := readConfigFile(v, fs, env)
	if err != nil {
		return Config{}, err
	}

	// Explicit flags win over the environment; viper.Set would otherwise
	// shadow them.
	for _, key := range settingKeys {
		if flag := fs.Lookup(key); flag != nil && flag.Changed {
			continue
		}
		if value, ok := env[envName(key)]; ok && strings.TrimSpace(value) != "" {
			v.Set(key, value)
		}
	}

	tick, err := durationValue(v, keyTick)
	if err != nil {
		return Config{}, err
	}
	syncInterval, err := durationValue(v, keySyncInterval)
	if err != nil {
		return Config{}, err
	}
	width, err := intValue(v, keyWidth)
	if err != nil {
		return Config{}, err
	}
	height, err := intValue(v, keyHeight)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Tick:         tick,
			Width:        width,
			Height:       height,
			HelpKey:      strings.TrimSpace(v.GetString(keyHelpKey)),
			QuitKey:      strings.TrimSpace(v.GetString(keyQuitKey)),
			HideHelp:     v.GetBool(keyHideHelp),
			Verbose:      v.GetBool(keyVerbose),
			SyncInterval: syncInterval,
		},
		Logging: Logging{
			FilePath: v.GetString(keyLogFile),
			Trace:    v.GetBool(keyTrace),
		},
		File: file,
		Args: append([]string(nil), args...),
	}
	cfg.Flags = map[string]string{
		keyTick:         tick.String(),
		keyWidth:        strconv.Itoa(width),
		keyHeight:       strconv.Itoa(height),
		keyHelpKey:      cfg.App.HelpKey,
		keyQuitKey:      cfg.App.QuitKey,
		keyHideHelp:     strconv.FormatBool(cfg.App.HideHelp),
		keyTrace:        strconv.FormatBool(cfg.Logging.Trace),
		keyVerbose:      strconv.FormatBool(cfg.App.Verbose),
		keyLogFile:      cfg.Logging.FilePath,
		keySyncInterval: syncInterval.String(),
		keyConfig:       file,
	}
	return cfg, nil
}

// readConfigFile loads --config or MATUI_CONFIG when given, and otherwise
// looks for config.{toml,yaml} under the user config directory. A missing
// default file is not an error.
func readConfigFile(v *viper.Viper, fs *pflag.FlagSet, env map[string]string) (string, error) {
	path := ""
	if flag := fs.Lookup(keyConfig); flag != nil {
		path = flag.Value.String()
	}
	if path == "" {
		path = env[envName(keyConfig)]
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("read config %s: %w", path, err)
		}
		return v.ConfigFileUsed(), nil
	}

	dir := defaultConfigDir(env)
	if dir == "" {
		return "", nil
	}
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("read config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

func defaultConfigDir(env map[string]string) string {
	if base := env["XDG_CONFIG_HOME"]; base != "" {
		return filepath.Join(base, "matui")
	}
	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "matui")
	}
	return ""
}

func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func durationValue(v *viper.Viper, key string) (time.Duration, error) {
	raw := strings.TrimSpace(v.GetString(key))
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	return d, nil
}

func intValue(v *viper.Viper, key string) (int, error) {
	raw := strings.TrimSpace(v.GetString(key))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q: %w", key, raw, err)
	}
	return n, nil
}

// Validate rejects options the runtime cannot honour.
func Validate(cfg Config) error {
	if cfg.App.Tick <= 0 {
		return fmt.Errorf("tick must be > 0 (got %s)", cfg.App.Tick)
	}
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.HelpKey == "" {
		return errors.New("help-key must not be empty")
	}
	if cfg.App.QuitKey == "" {
		return errors.New("quit-key must not be empty")
	}
	if cfg.App.HelpKey == cfg.App.QuitKey {
		return fmt.Errorf("help-key and quit-key are both %q", cfg.App.HelpKey)
	}
	if cfg.App.SyncInterval < 0 {
		return fmt.Errorf("sync-interval must be >= 0 (got %s)", cfg.App.SyncInterval)
	}
	return nil
}
