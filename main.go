package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/atomicstack/matui/internal/app"
	"github.com/atomicstack/matui/internal/backend"
	"github.com/atomicstack/matui/internal/config"
	"github.com/atomicstack/matui/internal/logging"
	"github.com/atomicstack/matui/internal/logging/events"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const appName = "matui"

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

// configError marks failures that should exit with status 2.
type configError struct{ err error }

func (e configError) Error() string { return "Configuration error: " + e.err.Error() }
func (e configError) Unwrap() error { return e.err }

func main() {
	cmd := newRootCommand(os.Environ())
	if err := cmd.Execute(); err != nil {
		var cfgErr configError
		if errors.As(err, &cfgErr) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand(environ []string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Terminal client for Matrix",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(cmd.Flags(), environ, os.Args[1:])
			if err != nil {
				return configError{err}
			}
			if err := config.Validate(cfg); err != nil {
				return configError{err}
			}
			return run(cfg)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return configError{err}
	})
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func run(cfg config.Config) error {
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	defer logging.Close()

	traceStartup(cfg)

	if err := app.Run(cfg.App, backend.NewMatrix(clientID())); err != nil {
		logging.Error(err)
		return err
	}
	return nil
}

// clientID names this device to the home server.
func clientID() string {
	return fmt.Sprintf("%s v%s (%s)", appName, version, osName(runtime.GOOS))
}

func osName(goos string) string {
	switch goos {
	case "windows":
		return "Windows"
	case "darwin":
		return "macOS"
	default:
		return "Linux"
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"config":   cfg,
		"clientID": clientID(),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		file *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.file.Fd())
		if !term.IsTerminal(fd) {
			results = append(results, entry)
			continue
		}
		entry.IsTerminal = true
		width, height, err := term.GetSize(fd)
		if err != nil {
			entry.Error = err.Error()
		} else {
			entry.Width, entry.Height = width, height
			if detected == nil {
				detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
