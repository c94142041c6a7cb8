// Package config loads tool settings from an optional YAML file and
// SYSINFOTOOL_* environment variable overrides.
package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no --config flag
// is given.
const DefaultFile = "sysinfotool.yaml"

// Build info, injected via ldflags.
var (
	Version   = "1.0.0"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Config holds the runtime settings for a scan session.
type Config struct {
	// CommandTimeout bounds every external tool invocation (nvidia-smi,
	// wmic, dmidecode).
	CommandTimeout time.Duration

	// SampleWindow is the blocking window used to measure per-core CPU
	// load during a scan.
	SampleWindow time.Duration

	// ExportDir is where exported reports are written.
	ExportDir string

	// Debug enables debug logging to stderr.
	Debug bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		CommandTimeout: 5 * time.Second,
		SampleWindow:   time.Second,
		ExportDir:      ".",
		Debug:          false,
	}
}

// fileConfig is the YAML schema. Durations are strings ("8s", "250ms") so
// the file stays readable; Load parses them.
type fileConfig struct {
	CommandTimeout string `yaml:"command_timeout"`
	SampleWindow   string `yaml:"sample_window"`
	ExportDir      string `yaml:"export_dir"`
	Debug          *bool  `yaml:"debug"`
}

// Load reads path (if it exists) over the defaults and then applies
// environment overrides. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if fc.CommandTimeout != "" {
			d, err := time.ParseDuration(fc.CommandTimeout)
			if err != nil {
				return cfg, fmt.Errorf("invalid command_timeout: %w", err)
			}
			cfg.CommandTimeout = d
		}
		if fc.SampleWindow != "" {
			d, err := time.ParseDuration(fc.SampleWindow)
			if err != nil {
				return cfg, fmt.Errorf("invalid sample_window: %w", err)
			}
			cfg.SampleWindow = d
		}
		if fc.ExportDir != "" {
			cfg.ExportDir = fc.ExportDir
		}
		if fc.Debug != nil {
			cfg.Debug = *fc.Debug
		}
	}

	applyEnv(&cfg)

	if cfg.CommandTimeout <= 0 {
		cfg.CommandTimeout = Default().CommandTimeout
	}
	if cfg.SampleWindow <= 0 {
		cfg.SampleWindow = Default().SampleWindow
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = "."
	}

	return cfg, nil
}

// applyEnv overrides settings from SYSINFOTOOL_* environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("SYSINFOTOOL_DEBUG"); v == "true" || v == "1" {
		cfg.Debug = true
	}
	if v := os.Getenv("SYSINFOTOOL_EXPORT_DIR"); v != "" {
		cfg.ExportDir = v
	}
	if v := os.Getenv("SYSINFOTOOL_COMMAND_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.CommandTimeout = d
		}
	}
	if v := os.Getenv("SYSINFOTOOL_SAMPLE_WINDOW"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.SampleWindow = d
		}
	}
}

// SetupLogging configures the process-wide logrus logger. Collector probe
// failures log at debug level; without debug enabled they are discarded so
// they cannot interleave with the interactive session output.
func (c Config) SetupLogging() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if c.Debug {
		logrus.SetLevel(logrus.DebugLevel)
		logrus.SetOutput(os.Stderr)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
		logrus.SetOutput(io.Discard)
	}
}
