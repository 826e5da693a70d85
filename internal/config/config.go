// Package config provides configuration types and defaults for glint.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glintlabs/glint/internal/log"
	"github.com/glintlabs/glint/internal/scheme"
)

// Config holds all configuration options for glint.
type Config struct {
	Editor  string        `mapstructure:"editor"` // command used by "open in editor", e.g. "vim +{line} {file}"
	UI      UIConfig      `mapstructure:"ui"`
	Theme   ThemeConfig   `mapstructure:"theme"`
	Watch   WatchConfig   `mapstructure:"watch"`
	Cache   CacheConfig   `mapstructure:"cache"`
	History HistoryConfig `mapstructure:"history"`
	Tracing TracingConfig `mapstructure:"tracing"`
	Log     LogConfig     `mapstructure:"log"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowLineNumbers bool `mapstructure:"show_line_numbers"` // Gutter with line numbers in the code pane
	ShowStatusBar   bool `mapstructure:"show_status_bar"`   // Status bar at the bottom
	TabWidth        int  `mapstructure:"tab_width"`         // Columns per tab stop (1-16)
}

// ThemeConfig holds color scheme selection options.
type ThemeConfig struct {
	// Scheme names the active color scheme. Built-ins: "glint-dark",
	// "glint-light". Schemes from SchemesDir are addressed by file name.
	Scheme string `mapstructure:"scheme"`

	// SchemesDir is an optional directory of Base16/Base24 YAML files to
	// load alongside the built-ins.
	SchemesDir string `mapstructure:"schemes_dir"`

	// Mode forces light or dark mode. If empty, uses terminal detection.
	// Valid values: "light", "dark", ""
	Mode string `mapstructure:"mode"`
}

// WatchConfig holds live reload configuration.
type WatchConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Debounce time.Duration `mapstructure:"debounce"` // Quiet period before a change is reported
}

// CacheConfig holds scan cache configuration.
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`   // How long cached scans stay valid
	Purge   time.Duration `mapstructure:"purge"` // Interval between expired-entry sweeps
}

// HistoryConfig holds scan history database configuration.
type HistoryConfig struct {
	Enabled bool `mapstructure:"enabled"`

	// Path is the SQLite database file.
	// Default: ~/.config/glint/history.db
	Path string `mapstructure:"path"`
}

// TracingConfig holds trace export configuration for scan instrumentation.
type TracingConfig struct {
	// Enabled controls whether tracing is active.
	// Default: false
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	// Default: "file"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for the "file" exporter.
	// Default: ~/.config/glint/traces/traces.jsonl
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for the "otlp" exporter.
	// Default: "localhost:4317"
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	// 1.0 = all traces, 0.1 = 10% of traces
	// Default: 1.0
	SampleRate float64 `mapstructure:"sample_rate"`
}

// LogConfig holds debug log configuration.
type LogConfig struct {
	// Level is the minimum severity written: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`

	// Path is the debug log file. Empty means the platform temp directory.
	Path string `mapstructure:"path"`
}

// DefaultTracesFilePath returns the default path for trace file export.
// Returns ~/.config/glint/traces/traces.jsonl or empty string if home dir unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "glint", "traces", "traces.jsonl")
}

// DefaultHistoryPath returns the default path for the scan history database.
// Returns ~/.config/glint/history.db or empty string if home dir unavailable.
func DefaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "glint", "history.db")
}

// ValidateTheme checks theme configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTheme(theme ThemeConfig) error {
	switch theme.Mode {
	case "", "light", "dark":
	default:
		return fmt.Errorf("theme.mode must be \"light\", \"dark\", or empty, got %q", theme.Mode)
	}

	if theme.SchemesDir != "" && !filepath.IsAbs(theme.SchemesDir) {
		return fmt.Errorf("theme.schemes_dir must be an absolute path, got %q", theme.SchemesDir)
	}

	return nil
}

// ValidateUI checks UI configuration for errors.
func ValidateUI(ui UIConfig) error {
	if ui.TabWidth < 1 || ui.TabWidth > 16 {
		return fmt.Errorf("ui.tab_width must be between 1 and 16, got %d", ui.TabWidth)
	}
	return nil
}

// ValidateWatch checks watch configuration for errors.
func ValidateWatch(watch WatchConfig) error {
	if watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %v", watch.Debounce)
	}
	return nil
}

// ValidateCache checks cache configuration for errors.
func ValidateCache(cache CacheConfig) error {
	if cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative, got %v", cache.TTL)
	}
	if cache.Purge < 0 {
		return fmt.Errorf("cache.purge must not be negative, got %v", cache.Purge)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tracing TracingConfig) error {
	// Validate SampleRate is in range [0.0, 1.0]
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout", "otlp":
			// Valid
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
		}
	}

	// Only validate path requirements when tracing is enabled
	if tracing.Enabled {
		if tracing.Exporter == "file" && tracing.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// ValidateLog checks log configuration for errors.
func ValidateLog(lc LogConfig) error {
	switch lc.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be \"debug\", \"info\", \"warn\", or \"error\", got %q", lc.Level)
	}
	return nil
}

// Validate checks the whole configuration for errors.
func (c Config) Validate() error {
	if err := ValidateUI(c.UI); err != nil {
		return err
	}
	if err := ValidateTheme(c.Theme); err != nil {
		return err
	}
	if err := ValidateWatch(c.Watch); err != nil {
		return err
	}
	if err := ValidateCache(c.Cache); err != nil {
		return err
	}
	if err := ValidateTracing(c.Tracing); err != nil {
		return err
	}
	return ValidateLog(c.Log)
}

// SchemeName returns the configured scheme, or the built-in default.
func (c Config) SchemeName() string {
	if c.Theme.Scheme != "" {
		return c.Theme.Scheme
	}
	return scheme.Default().Name
}

// MinLogLevel maps the configured level string to a log.Level.
func (c Config) MinLogLevel() log.Level {
	switch c.Log.Level {
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		UI: UIConfig{
			ShowLineNumbers: true,
			ShowStatusBar:   true,
			TabWidth:        4,
		},
		Theme: ThemeConfig{
			Scheme: scheme.Default().Name,
		},
		Watch: WatchConfig{
			Enabled:  true,
			Debounce: 200 * time.Millisecond,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     5 * time.Minute,
			Purge:   10 * time.Minute,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    "", // Derived from config dir at runtime
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "", // Derived from config dir at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# glint configuration

# Command used to open the previewed file in an editor.
# {file} and {line} are substituted before running.
# editor: "vim +{line} {file}"

# UI settings
ui:
  show_line_numbers: true  # Gutter with line numbers in the code pane
  show_status_bar: true    # Status bar at the bottom
  tab_width: 4             # Columns per tab stop

# Color scheme
theme:
  # Built-in schemes (run 'glint themes' to list them):
  #   glint-dark   - Default dark palette
  #   glint-light  - Light palette
  scheme: glint-dark
  #
  # Load extra Base16/Base24 YAML schemes from a directory:
  # schemes_dir: /home/you/.config/glint/schemes
  #
  # Force light or dark rendering instead of terminal detection:
  # mode: dark

# Live reload of previewed files
watch:
  enabled: true
  debounce: 200ms  # Quiet period before a change is re-scanned

# Scan cache (keyed by language and content)
cache:
  enabled: true
  ttl: 5m      # How long cached scans stay valid
  purge: 10m   # Interval between expired-entry sweeps

# Scan history database
history:
  enabled: true
  # path: ~/.config/glint/history.db

# Trace export for scan instrumentation
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp (default: file)
#   file_path: ~/.config/glint/traces/traces.jsonl  # Output file for file exporter
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)

# Debug log
log:
  level: info
  # path: /tmp/glint-debug.log
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	// Create parent directory if needed
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	// Write the template
	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
