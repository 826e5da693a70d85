package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	require.True(t, cfg.UI.ShowLineNumbers)
	require.True(t, cfg.UI.ShowStatusBar)
	require.Equal(t, 4, cfg.UI.TabWidth)
	require.Equal(t, "glint-dark", cfg.Theme.Scheme)
	require.True(t, cfg.Watch.Enabled)
	require.Equal(t, 200*time.Millisecond, cfg.Watch.Debounce)
	require.True(t, cfg.Cache.Enabled)
	require.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	require.True(t, cfg.History.Enabled)
	require.False(t, cfg.Tracing.Enabled)
	require.Equal(t, "file", cfg.Tracing.Exporter)
	require.Equal(t, 1.0, cfg.Tracing.SampleRate)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestDefaults_Validate(t *testing.T) {
	require.NoError(t, Defaults().Validate())
}

func TestValidateUI_TabWidth(t *testing.T) {
	require.NoError(t, ValidateUI(UIConfig{TabWidth: 1}))
	require.NoError(t, ValidateUI(UIConfig{TabWidth: 16}))

	err := ValidateUI(UIConfig{TabWidth: 0})
	require.Error(t, err)
	require.Contains(t, err.Error(), "tab_width")

	err = ValidateUI(UIConfig{TabWidth: 17})
	require.Error(t, err)
	require.Contains(t, err.Error(), "tab_width")
}

func TestValidateTheme_Mode(t *testing.T) {
	require.NoError(t, ValidateTheme(ThemeConfig{Mode: ""}))
	require.NoError(t, ValidateTheme(ThemeConfig{Mode: "light"}))
	require.NoError(t, ValidateTheme(ThemeConfig{Mode: "dark"}))

	err := ValidateTheme(ThemeConfig{Mode: "sepia"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "theme.mode")
}

func TestValidateTheme_SchemesDirMustBeAbsolute(t *testing.T) {
	require.NoError(t, ValidateTheme(ThemeConfig{SchemesDir: "/etc/glint/schemes"}))

	err := ValidateTheme(ThemeConfig{SchemesDir: "schemes"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "absolute")
}

func TestValidateWatch_NegativeDebounce(t *testing.T) {
	require.NoError(t, ValidateWatch(WatchConfig{Debounce: 0}))

	err := ValidateWatch(WatchConfig{Debounce: -time.Second})
	require.Error(t, err)
	require.Contains(t, err.Error(), "watch.debounce")
}

func TestValidateCache_NegativeDurations(t *testing.T) {
	require.NoError(t, ValidateCache(CacheConfig{TTL: time.Minute, Purge: time.Minute}))

	err := ValidateCache(CacheConfig{TTL: -1})
	require.Error(t, err)
	require.Contains(t, err.Error(), "cache.ttl")

	err = ValidateCache(CacheConfig{Purge: -1})
	require.Error(t, err)
	require.Contains(t, err.Error(), "cache.purge")
}

func TestValidateTracing_SampleRate(t *testing.T) {
	require.NoError(t, ValidateTracing(TracingConfig{SampleRate: 0.0}))
	require.NoError(t, ValidateTracing(TracingConfig{SampleRate: 1.0}))

	err := ValidateTracing(TracingConfig{SampleRate: 1.5})
	require.Error(t, err)
	require.Contains(t, err.Error(), "sample_rate")

	err = ValidateTracing(TracingConfig{SampleRate: -0.1})
	require.Error(t, err)
	require.Contains(t, err.Error(), "sample_rate")
}

func TestValidateTracing_Exporter(t *testing.T) {
	for _, exporter := range []string{"", "none", "file", "stdout", "otlp"} {
		require.NoError(t, ValidateTracing(TracingConfig{Exporter: exporter, SampleRate: 1.0}))
	}

	err := ValidateTracing(TracingConfig{Exporter: "jaeger", SampleRate: 1.0})
	require.Error(t, err)
	require.Contains(t, err.Error(), "exporter")
}

func TestValidateTracing_RequiredPathsWhenEnabled(t *testing.T) {
	err := ValidateTracing(TracingConfig{Enabled: true, Exporter: "file", SampleRate: 1.0})
	require.Error(t, err)
	require.Contains(t, err.Error(), "file_path")

	err = ValidateTracing(TracingConfig{Enabled: true, Exporter: "otlp", SampleRate: 1.0})
	require.Error(t, err)
	require.Contains(t, err.Error(), "otlp_endpoint")

	// Disabled tracing skips the path checks.
	require.NoError(t, ValidateTracing(TracingConfig{Enabled: false, Exporter: "file", SampleRate: 1.0}))
}

func TestValidateLog_Level(t *testing.T) {
	for _, level := range []string{"", "debug", "info", "warn", "error"} {
		require.NoError(t, ValidateLog(LogConfig{Level: level}))
	}

	err := ValidateLog(LogConfig{Level: "trace"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "log.level")
}

func TestConfig_SchemeName(t *testing.T) {
	cfg := Config{}
	require.Equal(t, "glint-dark", cfg.SchemeName())

	cfg.Theme.Scheme = "gruvbox"
	require.Equal(t, "gruvbox", cfg.SchemeName())
}

func TestConfig_MinLogLevel(t *testing.T) {
	require.Equal(t, "DEBUG", Config{Log: LogConfig{Level: "debug"}}.MinLogLevel().String())
	require.Equal(t, "INFO", Config{Log: LogConfig{Level: ""}}.MinLogLevel().String())
	require.Equal(t, "WARN", Config{Log: LogConfig{Level: "warn"}}.MinLogLevel().String())
	require.Equal(t, "ERROR", Config{Log: LogConfig{Level: "error"}}.MinLogLevel().String())
}

func TestDefaultConfigTemplate_IsValidYAML(t *testing.T) {
	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(DefaultConfigTemplate()), &parsed))
	require.Contains(t, parsed, "theme")
	require.Contains(t, parsed, "ui")
	require.Contains(t, parsed, "cache")
}

func TestWriteDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "scheme: glint-dark")
}
