package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/glintlabs/glint/internal/app"
	"github.com/glintlabs/glint/internal/config"
	"github.com/glintlabs/glint/internal/history"
	"github.com/glintlabs/glint/internal/log"
	"github.com/glintlabs/glint/internal/mode"
	"github.com/glintlabs/glint/internal/scancache"
	"github.com/glintlabs/glint/internal/tracing"
)

func init() {
	// Force lipgloss/termenv to query the terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	cfg     config.Config

	flagFile     string
	flagLanguage string
	flagTheme    string
	flagDebug    bool
	flagNoMouse  bool
	flagNoWatch  bool
)

var rootCmd = &cobra.Command{
	Use:     "glint",
	Short:   "A terminal syntax highlighting previewer",
	Long:    `An interactive terminal preview for glint's incremental tokenizer: browse sample snippets or your own files with live highlighting, color scheme switching, and a span inspector.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/glint/config.yaml)")

	rootCmd.Flags().StringVarP(&flagFile, "file", "f", "",
		"file to preview instead of the built-in gallery")
	rootCmd.Flags().StringVarP(&flagLanguage, "language", "l", "",
		"force a language instead of inferring it from the file extension")
	rootCmd.Flags().StringVar(&flagTheme, "theme", "",
		"color scheme to start with")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false,
		"enable debug logging")
	rootCmd.Flags().BoolVar(&flagNoMouse, "no-mouse", false,
		"disable mouse support")
	rootCmd.Flags().BoolVar(&flagNoWatch, "no-watch", false,
		"disable live reload of the previewed file")
}

// configDir returns the glint config directory, honoring XDG_CONFIG_HOME.
func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "glint")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "glint")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("ui.show_line_numbers", defaults.UI.ShowLineNumbers)
	viper.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	viper.SetDefault("ui.tab_width", defaults.UI.TabWidth)
	viper.SetDefault("theme.scheme", defaults.Theme.Scheme)
	viper.SetDefault("watch.enabled", defaults.Watch.Enabled)
	viper.SetDefault("watch.debounce", defaults.Watch.Debounce)
	viper.SetDefault("cache.enabled", defaults.Cache.Enabled)
	viper.SetDefault("cache.ttl", defaults.Cache.TTL)
	viper.SetDefault("cache.purge", defaults.Cache.Purge)
	viper.SetDefault("history.enabled", defaults.History.Enabled)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)
	viper.SetDefault("log.level", defaults.Log.Level)

	viper.SetEnvPrefix("GLINT")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .glint/config.yaml (current directory)
		// 2. ~/.config/glint/config.yaml (user config)
		if _, err := os.Stat(".glint/config.yaml"); err == nil {
			viper.SetConfigFile(".glint/config.yaml")
		} else if dir := configDir(); dir != "" {
			viper.AddConfigPath(dir)
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create a default user config.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if dir := configDir(); dir != "" {
				defaultPath := filepath.Join(dir, "config.yaml")
				if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
					viper.SetConfigFile(defaultPath)
					_ = viper.ReadInConfig()
				}
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// configFilePath returns the loaded config file or the default location for
// one, used for persisting the scheme choice.
func configFilePath() string {
	if p := viper.ConfigFileUsed(); p != "" {
		return p
	}
	if dir := configDir(); dir != "" {
		return filepath.Join(dir, "config.yaml")
	}
	return ""
}

// setupLogging opens the debug log file. Returned cleanup is safe on nil.
func setupLogging() func() {
	path := cfg.Log.Path
	if path == "" {
		path = filepath.Join(os.TempDir(), "glint-debug.log")
	}

	cleanup, err := log.Init(path)
	if err != nil {
		// The TUI works fine without a log file.
		return func() {}
	}
	log.SetMinLevel(cfg.MinLogLevel())
	if flagDebug {
		log.SetMinLevel(log.LevelDebug)
	}
	return cleanup
}

// buildServices assembles the shared dependencies from the loaded config.
// The returned cleanup closes the history store and flushes traces.
func buildServices(ctx context.Context) (mode.Services, func(), error) {
	svc := mode.Services{
		Config:     cfg,
		ConfigPath: configFilePath(),
		Cache:      scancache.New(cfg.Cache.Enabled, cfg.Cache.TTL, cfg.Cache.Purge, 256),
	}

	var cleanups []func()

	if cfg.History.Enabled {
		path := cfg.History.Path
		if path == "" {
			path = config.DefaultHistoryPath()
		}
		if path != "" {
			store, err := history.Open(path)
			if err != nil {
				log.ErrorErr(log.CatDB, "Failed to open history store", err, "path", path)
			} else {
				svc.History = store
				cleanups = append(cleanups, func() { _ = store.Close() })
			}
		}
	}

	if cfg.Tracing.Enabled {
		filePath := cfg.Tracing.FilePath
		if filePath == "" {
			filePath = config.DefaultTracesFilePath()
		}
		provider, err := tracing.NewProvider(tracing.Config{
			Enabled:      true,
			Exporter:     cfg.Tracing.Exporter,
			FilePath:     filePath,
			OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
			SampleRate:   cfg.Tracing.SampleRate,
		})
		if err != nil {
			log.ErrorErr(log.CatTrace, "Failed to initialize tracing", err)
		} else {
			svc.Tracer = provider.Tracer()
			cleanups = append(cleanups, func() {
				shutdownCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
				defer cancel()
				_ = provider.Shutdown(shutdownCtx)
			})
		}
	}

	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}
	return svc, cleanup, nil
}

func runApp(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if flagTheme != "" {
		cfg.Theme.Scheme = flagTheme
	}
	if flagNoWatch {
		cfg.Watch.Enabled = false
	}
	if flagFile != "" {
		if _, err := os.Stat(flagFile); err != nil {
			return fmt.Errorf("cannot preview %s: %w", flagFile, err)
		}
	}

	logCleanup := setupLogging()
	defer logCleanup()

	svc, cleanup, err := buildServices(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	zone.NewGlobal()
	model := app.New(app.Config{
		Services: svc,
		File:     flagFile,
		Language: flagLanguage,
	})

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if !flagNoMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(&model, opts...)
	_, err = p.Run()

	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
