package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sant0-9/promptsig/internal/config"
	"github.com/sant0-9/promptsig/internal/logging"
	"github.com/sant0-9/promptsig/internal/render"
	"github.com/sant0-9/promptsig/internal/tui"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	// Global flags
	apiURL     string
	configPath string
	logLevel   string
	logFile    string

	// Resolved by PersistentPreRunE
	cfg      *config.Config
	cfgFound bool
)

// rootCmd launches the TUI when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:     "promptsig",
	Short:   "Turn natural language prompts into signature code",
	Version: version,
	Long: `promptsig sends a natural language task description to a signature
backend and shows the generated signature code.

Run without arguments to start the interactive interface.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, cfgFound, err = loadConfig()
		if err != nil {
			return err
		}

		// The TUI owns the terminal, so it always logs to a file
		path := cfg.LogFile
		if path == "" && cmd == cmd.Root() {
			if path, err = config.DefaultLogPath(); err != nil {
				return err
			}
		}
		if err := logging.Init(cfg.LogLevel, path); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logging.S().Debugw("config loaded", "path", cfg.Path(), "found", cfgFound, "api_url", cfg.APIURL)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "signature backend base URL (default "+config.DefaultAPIURL+")")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/promptsig/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")

	rootCmd.AddCommand(generateCmd, examplesCmd, pingCmd)
}

// loadConfig layers the config file, .env and environment, then flags.
func loadConfig() (*config.Config, bool, error) {
	var c *config.Config
	var err error
	if configPath != "" {
		c, err = config.LoadFrom(configPath)
	} else {
		c, err = config.Load()
	}
	if err != nil {
		return nil, false, err
	}

	found := c != nil
	if !found {
		c = config.DefaultConfig()
		if configPath != "" {
			c.SetPath(configPath)
		}
	}

	c.ApplyEnv()
	if apiURL != "" {
		c.APIURL = apiURL
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if logFile != "" {
		c.LogFile = logFile
	}

	if err := c.Validate(); err != nil {
		return nil, false, err
	}
	return c, found, nil
}

// needsSetup is true on a first run where nothing names a backend.
func needsSetup() bool {
	if cfgFound || apiURL != "" {
		return false
	}
	return os.Getenv("PROMPTSIG_API_URL") == "" && os.Getenv("API_URL") == ""
}

func runTUI() error {
	app := tui.NewApp(tui.Options{
		Config:     cfg,
		NeedsSetup: needsSetup(),
		Highlight:  render.NewHighlighter(cfg.Theme, "terminal256"),
	})
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
