package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/lexiz/internal/config"
	"github.com/abhisek/lexiz/internal/store"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "lexiz",
		Short:        "Achievement tracker for daily vocabulary practice",
		Long:         "Lexiz is a terminal trophy case that turns words learned, streaks and practice into achievements.",
		SilenceUsage: true,
		RunE:         runApp,
	}

	pf := root.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides LEXIZ_DB env var)")
	pf.String("log-level", "", "Log level: trace, debug, info, warn, error or off (overrides LEXIZ_LOG_LEVEL)")
	pf.String("metrics-file", "", "YAML or JSON learner metrics file (overrides LEXIZ_METRICS_FILE)")

	root.AddCommand(
		newAwardCmd(),
		newCheckCmd(),
		newDrainCmd(),
		newStatusCmd(),
		newListCmd(),
		newWatchCmd(),
		newResetCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the lexiz command tree.
func Execute() error {
	return newRootCmd().Execute()
}

// loadConfig reads the environment and applies any persistent flags set
// on the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		cfg.LogLevel = l
	}
	if f, _ := cmd.Flags().GetString("metrics-file"); f != "" {
		cfg.MetricsFile = f
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db / LEXIZ_DB when set,
// otherwise the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
