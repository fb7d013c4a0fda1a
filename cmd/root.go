package cmd

import (
	"github.com/abhisek/mathpal/internal/config"
	"github.com/abhisek/mathpal/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mathpal",
	Short: "Adaptive feedback engine for young math learners",
	Long:  "Mathpal is a backend service that turns raw interaction telemetry into adaptive feedback, difficulty adjustment and encouragement for children's math practice.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHPAL_DB env var)")
	rootCmd.PersistentFlags().String("config", "config", "Directory searched for config.yaml")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(pruneCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file, then MATHPAL_DB / the default XDG
// path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if config.Conf != nil && config.Conf.Database.Path != "" {
		p := config.Conf.Database.Path
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
