package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mathpal/internal/engine"
	"github.com/abhisek/mathpal/internal/store"
)

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete raw interaction events past the retention window",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		svc := engine.New(st.EventRepo(), st.PerformanceRepo(), st.ProgressRepo(), zap.NewNop())
		n, err := svc.PruneEvents(cmd.Context())
		if err != nil {
			return fmt.Errorf("prune events: %w", err)
		}
		fmt.Printf("Pruned %d events\n", n)
		return nil
	},
}
