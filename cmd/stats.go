package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mathpal/internal/engine"
	"github.com/abhisek/mathpal/internal/store"
	"github.com/abhisek/mathpal/internal/trend"
)

var statsCmd = &cobra.Command{
	Use:   "stats <userId> [moduleName]",
	Short: "Show a learner's progress and performance trend",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := args[0]
		moduleName := ""
		if len(args) > 1 {
			moduleName = args[1]
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		svc := engine.New(st.EventRepo(), st.PerformanceRepo(), st.ProgressRepo(), zap.NewNop())

		records, err := svc.OverallProgress(ctx, userID)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No progress recorded for", userID)
			return nil
		}

		fmt.Printf("%-16s  %-10s  %-9s  %-8s  %-9s  %s\n",
			"Module", "Mastery", "Accuracy", "Sessions", "Questions", "Difficulty")
		fmt.Println(strings.Repeat("─", 72))
		for _, r := range records {
			if moduleName != "" && r.ModuleName != moduleName {
				continue
			}
			fmt.Printf("%-16s  %-10s  %7d%%  %8d  %9d  %s\n",
				r.ModuleName, r.MasteryLevel, r.AccuracyPct,
				r.CompletedSessions, r.TotalQuestions, r.CurrentDifficulty)
		}

		if moduleName != "" {
			res, err := svc.PerformanceTrend(ctx, userID, moduleName, 0)
			if err != nil {
				return fmt.Errorf("analyze trend: %w", err)
			}
			fmt.Println()
			fmt.Println("Trend:", res.Trend)
			if res.Trend != trend.InsufficientData {
				fmt.Printf("Recent accuracy: %d%%\n", res.RecentAccuracyPct)
				fmt.Println("Suggested:", res.SuggestedAction)
			}
		}
		return nil
	},
}
