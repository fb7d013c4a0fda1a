package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mathpal/internal/config"
	"github.com/abhisek/mathpal/internal/encourage"
	"github.com/abhisek/mathpal/internal/engine"
	"github.com/abhisek/mathpal/internal/llm"
	"github.com/abhisek/mathpal/internal/logging"
	"github.com/abhisek/mathpal/internal/server"
	"github.com/abhisek/mathpal/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// runServe loads configuration, opens the store, builds the engine and
// runs the HTTP server until it fails or is interrupted.
func runServe(cmd *cobra.Command) error {
	ctx := cmd.Context()

	// Config loads before the real logger exists; bootstrap with a
	// plain development logger.
	boot, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("bootstrap logger: %w", err)
	}
	configDir, _ := cmd.Flags().GetString("config")
	if err := config.Init(configDir, boot); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logging.Init(config.Conf.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := []engine.Option{
		engine.WithBranchTimeout(config.Conf.Engine.BranchTimeout()),
	}

	// Encouragement always works; the LLM only upgrades the wording.
	var provider llm.Provider
	if config.Conf.LLM.Enabled {
		p, err := llm.NewProvider(ctx, llm.ConfigFromEnv(), log)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Encouragement messages will use templates.")
		} else {
			provider = p
		}
	}
	gen, err := encourage.NewGenerator(provider, log)
	if err != nil {
		return fmt.Errorf("build encouragement generator: %w", err)
	}
	opts = append(opts, engine.WithEncourager(gen))

	svc := engine.New(st.EventRepo(), st.PerformanceRepo(), st.ProgressRepo(), log, opts...)
	router := server.Setup(log, svc)

	addr := ":" + config.Conf.Server.Port
	log.Info("Server listening", zap.String("addr", addr), zap.String("db", dbPath))
	return router.Run(addr)
}
