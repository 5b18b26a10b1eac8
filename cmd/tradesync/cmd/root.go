package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ananidze/tradesync/internal/cli"
	"github.com/ananidze/tradesync/pkg/authflow"
	"github.com/ananidze/tradesync/pkg/dashsdk"
	"github.com/ananidze/tradesync/pkg/slogx"
	"github.com/ananidze/tradesync/pkg/tokenstore"
	"github.com/ananidze/tradesync/pkg/tokenstore/memory"
	sqlitestore "github.com/ananidze/tradesync/pkg/tokenstore/sqlite"
)

const version = "0.3.0"

var (
	cfg    cli.Config
	logger *slog.Logger
	tokens tokenstore.Store
	client *dashsdk.Client
	flow   *authflow.Controller

	durableStore *sqlitestore.Store
)

var rootCmd = &cobra.Command{
	Use:   "tradesync",
	Short: "TradeSync is a client for the TradeSync trading dashboard",
	Long: `A command line client for the TradeSync prop-firm dashboard backend.
It handles registration, password and two-factor login, and fetching
accounts, trades and aggregate statistics.`,
	SilenceUsage:      true,
	PersistentPreRun:  setup,
	PersistentPostRun: teardown,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup wires the shared client stack before any command runs. A token
// store that cannot be opened degrades to an in-memory one so every command
// still works, just without a persisted session.
func setup(cmd *cobra.Command, args []string) {
	cfg = cli.LoadConfig()
	logger = slogx.New(slogx.Config{
		Service: "tradesync",
		Version: version,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	tokens = openTokenStore()
	client = dashsdk.NewClient(cfg.APIURL, tokens)
	client.Logger = logger
	flow = authflow.NewController(client, logger)
}

func teardown(cmd *cobra.Command, args []string) {
	if durableStore != nil {
		_ = durableStore.Close()
	}
}

func openTokenStore() tokenstore.Store {
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		logger.Warn("cannot create data directory, session will not persist",
			"dir", cfg.DataDir, "error", err)
		return memory.New()
	}

	store, err := sqlitestore.NewStore(cfg.CredentialsFile(), logger)
	if err != nil {
		logger.Warn("cannot open credentials database, session will not persist",
			"path", cfg.CredentialsFile(), "error", err)
		return memory.New()
	}

	durableStore = store
	return store
}
