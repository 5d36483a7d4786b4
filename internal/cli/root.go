// Package cli implements the lifelog CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/crispyBCN13/LifeLog/internal/config"
	"github.com/crispyBCN13/LifeLog/internal/logging"
	"github.com/crispyBCN13/LifeLog/internal/store"
)

var (
	dbPath     string
	formatFlag string
	logLevel   string
	configPath string

	cfg = config.Default()

	// clock is read once per command; the value is what the analytics
	// engine sees as "now".
	clock = time.Now
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "lifelog",
	Short: "Personal activity log with stats and projections",
	Long: "Log timestamped entries against your own categories, then see how active " +
		"you have been and where you are heading. SQLite-backed, single binary.",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $LIFELOG_DB or ~/.lifelog/lifelog.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $LIFELOG_CONFIG or ~/.lifelog/config.yaml)")
}

// loadConfig resolves settings: config file and environment first, then
// any flag given explicitly on the command line.
func loadConfig(cmd *cobra.Command, args []string) error {
	config.LoadEnvFile()

	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		loaded.DB = dbPath
	}
	if flags.Changed("format") {
		loaded.Format = formatFlag
	}
	if flags.Changed("log-level") {
		loaded.LogLevel = logLevel
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	logger := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	logging.SetDefault(logger)
	cmd.SetContext(logging.With(cmd.Context(), logger.With("command", cmd.Name())))

	logger.Debug("config loaded", "db", cfg.DB, "format", cfg.Format, "multiplier", cfg.Multiplier)
	return nil
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(cfg.DB, store.WithClock(clock))
}

func textFormat() bool {
	return cfg.Format == "text"
}

func printJSON(w io.Writer, v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(w, string(b))
}

func exitErr(msg string, err error) {
	logging.Default().Error(msg, "error", err)
	os.Exit(1)
}
