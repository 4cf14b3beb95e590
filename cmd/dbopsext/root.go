package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbops-mcp/zed-extension/internal/config"
	"github.com/dbops-mcp/zed-extension/internal/errortypes"
)

var (
	configPath string
	cfg        *config.Config

	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "dbopsext",
	Short: "Editor extension for the database-operations context server",
	Long: `dbopsext is the editor extension that registers the database-operations
context server with an extension host. When the editor asks how to launch
the server, the extension answers with the fixed uv command line that runs
the project in server mode.`,
	Example: `  dbopsext resolve                 # Print the launch command for the default server
  dbopsext resolve db-ops          # Any server id yields the same command
  dbopsext servers                 # List registered extension names`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfigAndLogging,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigFilename, "Path to the extension config file")
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("dbopsext %s\n", version))
	return rootCmd.Execute()
}

// loadConfigAndLogging resolves the process-wide configuration once for
// all subcommands and configures the process logger from it.
func loadConfigAndLogging(cmd *cobra.Command, args []string) error {
	loaded, err := config.InitGlobal(configPath)
	if err != nil {
		err = errortypes.ConfigError(err, "failed to load configuration").
			WithField("path", configPath)
		errortypes.LogError(nil, err)
		return err
	}
	cfg = loaded

	setupLogging(cfg)
	return nil
}

// setupLogging configures the default slog logger from the config,
// honoring a LOG_LEVEL environment override.
func setupLogging(cfg *config.Config) {
	levelStr := cfg.Logging.Level
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		levelStr = env
	}

	opts := &slog.HandlerOptions{Level: parseLevel(levelStr)}
	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// parseLevel maps a level name to a slog.Level, defaulting to info.
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
