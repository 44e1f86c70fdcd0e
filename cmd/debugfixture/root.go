package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"debugfixture/internal/catalog"
	"debugfixture/internal/config"
	"debugfixture/internal/version"
)

var (
	// configPath is the --config flag value
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "debugfixture",
	Short: "debugfixture - HTTP target for debug-surface scanners",
	Long: `debugfixture is a deliberately leaky web server used to exercise
debug-surface detection tools. The index page switches to a debug rendering
when a known trigger parameter or header is present; every other path is
served from a static tree of synthetic sensitive files.

Running without a subcommand starts the server.`,
	Version:      version.Version,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.SetVersionTemplate(version.Full() + "\n")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file (json, yaml or toml)")
	addServeFlags(rootCmd.Flags())
}

// addServeFlags registers the server flags. Defaults mirror
// config.DefaultConfig so an unset flag never overrides the environment.
func addServeFlags(fs *pflag.FlagSet) {
	d := config.DefaultConfig()
	fs.String("host", d.Host, "Host to bind to (empty for all interfaces)")
	fs.Int("port", d.Port, "Port to listen on")
	fs.String("dir", d.StaticDir, "Directory served for non-index paths (default: built-in synthetic tree)")
	fs.String("catalog", d.CatalogFile, "Trigger catalog file (json, yaml or toml)")
	fs.Bool("compress", d.Compress, "Gzip responses for clients that accept it")
	fs.Bool("no-banner", false, "Do not print the startup banner")
	fs.String("log-level", d.Logging.Level, "Log level: debug, info, warn, error")
	fs.String("log-format", d.Logging.Format, "Log format: human or json")
	fs.String("log-file", d.Logging.File, "Also write JSON logs to this rotated file")
	fs.Int("shutdown-ms", d.ShutdownTimeoutMs, "Graceful shutdown budget in milliseconds")
}

// loadConfig resolves the configuration for cmd from file, env and flags
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.LoadConfig(configPath, cmd.Flags())
}

// loadTriggerSet returns the configured catalog, or the built-in one
func loadTriggerSet(fs afero.Fs, cfg *config.Config) (*catalog.TriggerSet, error) {
	if cfg.CatalogFile == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(fs, cfg.CatalogFile)
}
