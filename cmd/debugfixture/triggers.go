package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var triggersJSON bool

var triggersCmd = &cobra.Command{
	Use:   "triggers",
	Short: "Print the active trigger catalog",
	Long: `Print the query parameters and headers that switch the index page into
debug mode, in the order they are reported.`,
	Args: cobra.NoArgs,
	RunE: runTriggers,
}

func init() {
	rootCmd.AddCommand(triggersCmd)
	triggersCmd.Flags().BoolVar(&triggersJSON, "json", false, "Output as JSON")
	triggersCmd.Flags().String("catalog", "", "Trigger catalog file (json, yaml or toml)")
}

func runTriggers(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ts, err := loadTriggerSet(afero.NewOsFs(), cfg)
	if err != nil {
		return err
	}

	source := "built-in"
	if cfg.CatalogFile != "" {
		source = cfg.CatalogFile
	}
	resp := &TriggersResponseCLI{
		Source:  source,
		Params:  ts.Params(),
		Headers: ts.Headers(),
	}

	return writeResponse(cmd.OutOrStdout(), resp, triggersJSON)
}
