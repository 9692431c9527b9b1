package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoArtifactDepot/GoArtifactDepot/internal/config"
)

func init() { //nolint: gochecknoinits
	configShowCmd.Flags().BoolVar(
		&configAsJSON,
		"json",
		false,
		"Dump the configuration as JSON instead of TOML",
	)

	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

var (
	configAsJSON bool

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect the bootstrap configuration",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if cfg, err = config.ReadConfig(configPath); err != nil {
				panic(err)
			}
		},
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Print the effective bootstrap configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			dump := config.DumpConfig
			if configAsJSON {
				dump = config.DumpConfigJSON
			}

			document, err := dump(&cfg)
			if err != nil {
				return err
			}

			fmt.Print(document)

			return nil
		},
	}
)
