package app

import (
	"github.com/spf13/cobra"

	"github.com/GoArtifactDepot/GoArtifactDepot/internal/config"
	"github.com/GoArtifactDepot/GoArtifactDepot/internal/daemon"
	"github.com/GoArtifactDepot/GoArtifactDepot/internal/logger"
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(
		&configPath,
		"config",
		"",
		"Path to the directory holding main.toml",
	)

	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	rootCmd.AddCommand(startCmd)
}

var (
	configPath string // Path to the configuration directory

	cfg     config.Config
	err     error
	devMode bool

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the GoArtifactDepot server",
		PreRun: func(_ *cobra.Command, _ []string) {
			if cfg, err = config.ReadConfig(configPath); err != nil {
				panic(err)
			}

			if devMode {
				cfg.DevMode = true
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := logger.Init(cfg.Log); err != nil {
				return err
			}

			d, err := daemon.New(&cfg)
			if err != nil {
				return err
			}

			return d.Run()
		},
	}
)
