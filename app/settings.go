package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GoArtifactDepot/GoArtifactDepot/internal/config"
	"github.com/GoArtifactDepot/GoArtifactDepot/internal/daemon"
)

func init() { //nolint: gochecknoinits
	settingsApplyCmd.Flags().StringVarP(
		&settingsFile,
		"file",
		"f",
		"",
		"Path to the shared configuration document to apply",
	)
	_ = settingsApplyCmd.MarkFlagRequired("file")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsApplyCmd)
	rootCmd.AddCommand(settingsCmd)
}

// errInvalidDocument error if the document to apply is not valid JSON.
var errInvalidDocument = errors.New("document is not valid JSON")

var (
	settingsFile string

	settingsCmd = &cobra.Command{
		Use:   "settings",
		Short: "Inspect and change the shared configuration",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if cfg, err = config.ReadConfig(configPath); err != nil {
				panic(err)
			}
		},
	}

	settingsShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Print the effective shared configuration document",
		RunE: func(_ *cobra.Command, _ []string) error {
			d, err := daemon.New(&cfg)
			if err != nil {
				return err
			}

			document, err := d.Settings().RenderConfiguration()
			if err != nil {
				return err
			}

			fmt.Println(document)

			return nil
		},
	}

	settingsApplyCmd = &cobra.Command{
		Use:   "apply",
		Short: "Apply a shared configuration document and persist it",
		RunE: func(_ *cobra.Command, _ []string) error {
			document, err := os.ReadFile(settingsFile)
			if err != nil {
				return fmt.Errorf("failed to read document: %w", err)
			}

			if !json.Valid(document) {
				return fmt.Errorf("%w: %s", errInvalidDocument, settingsFile)
			}

			d, err := daemon.New(&cfg)
			if err != nil {
				return err
			}

			if err = d.Settings().LoadFromDocument(string(document)); err != nil {
				return err
			}

			return d.Settings().PersistConfiguration()
		},
	}
)
