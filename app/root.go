// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "go-artifact-depot",
	Short: "GoArtifactDepot is a self-hosted artifact repository server",
	Long: `GoArtifactDepot is a self-hosted artifact repository server that keeps
build artifacts behind token and LDAP based authentication and manages its
runtime settings through a reactive shared configuration.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
