package app

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoArtifactDepot/GoArtifactDepot/internal/config"
	"github.com/GoArtifactDepot/GoArtifactDepot/internal/daemon"
	"github.com/GoArtifactDepot/GoArtifactDepot/internal/db/models"
)

func init() { //nolint: gochecknoinits
	tokenCreateCmd.Flags().StringVar(
		&tokenSecret,
		"secret",
		"",
		"Secret of the token, generated when empty",
	)
	tokenCreateCmd.Flags().StringVar(
		&tokenType,
		"type",
		string(models.AccessTokenPersistent),
		"Type of the token (persistent or temporary)",
	)

	tokenCmd.AddCommand(tokenCreateCmd)
	tokenCmd.AddCommand(tokenListCmd)
	tokenCmd.AddCommand(tokenDeleteCmd)
	rootCmd.AddCommand(tokenCmd)
}

// errUnknownTokenType error if the type flag names no supported token type.
var errUnknownTokenType = errors.New("token type must be one of persistent, temporary")

var (
	tokenSecret string
	tokenType   string

	tokenCmd = &cobra.Command{
		Use:   "token",
		Short: "Manage access tokens",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if cfg, err = config.ReadConfig(configPath); err != nil {
				panic(err)
			}
		},
	}

	tokenCreateCmd = &cobra.Command{
		Use:   "create NAME",
		Short: "Create an access token",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			accessTokenType := models.AccessTokenType(tokenType)
			if accessTokenType != models.AccessTokenPersistent && accessTokenType != models.AccessTokenTemporary {
				return fmt.Errorf("%w: %s", errUnknownTokenType, tokenType)
			}

			d, err := daemon.New(&cfg)
			if err != nil {
				return err
			}

			if tokenSecret == "" {
				entry, secret, err := d.Tokens().GenerateAccessToken(args[0], accessTokenType)
				if err != nil {
					return err
				}

				// The plain secret only exists here, print it exactly once.
				fmt.Printf("created %s token %q with secret %s\n", entry.Type, entry.Name, secret)

				return nil
			}

			entry, err := d.Tokens().CreateAccessToken(args[0], tokenSecret, accessTokenType)
			if err != nil {
				return err
			}

			fmt.Printf("created %s token %q\n", entry.Type, entry.Name)

			return nil
		},
	}

	tokenListCmd = &cobra.Command{
		Use:   "list",
		Short: "List access tokens",
		RunE: func(_ *cobra.Command, _ []string) error {
			d, err := daemon.New(&cfg)
			if err != nil {
				return err
			}

			entries, err := d.Tokens().ListAccessTokens()
			if err != nil {
				return err
			}

			for _, entry := range entries {
				fmt.Printf("%s\t%s\n", entry.Name, entry.Type)
			}

			return nil
		},
	}

	tokenDeleteCmd = &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete an access token",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			d, err := daemon.New(&cfg)
			if err != nil {
				return err
			}

			return d.Tokens().DeleteAccessToken(args[0])
		},
	}
)
