package main

import (
	"fmt"
	"time"
	"xds/internal/api/handler/v1handler"

	"github.com/spf13/cobra"
)

// tokenCommand constructs the 'token' subcommand that generates a signed RS256 JWT
// for an API client using the configured private key.
func tokenCommand(a *app) *cobra.Command {
	var subject string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Generates a bearer token for the given API client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			signed, err := v1handler.SignToken(a.cfg.JWT.PrivateKey, subject, ttl)
			if err != nil {
				return fmt.Errorf("could not generate token: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), signed)

			return err //nolint: wrapcheck
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Token subject (e.g., the calling registry or repository ID)")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
