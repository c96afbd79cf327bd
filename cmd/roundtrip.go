package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errChanged = errors.New("message changed after round trip")

func roundTripCommand(a *app) *cobra.Command {
	var version, kind, in string

	cmd := &cobra.Command{
		Use:   "roundtrip",
		Short: "Checks that a message survives decoding and re-encoding unchanged",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseKind(kind, a.cfg.Transcoder.Kind)
			if err != nil {
				return err
			}
			v, err := parseVersion(version, a.cfg.Transcoder.From)
			if err != nil {
				return err
			}

			data, err := readInput(cmd, in)
			if err != nil {
				return err
			}
			equal, err := a.transcoder.RoundTrip(cmd.Context(), k, v, data)
			if err != nil {
				return fmt.Errorf("could not round trip message: %w", err)
			}
			if !equal {
				return errChanged
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s message round trips unchanged\n", v, k)

			return nil
		},
	}

	cmd.Flags().StringVarP(&version, "version", "v", "", "ebXML version (2.1 or 3.0), defaults to the configured source version")
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Transaction kind, defaults to the configured one")
	cmd.Flags().StringVarP(&in, "in", "i", "", "Input file, stdin when empty")

	return cmd
}
