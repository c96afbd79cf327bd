package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func sampleCommand(a *app) *cobra.Command {
	var version, kind, out string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Writes a sample message of the given kind and version",
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

			data, err := a.transcoder.Sample(cmd.Context(), k, v)
			if err != nil {
				return fmt.Errorf("could not create sample: %w", err)
			}

			return writeOutput(cmd, out, data)
		},
	}

	cmd.Flags().StringVarP(&version, "version", "v", "", "ebXML version (2.1 or 3.0), defaults to the configured source version")
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Transaction kind, defaults to the configured one")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file, stdout when empty")

	return cmd
}
