package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func convertCommand(a *app) *cobra.Command {
	var from, to, kind, in, out string

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Converts a message from one ebXML version to the other",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseKind(kind, a.cfg.Transcoder.Kind)
			if err != nil {
				return err
			}
			source, err := parseVersion(from, a.cfg.Transcoder.From)
			if err != nil {
				return err
			}
			target, err := parseVersion(to, a.cfg.Transcoder.To)
			if err != nil {
				return err
			}

			data, err := readInput(cmd, in)
			if err != nil {
				return err
			}
			converted, err := a.transcoder.Transcode(cmd.Context(), k, source, target, data)
			if err != nil {
				return fmt.Errorf("could not convert message: %w", err)
			}

			return writeOutput(cmd, out, converted)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Source ebXML version (2.1 or 3.0), defaults to the configured one")
	cmd.Flags().StringVar(&to, "to", "", "Target ebXML version (2.1 or 3.0), defaults to the configured one")
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Transaction kind, defaults to the configured one")
	cmd.Flags().StringVarP(&in, "in", "i", "", "Input file, stdin when empty")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file, stdout when empty")

	return cmd
}
