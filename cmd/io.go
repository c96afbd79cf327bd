package main

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"xds/pkg/codec"
	"xds/pkg/ebxml"
	"xds/pkg/serrors"

	"github.com/spf13/cobra"
)

// stdio marks a path that selects stdin or stdout.
const stdio = "-"

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == stdio {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("could not read stdin: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, serrors.Wrap(serrors.ErrNotFound, err, "input file %q", path)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read input file: %w", err)
	}

	return data, nil
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == stdio {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return fmt.Errorf("could not write stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint: gosec
		return fmt.Errorf("could not write output file: %w", err)
	}

	return nil
}

// parseKind parses the --kind flag, falling back to the configured kind.
func parseKind(flag, fallback string) (codec.Kind, error) {
	kind, err := codec.ParseKind(cmp.Or(flag, fallback))
	if err != nil {
		return "", fmt.Errorf("invalid kind: %w", err)
	}

	return kind, nil
}

// parseVersion parses a version flag, falling back to the configured version.
func parseVersion(flag, fallback string) (ebxml.Version, error) {
	v, err := ebxml.ParseVersion(cmp.Or(flag, fallback))
	if err != nil {
		return "", fmt.Errorf("invalid version: %w", err)
	}

	return v, nil
}
