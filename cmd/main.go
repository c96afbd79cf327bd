// Package main provides the CLI entrypoint for the XDS ebXML transcoder.
// It wires subcommands (convert, sample, roundtrip, serve, token), loads configuration, and initializes logging.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"xds/internal/config"
	"xds/internal/transcoder"
	"xds/pkg/codec"
	"xds/pkg/logger"
	"xds/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds what every subcommand needs once configuration is loaded.
type app struct {
	configPath string
	cfg        *config.Config
	transcoder transcoder.Transcoder
	// serving is set by the serve command, whose metrics are scraped instead.
	serving bool
}

// setup loads configuration, initializes logging and creates the transcoder.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}
	if err = logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		return fmt.Errorf("could not setup logger: %w", err)
	}

	a.cfg = cfg
	a.transcoder = transcoder.New(codec.For, transcoder.NewOptions(cfg))

	return nil
}

// writeMetrics prints the transcoding metrics of the default registry to stderr
// in the prometheus text format.
func (a *app) writeMetrics(ctx context.Context) {
	if a.cfg == nil || !a.cfg.Metrics.Enabled || a.serving {
		return
	}

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		logger.Warn(ctx, "could not gather metrics", zap.Error(err))

		return
	}

	enc := expfmt.NewEncoder(os.Stderr, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), metrics.Namespace+"_") {
			continue
		}
		if err = enc.Encode(mf); err != nil {
			logger.Warn(ctx, "could not write metrics", zap.Error(err))

			return
		}
	}
}

// newRootCommand builds the root command with every subcommand registered.
func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "xds",
		Short:        "Converts IHE XDS ebXML messages between the 2.1 and 3.0 wire versions",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	// an empty path reads the configuration from the environment only.
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config File Path")

	rootCmd.AddCommand(
		convertCommand(a),
		sampleCommand(a),
		roundTripCommand(a),
		serveCommand(a),
		tokenCommand(a),
	)

	return rootCmd
}

// main sets up the root Cobra command and executes the CLI.
func main() {
	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	a := &app{}
	err := newRootCommand(a).ExecuteContext(ctx)
	a.writeMetrics(ctx)
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
