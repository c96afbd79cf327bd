package transcoder

import (
	"context"
	"fmt"
	"time"
	"xds/internal/config"
	"xds/pkg/codec"
	"xds/pkg/ebxml"
	"xds/pkg/logger"
	"xds/pkg/metrics"
	"xds/pkg/sample"
	"xds/pkg/serrors"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Options configure the transcoder. These settings are typically derived
// from application configuration.
type Options struct {
	// Registerer receives the transcoding metrics. Nil disables registration.
	Registerer prometheus.Registerer
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	var opts Options
	if cfg.Metrics.Enabled {
		opts.Registerer = prometheus.DefaultRegisterer
	}

	return opts
}

// CodecProvider returns the codec of a wire version.
type CodecProvider func(ebxml.Version) (codec.Codec, error)

// transcoder is the concrete implementation of the Transcoder interface.
type transcoder struct {
	codecs  CodecProvider
	metrics *metrics.Transcode
}

func (t transcoder) Transcode(ctx context.Context,
	kind codec.Kind,
	from, to ebxml.Version,
	data []byte) (out []byte, err error) {
	ctx = logger.WithTransaction(ctx, kind.String(), from.String(), to.String())
	defer t.observe(ctx, kind, from, to, time.Now(), &err)

	source, err := t.codecs(from)
	if err != nil {
		return nil, fmt.Errorf("could not get source codec: %w", err)
	}
	target, err := t.codecs(to)
	if err != nil {
		return nil, fmt.Errorf("could not get target codec: %w", err)
	}

	v, err := source.Decode(kind, data)
	if err != nil {
		return nil, fmt.Errorf("could not decode message: %w", err)
	}
	out, err = target.Encode(kind, v)
	if err != nil {
		return nil, fmt.Errorf("could not encode message: %w", err)
	}

	return out, nil
}

func (t transcoder) RoundTrip(ctx context.Context,
	kind codec.Kind,
	version ebxml.Version,
	data []byte) (equal bool, err error) {
	ctx = logger.WithTransaction(ctx, kind.String(), version.String(), version.String())
	defer t.observe(ctx, kind, version, version, time.Now(), &err)

	c, err := t.codecs(version)
	if err != nil {
		return false, fmt.Errorf("could not get codec: %w", err)
	}

	first, err := c.Decode(kind, data)
	if err != nil {
		return false, fmt.Errorf("could not decode message: %w", err)
	}
	encoded, err := c.Encode(kind, first)
	if err != nil {
		return false, fmt.Errorf("could not encode message: %w", err)
	}
	second, err := c.Decode(kind, encoded)
	if err != nil {
		return false, fmt.Errorf("could not decode re-encoded message: %w", err)
	}

	equal = codec.Equal(first, second)
	if !equal {
		logger.Warn(ctx, "transaction changed after round trip")
	}

	return equal, nil
}

func (t transcoder) Sample(ctx context.Context, kind codec.Kind, version ebxml.Version) ([]byte, error) {
	v, err := sampleOf(kind)
	if err != nil {
		return nil, err
	}

	c, err := t.codecs(version)
	if err != nil {
		return nil, fmt.Errorf("could not get codec: %w", err)
	}
	out, err := c.Encode(kind, v)
	if err != nil {
		return nil, fmt.Errorf("could not encode sample: %w", err)
	}
	logger.Debug(ctx, "encoded sample", zap.Stringer("kind", kind), zap.Stringer("version", version))

	return out, nil
}

func sampleOf(kind codec.Kind) (any, error) {
	switch kind {
	case codec.KindProvideAndRegister:
		return sample.ProvideAndRegister(), nil
	case codec.KindRegister:
		return sample.Register(), nil
	case codec.KindQuery:
		return sample.Query(), nil
	case codec.KindResponse:
		return sample.Response(), nil
	case codec.KindQueryResponse:
		return sample.QueryResponse(), nil
	default:
		return nil, serrors.With(serrors.ErrUnsupported, "unsupported transaction kind %q", kind)
	}
}

// observe logs and counts a finished operation. errp points at the
// operation's named error result.
func (t transcoder) observe(ctx context.Context, kind codec.Kind, from, to ebxml.Version, start time.Time, errp *error) {
	t.metrics.Observe(kind.String(), from.String(), to.String(), start, *errp)

	if *errp != nil {
		logger.Debug(ctx, "transcoding failed", zap.Error(*errp))

		return
	}
	logger.Debug(ctx, "transcoding done", zap.Duration("took", time.Since(start)))
}

// New creates a new Transcoder that looks codecs up with codecs and records
// metrics as configured by options.
func New(codecs CodecProvider, options Options) Transcoder {
	return &transcoder{
		codecs:  codecs,
		metrics: metrics.NewTranscode(options.Registerer),
	}
}
