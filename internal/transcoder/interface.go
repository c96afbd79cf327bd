package transcoder

import (
	"context"
	"xds/pkg/codec"
	"xds/pkg/ebxml"
)

//go:generate mockgen -package mocktranscoder -source=interface.go -destination=mock/mocktranscoder.go *
type Transcoder interface {
	// Transcode decodes data as a message of wire version from and encodes the
	// resulting transaction in wire version to.
	Transcode(ctx context.Context, kind codec.Kind, from, to ebxml.Version, data []byte) ([]byte, error)
	// RoundTrip decodes data, encodes it again in the same version and decodes
	// the result. It reports whether both decoded transactions are equal.
	RoundTrip(ctx context.Context, kind codec.Kind, version ebxml.Version, data []byte) (bool, error)
	// Sample encodes a sample transaction of the given kind.
	Sample(ctx context.Context, kind codec.Kind, version ebxml.Version) ([]byte, error)
}
