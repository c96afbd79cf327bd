package codec

import (
	"xds/pkg/ebxml"
)

//go:generate mockgen -package mockcodec -source=interface.go -destination=mock/mockcodec.go *
type Codec interface {
	// Version returns the wire version this codec reads and writes.
	Version() ebxml.Version
	// Encode converts a transaction of the given kind to its XML message.
	Encode(kind Kind, v any) ([]byte, error)
	// Decode parses an XML message of the given kind into its transaction.
	Decode(kind Kind, data []byte) (any, error)
}
