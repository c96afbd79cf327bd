// Package codec serializes XDS transactions to the XML messages of one wire
// version and back. Each message goes through the converters of its version
// package; encoding/xml binds the wire trees.
package codec

import (
	"encoding/xml"
	"slices"

	"xds/pkg/ebxml"
	"xds/pkg/ebxml/ebxml21"
	"xds/pkg/ebxml/ebxml30"
	"xds/pkg/metadata"
	"xds/pkg/serrors"
)

// Kind is an XDS transaction message kind.
type Kind string

const (
	KindProvideAndRegister Kind = "ProvideAndRegister"
	KindRegister           Kind = "Register"
	KindQuery              Kind = "Query"
	KindResponse           Kind = "Response"
	KindQueryResponse      Kind = "QueryResponse"
)

// Kinds lists every supported message kind.
var Kinds = []Kind{ //nolint: gochecknoglobals
	KindProvideAndRegister,
	KindRegister,
	KindQuery,
	KindResponse,
	KindQueryResponse,
}

// ParseKind parses a message kind name.
func ParseKind(s string) (Kind, error) {
	if k := Kind(s); slices.Contains(Kinds, k) {
		return k, nil
	}

	return "", serrors.With(serrors.ErrUnsupported, "unsupported transaction kind %q", s)
}

func (k Kind) String() string { return string(k) }

// binding converts between a transaction D and its wire message W.
type binding[D, W any] struct {
	to   func(*D) *W
	from func(*W) *D
}

func (b binding[D, W]) encode(v any) ([]byte, error) {
	d, ok := v.(*D)
	if !ok || d == nil {
		return nil, serrors.With(serrors.ErrInvalidArgument, "expected non-nil %T, got %T", d, v)
	}

	out, err := xml.MarshalIndent(b.to(d), "", "  ")
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not encode %T", d)
	}

	return append([]byte(xml.Header), out...), nil
}

func (b binding[D, W]) decode(data []byte) (any, error) {
	var w W
	if err := xml.Unmarshal(data, &w); err != nil {
		return nil, serrors.Wrap(serrors.ErrMalformed, err, "could not decode %T", w)
	}

	return b.from(&w), nil
}

type coder interface {
	encode(v any) ([]byte, error)
	decode(data []byte) (any, error)
}

type codec struct {
	version ebxml.Version
	kinds   map[Kind]coder
}

var codecs = map[ebxml.Version]*codec{ //nolint: gochecknoglobals
	ebxml.Version21: {
		version: ebxml.Version21,
		kinds: map[Kind]coder{
			KindProvideAndRegister: binding[metadata.ProvideAndRegisterDocumentSet, ebxml21.ProvideAndRegisterDocumentSetRequest]{
				to: ebxml21.ToProvideAndRegisterRequest, from: ebxml21.FromProvideAndRegisterRequest,
			},
			KindRegister: binding[metadata.RegisterDocumentSet, ebxml21.SubmitObjectsRequest]{
				to: ebxml21.ToSubmitObjectsRequest, from: ebxml21.FromSubmitObjectsRequest,
			},
			KindQuery: binding[metadata.QueryRegistry, ebxml21.AdhocQueryRequest]{
				to: ebxml21.ToAdhocQueryRequest, from: ebxml21.FromAdhocQueryRequest,
			},
			KindResponse: binding[metadata.Response, ebxml21.RegistryResponse]{
				to: ebxml21.ToRegistryResponse, from: ebxml21.FromRegistryResponse,
			},
			KindQueryResponse: binding[metadata.QueryResponse, ebxml21.RegistryResponse]{
				to: ebxml21.ToQueryResponse, from: ebxml21.FromQueryResponse,
			},
		},
	},
	ebxml.Version30: {
		version: ebxml.Version30,
		kinds: map[Kind]coder{
			KindProvideAndRegister: binding[metadata.ProvideAndRegisterDocumentSet, ebxml30.ProvideAndRegisterDocumentSetRequest]{
				to: ebxml30.ToProvideAndRegisterRequest, from: ebxml30.FromProvideAndRegisterRequest,
			},
			KindRegister: binding[metadata.RegisterDocumentSet, ebxml30.SubmitObjectsRequest]{
				to: ebxml30.ToSubmitObjectsRequest, from: ebxml30.FromSubmitObjectsRequest,
			},
			KindQuery: binding[metadata.QueryRegistry, ebxml30.AdhocQueryRequest]{
				to: ebxml30.ToAdhocQueryRequest, from: ebxml30.FromAdhocQueryRequest,
			},
			KindResponse: binding[metadata.Response, ebxml30.RegistryResponse]{
				to: ebxml30.ToRegistryResponse, from: ebxml30.FromRegistryResponse,
			},
			KindQueryResponse: binding[metadata.QueryResponse, ebxml30.AdhocQueryResponse]{
				to: ebxml30.ToQueryResponse, from: ebxml30.FromQueryResponse,
			},
		},
	},
}

// For returns the codec of wire version v.
func For(v ebxml.Version) (Codec, error) {
	c, ok := codecs[v]
	if !ok {
		return nil, serrors.With(serrors.ErrUnsupported, "unsupported ebXML version %q", v)
	}

	return c, nil
}

func (c *codec) Version() ebxml.Version { return c.version }

func (c *codec) coder(kind Kind) (coder, error) {
	k, ok := c.kinds[kind]
	if !ok {
		return nil, serrors.With(serrors.ErrUnsupported, "unsupported transaction kind %q", kind)
	}

	return k, nil
}

func (c *codec) Encode(kind Kind, v any) ([]byte, error) {
	k, err := c.coder(kind)
	if err != nil {
		return nil, err
	}

	return k.encode(v)
}

func (c *codec) Decode(kind Kind, data []byte) (any, error) {
	k, err := c.coder(kind)
	if err != nil {
		return nil, err
	}

	return k.decode(data)
}

func equal[T interface{ Equal(T) bool }](a T, b any) bool {
	other, ok := b.(T)

	return ok && a.Equal(other)
}

// Equal reports whether two transactions returned by Decode are of the same
// kind and field-wise equal.
func Equal(a, b any) bool {
	switch x := a.(type) {
	case *metadata.ProvideAndRegisterDocumentSet:
		return equal(x, b)
	case *metadata.RegisterDocumentSet:
		return equal(x, b)
	case *metadata.QueryRegistry:
		return equal(x, b)
	case *metadata.Response:
		return equal(x, b)
	case *metadata.QueryResponse:
		return equal(x, b)
	default:
		return false
	}
}
