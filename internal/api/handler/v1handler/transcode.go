package v1handler

import (
	"fmt"
	"io"
	"net/http"
	"xds/pkg/codec"
	"xds/pkg/ebxml"

	"github.com/go-faster/jx"
)

// versionParam parses a required version query parameter.
func versionParam(r *http.Request, name string) (ebxml.Version, error) {
	v, err := ebxml.ParseVersion(r.URL.Query().Get(name))
	if err != nil {
		return "", fmt.Errorf("invalid %s parameter: %w", name, err)
	}

	return v, nil
}

func readBody(r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read request body: %w", err)
	}

	return data, nil
}

// Transcode converts the XML body from the "from" version to the "to" version.
func (h *Handler) Transcode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	kind, err := codec.ParseKind(r.PathValue("kind"))
	if err != nil {
		NewError(ctx, err).Write(w)

		return
	}
	from, err := versionParam(r, "from")
	if err != nil {
		NewError(ctx, err).Write(w)

		return
	}
	to, err := versionParam(r, "to")
	if err != nil {
		NewError(ctx, err).Write(w)

		return
	}
	data, err := readBody(r)
	if err != nil {
		NewError(ctx, err).Write(w)

		return
	}

	out, err := h.deps.Transcoder.Transcode(ctx, kind, from, to, data)
	if err != nil {
		NewError(ctx, err).Write(w)

		return
	}

	writeXML(w, out)
}

// RoundTrip reports whether the XML body survives re-encoding unchanged.
func (h *Handler) RoundTrip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	kind, err := codec.ParseKind(r.PathValue("kind"))
	if err != nil {
		NewError(ctx, err).Write(w)

		return
	}
	version, err := versionParam(r, "version")
	if err != nil {
		NewError(ctx, err).Write(w)

		return
	}
	data, err := readBody(r)
	if err != nil {
		NewError(ctx, err).Write(w)

		return
	}

	equal, err := h.deps.Transcoder.RoundTrip(ctx, kind, version, data)
	if err != nil {
		NewError(ctx, err).Write(w)

		return
	}

	var enc jx.Encoder
	enc.Obj(func(enc *jx.Encoder) {
		enc.FieldStart("kind")
		enc.Str(kind.String())
		enc.FieldStart("version")
		enc.Str(version.String())
		enc.FieldStart("equal")
		enc.Bool(equal)
	})
	writeJSON(w, http.StatusOK, enc.Bytes())
}

// Sample returns a sample message of the given kind and version.
func (h *Handler) Sample(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	kind, err := codec.ParseKind(r.PathValue("kind"))
	if err != nil {
		NewError(ctx, err).Write(w)

		return
	}
	version, err := versionParam(r, "version")
	if err != nil {
		NewError(ctx, err).Write(w)

		return
	}

	out, err := h.deps.Transcoder.Sample(ctx, kind, version)
	if err != nil {
		NewError(ctx, err).Write(w)

		return
	}

	writeXML(w, out)
}
