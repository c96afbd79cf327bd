package v1handler

import (
	"context"
	"errors"
	"net/http"
	"xds/internal/transcoder"
	"xds/pkg/logger"
	"xds/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Deps are the services the v1 handlers call.
type Deps struct {
	Transcoder transcoder.Transcoder
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes returns the v1 routes relative to the /v1 prefix.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /transcode/{kind}", h.Transcode)
	mux.HandleFunc("POST /roundtrip/{kind}", h.RoundTrip)
	mux.HandleFunc("GET /samples/{kind}", h.Sample)

	return mux
}

// ErrTooLarge is the code of a request whose body exceeds the configured limit.
const ErrTooLarge = "TOO_LARGE"

// Error is the JSON error body of every failed v1 request.
type Error struct {
	StatusCode int
	Code       string
	Message    string
}

// statuses maps semantic error kinds to HTTP statuses, first match wins.
var statuses = []struct { //nolint: gochecknoglobals
	kind   serrors.Kind
	status int
}{
	{serrors.ErrMalformed, http.StatusBadRequest},
	{serrors.ErrInvalidArgument, http.StatusBadRequest},
	{serrors.ErrUnsupported, http.StatusBadRequest},
	{serrors.ErrPrecondition, http.StatusBadRequest},
	{serrors.ErrNotFound, http.StatusNotFound},
	{serrors.ErrUnauthorized, http.StatusUnauthorized},
}

// NewError converts err into an error response. Errors without a semantic
// kind are logged and reported as internal errors without details.
func NewError(ctx context.Context, err error) *Error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return &Error{StatusCode: http.StatusRequestEntityTooLarge, Code: ErrTooLarge, Message: err.Error()}
	}

	for _, s := range statuses {
		if errors.Is(err, s.kind) {
			return &Error{StatusCode: s.status, Code: s.kind.Error(), Message: err.Error()}
		}
	}

	logger.Error(ctx, "could not handle request", zap.Error(err))

	return &Error{
		StatusCode: http.StatusInternalServerError,
		Code:       serrors.ErrInternal.Error(),
		Message:    "internal error",
	}
}

// Write sends the error as a JSON object.
func (e *Error) Write(w http.ResponseWriter) {
	var enc jx.Encoder
	enc.Obj(func(enc *jx.Encoder) {
		enc.FieldStart("code")
		enc.Str(e.Code)
		enc.FieldStart("message")
		enc.Str(e.Message)
	})

	writeJSON(w, e.StatusCode, enc.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeXML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
