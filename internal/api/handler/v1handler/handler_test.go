package v1handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"xds/internal/api/handler/v1handler"
	"xds/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestNewError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "plain error is internal",
			err:     errors.New("boom"),
			status:  http.StatusInternalServerError,
			code:    serrors.ErrInternal.Error(),
			message: "internal error",
		},
		{
			name:    "kind sentinel",
			err:     serrors.ErrNotFound,
			status:  http.StatusNotFound,
			code:    serrors.ErrNotFound.Error(),
			message: serrors.ErrNotFound.Error(),
		},
		{
			name:    "malformed message",
			err:     serrors.Wrap(serrors.ErrMalformed, errors.New("unexpected EOF"), "could not decode"),
			status:  http.StatusBadRequest,
			code:    serrors.ErrMalformed.Error(),
			message: serrors.Wrap(serrors.ErrMalformed, errors.New("unexpected EOF"), "could not decode").Error(),
		},
		{
			name:    "unsupported version",
			err:     serrors.With(serrors.ErrUnsupported, "unsupported ebXML version %q", "4.0"),
			status:  http.StatusBadRequest,
			code:    serrors.ErrUnsupported.Error(),
			message: serrors.With(serrors.ErrUnsupported, "unsupported ebXML version %q", "4.0").Error(),
		},
		{
			name:    "unauthorized",
			err:     serrors.With(serrors.ErrUnauthorized, "missing bearer token"),
			status:  http.StatusUnauthorized,
			code:    serrors.ErrUnauthorized.Error(),
			message: serrors.With(serrors.ErrUnauthorized, "missing bearer token").Error(),
		},
		{
			name:    "body too large",
			err:     &http.MaxBytesError{Limit: 10},
			status:  http.StatusRequestEntityTooLarge,
			code:    v1handler.ErrTooLarge,
			message: (&http.MaxBytesError{Limit: 10}).Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v1handler.NewError(context.Background(), tt.err)
			require.Equal(t, tt.status, res.StatusCode)
			require.Equal(t, tt.code, res.Code)
			require.Equal(t, tt.message, res.Message)
		})
	}
}

func TestErrorWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	(&v1handler.Error{StatusCode: http.StatusBadRequest, Code: "MALFORMED", Message: `bad "xml"`}).Write(rec)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"code":"MALFORMED","message":"bad \"xml\""}`, rec.Body.String())
}
