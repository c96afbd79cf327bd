package controller

import (
	"errors"
	"net/http"
	"xds/pkg/logger"

	"go.uber.org/zap"
)

// WithRecover returns a middleware that answers 500 when the downstream
// handler panics. http.ErrAbortHandler is re-raised.
func WithRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if err, ok := p.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(p)
			}

			logger.Error(r.Context(), "captured panic in handler", zap.Any("panic", p), zap.Stack("stack"))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"code":"INTERNAL","message":"internal error"}`))
		}()

		next.ServeHTTP(w, r)
	})
}
