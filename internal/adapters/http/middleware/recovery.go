package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/cakeshop/internal/adapters/http/dto"
)

// errPanic is what clients see for a recovered panic. The panic value and
// stack are logged only.
var errPanic = errors.New("internal server error")

// Recovery returns middleware that turns a panic in a component, shop or live
// handler into a logged error and a problem+json 500.
//
// Nothing is written when the response already started or the connection was
// hijacked by a live upgrade, since the client is no longer reading an HTTP
// response. http.ErrAbortHandler is re-raised so net/http aborts the
// connection quietly.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				upgraded := rw.statusCode == http.StatusSwitchingProtocols
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", rw.Header().Get(headerRequestID)),
					slog.Bool("upgraded", upgraded),
				)

				if !rw.headerWritten {
					dto.WriteErrorResponse(rw, r, errPanic)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
