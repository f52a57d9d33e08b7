package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/jsamuelsen11/cakeshop/internal/adapters/http/middleware"
)

var uuidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// idsHandler runs RequestID then CorrelationID and records what reached the
// handler.
func idsHandler(reqID, corrID *string) http.Handler {
	return middleware.RequestID()(
		middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			*reqID = middleware.RequestIDFromContext(r.Context())
			*corrID = middleware.CorrelationIDFromContext(r.Context())
		})),
	)
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		wantKept bool
	}{
		{name: "generated when absent", incoming: "", wantKept: false},
		{name: "incoming kept", incoming: "incoming-123", wantKept: true},
		{name: "max length kept", incoming: strings.Repeat("a", 128), wantKept: true},
		{name: "too long replaced", incoming: strings.Repeat("a", 129), wantKept: false},
		{name: "space replaced", incoming: "buy cake", wantKept: false},
		{name: "control byte replaced", incoming: "id\x1b[31m", wantKept: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var reqID, corrID string
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tt.incoming != "" {
				req.Header.Set("X-Request-ID", tt.incoming)
			}
			idsHandler(&reqID, &corrID).ServeHTTP(rec, req)

			if tt.wantKept && reqID != tt.incoming {
				t.Errorf("RequestIDFromContext = %q, want %q", reqID, tt.incoming)
			}
			if !tt.wantKept && !uuidPattern.MatchString(reqID) {
				t.Errorf("RequestIDFromContext = %q, want generated UUID v4", reqID)
			}
			if got := rec.Header().Get("X-Request-ID"); got != reqID {
				t.Errorf("response X-Request-ID = %q, want %q", got, reqID)
			}
		})
	}
}

func TestRequestID_UniquenessAcrossRequests(t *testing.T) {
	t.Parallel()

	ids := make(map[string]bool)
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ids[middleware.RequestIDFromContext(r.Context())] = true
	}))

	for range 100 {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	}

	if len(ids) != 100 {
		t.Errorf("unique IDs = %d, want 100", len(ids))
	}
}

func TestCorrelationID_Sources(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		target  string
		header  string
		upgrade bool
		want    string // "" means the request ID
	}{
		{name: "header", target: "/", header: "corr-abc", want: "corr-abc"},
		{name: "defaults to request id", target: "/"},
		{name: "malformed header falls back", target: "/", header: "corr abc"},
		{name: "live upgrade query", target: "/live?correlation_id=tab-7", upgrade: true, want: "tab-7"},
		{name: "header beats query", target: "/live?correlation_id=tab-7", header: "corr-abc", upgrade: true, want: "corr-abc"},
		{name: "query ignored without upgrade", target: "/?correlation_id=tab-7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var reqID, corrID string
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.target, http.NoBody)
			if tt.header != "" {
				req.Header.Set("X-Correlation-ID", tt.header)
			}
			if tt.upgrade {
				req.Header.Set("Upgrade", "websocket")
			}
			idsHandler(&reqID, &corrID).ServeHTTP(rec, req)

			want := tt.want
			if want == "" {
				want = reqID
			}
			if corrID != want {
				t.Errorf("CorrelationIDFromContext = %q, want %q", corrID, want)
			}
			if got := rec.Header().Get("X-Correlation-ID"); got != want {
				t.Errorf("response X-Correlation-ID = %q, want %q", got, want)
			}
		})
	}
}

func TestIDsFromContext_NotFound(t *testing.T) {
	t.Parallel()

	if id := middleware.RequestIDFromContext(context.Background()); id != "" {
		t.Errorf("RequestIDFromContext = %q, want empty string", id)
	}
	if id := middleware.CorrelationIDFromContext(context.Background()); id != "" {
		t.Errorf("CorrelationIDFromContext = %q, want empty string", id)
	}
}

func TestWithIDs_StoresInContext(t *testing.T) {
	t.Parallel()

	ctx := middleware.WithRequestID(context.Background(), "req-1")
	ctx = middleware.WithCorrelationID(ctx, "corr-1")

	if got := middleware.RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("RequestIDFromContext = %q, want %q", got, "req-1")
	}
	if got := middleware.CorrelationIDFromContext(ctx); got != "corr-1" {
		t.Errorf("CorrelationIDFromContext = %q, want %q", got, "corr-1")
	}
}
