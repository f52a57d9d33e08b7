package shop_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/cakeshop/internal/adapters/clients/shop"
	"github.com/jsamuelsen11/cakeshop/internal/adapters/http/dto"
	"github.com/jsamuelsen11/cakeshop/internal/domain"
	"github.com/jsamuelsen11/cakeshop/internal/domain/cake"
	"github.com/jsamuelsen11/cakeshop/internal/platform/config"
	"github.com/jsamuelsen11/cakeshop/internal/platform/httpclient"
)

func newTestClient(t *testing.T, baseURL string) *shop.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: time.Millisecond,
			MaxInterval:     time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
	logger := slog.New(slog.DiscardHandler)
	return shop.NewClient(httpclient.New(cfg, "cakeshop-api", nil, logger), logger)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encoding response: %v", err)
	}
}

func TestClient_GetState(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/v1/state" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, map[string]int{"quantity": 7})
	}))
	t.Cleanup(ts.Close)

	got, err := newTestClient(t, ts.URL).GetState(context.Background())
	if err != nil {
		t.Fatalf("GetState() error = %v", err)
	}
	if got.Quantity != 7 {
		t.Errorf("Quantity = %d, want 7", got.Quantity)
	}
}

func TestClient_Dispatch(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/actions" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}

		var req dto.DispatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req.Type != cake.TypeIncrementQuantity || req.Payload != 2 {
			t.Errorf("request = %+v, want INCREMENT_QUANTITY/2", req)
		}
		writeJSON(t, w, http.StatusOK, map[string]int{"quantity": 3})
	}))
	t.Cleanup(ts.Close)

	got, err := newTestClient(t, ts.URL).Dispatch(context.Background(), cake.IncrementQuantityBy(2))
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if got.Quantity != 3 {
		t.Errorf("Quantity = %d, want 3", got.Quantity)
	}
}

func TestClient_Dispatch_ValidationError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":400,"errors":[{"location":"body.type","message":"unknown action type"}]}`))
	}))
	t.Cleanup(ts.Close)

	_, err := newTestClient(t, ts.URL).Dispatch(context.Background(), cake.Action{Type: "SELL"})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *domain.ValidationError", err)
	}
	if verr.Fields["type"] != "unknown action type" {
		t.Errorf("Fields[type] = %q", verr.Fields["type"])
	}
}

func TestClient_Dispatch_NotRetriedOnServerError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(ts.Close)

	_, err := newTestClient(t, ts.URL).Dispatch(context.Background(), cake.IncrementQuantity())
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestClient_GetState_RetriedOnServerError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		writeJSON(t, w, http.StatusOK, map[string]int{"quantity": 1})
	}))
	t.Cleanup(ts.Close)

	got, err := newTestClient(t, ts.URL).GetState(context.Background())
	if err != nil {
		t.Fatalf("GetState() error = %v", err)
	}
	if got.Quantity != 1 {
		t.Errorf("Quantity = %d, want 1", got.Quantity)
	}
	if n := calls.Load(); n != 3 {
		t.Errorf("calls = %d, want 3", n)
	}
}

func TestClient_GetState_RetriesExhausted(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(ts.Close)

	_, err := newTestClient(t, ts.URL).GetState(context.Background())
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}

func TestClient_GetState_InvalidBody(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not json"))
	}))
	t.Cleanup(ts.Close)

	if _, err := newTestClient(t, ts.URL).GetState(context.Background()); err == nil {
		t.Fatal("expected decode error, got nil")
	}
}

func TestClient_Health(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, "http://localhost")
	if c.Name() != "cakeshop-api" {
		t.Errorf("Name() = %q, want %q", c.Name(), "cakeshop-api")
	}
	if err := c.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v, want nil", err)
	}
}
