package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/cakeshop/internal/adapters/http"
	"github.com/jsamuelsen11/cakeshop/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/cakeshop/internal/domain/cake"
	"github.com/jsamuelsen11/cakeshop/mocks"
)

type routerMocks struct {
	component *mocks.MockComponent
	shop      *mocks.MockShopService
	registry  *mocks.MockHealthRegistry
}

func newTestRouter(t *testing.T, live http.Handler, middlewares ...func(http.Handler) http.Handler) (http.Handler, routerMocks) {
	t.Helper()
	m := routerMocks{
		component: mocks.NewMockComponent(t),
		shop:      mocks.NewMockShopService(t),
		registry:  mocks.NewMockHealthRegistry(t),
	}
	m.component.EXPECT().Name().Return("quantity")

	router := adapthttp.NewRouter(adapthttp.Routes{
		Component: handlers.NewComponentHandler(m.component, handlers.PageOptions{Title: "Cake Shop"}),
		Shop:      handlers.NewShopHandler(m.shop),
		Health:    handlers.NewHealthHandler(m.registry),
		Live:      live,
	}, middlewares...)
	return router, m
}

func registeredRoutes(t *testing.T, router http.Handler) map[string]bool {
	t.Helper()

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+strings.TrimSuffix(route, "/")] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}
	return registered
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, http.NotFoundHandler())
	registered := registeredRoutes(t, router)

	for _, key := range []string{
		"GET /health/live",
		"GET /health/ready",
		"GET ",
		"GET /components/quantity",
		"POST /components/quantity/handlers/{name}",
		"GET /live",
		"GET /api/v1/state",
		"POST /api/v1/actions",
	} {
		if !registered[key] {
			t.Errorf("route %q not registered; have %v", key, registered)
		}
	}
}

func TestRouter_LiveOptional(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, nil)

	if registeredRoutes(t, router)["GET /live"] {
		t.Error("GET /live registered with nil live handler")
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router, m := newTestRouter(t, nil, testMW)

	m.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_IntegrationGetState(t *testing.T) {
	t.Parallel()

	router, m := newTestRouter(t, nil)

	m.shop.EXPECT().State(mock.Anything).Return(cake.State{Quantity: 3})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/state", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"quantity":3}` {
		t.Errorf("body = %s, want {\"quantity\":3}", got)
	}
}

func TestRouter_IntegrationInvoke(t *testing.T) {
	t.Parallel()

	router, m := newTestRouter(t, nil)

	m.component.EXPECT().Invoke(mock.Anything, "increment").Return(nil)
	m.component.EXPECT().Render().Return(templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<h2>Number of cakes - 1</h2>")
		return err
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/components/quantity/handlers/increment", nil)
	req.Header.Set("HX-Request", "true")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Body.String(); got != "<h2>Number of cakes - 1</h2>" {
		t.Errorf("body = %q", got)
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/actions", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
