package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/cakeshop/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/cakeshop/internal/domain"
	"github.com/jsamuelsen11/cakeshop/mocks"
)

const fragmentHTML = `<div id="quantity-display"><h2>Number of cakes - 1</h2></div>`

func newComponentHandler(t *testing.T, page handlers.PageOptions) (*handlers.ComponentHandler, *mocks.MockComponent) {
	t.Helper()
	comp := mocks.NewMockComponent(t)
	return handlers.NewComponentHandler(comp, page), comp
}

// --- Page ---

func TestPage_RendersDocument(t *testing.T) {
	t.Parallel()
	h, comp := newComponentHandler(t, handlers.PageOptions{Title: "Cake Shop", LiveURL: "/live"})

	comp.EXPECT().Render().Return(staticComponent(fragmentHTML))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.Page(rec, req)

	requireStatus(t, rec, http.StatusOK)
	body := rec.Body.String()
	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		"<title>Cake Shop</title>",
		`data-live-url="/live"`,
		fragmentHTML,
		"<script>",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
}

func TestPage_WithoutLive(t *testing.T) {
	t.Parallel()
	h, comp := newComponentHandler(t, handlers.PageOptions{Title: "Cake Shop"})

	comp.EXPECT().Render().Return(staticComponent(fragmentHTML))

	rec := httptest.NewRecorder()
	h.Page(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	requireStatus(t, rec, http.StatusOK)
	body := rec.Body.String()
	if strings.Contains(body, "<script>") || strings.Contains(body, "data-live-url") {
		t.Errorf("live script rendered with live disabled:\n%s", body)
	}
}

func TestPage_EscapesTitle(t *testing.T) {
	t.Parallel()
	h, comp := newComponentHandler(t, handlers.PageOptions{Title: "<b>Cakes</b>"})

	comp.EXPECT().Render().Return(staticComponent(""))

	rec := httptest.NewRecorder()
	h.Page(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if strings.Contains(rec.Body.String(), "<b>Cakes</b>") {
		t.Errorf("title not escaped: %s", rec.Body.String())
	}
}

// --- Fragment ---

func TestFragment_RendersComponentOnly(t *testing.T) {
	t.Parallel()
	h, comp := newComponentHandler(t, handlers.PageOptions{})

	comp.EXPECT().Render().Return(staticComponent(fragmentHTML))

	rec := httptest.NewRecorder()
	h.Fragment(rec, httptest.NewRequest(http.MethodGet, "/components/quantity", nil))

	requireStatus(t, rec, http.StatusOK)
	if got := rec.Body.String(); got != fragmentHTML {
		t.Errorf("body = %q, want %q", got, fragmentHTML)
	}
}

// --- Invoke ---

func TestInvoke_RedirectsBrowser(t *testing.T) {
	t.Parallel()
	h, comp := newComponentHandler(t, handlers.PageOptions{})

	comp.EXPECT().Invoke(mock.Anything, "increment").Return(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/components/quantity/handlers/increment", nil)
	req = withChiParams(req, map[string]string{"name": "increment"})
	h.Invoke(rec, req)

	requireStatus(t, rec, http.StatusSeeOther)
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want %q", loc, "/")
	}
}

func TestInvoke_FragmentRequest(t *testing.T) {
	t.Parallel()
	h, comp := newComponentHandler(t, handlers.PageOptions{})

	comp.EXPECT().Invoke(mock.Anything, "increment").Return(nil)
	comp.EXPECT().Render().Return(staticComponent(fragmentHTML))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/components/quantity/handlers/increment", nil)
	req.Header.Set("HX-Request", "true")
	req = withChiParams(req, map[string]string{"name": "increment"})
	h.Invoke(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if got := rec.Body.String(); got != fragmentHTML {
		t.Errorf("body = %q, want %q", got, fragmentHTML)
	}
}

func TestInvoke_UnknownHandler(t *testing.T) {
	t.Parallel()
	h, comp := newComponentHandler(t, handlers.PageOptions{})

	comp.EXPECT().Invoke(mock.Anything, "decrement").
		Return(fmt.Errorf("handler %q: %w", "decrement", domain.ErrNotFound))
	comp.EXPECT().Name().Return("quantity")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/components/quantity/handlers/decrement", nil)
	req = withChiParams(req, map[string]string{"name": "decrement"})
	h.Invoke(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
}
