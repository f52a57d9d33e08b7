package handlers

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/cakeshop/internal/adapters/http/dto"
	"github.com/jsamuelsen11/cakeshop/internal/platform/logging"
	"github.com/jsamuelsen11/cakeshop/internal/ports"
)

// PageOptions configures the full-page host.
type PageOptions struct {
	// Title is the document title.
	Title string
	// Lang is the html lang attribute. Defaults to "en".
	Lang string
	// LiveURL is the websocket path for pushed updates. Empty disables the
	// live script; the page then relies on form posts and redirects.
	LiveURL string
}

// ComponentHandler hosts a connected component over HTTP: as a full page, as
// a fragment, and as a target for its bound handlers.
type ComponentHandler struct {
	component ports.Component
	page      PageOptions
}

// NewComponentHandler creates a new ComponentHandler.
func NewComponentHandler(component ports.Component, page PageOptions) *ComponentHandler {
	if page.Lang == "" {
		page.Lang = "en"
	}
	return &ComponentHandler{component: component, page: page}
}

// Name returns the hosted component's name, used as its route segment.
func (h *ComponentHandler) Name() string {
	return h.component.Name()
}

// Page handles GET /.
func (h *ComponentHandler) Page(w http.ResponseWriter, r *http.Request) {
	templ.Handler(Page(h.page, h.component.Render())).ServeHTTP(w, r)
}

// Fragment handles GET /components/{component}.
func (h *ComponentHandler) Fragment(w http.ResponseWriter, r *http.Request) {
	templ.Handler(h.component.Render()).ServeHTTP(w, r)
}

// Invoke handles POST /components/{component}/handlers/{name}. Browsers get a
// 303 back to the page; fragment requests get the re-rendered component.
func (h *ComponentHandler) Invoke(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := h.component.Invoke(r.Context(), name); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "component handler failed",
			slog.String("operation", "ComponentHandler.Invoke"),
			slog.String("component", h.component.Name()),
			slog.String("handler", name),
			slog.Any("error", err),
		)
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if isFragmentRequest(r) {
		h.Fragment(w, r)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
