package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/cakeshop/internal/adapters/http/dto"
	"github.com/jsamuelsen11/cakeshop/internal/ports"
)

// ShopHandler handles the JSON store API.
type ShopHandler struct {
	svc ports.ShopService
}

// NewShopHandler creates a new ShopHandler with the given service.
func NewShopHandler(svc ports.ShopService) *ShopHandler {
	return &ShopHandler{svc: svc}
}

// GetState handles GET /api/v1/state.
func (h *ShopHandler) GetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToStateResponse(h.svc.State(r.Context())))
}

// Dispatch handles POST /api/v1/actions. The response carries the state
// after the action was applied.
func (h *ShopHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	var req dto.DispatchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	state, err := h.svc.Dispatch(r.Context(), req.ToAction())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToStateResponse(state))
}
