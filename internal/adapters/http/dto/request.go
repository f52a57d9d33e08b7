package dto

import (
	"strings"

	"github.com/jsamuelsen11/cakeshop/internal/domain"
	"github.com/jsamuelsen11/cakeshop/internal/domain/cake"
)

const (
	msgRequired    = "is required"
	msgNonNegative = "must not be negative"
)

// DispatchRequest represents the JSON body for dispatching an action.
type DispatchRequest struct {
	Type    string `json:"type"`
	Payload int    `json:"payload,omitempty"`
}

// Validate checks the request shape. Whether the type is known is decided by
// the store's validation, so unknown types pass here.
// Returns a *domain.ValidationError if any checks fail.
func (r *DispatchRequest) Validate() error {
	verr := &domain.ValidationError{}

	if strings.TrimSpace(r.Type) == "" {
		verr.Add("type", msgRequired)
	}
	if r.Payload < 0 {
		verr.Add("payload", msgNonNegative)
	}

	return verr.Err()
}

// ToAction converts the request to a domain action. The type is normalized to
// upper case so "increment_quantity" and "INCREMENT_QUANTITY" are the same.
func (r *DispatchRequest) ToAction() cake.Action {
	return cake.Action{
		Type:    strings.ToUpper(strings.TrimSpace(r.Type)),
		Payload: r.Payload,
	}
}
