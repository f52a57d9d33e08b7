package ports

import (
	"context"

	"github.com/jsamuelsen11/cakeshop/internal/domain/cake"
)

// ShopClient defines the client port for a remote cakeshop service.
// Implemented by the shop client adapter; called by cakectl.
type ShopClient interface {
	// GetState returns the remote store state.
	GetState(ctx context.Context) (cake.State, error)

	// Dispatch submits an action to the remote store and returns the state
	// after it was applied.
	// Returns domain.ErrValidation if the service rejected the action.
	Dispatch(ctx context.Context, action cake.Action) (cake.State, error)
}
