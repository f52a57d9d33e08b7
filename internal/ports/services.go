package ports

import (
	"context"

	"github.com/a-h/templ"

	"github.com/jsamuelsen11/cakeshop/internal/domain/cake"
)

// CakeStore is the process-wide state container for cake.State.
type CakeStore interface {
	GetState() cake.State
	Dispatch(ctx context.Context, action cake.Action) error
	Subscribe(listener func()) (unsubscribe func())
}

// ShopService defines the service port for the JSON API.
// Implemented by the application layer; called by inbound adapters (handlers).
type ShopService interface {
	// State returns the current store snapshot.
	State(ctx context.Context) cake.State

	// Dispatch applies action to the store and returns the resulting state.
	// Returns domain.ErrValidation if the action fails validation.
	Dispatch(ctx context.Context, action cake.Action) (cake.State, error)
}

// Component is a mounted, store-connected view as seen by the rendering
// hosts (HTTP handlers and the live hub).
type Component interface {
	// Name identifies the component in routes, logs and metrics.
	Name() string

	// Render returns the component's current render description.
	Render() templ.Component

	// Invoke runs the bound handler called name as one user interaction.
	// Returns domain.ErrNotFound if the component has no such handler.
	Invoke(ctx context.Context, name string) error

	// Watch registers fn to run whenever the component re-renders.
	Watch(fn func()) (unwatch func())
}
