// Package quantity is the store-connected cake counter: a heading showing how
// many cakes have been bought and a button that buys one more.
//
// The package follows the connect pattern. MapStateToProps picks the quantity
// out of the store state, MapDispatchToProps binds the button callback,
// MergeProps combines both with the host's props, and View renders the result
// without touching the store.
package quantity

import (
	"golang.org/x/text/language"

	"github.com/jsamuelsen11/cakeshop/internal/app/connect"
	"github.com/jsamuelsen11/cakeshop/internal/domain/cake"
)

const (
	// Name identifies the component in routes, logs and metrics.
	Name = "quantity"

	// HandlerIncrement is the name of the bound increment callback.
	HandlerIncrement = "increment"

	// DefaultLabel is the button text when the host supplies none.
	DefaultLabel = "Buy Cake"

	// DefaultActionURL is where the button's form posts when the host
	// supplies no URL.
	DefaultActionURL = "/components/" + Name + "/handlers/" + HandlerIncrement
)

// StateProps is the part of the store state the view reads.
type StateProps struct {
	Quantity int
}

// Handlers are the callbacks bound to the store's dispatch.
type Handlers struct {
	OnIncrement func()
}

// Lookup returns the callback registered under name.
func (h Handlers) Lookup(name string) (func(), bool) {
	switch name {
	case HandlerIncrement:
		return h.OnIncrement, h.OnIncrement != nil
	default:
		return nil, false
	}
}

// Props are the merged props handed to View. Quantity and OnIncrement come
// from the store bindings; the rest is supplied by the host.
type Props struct {
	Quantity    int
	OnIncrement func()

	ActionURL string
	Locale    language.Tag
	Label     string
}

// MapStateToProps projects the store state. It is pure.
func MapStateToProps(state cake.State) StateProps {
	return StateProps{Quantity: state.Quantity}
}

// MapDispatchToProps binds OnIncrement to dispatch. Nothing is dispatched
// until OnIncrement is called; each call dispatches exactly one
// cake.IncrementQuantity action.
func MapDispatchToProps(dispatch connect.Dispatch[cake.Action]) Handlers {
	return Handlers{
		OnIncrement: func() { dispatch(cake.IncrementQuantity()) },
	}
}

// MergeProps overlays the store bindings on the host props and fills in
// defaults for anything the host left empty.
func MergeProps(state StateProps, handlers Handlers, own Props) Props {
	own.Quantity = state.Quantity
	own.OnIncrement = handlers.OnIncrement

	if own.ActionURL == "" {
		own.ActionURL = DefaultActionURL
	}
	if own.Locale == language.Und {
		own.Locale = language.English
	}
	if own.Label == "" {
		own.Label = DefaultLabel
	}
	return own
}

// Connector binds View to a cake store.
var Connector = connect.Connector[cake.State, cake.Action, StateProps, Handlers, Props]{
	MapState:    MapStateToProps,
	MapDispatch: MapDispatchToProps,
	Merge:       MergeProps,
}

// Component is the connected view, ready to mount.
var Component = connect.MustConnect(Connector, View)
