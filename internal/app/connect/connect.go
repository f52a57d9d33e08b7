// Package connect binds presentational views to a Store. A Connector pairs a
// state projector (store state to view props) with a dispatch binder
// (dispatch to named callbacks) and a merge step that combines both with the
// props supplied by the parent.
//
//	component := connect.MustConnect(connect.Connector[cake.State, cake.Action, StateProps, Handlers, Props]{
//	    MapState:    MapStateToProps,
//	    MapDispatch: MapDispatchToProps,
//	    Merge:       MergeProps,
//	}, View)
//
//	inst := component.Mount(st, connect.MountOptions{Name: "quantity"})
//	defer inst.Unmount()
//	err := inst.Render(own).Render(ctx, w)
//
// Projected props must be comparable: a mounted Instance only re-renders when
// the new projection differs from the previous one by ==.
package connect

import (
	"context"
	"errors"

	"github.com/a-h/templ"
)

// ErrIncompleteConnector is returned by Connect when a mapping function or the
// view is missing.
var ErrIncompleteConnector = errors.New("connect: incomplete connector")

// Store is the contract a Connector needs from the state container.
type Store[S, A any] interface {
	GetState() S
	Dispatch(ctx context.Context, action A) error
	Subscribe(listener func()) (unsubscribe func())
}

// Dispatch is the callable handed to a dispatch binder. Errors from the store
// are routed to the enclosing Handle call or to the instance's error boundary.
type Dispatch[A any] func(action A)

// View renders merged props. Views are pure: same props, same output.
type View[P any] func(props P) templ.Component

// Connector describes how a view is bound to a store.
type Connector[S, A any, SP comparable, H, P any] struct {
	// MapState projects store state to the props the view reads.
	MapState func(state S) SP
	// MapDispatch builds the view's callbacks. It must not dispatch.
	MapDispatch func(dispatch Dispatch[A]) H
	// Merge combines projected props, callbacks and parent-supplied props.
	Merge func(state SP, handlers H, own P) P
}

// Component is a connected view ready to be mounted.
type Component[S, A any, SP comparable, H, P any] struct {
	connector Connector[S, A, SP, H, P]
	view      View[P]
}

// Connect wraps view with the connector's bindings.
func Connect[S, A any, SP comparable, H, P any](c Connector[S, A, SP, H, P], view View[P]) (*Component[S, A, SP, H, P], error) {
	var errs []error
	if c.MapState == nil {
		errs = append(errs, errors.New("MapState is nil"))
	}
	if c.MapDispatch == nil {
		errs = append(errs, errors.New("MapDispatch is nil"))
	}
	if c.Merge == nil {
		errs = append(errs, errors.New("Merge is nil"))
	}
	if view == nil {
		errs = append(errs, errors.New("view is nil"))
	}
	if len(errs) > 0 {
		return nil, errors.Join(append([]error{ErrIncompleteConnector}, errs...)...)
	}

	return &Component[S, A, SP, H, P]{connector: c, view: view}, nil
}

// MustConnect is like Connect but panics on an incomplete connector. It is
// meant for package-level component declarations.
func MustConnect[S, A any, SP comparable, H, P any](c Connector[S, A, SP, H, P], view View[P]) *Component[S, A, SP, H, P] {
	comp, err := Connect(c, view)
	if err != nil {
		panic(err)
	}
	return comp
}

// Project runs the state projector without mounting.
func (c *Component[S, A, SP, H, P]) Project(state S) SP {
	return c.connector.MapState(state)
}
