package quantity

import (
	"context"
	"fmt"

	"github.com/a-h/templ"

	"github.com/jsamuelsen11/cakeshop/internal/app/connect"
	"github.com/jsamuelsen11/cakeshop/internal/domain"
	"github.com/jsamuelsen11/cakeshop/internal/domain/cake"
	"github.com/jsamuelsen11/cakeshop/internal/ports"
)

// Instance is the mounted component.
type Instance = connect.Instance[cake.State, cake.Action, StateProps, Handlers, Props]

// Display is a mounted quantity component with fixed host props. It is what
// the HTTP handlers and the live hub talk to.
type Display struct {
	inst *Instance
	own  Props
}

var _ ports.Component = (*Display)(nil)

// NewDisplay mounts the component on st. Call Close to unmount.
func NewDisplay(st connect.Store[cake.State, cake.Action], own Props, opts connect.MountOptions) *Display {
	if opts.Name == "" {
		opts.Name = Name
	}
	return &Display{
		inst: Component.Mount(st, opts),
		own:  own,
	}
}

// Name implements ports.Component.
func (d *Display) Name() string {
	return Name
}

// Render implements ports.Component.
func (d *Display) Render() templ.Component {
	return d.inst.Render(d.own)
}

// Text returns the heading line for the current state.
func (d *Display) Text() string {
	return Text(MergeProps(d.inst.Props(), d.inst.Handlers(), d.own))
}

// Invoke implements ports.Component. Unknown names fail with
// domain.ErrNotFound before anything is bound. Dispatch errors raised by the
// handler are returned.
func (d *Display) Invoke(ctx context.Context, name string) error {
	if _, ok := d.inst.Handlers().Lookup(name); !ok {
		return fmt.Errorf("handler %q: %w", name, domain.ErrNotFound)
	}
	return d.inst.Handle(ctx, func(h Handlers) {
		if fn, ok := h.Lookup(name); ok {
			fn()
		}
	})
}

// Watch implements ports.Component.
func (d *Display) Watch(fn func()) func() {
	return d.inst.Watch(fn)
}

// Instance exposes the underlying mounted instance.
func (d *Display) Instance() *Instance {
	return d.inst
}

// Close unmounts the component.
func (d *Display) Close() {
	d.inst.Unmount()
}
