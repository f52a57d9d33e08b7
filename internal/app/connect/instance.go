package connect

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/a-h/templ"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/cakeshop/internal/platform/logging"
	"github.com/jsamuelsen11/cakeshop/internal/platform/telemetry"
)

// MountOptions configures a mounted Instance.
type MountOptions struct {
	// Name labels logs and metrics. Defaults to "component".
	Name string

	// Logger is used by the default error boundary.
	Logger *slog.Logger

	// ErrorBoundary receives dispatch errors raised outside Handle. The
	// default logs them at error level.
	ErrorBoundary func(ctx context.Context, err error)

	// Metrics, when set, counts notification-triggered renders.
	Metrics *telemetry.Metrics
}

// Instance is a Component mounted on a store. It keeps the last projection,
// re-projects on every store notification and notifies its watchers only when
// the projection changed.
type Instance[S, A any, SP comparable, H, P any] struct {
	store     Store[S, A]
	connector Connector[S, A, SP, H, P]
	view      View[P]

	name     string
	logger   *slog.Logger
	boundary func(context.Context, error)
	metrics  *telemetry.Metrics

	handlers H

	mu          sync.Mutex
	props       SP
	renders     int
	mounted     bool
	nextWatchID uint64
	watchers    []watcher

	unsubscribe func()
	unmountOnce sync.Once
}

type watcher struct {
	id uint64
	fn func()
}

// Mount subscribes the component to st. The dispatch binder runs once here;
// it does not dispatch.
func (c *Component[S, A, SP, H, P]) Mount(st Store[S, A], opts MountOptions) *Instance[S, A, SP, H, P] {
	if opts.Name == "" {
		opts.Name = "component"
	}

	inst := &Instance[S, A, SP, H, P]{
		store:     st,
		connector: c.connector,
		view:      c.view,
		name:      opts.Name,
		logger:    logging.Component(opts.Logger, opts.Name),
		boundary:  opts.ErrorBoundary,
		metrics:   opts.Metrics,
		mounted:   true,
	}
	if inst.boundary == nil {
		inst.boundary = inst.logError
	}

	inst.handlers = c.connector.MapDispatch(inst.dispatchTo(context.Background(), inst.boundary))

	// Subscribe before the first projection so no dispatch falls between
	// them; a notification racing mount waits for the lock and re-projects.
	inst.mu.Lock()
	inst.unsubscribe = st.Subscribe(inst.onStoreChange)
	inst.props = c.connector.MapState(st.GetState())
	inst.mu.Unlock()

	return inst
}

// Props returns the current projection.
func (i *Instance[S, A, SP, H, P]) Props() SP {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.props
}

// Handlers returns the callbacks built at mount. Their dispatch errors go to
// the error boundary.
func (i *Instance[S, A, SP, H, P]) Handlers() H {
	return i.handlers
}

// Renders reports how many re-renders store notifications have triggered.
// The initial render at mount is not counted.
func (i *Instance[S, A, SP, H, P]) Renders() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.renders
}

// Render merges the current projection, the mounted callbacks and own, and
// passes the result to the view.
func (i *Instance[S, A, SP, H, P]) Render(own P) templ.Component {
	return i.view(i.connector.Merge(i.Props(), i.handlers, own))
}

// Handle runs one user interaction. fn receives callbacks bound to ctx; any
// dispatch errors they raise are joined and returned instead of going to the
// error boundary.
func (i *Instance[S, A, SP, H, P]) Handle(ctx context.Context, fn func(H)) error {
	var (
		mu   sync.Mutex
		errs []error
	)
	collect := func(_ context.Context, err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	fn(i.connector.MapDispatch(i.dispatchTo(ctx, collect)))

	mu.Lock()
	defer mu.Unlock()
	return errors.Join(errs...)
}

// Watch registers fn to run after every re-render. The returned function
// removes it and is safe to call more than once.
func (i *Instance[S, A, SP, H, P]) Watch(fn func()) (unwatch func()) {
	i.mu.Lock()
	i.nextWatchID++
	id := i.nextWatchID
	i.watchers = append(i.watchers, watcher{id: id, fn: fn})
	i.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			i.mu.Lock()
			defer i.mu.Unlock()
			for n, w := range i.watchers {
				if w.id == id {
					i.watchers = append(i.watchers[:n:n], i.watchers[n+1:]...)
					return
				}
			}
		})
	}
}

// Unmount unsubscribes from the store. Later notifications are ignored.
// Calling Unmount more than once is a no-op.
func (i *Instance[S, A, SP, H, P]) Unmount() {
	i.unmountOnce.Do(func() {
		i.unsubscribe()

		i.mu.Lock()
		i.mounted = false
		i.watchers = nil
		i.mu.Unlock()
	})
}

// onStoreChange reads and projects the state while holding i.mu, so
// overlapping notifications apply their projections in state order and the
// last one always reflects the latest state.
func (i *Instance[S, A, SP, H, P]) onStoreChange() {
	i.mu.Lock()
	if !i.mounted {
		i.mu.Unlock()
		return
	}
	next := i.connector.MapState(i.store.GetState())
	if next == i.props {
		i.mu.Unlock()
		return
	}
	i.props = next
	i.renders++
	watchers := i.watchers
	i.mu.Unlock()

	if i.metrics != nil {
		i.metrics.ComponentRenderTotal.Add(context.Background(), 1,
			metric.WithAttributes(telemetry.AttrComponent.String(i.name)))
	}

	for _, w := range watchers {
		w.fn()
	}
}

func (i *Instance[S, A, SP, H, P]) dispatchTo(ctx context.Context, report func(context.Context, error)) Dispatch[A] {
	return func(action A) {
		if err := i.store.Dispatch(ctx, action); err != nil {
			report(ctx, err)
		}
	}
}

func (i *Instance[S, A, SP, H, P]) logError(ctx context.Context, err error) {
	i.logger.ErrorContext(ctx, "dispatch failed",
		slog.String("operation", "Instance.dispatch"),
		slog.Any("error", err),
	)
}
