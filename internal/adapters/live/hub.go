// Package live pushes re-rendered components to browsers over websockets and
// feeds button presses from those browsers back into the component.
//
// Every connected client receives a render frame when it connects and after
// every change of the component's projected props:
//
//	{"type":"render","html":"<div class=\"quantity-display\" ...>"}
//
// Clients invoke bound handlers by sending:
//
//	{"handler":"increment"}
//
// A failed invocation is answered with {"type":"error","error":"..."} to that
// client only.
package live

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/cakeshop/internal/adapters/http/dto"
	"github.com/jsamuelsen11/cakeshop/internal/domain"
	"github.com/jsamuelsen11/cakeshop/internal/platform/logging"
	"github.com/jsamuelsen11/cakeshop/internal/platform/telemetry"
	"github.com/jsamuelsen11/cakeshop/internal/ports"
)

// Frame types sent to clients.
const (
	TypeRender = "render"
	TypeError  = "error"
)

const (
	defaultMaxWorkers   = 8
	defaultWriteTimeout = 5 * time.Second
	maxEventBytes       = 4 << 10
)

var (
	errHubClosed = fmt.Errorf("live hub closed: %w", domain.ErrUnavailable)
	errHubFull   = fmt.Errorf("live hub at capacity: %w", domain.ErrUnavailable)
)

// Message is a frame sent from the hub to a client.
type Message struct {
	Type  string `json:"type"`
	HTML  string `json:"html,omitempty"`
	Error string `json:"error,omitempty"`
}

// Event is a frame sent from a client to the hub.
type Event struct {
	Handler string `json:"handler"`
}

// Options configures a Hub.
type Options struct {
	// MaxWorkers bounds concurrent writes during a broadcast.
	MaxWorkers int
	// WriteTimeout bounds a single frame write to a single client.
	WriteTimeout time.Duration
	// MaxClients bounds concurrent connections. Zero means unlimited.
	MaxClients int
	// OriginPatterns lists extra hosts allowed to connect cross-origin.
	OriginPatterns []string

	Logger  *slog.Logger
	Metrics *telemetry.Metrics
}

// Hub serves one component to any number of websocket clients.
type Hub struct {
	component ports.Component
	opts      Options
	logger    *slog.Logger

	dirty     chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	unwatch   func()

	mu      sync.Mutex
	closed  bool
	active  int
	clients map[string]*client
}

type client struct {
	id   string
	conn *websocket.Conn
}

var _ ports.HealthChecker = (*Hub)(nil)

// NewHub creates a Hub that re-broadcasts component whenever it re-renders.
// Run must be started for frames to be sent.
func NewHub(component ports.Component, opts Options) *Hub {
	if opts.MaxWorkers < 1 {
		opts.MaxWorkers = defaultMaxWorkers
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = defaultWriteTimeout
	}

	h := &Hub{
		component: component,
		opts:      opts,
		logger:    logging.Component(opts.Logger, "live"),
		dirty:     make(chan struct{}, 1),
		done:      make(chan struct{}),
		clients:   make(map[string]*client),
	}
	h.unwatch = component.Watch(h.Invalidate)
	return h
}

// Invalidate schedules a broadcast. Calls made before the pending broadcast
// starts are merged into it.
func (h *Hub) Invalidate() {
	select {
	case h.dirty <- struct{}{}:
	default:
	}
}

// Run broadcasts renders until ctx is done or the hub is closed.
func (h *Hub) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-h.done:
			return nil
		case <-h.dirty:
			h.broadcast(ctx)
		}
	}
}

// Clients reports the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Name implements ports.HealthChecker.
func (h *Hub) Name() string {
	return "live"
}

// HealthCheck implements ports.HealthChecker. A closed hub is unhealthy.
func (h *Hub) HealthCheck(_ context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return errHubClosed
	}
	return nil
}

// ServeHTTP upgrades the request to a websocket and serves the client until
// it disconnects or the hub closes.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContextOr(ctx, h.logger)

	if err := h.reserve(); err != nil {
		logger.WarnContext(ctx, "live connection refused", slog.Any("error", err))
		dto.WriteErrorResponse(w, r, err)
		return
	}
	defer h.release()

	// The server's read and write timeouts are meant for plain requests.
	rc := http.NewResponseController(w)
	_ = rc.SetReadDeadline(time.Time{})
	_ = rc.SetWriteDeadline(time.Time{})

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.opts.OriginPatterns,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to accept websocket connection",
			slog.String("operation", "Hub.ServeHTTP"),
			slog.Any("error", err),
		)
		return
	}
	conn.SetReadLimit(maxEventBytes)

	c := &client{id: uuid.NewString(), conn: conn}
	logger = logger.With(slog.String("client_id", c.id))

	if !h.register(ctx, c) {
		_ = conn.Close(websocket.StatusGoingAway, "server shutting down")
		return
	}
	defer h.unregister(ctx, c)

	logger.InfoContext(ctx, "live client connected")
	h.Invalidate()

	h.readLoop(ctx, logger, c)
}

func (h *Hub) readLoop(ctx context.Context, logger *slog.Logger, c *client) {
	defer func() { _ = c.conn.Close(websocket.StatusNormalClosure, "") }()

	for {
		msgType, data, err := c.conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway && !errors.Is(err, context.Canceled) {
				logger.WarnContext(ctx, "live client read failed", slog.Any("error", err))
			} else {
				logger.InfoContext(ctx, "live client disconnected")
			}
			return
		}

		if msgType != websocket.MessageText {
			h.reply(ctx, c, Message{Type: TypeError, Error: "invalid message type"})
			continue
		}

		var ev Event
		if err := json.Unmarshal(data, &ev); err != nil {
			h.reply(ctx, c, Message{Type: TypeError, Error: "invalid JSON"})
			continue
		}

		if err := h.component.Invoke(ctx, ev.Handler); err != nil {
			logger.WarnContext(ctx, "component handler failed",
				slog.String("operation", "Hub.readLoop"),
				slog.String("handler", ev.Handler),
				slog.Any("error", err),
			)
			h.reply(ctx, c, Message{Type: TypeError, Error: err.Error()})
		}
	}
}

// Close disconnects every client and stops Run. It is safe to call more than
// once.
func (h *Hub) Close() error {
	h.closeOnce.Do(func() {
		h.unwatch()

		h.mu.Lock()
		h.closed = true
		clients := h.snapshotLocked()
		h.mu.Unlock()

		close(h.done)

		var wg sync.WaitGroup
		for _, c := range clients {
			wg.Go(func() {
				_ = c.conn.Close(websocket.StatusGoingAway, "server shutting down")
			})
		}
		wg.Wait()
	})
	return nil
}

func (h *Hub) broadcast(ctx context.Context) {
	clients := h.snapshot()
	if len(clients) == 0 {
		return
	}

	frame, err := h.renderFrame(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to render live frame",
			slog.String("operation", "Hub.broadcast"),
			slog.String("component", h.component.Name()),
			slog.Any("error", err),
		)
		return
	}

	failures := sendAll(ctx, h.opts.MaxWorkers, clients, func(ctx context.Context, c *client) error {
		return h.write(ctx, c, frame)
	})
	for _, f := range failures {
		h.logger.WarnContext(ctx, "dropping live client",
			slog.String("client_id", f.client.id),
			slog.Any("error", f.err),
		)
		_ = f.client.conn.CloseNow()
	}
}

func (h *Hub) renderFrame(ctx context.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := h.component.Render().Render(ctx, &buf); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", h.component.Name(), err)
	}
	return json.Marshal(Message{Type: TypeRender, HTML: buf.String()})
}

func (h *Hub) reply(ctx context.Context, c *client, msg Message) {
	frame, err := json.Marshal(msg)
	if err != nil {
		return
	}
	if err := h.write(ctx, c, frame); err != nil {
		h.logger.DebugContext(ctx, "live reply failed",
			slog.String("client_id", c.id),
			slog.Any("error", err),
		)
	}
}

func (h *Hub) write(ctx context.Context, c *client, frame []byte) error {
	ctx, cancel := context.WithTimeout(ctx, h.opts.WriteTimeout)
	defer cancel()
	return c.conn.Write(ctx, websocket.MessageText, frame)
}

func (h *Hub) reserve() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return errHubClosed
	}
	if h.opts.MaxClients > 0 && h.active >= h.opts.MaxClients {
		return errHubFull
	}
	h.active++
	return nil
}

func (h *Hub) release() {
	h.mu.Lock()
	h.active--
	h.mu.Unlock()
}

func (h *Hub) register(ctx context.Context, c *client) bool {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return false
	}
	h.clients[c.id] = c
	h.mu.Unlock()

	h.recordClients(ctx, 1)
	return true
}

func (h *Hub) unregister(ctx context.Context, c *client) {
	h.mu.Lock()
	_, ok := h.clients[c.id]
	delete(h.clients, c.id)
	h.mu.Unlock()

	if ok {
		h.recordClients(ctx, -1)
	}
}

func (h *Hub) recordClients(ctx context.Context, delta int64) {
	if h.opts.Metrics == nil {
		return
	}
	h.opts.Metrics.LiveClients.Add(ctx, delta,
		metric.WithAttributes(telemetry.AttrComponent.String(h.component.Name())))
}

func (h *Hub) snapshot() []*client {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshotLocked()
}

func (h *Hub) snapshotLocked() []*client {
	out := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		out = append(out, c)
	}
	return out
}
