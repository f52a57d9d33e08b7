package live_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"

	"github.com/jsamuelsen11/cakeshop/internal/adapters/live"
	"github.com/jsamuelsen11/cakeshop/internal/app/connect"
	"github.com/jsamuelsen11/cakeshop/internal/app/store"
	"github.com/jsamuelsen11/cakeshop/internal/components/quantity"
	"github.com/jsamuelsen11/cakeshop/internal/domain"
	"github.com/jsamuelsen11/cakeshop/internal/domain/cake"
)

type fixture struct {
	store *store.Store[cake.State, cake.Action]
	hub   *live.Hub
	url   string
}

func newFixture(t *testing.T, opts live.Options) *fixture {
	t.Helper()

	st := store.New(cake.Reduce, cake.Initial(),
		store.WithMiddleware[cake.State](store.Validate[cake.Action]()),
	)
	display := quantity.NewDisplay(st, quantity.Props{}, connect.MountOptions{})
	t.Cleanup(display.Close)

	hub := live.NewHub(display, opts)

	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = hub.Run(ctx) }()

	srv := httptest.NewServer(hub)
	t.Cleanup(func() {
		_ = hub.Close()
		cancel()
		srv.Close()
	})

	return &fixture{
		store: st,
		hub:   hub,
		url:   "ws" + strings.TrimPrefix(srv.URL, "http"),
	}
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	t.Cleanup(func() { _ = conn.CloseNow() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) live.Message {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	var msg live.Message
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("Unmarshal(%s) error = %v", data, err)
	}
	return msg
}

func sendEvent(t *testing.T, conn *websocket.Conn, handler string) {
	t.Helper()

	data, err := json.Marshal(live.Event{Handler: handler})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
}

// awaitRender reads frames until a render containing want arrives. Earlier
// renders can be repeated when several clients connect at once.
func awaitRender(t *testing.T, conn *websocket.Conn, want string) {
	t.Helper()

	for range 10 {
		msg := readMessage(t, conn)
		if msg.Type == live.TypeRender && strings.Contains(msg.HTML, want) {
			return
		}
	}
	t.Fatalf("no render containing %q received", want)
}

// awaitError reads frames until an error frame arrives.
func awaitError(t *testing.T, conn *websocket.Conn) live.Message {
	t.Helper()

	for range 10 {
		if msg := readMessage(t, conn); msg.Type == live.TypeError {
			return msg
		}
	}
	t.Fatal("no error frame received")
	return live.Message{}
}

func TestHub_SendsInitialRender(t *testing.T) {
	t.Parallel()
	f := newFixture(t, live.Options{})

	conn := dial(t, f.url)

	awaitRender(t, conn, "Number of cakes - 0")
}

func TestHub_HandlerDispatchesAndBroadcasts(t *testing.T) {
	t.Parallel()
	f := newFixture(t, live.Options{})

	clicker := dial(t, f.url)
	watcher := dial(t, f.url)
	awaitRender(t, clicker, "Number of cakes - 0")
	awaitRender(t, watcher, "Number of cakes - 0")

	sendEvent(t, clicker, quantity.HandlerIncrement)

	awaitRender(t, clicker, "Number of cakes - 1")
	awaitRender(t, watcher, "Number of cakes - 1")

	if got := f.store.GetState().Quantity; got != 1 {
		t.Errorf("store Quantity = %d, want 1", got)
	}
}

func TestHub_BroadcastsStoreChangesFromElsewhere(t *testing.T) {
	t.Parallel()
	f := newFixture(t, live.Options{})

	conn := dial(t, f.url)
	awaitRender(t, conn, "Number of cakes - 0")

	if err := f.store.Dispatch(context.Background(), cake.IncrementQuantityBy(3)); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}

	awaitRender(t, conn, "Number of cakes - 3")
}

func TestHub_UnknownHandlerRepliesWithError(t *testing.T) {
	t.Parallel()
	f := newFixture(t, live.Options{})

	conn := dial(t, f.url)
	awaitRender(t, conn, "Number of cakes - 0")

	sendEvent(t, conn, "decrement")

	msg := awaitError(t, conn)
	if !strings.Contains(msg.Error, "decrement") {
		t.Errorf("error = %q, want it to name the handler", msg.Error)
	}
	if got := f.store.GetState().Quantity; got != 0 {
		t.Errorf("store Quantity = %d, want 0", got)
	}
}

func TestHub_InvalidJSONRepliesWithError(t *testing.T) {
	t.Parallel()
	f := newFixture(t, live.Options{})

	conn := dial(t, f.url)
	awaitRender(t, conn, "Number of cakes - 0")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := conn.Write(ctx, websocket.MessageText, []byte("{nope")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if msg := awaitError(t, conn); msg.Error != "invalid JSON" {
		t.Errorf("error = %q, want %q", msg.Error, "invalid JSON")
	}
}

func TestHub_RejectsBeyondMaxClients(t *testing.T) {
	t.Parallel()
	f := newFixture(t, live.Options{MaxClients: 1})

	conn := dial(t, f.url)
	awaitRender(t, conn, "Number of cakes - 0")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, resp, err := websocket.Dial(ctx, f.url, nil)
	if err == nil {
		t.Fatal("second Dial() succeeded, want error")
	}
	if resp == nil || resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("second Dial() response = %v, want 503", resp)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/problem+json")
	}
}

func TestHub_CloseDisconnectsClients(t *testing.T) {
	t.Parallel()
	f := newFixture(t, live.Options{})

	conn := dial(t, f.url)
	awaitRender(t, conn, "Number of cakes - 0")

	if err := f.hub.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, _, err := conn.Read(ctx)
	if got := websocket.CloseStatus(err); got != websocket.StatusGoingAway {
		t.Errorf("CloseStatus = %v, want StatusGoingAway (err = %v)", got, err)
	}

	if err := f.hub.HealthCheck(context.Background()); !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("HealthCheck() = %v, want ErrUnavailable", err)
	}
	if err := f.hub.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestHub_HealthyWhileOpen(t *testing.T) {
	t.Parallel()
	f := newFixture(t, live.Options{})

	if f.hub.Name() != "live" {
		t.Errorf("Name() = %q, want %q", f.hub.Name(), "live")
	}
	if err := f.hub.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}
}
