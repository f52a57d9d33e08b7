package live

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/cakeshop/mocks"
)

func TestSendAll_Empty(t *testing.T) {
	t.Parallel()

	got := sendAll(context.Background(), 2, nil, func(context.Context, *client) error {
		t.Fatal("send called for empty client list")
		return nil
	})
	if got != nil {
		t.Errorf("sendAll() = %v, want nil", got)
	}
}

func TestSendAll_ReportsFailures(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	clients := []*client{{id: "a"}, {id: "b"}, {id: "c"}}

	got := sendAll(context.Background(), 2, clients, func(_ context.Context, c *client) error {
		if c.id == "b" {
			return errBoom
		}
		return nil
	})

	if len(got) != 1 {
		t.Fatalf("len(failures) = %d, want 1", len(got))
	}
	if got[0].client.id != "b" || !errors.Is(got[0].err, errBoom) {
		t.Errorf("failure = {%s, %v}, want {b, boom}", got[0].client.id, got[0].err)
	}
}

func TestSendAll_BoundsConcurrency(t *testing.T) {
	t.Parallel()

	const workers = 2
	clients := make([]*client, 10)
	for i := range clients {
		clients[i] = &client{}
	}

	var inFlight, peak atomic.Int32
	sendAll(context.Background(), workers, clients, func(context.Context, *client) error {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return nil
	})

	if got := peak.Load(); got > workers {
		t.Errorf("peak concurrency = %d, want <= %d", got, workers)
	}
}

func TestSendAll_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	clients := []*client{{id: "a"}, {id: "b"}}
	got := sendAll(ctx, 1, clients, func(context.Context, *client) error {
		return nil
	})
	for _, f := range got {
		if !errors.Is(f.err, context.Canceled) {
			t.Errorf("failure err = %v, want context.Canceled", f.err)
		}
	}
}

func TestHub_InvalidateCoalesces(t *testing.T) {
	t.Parallel()

	comp := mocks.NewMockComponent(t)
	comp.EXPECT().Watch(mock.Anything).Return(func() {})

	h := NewHub(comp, Options{})
	h.Invalidate()
	h.Invalidate()
	h.Invalidate()

	if got := len(h.dirty); got != 1 {
		t.Errorf("pending broadcasts = %d, want 1", got)
	}
}

func TestHub_RunWithoutClientsSkipsRender(t *testing.T) {
	t.Parallel()

	comp := mocks.NewMockComponent(t)
	comp.EXPECT().Watch(mock.Anything).Return(func() {})

	h := NewHub(comp, Options{})
	h.Invalidate()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := h.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() = %v, want context.DeadlineExceeded", err)
	}
	if got := len(h.dirty); got != 0 {
		t.Errorf("pending broadcasts = %d after Run, want 0", got)
	}
}
