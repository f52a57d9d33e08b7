package shop

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/cakeshop/internal/adapters/http/dto"
	"github.com/jsamuelsen11/cakeshop/internal/domain"
	"github.com/jsamuelsen11/cakeshop/internal/domain/cake"
	"github.com/jsamuelsen11/cakeshop/internal/platform/httpclient"
	"github.com/jsamuelsen11/cakeshop/internal/ports"
)

// API paths served by the cakeshop router.
const (
	statePath   = "/api/v1/state"
	actionsPath = "/api/v1/actions"
)

var _ ports.ShopClient = (*Client)(nil)

// Client talks to a running cakeshop server. Circuit breaking, retries,
// tracing and health reporting come from the wrapped [httpclient.Client].
type Client struct {
	http *httpclient.Client
	req  *requester
}

// NewClient creates a Client whose BaseURL points at the server root
// (e.g. "http://localhost:8080").
func NewClient(client *httpclient.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		http: client,
		req:  &requester{client: client, logger: logger},
	}
}

// GetState fetches the current snapshot from GET /api/v1/state.
func (c *Client) GetState(ctx context.Context) (cake.State, error) {
	var resp dto.StateResponse
	if err := c.req.do(ctx, http.MethodGet, statePath, nil, &resp); err != nil {
		return cake.State{}, err
	}
	return resp.ToState(), nil
}

// Dispatch sends a to POST /api/v1/actions and returns the snapshot the
// server reports after applying it. The request is never retried after the
// server may have seen it.
func (c *Client) Dispatch(ctx context.Context, a cake.Action) (cake.State, error) {
	body := dto.DispatchRequest{Type: a.Type, Payload: a.Payload}

	var resp dto.StateResponse
	if err := c.req.do(ctx, http.MethodPost, actionsPath, &body, &resp); err != nil {
		return cake.State{}, err
	}
	return resp.ToState(), nil
}

// Name returns the downstream identifier used for health registration.
func (c *Client) Name() string {
	return c.http.Name()
}

// HealthCheck reports the breaker state of the underlying client. No network
// call is made.
func (c *Client) HealthCheck(ctx context.Context) error {
	if err := c.http.HealthCheck(ctx); err != nil {
		return fmt.Errorf("%w: %w", err, domain.ErrUnavailable)
	}
	return nil
}
