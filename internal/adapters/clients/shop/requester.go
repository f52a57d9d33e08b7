package shop

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/cakeshop/internal/platform/httpclient"
)

// requester owns the request lifecycle: JSON encoding, execution through the
// resilient client, body cleanup, status checks and decoding.
type requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// do sends method to path. reqBody is JSON encoded when non-nil and a 2xx
// response is decoded into respBody when non-nil. Other statuses go through
// TranslateHTTPError.
func (r *requester) do(ctx context.Context, method, path string, reqBody, respBody any) error {
	req, err := r.newRequest(ctx, method, path, reqBody)
	if err != nil {
		return err
	}

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// Exhausted retries still hand back the last response; translate it
		// so callers see a domain error instead of the retry error.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			if !isSuccess(resp.StatusCode) {
				return TranslateHTTPError(resp)
			}
		}
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("breaker", r.client.CircuitBreakerState()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer r.closeBody(ctx, resp)

	if !isSuccess(resp.StatusCode) {
		r.logger.WarnContext(ctx, "unexpected status",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
		return TranslateHTTPError(resp)
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", method, path, err)
		}
	}
	return nil
}

func (r *requester) newRequest(ctx context.Context, method, path string, reqBody any) (*http.Request, error) {
	url := r.client.BaseURL() + path

	if reqBody == nil {
		req, err := http.NewRequestWithContext(ctx, method, url, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("creating %s request for %s: %w", method, path, err)
		}
		return req, nil
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s body for %s: %w", method, path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (r *requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
