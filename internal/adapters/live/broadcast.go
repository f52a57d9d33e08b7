package live

import (
	"context"
	"sync"
)

type failure struct {
	client *client
	err    error
}

// sendAll calls send for every client using at most workers goroutines at a
// time and returns the clients whose send failed. Clients still waiting for a
// slot when ctx is canceled are reported with ctx.Err() and not sent to.
func sendAll(ctx context.Context, workers int, clients []*client, send func(context.Context, *client) error) []failure {
	if len(clients) == 0 {
		return nil
	}

	errs := make([]error, len(clients))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, c := range clients {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				errs[i] = ctx.Err()
				return
			}

			errs[i] = send(ctx, c)
		}()
	}
	wg.Wait()

	var failures []failure
	for i, err := range errs {
		if err != nil {
			failures = append(failures, failure{client: clients[i], err: err})
		}
	}
	return failures
}
