package ports

import "context"

// HealthChecker is a part of the server the readiness endpoint depends on,
// such as the live hub, or the remote shop for cakectl.
type HealthChecker interface {
	// Name keys the checker's result, e.g. "live" or "cakeshop-api".
	Name() string

	// HealthCheck returns nil when healthy. It must return once ctx is done;
	// the registry bounds every check with a timeout.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers at startup and runs them on each
// readiness request.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every check and keys the results by name. Nil values
	// mean healthy.
	CheckAll(ctx context.Context) map[string]error
}
