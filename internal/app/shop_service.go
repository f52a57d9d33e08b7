// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/cakeshop/internal/domain/cake"
	"github.com/jsamuelsen11/cakeshop/internal/ports"
)

// Compile-time check that ShopService implements ports.ShopService.
var _ ports.ShopService = (*ShopService)(nil)

// ShopService implements ports.ShopService on top of the process-wide store.
// It adds structured logging but no business logic: validation and state
// transitions belong to the store's middleware and reducer.
type ShopService struct {
	store  ports.CakeStore
	logger *slog.Logger
}

// NewShopService creates a ShopService. A nil logger discards output.
func NewShopService(st ports.CakeStore, logger *slog.Logger) *ShopService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ShopService{
		store:  st,
		logger: logger,
	}
}

// State returns the current store snapshot.
func (s *ShopService) State(_ context.Context) cake.State {
	return s.store.GetState()
}

// Dispatch applies action and returns the state observed right after it.
// Concurrent dispatches may already be reflected in the returned state.
func (s *ShopService) Dispatch(ctx context.Context, action cake.Action) (cake.State, error) {
	s.logger.InfoContext(ctx, "dispatching action", slog.String("action", action.String()))

	if err := s.store.Dispatch(ctx, action); err != nil {
		s.logger.ErrorContext(ctx, "failed to dispatch action",
			slog.String("operation", "ShopService.Dispatch"),
			slog.String("action", action.String()),
			slog.Any("error", err),
		)
		return cake.State{}, err
	}

	return s.store.GetState(), nil
}
