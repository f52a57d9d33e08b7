package store

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/cakeshop/internal/platform/logging"
	"github.com/jsamuelsen11/cakeshop/internal/platform/telemetry"
)

// Typed is implemented by actions that carry a type tag. Observability
// middleware uses it to label logs, spans and metrics.
type Typed interface {
	ActionType() string
}

// Validatable is implemented by actions that can check themselves before
// reaching the reducer.
type Validatable interface {
	Validate() error
}

// Validate returns middleware that rejects invalid actions before they reach
// the reducer. The validation error is returned unchanged.
func Validate[A Validatable]() Middleware[A] {
	return func(next DispatchFunc[A]) DispatchFunc[A] {
		return func(ctx context.Context, action A) error {
			if err := action.Validate(); err != nil {
				return err
			}
			return next(ctx, action)
		}
	}
}

// Logging returns middleware that logs every dispatch with its duration.
// The request-scoped logger from ctx is preferred over logger so that
// request and correlation IDs are attached.
func Logging[A Typed](logger *slog.Logger) Middleware[A] {
	return func(next DispatchFunc[A]) DispatchFunc[A] {
		return func(ctx context.Context, action A) error {
			start := time.Now()
			l := logging.FromContextOr(ctx, logger)

			err := next(ctx, action)
			if err != nil {
				l.WarnContext(ctx, "action rejected",
					slog.String("operation", "Store.Dispatch"),
					slog.String("action", action.ActionType()),
					slog.Any("error", err),
				)
				return err
			}

			l.DebugContext(ctx, "action dispatched",
				slog.String("operation", "Store.Dispatch"),
				slog.String("action", action.ActionType()),
				slog.Duration("duration", time.Since(start)),
			)
			return nil
		}
	}
}

// Tracing returns middleware that wraps every dispatch in a span. The span is
// a child of whatever span ctx carries (usually the HTTP server span).
func Tracing[A Typed]() Middleware[A] {
	return func(next DispatchFunc[A]) DispatchFunc[A] {
		return func(ctx context.Context, action A) error {
			tracer := otel.GetTracerProvider().Tracer("store")
			ctx, span := tracer.Start(ctx, "dispatch "+action.ActionType(),
				trace.WithSpanKind(trace.SpanKindInternal),
				trace.WithAttributes(attribute.String("action.type", action.ActionType())),
			)
			defer span.End()

			err := next(ctx, action)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			return err
		}
	}
}

// Metrics returns middleware that counts dispatches by action type and
// result. A nil metrics disables recording.
func Metrics[A Typed](metrics *telemetry.Metrics) Middleware[A] {
	return func(next DispatchFunc[A]) DispatchFunc[A] {
		return func(ctx context.Context, action A) error {
			err := next(ctx, action)
			if metrics == nil {
				return err
			}

			result := "success"
			if err != nil {
				result = "error"
			}
			metrics.StoreDispatchTotal.Add(ctx, 1, metric.WithAttributes(
				telemetry.AttrActionType.String(action.ActionType()),
				telemetry.AttrResult.String(result),
			))
			return err
		}
	}
}
