package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/cakeshop/internal/platform/telemetry"
)

// routeUnmatched names requests the router had no route for, so 404 scans do
// not mint one span name per path.
const routeUnmatched = "unmatched"

// OpenTelemetry returns middleware that traces each request and records
// server request metrics. Incoming W3C Trace Context is continued.
//
// Spans are named "METHOD route" after the chi route pattern, e.g.
// "POST /components/quantity/handlers/{name}", with the matched handler name
// as an attribute. The pattern is only known once routing finished, so the
// span is renamed after the handler returns. A 101 from the live upgrade is a
// success. Nil metrics skips metric recording.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	tracer := otel.GetTracerProvider().Tracer("github.com/jsamuelsen11/cakeshop/http")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tracer.Start(ctx, r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("url.path", r.URL.Path),
				),
			)
			defer span.End()

			rw := newResponseWriter(w)
			r = r.WithContext(ctx)
			next.ServeHTTP(rw, r)

			route := routeOf(r)
			status := rw.statusCode
			span.SetName(r.Method + " " + route)
			span.SetAttributes(
				telemetry.AttrHTTPRoute.String(route),
				attribute.Int("http.status_code", status),
			)
			if name := chi.URLParam(r, "name"); name != "" {
				span.SetAttributes(attribute.String("component.handler", name))
			}
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}

			recordServerMetrics(ctx, metrics, r.Method, route, start, status)
		})
	}
}

// routeOf returns the chi pattern that served r. Requests that never passed
// through a chi router are named by their path.
func routeOf(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	switch {
	case rctx == nil:
		return r.URL.Path
	case rctx.RoutePattern() == "":
		return routeUnmatched
	default:
		return rctx.RoutePattern()
	}
}

// recordServerMetrics records server request duration and count metrics.
// Safe to call with nil metrics.
func recordServerMetrics(ctx context.Context, metrics *telemetry.Metrics, method, route string, start time.Time, status int) {
	if metrics == nil {
		return
	}

	result := "success"
	if status >= http.StatusBadRequest {
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPRoute.String(route),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrResult.String(result),
	)

	metrics.ServerRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	metrics.ServerRequestTotal.Add(ctx, 1, attrs)
}
