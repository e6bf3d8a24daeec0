package preview

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName     = "github.com/vango-dev/inputkit/internal/preview"
	renderSpanName = "inputkit.render"
)

// defaultTracer uses the global tracer provider, which is a no-op until the
// application installs one.
func defaultTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// startRenderSpan opens the span wrapping one element render.
func startRenderSpan(ctx context.Context, tracer trace.Tracer, kind, theme string, names []string) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("input.kind", kind),
		attribute.StringSlice("input.attributes", names),
	}
	if theme != "" {
		attrs = append(attrs, attribute.String("input.theme", theme))
	}
	return tracer.Start(ctx, renderSpanName,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

// endSpan records err, if any, and ends the span.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
