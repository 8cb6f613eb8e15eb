package trace

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/casperlabs/highway/model/highway"
)

// SpanName represents a named operation of the pipeline that is traced.
type SpanName string

const (
	// PIPEValidateAndAdd covers one full pass through the critical section.
	PIPEValidateAndAdd SpanName = "pipeline.validateAndAdd"
	// PIPEComputeEffects covers validation, equivocation detection and execution.
	PIPEComputeEffects SpanName = "pipeline.computeEffects"
	// PIPEEffectsAfterAdded covers the post-commit bookkeeping of one message.
	PIPEEffectsAfterAdded SpanName = "pipeline.effectsAfterAdded"
)

// Tracer opens spans for pipeline operations, keyed by the message being
// processed so spans of one message can be correlated across components.
type Tracer interface {
	StartMessageSpan(ctx context.Context, msgID highway.Identifier, name SpanName) (oteltrace.Span, context.Context)
}

// OtelTracer emits spans through the globally configured OpenTelemetry
// tracer provider.
type OtelTracer struct {
	tracer oteltrace.Tracer
}

var _ Tracer = (*OtelTracer)(nil)

func NewTracer() *OtelTracer {
	return &OtelTracer{
		tracer: otel.GetTracerProvider().Tracer("highway/pipeline"),
	}
}

func (t *OtelTracer) StartMessageSpan(ctx context.Context, msgID highway.Identifier, name SpanName) (oteltrace.Span, context.Context) {
	ctx, span := t.tracer.Start(ctx, string(name))
	span.SetAttributes(attribute.String("message_id", msgID.String()))
	return span, ctx
}

// NoopTracer discards all spans. It is used in tests.
type NoopTracer struct {
	tracer oteltrace.Tracer
}

var _ Tracer = (*NoopTracer)(nil)

func NewNoopTracer() *NoopTracer {
	return &NoopTracer{
		tracer: oteltrace.NewNoopTracerProvider().Tracer(""),
	}
}

func (t *NoopTracer) StartMessageSpan(ctx context.Context, msgID highway.Identifier, name SpanName) (oteltrace.Span, context.Context) {
	ctx, span := t.tracer.Start(ctx, string(name))
	return span, ctx
}
