package mocks

import (
	"context"

	"madison/infras/otel"
)

// otelImpl hands out no-op scopes so tests can run without a tracer.
type otelImpl struct{}

func NewOtel() otel.Otel {
	return &otelImpl{}
}

func (o *otelImpl) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}
