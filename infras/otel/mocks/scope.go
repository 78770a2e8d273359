package mocks

import "madison/infras/otel"

// scopeImpl is a no-op Scope for service tests.
type scopeImpl struct{}

func NewScope() otel.Scope {
	return &scopeImpl{}
}

func (s *scopeImpl) End() {}

func (s *scopeImpl) TraceError(_ error) {}

func (s *scopeImpl) TraceIfError(_ error) {}

func (s *scopeImpl) AddEvent(_ string) {}

func (s *scopeImpl) SetAttribute(_ string, _ any) {}

func (s *scopeImpl) SetAttributes(_ map[string]any) {}
