package ai

import (
	"context"
	"time"

	"github.com/felixgeelhaar/fortify/timeout"

	"github.com/freshmc/pulse/pkg/domain/ai"
)

// NarrativeTimeout bounds the external text-generation round trip. There is
// deliberately no retry: on timeout or error the caller proceeds straight to
// the deterministic fallback narrative.
const NarrativeTimeout = 10 * time.Second

// ResilientProvider wraps a provider with a hard timeout.
type ResilientProvider struct {
	inner ai.Provider
	limit time.Duration
}

func NewResilientProvider(inner ai.Provider) *ResilientProvider {
	return &ResilientProvider{inner: inner, limit: NarrativeTimeout}
}

func (p *ResilientProvider) ID() string {
	return p.inner.ID()
}

func (p *ResilientProvider) Complete(ctx context.Context, req ai.CompletionRequest) (*ai.CompletionResponse, error) {
	t := timeout.New[*ai.CompletionResponse](timeout.Config{
		DefaultTimeout: p.limit,
	})

	return t.Execute(ctx, p.limit, func(ctx context.Context) (*ai.CompletionResponse, error) {
		return p.inner.Complete(ctx, req)
	})
}
