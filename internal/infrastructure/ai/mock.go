package ai

import (
	"context"

	"github.com/freshmc/pulse/pkg/domain/ai"
)

// MockProvider echoes a canned narrative. Used in tests and by workspaces
// that want deterministic output without any external call.
type MockProvider struct {
	Model string
	Text  string
}

func (p *MockProvider) ID() string {
	return "mock:" + p.Model
}

func (p *MockProvider) Complete(_ context.Context, req ai.CompletionRequest) (*ai.CompletionResponse, error) {
	text := p.Text
	if text == "" {
		text = "Mock narrative for: " + req.Prompt
	}
	return &ai.CompletionResponse{
		Text:  text,
		Model: p.Model,
		Usage: ai.TokenUsage{
			InputTokens:  len(req.Prompt) / 4,
			OutputTokens: len(text) / 4,
		},
	}, nil
}
