package llm

import (
	"context"
	"sync"
	"testing"

	"github.com/sevigo/goframe/llms"
	"github.com/sevigo/goframe/llms/fake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// optionRecorder captures the call options a goframe model receives.
type optionRecorder struct {
	*fake.LLM

	mu   sync.Mutex
	opts llms.CallOptions
}

func (r *optionRecorder) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	r.mu.Lock()
	for _, opt := range options {
		opt(&r.opts)
	}
	r.mu.Unlock()
	return r.LLM.Call(ctx, prompt, options...)
}

func TestGoframeGenerator_Generate(t *testing.T) {
	model := &optionRecorder{LLM: fake.NewFakeLLM([]string{"1. Project Summary\nsmall service"})}
	gen := NewGoframeGenerator(model, "llama3", 800, 0.2, discardLogger())

	text, err := gen.Generate(context.Background(), "review this")
	require.NoError(t, err)
	assert.Equal(t, "1. Project Summary\nsmall service", text)

	prompt, ok := model.LastPrompt()
	require.True(t, ok)
	assert.Equal(t, "review this", prompt)

	assert.Equal(t, 800, model.opts.MaxTokens)
	assert.InDelta(t, 0.2, model.opts.Temperature, 1e-9)
}

func TestGoframeGenerator_Error(t *testing.T) {
	model := &optionRecorder{LLM: fake.NewFakeLLM(nil)}
	gen := NewGoframeGenerator(model, "llama3", 800, 0.2, discardLogger())

	text, err := gen.Generate(context.Background(), "review this")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no responses configured")
	assert.Empty(t, text)
	assert.Equal(t, 1, model.GetCallCount())
}
