package llm

import (
	"context"
	"log/slog"

	"github.com/sevigo/goframe/llms"
)

// GoframeGenerator adapts a goframe model (Ollama, Gemini) to core.Generator.
// Every call carries the same output bound and temperature.
type GoframeGenerator struct {
	model       llms.Model
	name        string
	maxTokens   int
	temperature float64
	logger      *slog.Logger
}

func NewGoframeGenerator(model llms.Model, name string, maxTokens int, temperature float64, logger *slog.Logger) *GoframeGenerator {
	return &GoframeGenerator{
		model:       model,
		name:        name,
		maxTokens:   maxTokens,
		temperature: temperature,
		logger:      logger,
	}
}

func (g *GoframeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.logger.DebugContext(ctx, "calling goframe model", "model", g.name, "prompt_bytes", len(prompt), "max_tokens", g.maxTokens)
	return g.model.Call(ctx, prompt,
		llms.WithMaxTokens(g.maxTokens),
		llms.WithTemperature(g.temperature),
	)
}
