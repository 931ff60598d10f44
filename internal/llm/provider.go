// Package llm builds review prompts and talks to the inference providers that
// turn them into review text.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/sevigo/goframe/llms/gemini"
	"github.com/sevigo/goframe/llms/ollama"

	"github.com/sevigo/code-review-reporter/internal/config"
	"github.com/sevigo/code-review-reporter/internal/core"
)

// NewGenerator creates the generator for the configured provider.
func NewGenerator(ctx context.Context, cfg *config.Config, awsCfg aws.Config, logger *slog.Logger) (core.Generator, error) {
	ai := cfg.AI
	switch ai.Provider {
	case config.ProviderBedrock:
		logger.Info("using bedrock provider", "model", ai.Model, "region", ai.Region)
		client := bedrockruntime.NewFromConfig(awsCfg, func(o *bedrockruntime.Options) {
			o.Region = ai.Region
			o.RetryMaxAttempts = 1
		})
		return NewBedrockGenerator(client, ai.Model, ai.MaxTokens, ai.Temperature, logger), nil

	case config.ProviderGemini:
		logger.Info("using gemini provider", "model", ai.Model)
		if ai.GeminiAPIKey == "" {
			return nil, fmt.Errorf("gemini_api_key is not set for gemini provider")
		}
		model, err := gemini.New(ctx,
			gemini.WithModel(ai.Model),
			gemini.WithAPIKey(ai.GeminiAPIKey),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini model: %w", err)
		}
		return NewGoframeGenerator(model, ai.Model, ai.MaxTokens, ai.Temperature, logger), nil

	case config.ProviderOllama:
		logger.Info("using ollama provider", "model", ai.Model, "host", ai.OllamaHost)
		model, err := ollama.New(
			ollama.WithServerURL(ai.OllamaHost),
			ollama.WithHTTPClient(newOllamaHTTPClient()),
			ollama.WithModel(ai.Model),
			ollama.WithLogger(logger),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama model: %w", err)
		}
		return NewGoframeGenerator(model, ai.Model, ai.MaxTokens, ai.Temperature, logger), nil

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", ai.Provider)
	}
}

// PromptProvider returns the prompt template variant for the configured provider.
func PromptProvider(cfg *config.Config) ModelProvider {
	return ModelProvider(cfg.AI.Provider)
}

// newOllamaHTTPClient creates an HTTP client with generous timeouts; local
// models can take minutes on large inputs.
func newOllamaHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxConnsPerHost:     10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
		Timeout: 15 * time.Minute,
	}
}
