package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// ErrMalformedResponse is returned when the provider envelope lacks a generated result.
var ErrMalformedResponse = errors.New("malformed provider response")

// BedrockAPI is the subset of the Bedrock runtime client used for generation.
type BedrockAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

type titanRequest struct {
	InputText            string                `json:"inputText"`
	TextGenerationConfig titanGenerationConfig `json:"textGenerationConfig"`
}

type titanGenerationConfig struct {
	MaxTokenCount int     `json:"maxTokenCount"`
	Temperature   float64 `json:"temperature"`
}

type titanResponse struct {
	Results []struct {
		OutputText       string `json:"outputText"`
		CompletionReason string `json:"completionReason"`
		TokenCount       int    `json:"tokenCount"`
	} `json:"results"`
}

// BedrockGenerator invokes an Amazon Titan text model through Bedrock.
type BedrockGenerator struct {
	client      BedrockAPI
	model       string
	maxTokens   int
	temperature float64
	logger      *slog.Logger
}

// NewBedrockGenerator creates a generator bound to one model and fixed generation parameters.
func NewBedrockGenerator(client BedrockAPI, model string, maxTokens int, temperature float64, logger *slog.Logger) *BedrockGenerator {
	return &BedrockGenerator{
		client:      client,
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		logger:      logger,
	}
}

// Generate sends prompt to the model and returns the first result's text.
func (g *BedrockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(titanRequest{
		InputText: prompt,
		TextGenerationConfig: titanGenerationConfig{
			MaxTokenCount: g.maxTokens,
			Temperature:   g.temperature,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode bedrock request: %w", err)
	}

	g.logger.DebugContext(ctx, "invoking bedrock model", "model", g.model, "prompt_bytes", len(prompt))

	out, err := g.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(g.model),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return "", fmt.Errorf("bedrock invoke model %s: %w", g.model, err)
	}

	return parseTitanResponse(out.Body)
}

func parseTitanResponse(body []byte) (string, error) {
	var resp titanResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if len(resp.Results) == 0 {
		return "", fmt.Errorf("%w: no results", ErrMalformedResponse)
	}
	return resp.Results[0].OutputText, nil
}
