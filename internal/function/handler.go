// Package function adapts the review service to the AWS Lambda runtime.
package function

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"

	"github.com/sevigo/code-review-reporter/internal/core"
)

// Reviewer runs one review and always produces a response.
type Reviewer interface {
	Handle(ctx context.Context, req *core.ReviewRequest) core.ReviewResponse
}

// Handler is the Lambda entry point. It accepts either a direct invocation
// payload ({"files": [...]}) or an API Gateway proxy request carrying that
// payload in its body.
type Handler struct {
	reviewer Reviewer
	logger   *slog.Logger
}

func NewHandler(reviewer Reviewer, logger *slog.Logger) *Handler {
	return &Handler{reviewer: reviewer, logger: logger}
}

// Invoke handles one Lambda event. Review failures are reported through the
// response status code; the returned error is always nil so the runtime does
// not retry asynchronous invocations.
func (h *Handler) Invoke(ctx context.Context, payload json.RawMessage) (core.ReviewResponse, error) {
	logger := h.logger
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		logger = logger.With("aws_request_id", lc.AwsRequestID)
	}

	req, err := decodeRequest(payload)
	if err != nil {
		logger.WarnContext(ctx, "rejecting undecodable event", "error", err)
		return core.NewErrorResponse(core.NewStageError(core.StageInput, "decode request", err)), nil
	}

	resp := h.reviewer.Handle(ctx, req)
	logger.InfoContext(ctx, "invocation finished", "status", resp.StatusCode)
	return resp, nil
}

// eventShape tells direct payloads apart from API Gateway proxy requests.
type eventShape struct {
	Files      json.RawMessage `json:"files"`
	Body       *string         `json:"body"`
	HTTPMethod string          `json:"httpMethod"`
}

func decodeRequest(payload json.RawMessage) (*core.ReviewRequest, error) {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 || bytes.Equal(payload, []byte("null")) {
		return &core.ReviewRequest{}, nil
	}

	var shape eventShape
	if err := json.Unmarshal(payload, &shape); err != nil {
		return nil, fmt.Errorf("invalid event payload: %w", err)
	}

	if shape.Files == nil && (shape.Body != nil || shape.HTTPMethod != "") {
		return decodeProxyRequest(payload)
	}

	var req core.ReviewRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, fmt.Errorf("invalid event payload: %w", err)
	}
	return &req, nil
}

func decodeProxyRequest(payload json.RawMessage) (*core.ReviewRequest, error) {
	var proxy events.APIGatewayProxyRequest
	if err := json.Unmarshal(payload, &proxy); err != nil {
		return nil, fmt.Errorf("invalid proxy request: %w", err)
	}

	body := []byte(proxy.Body)
	if proxy.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(proxy.Body)
		if err != nil {
			return nil, fmt.Errorf("invalid base64 request body: %w", err)
		}
		body = decoded
	}

	var req core.ReviewRequest
	if len(bytes.TrimSpace(body)) == 0 {
		return &req, nil
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}
	return &req, nil
}
