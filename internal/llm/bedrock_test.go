package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/code-review-reporter/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBedrockGenerator_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockBedrockAPI(ctrl)

	client.EXPECT().InvokeModel(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in *bedrockruntime.InvokeModelInput, _ ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
			assert.Equal(t, "amazon.titan-text-express-v1", aws.ToString(in.ModelId))
			assert.Equal(t, "application/json", aws.ToString(in.ContentType))

			var req map[string]any
			require.NoError(t, json.Unmarshal(in.Body, &req))
			assert.Equal(t, "review this", req["inputText"])
			genCfg, ok := req["textGenerationConfig"].(map[string]any)
			require.True(t, ok)
			assert.InDelta(t, 800, genCfg["maxTokenCount"], 0)
			assert.InDelta(t, 0.2, genCfg["temperature"], 1e-9)

			return &bedrockruntime.InvokeModelOutput{
				Body: []byte(`{"inputTextTokenCount":3,"results":[{"tokenCount":9,"outputText":"Summary: ok\nIssues: none","completionReason":"FINISH"}]}`),
			}, nil
		},
	)

	gen := NewBedrockGenerator(client, "amazon.titan-text-express-v1", 800, 0.2, discardLogger())
	text, err := gen.Generate(context.Background(), "review this")
	require.NoError(t, err)
	assert.Equal(t, "Summary: ok\nIssues: none", text)
}

func TestBedrockGenerator_Errors(t *testing.T) {
	tests := []struct {
		name          string
		body          []byte
		invokeErr     error
		wantMalformed bool
	}{
		{name: "invoke failure", invokeErr: errors.New("ThrottlingException: rate exceeded")},
		{name: "not json", body: []byte("<html>gateway</html>"), wantMalformed: true},
		{name: "no results", body: []byte(`{"results":[]}`), wantMalformed: true},
		{name: "missing results", body: []byte(`{"outputs":[{"text":"hi"}]}`), wantMalformed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockBedrockAPI(ctrl)

			var out *bedrockruntime.InvokeModelOutput
			if tt.invokeErr == nil {
				out = &bedrockruntime.InvokeModelOutput{Body: tt.body}
			}
			client.EXPECT().InvokeModel(gomock.Any(), gomock.Any()).Return(out, tt.invokeErr)

			gen := NewBedrockGenerator(client, "amazon.titan-text-express-v1", 800, 0.2, discardLogger())
			_, err := gen.Generate(context.Background(), "prompt")
			require.Error(t, err)
			assert.Equal(t, tt.wantMalformed, errors.Is(err, ErrMalformedResponse))
			if tt.invokeErr != nil {
				assert.Contains(t, err.Error(), "rate exceeded")
			}
		})
	}
}
