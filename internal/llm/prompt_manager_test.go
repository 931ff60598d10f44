package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/code-review-reporter/internal/core"
)

const reviewPreamble = `You are a senior software engineer.
Review the following code and provide:
1. Project Summary
2. Issues (with severity)
3. Recommendations

Code:
`

func TestPromptManager_RenderCodeReview(t *testing.T) {
	pm, err := NewPromptManager()
	require.NoError(t, err)

	files := []string{
		"print('hi')",
		"package main\n\nfunc main() {}\n",
		"SELECT * FROM users WHERE id = {{ .ID }};",
	}
	code := strings.Join(files, "\n")

	prompt, err := pm.Render(CodeReviewPrompt, ModelProvider("bedrock"), core.ReviewPromptData{Code: code})
	require.NoError(t, err)

	preambleAt := strings.Index(prompt, reviewPreamble)
	require.GreaterOrEqual(t, preambleAt, 0, "preamble missing from prompt: %q", prompt)

	codeAt := strings.Index(prompt, code)
	require.GreaterOrEqual(t, codeAt, 0, "joined files missing from prompt")
	assert.Equal(t, preambleAt+len(reviewPreamble), codeAt, "code must directly follow the preamble")

	for _, f := range files {
		assert.Contains(t, prompt, f)
	}
	assert.Equal(t, "\n"+reviewPreamble+code+"\n", prompt)
}

func TestPromptManager_ProviderFallback(t *testing.T) {
	pm, err := NewPromptManager()
	require.NoError(t, err)

	require.NoError(t, pm.Register(CodeReviewPrompt, "ollama", "local: {{ .Code }}"))

	got, err := pm.Render(CodeReviewPrompt, "ollama", core.ReviewPromptData{Code: "x := 1"})
	require.NoError(t, err)
	assert.Equal(t, "local: x := 1", got)

	got, err = pm.Render(CodeReviewPrompt, "gemini", core.ReviewPromptData{Code: "x := 1"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "\n"+reviewPreamble))
}

func TestPromptManager_UnknownKey(t *testing.T) {
	pm, err := NewPromptManager()
	require.NoError(t, err)

	_, err = pm.Render("summary", "bedrock", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no "summary" prompt for provider "bedrock"`)
}

func TestPromptManager_RegisterInvalidTemplate(t *testing.T) {
	pm, err := NewPromptManager()
	require.NoError(t, err)

	assert.Error(t, pm.Register(CodeReviewPrompt, "broken", "{{ .Code "))
}

func TestParsePromptName(t *testing.T) {
	tests := []struct {
		name         string
		wantKey      PromptKey
		wantProvider ModelProvider
		wantErr      bool
	}{
		{name: "code_review_default.prompt", wantKey: CodeReviewPrompt, wantProvider: DefaultProvider},
		{name: "code_review_bedrock.prompt", wantKey: CodeReviewPrompt, wantProvider: "bedrock"},
		{name: "summary_ollama.prompt", wantKey: "summary", wantProvider: "ollama"},
		{name: "review.prompt", wantErr: true},
		{name: "_default.prompt", wantErr: true},
		{name: "code_review_.prompt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, provider, err := parsePromptName(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantProvider, provider)
		})
	}
}
