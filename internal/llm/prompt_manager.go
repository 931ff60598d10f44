package llm

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"
)

//go:embed prompts/*.prompt
var promptFiles embed.FS

// ModelProvider selects a prompt variant. It matches config ai.provider.
type ModelProvider string

// PromptKey names a prompt task.
type PromptKey string

const (
	DefaultProvider  ModelProvider = "default"
	CodeReviewPrompt PromptKey     = "code_review"
)

type promptID struct {
	key      PromptKey
	provider ModelProvider
}

// PromptManager renders the embedded prompt templates. Files are named
// <key>_<provider>.prompt; a provider without its own file (bedrock, ollama
// and gemini all share code_review_default.prompt) uses the default variant.
type PromptManager struct {
	templates map[promptID]*template.Template
}

func NewPromptManager() (*PromptManager, error) {
	pm := &PromptManager{templates: make(map[promptID]*template.Template)}

	names, err := fs.Glob(promptFiles, "prompts/*.prompt")
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded prompts: %w", err)
	}

	for _, name := range names {
		key, provider, err := parsePromptName(path.Base(name))
		if err != nil {
			return nil, err
		}
		content, err := promptFiles.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded prompt %s: %w", name, err)
		}
		if err := pm.Register(key, provider, string(content)); err != nil {
			return nil, fmt.Errorf("failed to register prompt %s: %w", name, err)
		}
	}
	return pm, nil
}

// parsePromptName splits "code_review_default.prompt" into its key and provider.
// The provider is everything after the last underscore.
func parsePromptName(name string) (PromptKey, ModelProvider, error) {
	base := strings.TrimSuffix(name, ".prompt")
	i := strings.LastIndex(base, "_")
	if i <= 0 || i == len(base)-1 {
		return "", "", fmt.Errorf("invalid prompt filename %q (expected 'key_provider.prompt')", name)
	}
	return PromptKey(base[:i]), ModelProvider(base[i+1:]), nil
}

// Register parses content and stores it for key and provider, replacing any
// previous template.
func (pm *PromptManager) Register(key PromptKey, provider ModelProvider, content string) error {
	tmpl, err := template.New(string(key) + "_" + string(provider)).Option("missingkey=error").Parse(content)
	if err != nil {
		return fmt.Errorf("could not parse template: %w", err)
	}
	pm.templates[promptID{key, provider}] = tmpl
	return nil
}

// Render executes the template for key, preferring the provider's own variant.
func (pm *PromptManager) Render(key PromptKey, provider ModelProvider, data any) (string, error) {
	tmpl, ok := pm.templates[promptID{key, provider}]
	if !ok {
		tmpl, ok = pm.templates[promptID{key, DefaultProvider}]
	}
	if !ok {
		return "", fmt.Errorf("no %q prompt for provider %q", key, provider)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return buf.String(), nil
}
