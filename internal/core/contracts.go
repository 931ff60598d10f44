// Package core defines the essential interfaces and data structures that form the
// backbone of the application. The review pipeline depends only on these
// contracts, so every external collaborator can be swapped for a fake in tests.
package core

import (
	"context"
	"io"
)

//go:generate mockgen -source=contracts.go -destination=../../mocks/mock_core.go -package=mocks

// Generator turns a prompt into generated text using a hosted language model.
type Generator interface {
	// Generate blocks until the provider returns a single, complete response.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Renderer converts review text into a document.
type Renderer interface {
	// Render writes the rendered document for text to w.
	Render(text string, w io.Writer) error
}

// ObjectStore uploads local files to a bucket and reports where they can be fetched.
type ObjectStore interface {
	// Upload stores the file at localPath under key and returns its URL.
	Upload(ctx context.Context, localPath, key string) (string, error)
}
