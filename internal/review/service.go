// Package review runs the end-to-end review pipeline: prompt, generate,
// render, upload.
package review

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sevigo/code-review-reporter/internal/config"
	"github.com/sevigo/code-review-reporter/internal/core"
	"github.com/sevigo/code-review-reporter/internal/llm"
	"github.com/sevigo/code-review-reporter/internal/storage"
)

// Service orchestrates a single review invocation. It holds no per-request
// state and is safe for concurrent use if its collaborators are.
type Service struct {
	promptMgr *llm.PromptManager
	provider  llm.ModelProvider
	generator core.Generator
	renderer  core.Renderer
	store     core.ObjectStore
	tempDir   string
	keyPrefix string
	newID     func() string
	logger    *slog.Logger
}

// Option customizes a Service.
type Option func(*Service)

// WithIDGenerator replaces the random report ID source.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) { s.newID = fn }
}

// NewService creates a review service with its collaborators.
func NewService(
	cfg *config.Config,
	promptMgr *llm.PromptManager,
	generator core.Generator,
	renderer core.Renderer,
	store core.ObjectStore,
	logger *slog.Logger,
	opts ...Option,
) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}
	if promptMgr == nil || generator == nil || renderer == nil || store == nil {
		panic("review service dependencies cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	s := &Service{
		promptMgr: promptMgr,
		provider:  llm.PromptProvider(cfg),
		generator: generator,
		renderer:  renderer,
		store:     store,
		tempDir:   cfg.Storage.TempDir,
		keyPrefix: cfg.Storage.KeyPrefix,
		newID:     uuid.NewString,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Review generates, renders and uploads a report for req. Every returned
// error is a *core.StageError.
func (s *Service) Review(ctx context.Context, req *core.ReviewRequest) (*core.ReviewReport, error) {
	if req == nil || len(req.Files) == 0 {
		return nil, core.NewStageError(core.StageInput, "validate", core.ErrNoFiles)
	}

	start := time.Now()
	id := s.newID()
	logger := s.logger.With("report_id", id, "files", len(req.Files))
	logger.InfoContext(ctx, "starting review")

	prompt, err := s.buildPrompt(req.Files)
	if err != nil {
		return nil, core.NewStageError(core.StageProvider, "build prompt", err)
	}

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		logger.ErrorContext(ctx, "review generation failed", "error", err)
		return nil, core.NewStageError(core.StageProvider, "generate review", err)
	}
	logger.InfoContext(ctx, "review generated", "chars", len(text))

	report := &core.ReviewReport{
		ID:   id,
		Key:  s.keyPrefix + ArtifactName(id),
		Text: text,
	}

	url, err := s.publish(ctx, report)
	if err != nil {
		// The generated text is not kept anywhere once publishing fails.
		logger.ErrorContext(ctx, "failed to publish review report", "error", err, "stage", core.StageOf(err))
		return nil, err
	}
	report.URL = url

	logger.InfoContext(ctx, "review report published", "key", report.Key, "duration", time.Since(start).Round(time.Millisecond))
	return report, nil
}

// Handle runs Review and converts the outcome into a response.
func (s *Service) Handle(ctx context.Context, req *core.ReviewRequest) core.ReviewResponse {
	report, err := s.Review(ctx, req)
	return Respond(report, err)
}

// Respond assembles the response for a review outcome.
func Respond(report *core.ReviewReport, err error) core.ReviewResponse {
	if err != nil {
		return core.NewErrorResponse(err)
	}
	return core.NewSuccessResponse(report.URL)
}

// ArtifactName is the file name shared by the local temp file and the storage key.
func ArtifactName(id string) string {
	return fmt.Sprintf("code-review-%s.pdf", id)
}

func (s *Service) buildPrompt(files []string) (string, error) {
	data := core.ReviewPromptData{Code: strings.Join(files, "\n")}
	return s.promptMgr.Render(llm.CodeReviewPrompt, s.provider, data)
}

func (s *Service) publish(ctx context.Context, report *core.ReviewReport) (string, error) {
	f, cleanup, err := storage.CreateTempFile(s.tempDir, ArtifactName(report.ID))
	if err != nil {
		return "", core.NewStageError(core.StageStorage, "create temp file", err)
	}
	defer cleanup()

	if err := s.renderer.Render(report.Text, f); err != nil {
		return "", core.NewStageError(core.StageRender, "render pdf", err)
	}
	if err := f.Sync(); err != nil {
		return "", core.NewStageError(core.StageRender, "flush pdf", err)
	}

	url, err := s.store.Upload(ctx, f.Name(), report.Key)
	if err != nil {
		return "", core.NewStageError(core.StageStorage, "upload pdf", err)
	}
	return url, nil
}
