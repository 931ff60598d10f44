// Package wire assembles the dependency graph shared by every entry point.
package wire

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/google/wire"

	"github.com/sevigo/code-review-reporter/internal/config"
	"github.com/sevigo/code-review-reporter/internal/core"
	"github.com/sevigo/code-review-reporter/internal/function"
	"github.com/sevigo/code-review-reporter/internal/llm"
	"github.com/sevigo/code-review-reporter/internal/logger"
	"github.com/sevigo/code-review-reporter/internal/report"
	"github.com/sevigo/code-review-reporter/internal/review"
	"github.com/sevigo/code-review-reporter/internal/server/handler"
	"github.com/sevigo/code-review-reporter/internal/storage"
)

// ServiceSet provides a ready review.Service from a *config.Config.
var ServiceSet = wire.NewSet(
	provideLogger,
	provideAWSConfig,
	provideRenderer,
	provideObjectStore,
	provideService,
	llm.NewPromptManager,
	llm.NewGenerator,
)

// LambdaSet provides the Lambda handler.
var LambdaSet = wire.NewSet(
	ServiceSet,
	function.NewHandler,
	wire.Bind(new(function.Reviewer), new(*review.Service)),
)

func provideLogger(cfg *config.Config) *slog.Logger {
	return logger.NewLogger(cfg.Logging, nil)
}

func provideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AI.Region))
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return awsCfg, nil
}

func provideRenderer(cfg *config.Config) core.Renderer {
	return report.NewPDFRenderer(cfg.Report)
}

func provideObjectStore(awsCfg aws.Config, cfg *config.Config, logger *slog.Logger) core.ObjectStore {
	return storage.NewS3StoreFromConfig(awsCfg, cfg.Storage, logger)
}

func provideService(
	cfg *config.Config,
	promptMgr *llm.PromptManager,
	generator core.Generator,
	renderer core.Renderer,
	store core.ObjectStore,
	logger *slog.Logger,
) *review.Service {
	return review.NewService(cfg, promptMgr, generator, renderer, store, logger)
}

var (
	_ function.Reviewer = (*review.Service)(nil)
	_ handler.Reviewer  = (*review.Service)(nil)
)
