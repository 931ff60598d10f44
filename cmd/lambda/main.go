package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/sevigo/code-review-reporter/internal/config"
	"github.com/sevigo/code-review-reporter/internal/logger"
	"github.com/sevigo/code-review-reporter/internal/wire"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logger.NewLogger(cfg.Logging, nil))

	// Clients are built once per execution environment and reused across
	// warm invocations.
	handler, err := wire.InitializeLambda(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to initialize lambda handler", "error", err)
		os.Exit(1)
	}

	lambda.Start(handler.Invoke)
}
