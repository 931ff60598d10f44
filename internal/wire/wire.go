//go:build wireinject
// +build wireinject

package wire

import (
	"context"

	"github.com/google/wire"

	"github.com/sevigo/code-review-reporter/internal/app"
	"github.com/sevigo/code-review-reporter/internal/config"
	"github.com/sevigo/code-review-reporter/internal/function"
	"github.com/sevigo/code-review-reporter/internal/review"
	"github.com/sevigo/code-review-reporter/internal/server"
	"github.com/sevigo/code-review-reporter/internal/server/handler"
)

func InitializeService(ctx context.Context, cfg *config.Config) (*review.Service, error) {
	wire.Build(ServiceSet)
	return &review.Service{}, nil
}

func InitializeLambda(ctx context.Context, cfg *config.Config) (*function.Handler, error) {
	wire.Build(LambdaSet)
	return &function.Handler{}, nil
}

func InitializeApp(ctx context.Context, cfg *config.Config) (*app.App, error) {
	wire.Build(
		ServiceSet,
		server.NewServer,
		app.NewApp,
		wire.Bind(new(handler.Reviewer), new(*review.Service)),
	)
	return &app.App{}, nil
}
