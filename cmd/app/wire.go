//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/legal-assistant/internal/bootstrap"
	"github.com/yanqian/legal-assistant/internal/domain/legal"
	"github.com/yanqian/legal-assistant/internal/infra/config"
	httpiface "github.com/yanqian/legal-assistant/internal/interface/http"
	"github.com/yanqian/legal-assistant/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideKnowledgeStore,
		provideGateway,
		provideRenderer,
		legal.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
