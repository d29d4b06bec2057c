package cmd

import (
	"fmt"
	"portfoliodash/api"
	"portfoliodash/internal/cache"
	"portfoliodash/internal/logger"
	"portfoliodash/internal/repository"
	"portfoliodash/internal/service"
	"portfoliodash/internal/util"
	"time"
)

const stockDetailCacheTTL = 60 * time.Second

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	var gptRepository repository.GptRepository
	if secrets.ChatGPTApiKey != "" {
		gptRepository, err = repository.NewGptRepository(secrets.ChatGPTApiKey)
		if err != nil {
			return nil, err
		}
	} else {
		logger.Info("no gpt key configured - portfolio analysis disabled")
	}

	var fundamentalsRepository repository.FundamentalsRepository
	if secrets.FmpApiKey != "" {
		fundamentalsRepository = repository.NewFundamentalsRepository(secrets.FmpApiKey)
	} else {
		logger.Info("no fmp key configured - sector/industry coverage degraded")
	}

	detailCache, err := cache.New(1<<20, stockDetailCacheTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to build detail cache: %w", err)
	}

	sessionService := service.NewSessionService(func(apiKey, apiSecret string) repository.BrokerageRepository {
		return repository.NewBrokerageRepository(apiKey, apiSecret, secrets.BrokerageEndpoint)
	})
	quoteRepository := repository.NewQuoteRepository()
	stockService := service.NewStockService(quoteRepository, fundamentalsRepository, sessionService, detailCache)
	portfolioService := service.NewPortfolioService(sessionService, stockService)
	exportService := service.NewExportService(gptRepository)

	return &api.ApiHandler{
		SessionService:    sessionService,
		PortfolioService:  portfolioService,
		StockService:      stockService,
		ExportService:     exportService,
		SessionSigningKey: secrets.SessionSigningKey,
	}, nil
}
