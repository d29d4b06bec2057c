package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"portfoliodash/internal/domain"
	"portfoliodash/internal/logger"
	"portfoliodash/internal/util"
	"portfoliodash/pkg/fmp"
	"time"
)

// FundamentalsRepository is the secondary market data provider (FMP).
// It exists to fill the profile-level fields the primary provider lacks:
// sector, industry, beta. It also backs symbol search.
type FundamentalsRepository interface {
	GetCompanyProfile(ctx context.Context, symbol string) (*domain.StockDetail, error)
	SearchSymbols(ctx context.Context, query string, limit int) ([]domain.SymbolMatch, error)
}

func NewFundamentalsRepository(apiKey string) FundamentalsRepository {
	return fundamentalsRepositoryHandler{
		Client: fmp.Client{
			HttpClient: &http.Client{
				Timeout: 10 * time.Second,
			},
			ApiKey: apiKey,
		},
	}
}

type fundamentalsRepositoryHandler struct {
	Client fmp.Client
}

func (h fundamentalsRepositoryHandler) GetCompanyProfile(ctx context.Context, symbol string) (*domain.StockDetail, error) {
	log := logger.FromContext(ctx)

	profile, err := h.Client.GetProfile(symbol)
	if err != nil {
		var rateLimited fmp.ErrRateLimited
		if errors.As(err, &rateLimited) {
			log.Warnf("fmp rate limit hit on profile for %s", symbol)
		}
		return nil, fmt.Errorf("%w: fmp profile for %s: %v", domain.ErrProviderUnavailable, symbol, err)
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrSymbolNotFound, symbol)
	}

	detail := &domain.StockDetail{
		Symbol: symbol,
	}
	if profile.CompanyName != "" {
		detail.CompanyName = util.StringPointer(profile.CompanyName)
	}
	if profile.Price != 0 {
		detail.Price = util.FloatPointer(profile.Price)
	}
	if profile.Beta != 0 {
		detail.Beta = util.FloatPointer(profile.Beta)
	}
	if profile.MarketCap != 0 {
		detail.MarketCap = util.FloatPointer(profile.MarketCap)
	}
	if profile.Sector != "" && profile.Sector != "N/A" {
		detail.Sector = util.StringPointer(profile.Sector)
	}
	if profile.Industry != "" && profile.Industry != "N/A" {
		detail.Industry = util.StringPointer(profile.Industry)
	}
	return detail, nil
}

func (h fundamentalsRepositoryHandler) SearchSymbols(ctx context.Context, query string, limit int) ([]domain.SymbolMatch, error) {
	results, err := h.Client.SearchSymbol(query, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: fmp symbol search for %q: %v", domain.ErrProviderUnavailable, query, err)
	}

	matches := []domain.SymbolMatch{}
	for _, r := range results {
		matches = append(matches, domain.SymbolMatch{
			Symbol: r.Symbol,
			Name:   r.Name,
		})
	}
	return matches, nil
}
