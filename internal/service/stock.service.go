package service

import (
	"context"
	"errors"
	"fmt"
	"portfoliodash/internal/cache"
	"portfoliodash/internal/domain"
	"portfoliodash/internal/logger"
	"portfoliodash/internal/repository"
	"strings"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
)

const (
	maxSearchResults = 10

	// quote data goes stale in about a minute; the brokerage asset list
	// barely changes intraday
	stockDetailCacheKey = "stock-details/"
	assetListCacheKey   = "brokerage-assets"
	assetListCacheTTL   = time.Hour
)

// StockService resolves symbols against the configured providers: the
// primary quote provider first, then the secondary fundamentals provider
// for whatever fields are still missing. A field the primary populated
// is never overwritten.
type StockService interface {
	GetStockDetail(ctx context.Context, symbol string) (*domain.StockDetail, error)
	SearchStocks(ctx context.Context, query string) ([]domain.SymbolMatch, error)
}

// fundamentalsRepository may be nil when no secondary provider key is
// configured; detail completeness degrades but nothing errors.
func NewStockService(
	quoteRepository repository.QuoteRepository,
	fundamentalsRepository repository.FundamentalsRepository,
	sessionService SessionService,
	detailCache *cache.Cache,
) StockService {
	return stockServiceHandler{
		QuoteRepository:        quoteRepository,
		FundamentalsRepository: fundamentalsRepository,
		SessionService:         sessionService,
		Cache:                  detailCache,
	}
}

type stockServiceHandler struct {
	QuoteRepository        repository.QuoteRepository
	FundamentalsRepository repository.FundamentalsRepository
	SessionService         SessionService
	Cache                  *cache.Cache
}

func (h stockServiceHandler) GetStockDetail(ctx context.Context, symbol string) (*domain.StockDetail, error) {
	log := logger.FromContext(ctx)
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("%w: empty symbol", domain.ErrSymbolNotFound)
	}

	if h.Cache != nil {
		if cached, ok := h.Cache.Get(stockDetailCacheKey + symbol); ok {
			if detail, ok := cached.(*domain.StockDetail); ok {
				return detail, nil
			}
		}
	}

	detail, primaryErr := h.QuoteRepository.GetStockDetail(ctx, symbol)
	if primaryErr != nil {
		if errors.Is(primaryErr, domain.ErrSymbolNotFound) {
			return nil, primaryErr
		}
		// provider outage is not fatal yet - the secondary provider may
		// still resolve the symbol
		log.Warnf("primary quote provider failed for %s: %v", symbol, primaryErr)
		detail = nil
	}

	if h.FundamentalsRepository != nil && (detail == nil || !detail.HasFundamentals()) {
		profile, err := h.FundamentalsRepository.GetCompanyProfile(ctx, symbol)
		switch {
		case err == nil:
			if detail == nil {
				detail = profile
			} else {
				detail.FillMissing(profile)
			}
		case errors.Is(err, domain.ErrSymbolNotFound) && detail == nil:
			return nil, err
		default:
			// missing fundamentals only degrade the response
			log.Warnf("fundamentals provider failed for %s: %v", symbol, err)
		}
	}

	if detail == nil {
		if primaryErr != nil {
			return nil, primaryErr
		}
		return nil, fmt.Errorf("%w: no provider configured for %s", domain.ErrProviderUnavailable, symbol)
	}

	if h.Cache != nil {
		h.Cache.Set(stockDetailCacheKey+symbol, detail)
	}
	return detail, nil
}

func (h stockServiceHandler) SearchStocks(ctx context.Context, query string) ([]domain.SymbolMatch, error) {
	log := logger.FromContext(ctx)

	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.SymbolMatch{}, nil
	}

	if h.FundamentalsRepository != nil {
		matches, err := h.FundamentalsRepository.SearchSymbols(ctx, query, maxSearchResults)
		if err == nil {
			return matches, nil
		}
		log.Warnf("fundamentals symbol search failed, falling back to brokerage assets: %v", err)
	}

	return h.searchBrokerageAssets(ctx, query)
}

// searchBrokerageAssets filters the brokerage's tradable asset list when
// no search provider is reachable. Requires an authenticated session;
// without one the search degrades to no matches rather than an error.
func (h stockServiceHandler) searchBrokerageAssets(ctx context.Context, query string) ([]domain.SymbolMatch, error) {
	brokerage, err := h.SessionService.Brokerage()
	if err != nil {
		return []domain.SymbolMatch{}, nil
	}

	assets, err := h.cachedAssets(brokerage)
	if err != nil {
		return nil, fmt.Errorf("%w: brokerage asset listing: %v", domain.ErrProviderUnavailable, err)
	}

	upperQuery := strings.ToUpper(query)
	prefixMatches := []domain.SymbolMatch{}
	nameMatches := []domain.SymbolMatch{}
	for _, a := range assets {
		switch {
		case strings.HasPrefix(strings.ToUpper(a.Symbol), upperQuery):
			prefixMatches = append(prefixMatches, domain.SymbolMatch{Symbol: a.Symbol, Name: a.Name})
		case strings.Contains(strings.ToUpper(a.Name), upperQuery):
			nameMatches = append(nameMatches, domain.SymbolMatch{Symbol: a.Symbol, Name: a.Name})
		}
	}

	matches := append(prefixMatches, nameMatches...)
	if len(matches) > maxSearchResults {
		matches = matches[:maxSearchResults]
	}
	return matches, nil
}

func (h stockServiceHandler) cachedAssets(brokerage repository.BrokerageRepository) ([]alpaca.Asset, error) {
	if h.Cache != nil {
		if cached, ok := h.Cache.Get(assetListCacheKey); ok {
			if assets, ok := cached.([]alpaca.Asset); ok {
				return assets, nil
			}
		}
	}
	assets, err := brokerage.ListAssets()
	if err != nil {
		return nil, err
	}
	if h.Cache != nil {
		h.Cache.SetWithTTL(assetListCacheKey, assets, assetListCacheTTL)
	}
	return assets, nil
}
