package repository

import (
	"context"
	"fmt"
	"portfoliodash/internal/domain"
	"portfoliodash/internal/logger"
	"portfoliodash/internal/util"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/equity"
)

// QuoteRepository is the primary market data provider (Yahoo Finance).
// It covers price, day change, ranges and valuation ratios but not
// sector/industry - those come from the secondary provider.
type QuoteRepository interface {
	GetStockDetail(ctx context.Context, symbol string) (*domain.StockDetail, error)
}

func NewQuoteRepository() QuoteRepository {
	return quoteRepositoryHandler{}
}

type quoteRepositoryHandler struct{}

func (h quoteRepositoryHandler) GetStockDetail(ctx context.Context, symbol string) (*domain.StockDetail, error) {
	log := logger.FromContext(ctx)

	q, err := equity.Get(symbol)
	if err != nil {
		return nil, fmt.Errorf("%w: yahoo equity lookup for %s: %v", domain.ErrProviderUnavailable, symbol, err)
	}
	// the upstream client yields a nil result without error when the
	// symbol resolves to nothing
	if q == nil || q.Symbol == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrSymbolNotFound, symbol)
	}

	log.Debugf("yahoo quote for %s: price %f", symbol, q.RegularMarketPrice)

	return equityToStockDetail(q), nil
}

func equityToStockDetail(q *finance.Equity) *domain.StockDetail {
	detail := &domain.StockDetail{
		Symbol: q.Symbol,
	}
	if q.ShortName != "" {
		detail.CompanyName = util.StringPointer(q.ShortName)
	}
	if q.RegularMarketPrice != 0 {
		detail.Price = util.FloatPointer(q.RegularMarketPrice)
	}
	if q.RegularMarketPreviousClose != 0 {
		detail.PreviousClose = util.FloatPointer(q.RegularMarketPreviousClose)
		detail.DayChange = util.FloatPointer(q.RegularMarketChange)
		detail.DayChangePct = util.FloatPointer(q.RegularMarketChangePercent)
	}
	if q.RegularMarketOpen != 0 {
		detail.Open = util.FloatPointer(q.RegularMarketOpen)
	}
	if q.RegularMarketDayHigh != 0 {
		detail.DayHigh = util.FloatPointer(q.RegularMarketDayHigh)
	}
	if q.RegularMarketDayLow != 0 {
		detail.DayLow = util.FloatPointer(q.RegularMarketDayLow)
	}
	if q.RegularMarketVolume != 0 {
		detail.Volume = util.IntPointer(int64(q.RegularMarketVolume))
	}
	if q.Bid != 0 {
		detail.Bid = util.FloatPointer(q.Bid)
	}
	if q.Ask != 0 {
		detail.Ask = util.FloatPointer(q.Ask)
	}
	if q.TrailingPE != 0 {
		detail.PeRatio = util.FloatPointer(q.TrailingPE)
	}
	if q.MarketCap != 0 {
		detail.MarketCap = util.FloatPointer(float64(q.MarketCap))
	}
	if q.TrailingAnnualDividendYield != 0 {
		detail.DividendYield = util.FloatPointer(q.TrailingAnnualDividendYield)
	}
	if q.FiftyTwoWeekHigh != 0 {
		detail.Week52High = util.FloatPointer(q.FiftyTwoWeekHigh)
	}
	if q.FiftyTwoWeekLow != 0 {
		detail.Week52Low = util.FloatPointer(q.FiftyTwoWeekLow)
	}
	return detail
}
