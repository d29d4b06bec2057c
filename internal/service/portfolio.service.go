package service

import (
	"context"
	"fmt"
	"portfoliodash/internal/domain"
	"portfoliodash/internal/logger"
	"portfoliodash/internal/repository"
	"portfoliodash/internal/util"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// PortfolioService aggregates the brokerage account into one snapshot:
// positions enriched with live quotes, portfolio-level gain/loss, and
// sector allocations. Everything is recomputed per call; nothing is
// stored.
type PortfolioService interface {
	GetPortfolio(ctx context.Context) (*domain.PortfolioSnapshot, error)
}

func NewPortfolioService(sessionService SessionService, stockService StockService) PortfolioService {
	return portfolioServiceHandler{
		SessionService: sessionService,
		StockService:   stockService,
	}
}

type portfolioServiceHandler struct {
	SessionService SessionService
	StockService   StockService
}

func (h portfolioServiceHandler) GetPortfolio(ctx context.Context) (*domain.PortfolioSnapshot, error) {
	brokerage, err := h.SessionService.Brokerage()
	if err != nil {
		return nil, err
	}

	positions, err := brokerage.GetPositions()
	if err != nil {
		if repository.IsAuthError(err) {
			return nil, fmt.Errorf("%w: brokerage token no longer valid", domain.ErrNotAuthenticated)
		}
		return nil, fmt.Errorf("failed to get brokerage positions: %w", err)
	}

	acct, err := brokerage.GetAccount()
	if err != nil {
		if repository.IsAuthError(err) {
			return nil, fmt.Errorf("%w: brokerage token no longer valid", domain.ErrNotAuthenticated)
		}
		return nil, fmt.Errorf("failed to get brokerage account: %w", err)
	}

	snapshot := &domain.PortfolioSnapshot{
		Holdings:    h.buildHoldings(ctx, positions),
		Cash:        acct.Cash.InexactFloat64(),
		BuyingPower: acct.BuyingPower.InexactFloat64(),
		GeneratedAt: time.Now().UTC(),
	}

	totalCost := decimal.Zero
	stockValue := decimal.Zero
	for _, holding := range snapshot.Holdings {
		stockValue = stockValue.Add(decimal.NewFromFloat(holding.MarketValue))
		totalCost = totalCost.Add(
			decimal.NewFromFloat(holding.Quantity).Mul(decimal.NewFromFloat(holding.AverageCost)),
		)
		snapshot.TotalGainLoss += holding.GainLoss
		if holding.DayChange != nil {
			snapshot.TodayChange += *holding.DayChange * holding.Quantity
		}
	}
	snapshot.StockValue = stockValue.InexactFloat64()
	snapshot.TotalValue = stockValue.Add(decimal.NewFromFloat(snapshot.BuyingPower)).InexactFloat64()
	if totalCost.IsPositive() {
		snapshot.TotalGainLossPct = util.FloatPointer(
			snapshot.TotalGainLoss / totalCost.InexactFloat64() * 100,
		)
	}

	for i := range snapshot.Holdings {
		if snapshot.StockValue > 0 {
			snapshot.Holdings[i].PortfolioPct = snapshot.Holdings[i].MarketValue / snapshot.StockValue * 100
		}
	}

	snapshot.SectorAllocations = groupBySector(snapshot.Holdings, snapshot.StockValue)
	snapshot.Metrics = computeMetrics(snapshot.Holdings, snapshot.StockValue)

	return snapshot, nil
}

// buildHoldings enriches each brokerage position with a live quote,
// preserving the brokerage's ordering. A failed quote lookup never drops
// the holding - it stays in the snapshot flagged as unavailable.
func (h portfolioServiceHandler) buildHoldings(ctx context.Context, positions []alpaca.Position) []domain.Holding {
	log := logger.FromContext(ctx)

	holdings := []domain.Holding{}
	for _, p := range positions {
		holding := domain.Holding{
			Symbol:      p.Symbol,
			CompanyName: p.Symbol,
			Quantity:    p.Qty.InexactFloat64(),
			AverageCost: p.AvgEntryPrice.InexactFloat64(),
			Sector:      domain.UnknownSector,
			Industry:    domain.UnknownSector,
		}

		detail, err := h.StockService.GetStockDetail(ctx, p.Symbol)
		if err != nil || detail.Price == nil {
			if err != nil {
				log.Warnf("could not quote holding %s: %v", p.Symbol, err)
			}
			holding.QuoteUnavailable = true
			holdings = append(holdings, holding)
			continue
		}

		price := decimal.NewFromFloat(*detail.Price)
		marketValue := p.Qty.Mul(price)
		costBasis := p.Qty.Mul(p.AvgEntryPrice)

		holding.CurrentPrice = detail.Price
		holding.DayChange = detail.DayChange
		holding.DayChangePct = detail.DayChangePct
		holding.MarketValue = marketValue.InexactFloat64()
		holding.GainLoss = marketValue.Sub(costBasis).InexactFloat64()
		// a zero cost basis makes the percentage undefined, not an error
		if !p.AvgEntryPrice.IsZero() {
			holding.GainLossPct = util.FloatPointer(
				price.Sub(p.AvgEntryPrice).Div(p.AvgEntryPrice).InexactFloat64() * 100,
			)
		}
		if detail.CompanyName != nil {
			holding.CompanyName = *detail.CompanyName
		}
		if detail.Sector != nil {
			holding.Sector = *detail.Sector
		}
		if detail.Industry != nil {
			holding.Industry = *detail.Industry
		}

		holdings = append(holdings, holding)
	}
	return holdings
}

// groupBySector buckets every holding into exactly one sector,
// "Unknown" included. Bucket order follows first appearance in the
// holdings sequence.
func groupBySector(holdings []domain.Holding, stockValue float64) []domain.SectorAllocation {
	order := []string{}
	bySector := map[string]*domain.SectorAllocation{}
	for _, h := range holdings {
		sector := h.Sector
		if sector == "" {
			sector = domain.UnknownSector
		}
		alloc, ok := bySector[sector]
		if !ok {
			alloc = &domain.SectorAllocation{Sector: sector}
			bySector[sector] = alloc
			order = append(order, sector)
		}
		alloc.MarketValue += h.MarketValue
		alloc.NumHoldings++
	}

	allocations := []domain.SectorAllocation{}
	for _, sector := range order {
		alloc := bySector[sector]
		if stockValue > 0 {
			alloc.Percent = alloc.MarketValue / stockValue * 100
		}
		allocations = append(allocations, *alloc)
	}
	return allocations
}

func computeMetrics(holdings []domain.Holding, stockValue float64) *domain.PortfolioMetrics {
	if len(holdings) == 0 || stockValue <= 0 {
		return nil
	}

	marketValues := []float64{}
	gainLossPcts := []float64{}
	for _, h := range holdings {
		marketValues = append(marketValues, h.MarketValue)
		if h.GainLossPct != nil {
			gainLossPcts = append(gainLossPcts, *h.GainLossPct)
		}
	}

	metrics := &domain.PortfolioMetrics{}
	if largest, err := stats.Max(marketValues); err == nil {
		metrics.LargestPositionPct = largest / stockValue * 100
	}
	if len(gainLossPcts) > 0 {
		if mean, err := stats.Mean(gainLossPcts); err == nil {
			metrics.MeanGainLossPct = mean
		}
		if stdev, err := stats.StandardDeviation(gainLossPcts); err == nil {
			metrics.GainLossPctStdev = stdev
		}
	}
	return metrics
}
