package domain

import (
	"time"
)

// Holding is one instrument position enriched with a live quote. Quote
// fields are nil when no configured provider could resolve them; the
// holding stays in the snapshot, flagged via QuoteUnavailable.
type Holding struct {
	Symbol           string   `json:"symbol"`
	CompanyName      string   `json:"company_name"`
	Quantity         float64  `json:"quantity"`
	AverageCost      float64  `json:"average_cost"`
	CurrentPrice     *float64 `json:"current_price"`
	DayChange        *float64 `json:"day_change"`
	DayChangePct     *float64 `json:"day_change_percent"`
	MarketValue      float64  `json:"market_value"`
	GainLoss         float64  `json:"gain_loss"`
	GainLossPct      *float64 `json:"gain_loss_percent"`
	PortfolioPct     float64  `json:"portfolio_percent"`
	Sector           string   `json:"sector"`
	Industry         string   `json:"industry"`
	QuoteUnavailable bool     `json:"quote_unavailable"`
}

// UnknownSector is the bucket for holdings whose sector no provider could
// resolve. Holdings are never dropped from the allocation for missing data.
const UnknownSector = "Unknown"

type SectorAllocation struct {
	Sector      string  `json:"sector"`
	MarketValue float64 `json:"market_value"`
	Percent     float64 `json:"percent"`
	NumHoldings int     `json:"num_holdings"`
}

type PortfolioMetrics struct {
	LargestPositionPct float64 `json:"largest_position_percent"`
	MeanGainLossPct    float64 `json:"mean_gain_loss_percent"`
	GainLossPctStdev   float64 `json:"gain_loss_percent_stdev"`
}

// PortfolioSnapshot is recomputed per request and never persisted.
// Holdings keep the brokerage's order; sorting is a client concern.
type PortfolioSnapshot struct {
	Holdings          []Holding          `json:"holdings"`
	StockValue        float64            `json:"stock_value"`
	Cash              float64            `json:"cash"`
	BuyingPower       float64            `json:"buying_power"`
	TotalValue        float64            `json:"total_value"`
	TotalGainLoss     float64            `json:"total_gain_loss"`
	TotalGainLossPct  *float64           `json:"total_gain_loss_percent"`
	TodayChange       float64            `json:"today_change"`
	SectorAllocations []SectorAllocation `json:"sector_allocations"`
	Metrics           *PortfolioMetrics  `json:"metrics,omitempty"`
	GeneratedAt       time.Time          `json:"generated_at"`
}

func (p PortfolioSnapshot) HeldSymbols() []string {
	symbols := []string{}
	for _, h := range p.Holdings {
		symbols = append(symbols, h.Symbol)
	}
	return symbols
}
