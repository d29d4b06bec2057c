package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"portfoliodash/internal/domain"
	"portfoliodash/internal/util"

	"github.com/stretchr/testify/require"
)

func exportFixture() *domain.PortfolioSnapshot {
	return &domain.PortfolioSnapshot{
		Holdings: []domain.Holding{
			{
				Symbol:       "AAPL",
				CompanyName:  "Apple Inc.",
				Quantity:     2,
				AverageCost:  100,
				CurrentPrice: util.FloatPointer(150),
				DayChange:    util.FloatPointer(1.5),
				DayChangePct: util.FloatPointer(1.01),
				MarketValue:  300,
				GainLoss:     100,
				GainLossPct:  util.FloatPointer(50),
				PortfolioPct: 300.0 / 10000.25 * 100,
				Sector:       "Technology",
				Industry:     "Consumer Electronics",
			},
			{
				Symbol:           "ZZZT",
				CompanyName:      "ZZZT",
				Quantity:         5,
				AverageCost:      10,
				Sector:           domain.UnknownSector,
				Industry:         domain.UnknownSector,
				QuoteUnavailable: true,
			},
		},
		StockValue:       10000.25,
		Cash:             523.22,
		BuyingPower:      523.22,
		TotalValue:       10523.47,
		TotalGainLoss:    100,
		TotalGainLossPct: util.FloatPointer(40),
		SectorAllocations: []domain.SectorAllocation{
			{Sector: "Technology", MarketValue: 300, Percent: 3, NumHoldings: 1},
			{Sector: domain.UnknownSector, MarketValue: 0, Percent: 0, NumHoldings: 1},
		},
		GeneratedAt: time.Now().UTC(),
	}
}

func Test_exportServiceHandler_Export(t *testing.T) {
	ctx := context.Background()
	handler := exportServiceHandler{}

	t.Run("json export", func(t *testing.T) {
		export, err := handler.Export(ctx, exportFixture(), ExportFormatJson)
		require.NoError(t, err)
		require.Equal(t, "application/json", export.ContentType)
		require.Equal(t, "portfolio.json", export.Filename)

		out := jsonExport{}
		require.NoError(t, json.Unmarshal(export.Body, &out))
		require.InDelta(t, 10523.47, out.Summary.TotalValue, 1e-9)
		require.Equal(t, 2, out.Summary.NumHoldings)
		require.Len(t, out.Holdings, 2)
		require.True(t, out.Holdings[1].QuoteUnavailable)
		require.Nil(t, out.Holdings[1].CurrentPrice)
	})

	t.Run("csv export", func(t *testing.T) {
		export, err := handler.Export(ctx, exportFixture(), ExportFormatCsv)
		require.NoError(t, err)
		require.Equal(t, "text/csv", export.ContentType)

		body := string(export.Body)
		lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
		require.Equal(t, "Symbol,Company,Sector,Industry,Current Price,Day Change,Day Change %,Shares,Avg Buy Price,Market Value,Gain/Loss,Gain/Loss %,% of Portfolio", lines[0])
		require.True(t, strings.HasPrefix(lines[1], "AAPL,Apple Inc.,Technology,Consumer Electronics,150,"))
		require.True(t, strings.HasPrefix(lines[2], "ZZZT,ZZZT,Unknown,Unknown,,"))

		// the totals block renders the same numbers the json export does
		require.Contains(t, body, "Total Value,10523.47\n")
		require.Contains(t, body, "Buying Power,523.22\n")
		require.Contains(t, body, "Total Gain/Loss,100\n")
		require.Contains(t, body, "Total Gain/Loss %,40\n")
	})

	t.Run("text export", func(t *testing.T) {
		export, err := handler.Export(ctx, exportFixture(), ExportFormatText)
		require.NoError(t, err)
		require.Equal(t, "text/plain", export.ContentType)

		body := string(export.Body)
		require.Contains(t, body, "Total Portfolio Value: $10,523.47")
		require.Contains(t, body, "AAPL (Apple Inc.)")
		require.Contains(t, body, "Gain/Loss: $100.00 (50.00%)")
		require.Contains(t, body, "Current Price: unavailable")
		require.Contains(t, body, "=== SECTOR ALLOCATION ===")
		require.Contains(t, body, "Technology: $300.00 (3.00%, 1 holding(s))")
	})
}

func Test_ParseExportFormat(t *testing.T) {
	t.Run("defaults to json", func(t *testing.T) {
		format, err := ParseExportFormat("")
		require.NoError(t, err)
		require.Equal(t, ExportFormatJson, format)
	})

	t.Run("case insensitive", func(t *testing.T) {
		format, err := ParseExportFormat("CSV")
		require.NoError(t, err)
		require.Equal(t, ExportFormatCsv, format)
	})

	t.Run("rejects unknown formats", func(t *testing.T) {
		_, err := ParseExportFormat("xml")
		require.Error(t, err)
	})
}

func Test_exportServiceHandler_Analyze(t *testing.T) {
	t.Run("no language model configured", func(t *testing.T) {
		handler := exportServiceHandler{}

		_, err := handler.Analyze(context.Background(), exportFixture())
		require.ErrorIs(t, err, ErrAnalysisNotConfigured)
	})
}
