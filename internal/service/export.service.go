package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"portfoliodash/internal/domain"
	"portfoliodash/internal/repository"
	"strconv"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/gocarina/gocsv"
)

type ExportFormat string

const (
	ExportFormatJson ExportFormat = "json"
	ExportFormatCsv  ExportFormat = "csv"
	ExportFormatText ExportFormat = "text"
)

func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(s)) {
	case ExportFormatJson, "":
		return ExportFormatJson, nil
	case ExportFormatCsv:
		return ExportFormatCsv, nil
	case ExportFormatText:
		return ExportFormatText, nil
	}
	return "", fmt.Errorf("unknown export format %q - must be json, csv or text", s)
}

var ErrAnalysisNotConfigured = errors.New("no language model key configured")

type Export struct {
	ContentType string
	Filename    string
	Body        []byte
}

// ExportService serializes a snapshot one-directionally: none of the
// formats are meant to be parsed back into a PortfolioSnapshot. The text
// format targets pasting into an AI assistant, and Analyze feeds that
// same text to ChatGPT directly when a key is configured.
type ExportService interface {
	Export(ctx context.Context, snapshot *domain.PortfolioSnapshot, format ExportFormat) (*Export, error)
	Analyze(ctx context.Context, snapshot *domain.PortfolioSnapshot) (string, error)
}

// gptRepository may be nil; Analyze then reports ErrAnalysisNotConfigured.
func NewExportService(gptRepository repository.GptRepository) ExportService {
	return exportServiceHandler{
		GptRepository: gptRepository,
	}
}

type exportServiceHandler struct {
	GptRepository repository.GptRepository
}

func (h exportServiceHandler) Export(ctx context.Context, snapshot *domain.PortfolioSnapshot, format ExportFormat) (*Export, error) {
	switch format {
	case ExportFormatJson:
		return exportJson(snapshot)
	case ExportFormatCsv:
		return exportCsv(snapshot)
	case ExportFormatText:
		return &Export{
			ContentType: "text/plain",
			Filename:    "portfolio.txt",
			Body:        []byte(exportText(snapshot)),
		}, nil
	}
	return nil, fmt.Errorf("unknown export format %q", format)
}

func (h exportServiceHandler) Analyze(ctx context.Context, snapshot *domain.PortfolioSnapshot) (string, error) {
	if h.GptRepository == nil {
		return "", ErrAnalysisNotConfigured
	}
	return h.GptRepository.AnalyzePortfolio(ctx, exportText(snapshot))
}

type exportSummary struct {
	TotalValue       float64  `json:"total_value"`
	StockValue       float64  `json:"stock_value"`
	Cash             float64  `json:"cash"`
	BuyingPower      float64  `json:"buying_power"`
	TotalGainLoss    float64  `json:"total_gain_loss"`
	TotalGainLossPct *float64 `json:"total_gain_loss_percent"`
	NumHoldings      int      `json:"number_of_holdings"`
}

type jsonExport struct {
	ExportedAt        string                    `json:"exported_at"`
	Summary           exportSummary             `json:"summary"`
	Holdings          []domain.Holding          `json:"holdings"`
	SectorAllocations []domain.SectorAllocation `json:"sector_allocations"`
}

func buildSummary(snapshot *domain.PortfolioSnapshot) exportSummary {
	return exportSummary{
		TotalValue:       snapshot.TotalValue,
		StockValue:       snapshot.StockValue,
		Cash:             snapshot.Cash,
		BuyingPower:      snapshot.BuyingPower,
		TotalGainLoss:    snapshot.TotalGainLoss,
		TotalGainLossPct: snapshot.TotalGainLossPct,
		NumHoldings:      len(snapshot.Holdings),
	}
}

func exportJson(snapshot *domain.PortfolioSnapshot) (*Export, error) {
	out := jsonExport{
		ExportedAt:        time.Now().UTC().Format(time.RFC3339),
		Summary:           buildSummary(snapshot),
		Holdings:          snapshot.Holdings,
		SectorAllocations: snapshot.SectorAllocations,
	}
	body, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal portfolio export: %w", err)
	}
	return &Export{
		ContentType: "application/json",
		Filename:    "portfolio.json",
		Body:        body,
	}, nil
}

type csvRow struct {
	Symbol       string   `csv:"Symbol"`
	Company      string   `csv:"Company"`
	Sector       string   `csv:"Sector"`
	Industry     string   `csv:"Industry"`
	CurrentPrice *float64 `csv:"Current Price"`
	DayChange    *float64 `csv:"Day Change"`
	DayChangePct *float64 `csv:"Day Change %"`
	Shares       float64  `csv:"Shares"`
	AvgBuyPrice  float64  `csv:"Avg Buy Price"`
	MarketValue  float64  `csv:"Market Value"`
	GainLoss     float64  `csv:"Gain/Loss"`
	GainLossPct  *float64 `csv:"Gain/Loss %"`
	PortfolioPct float64  `csv:"% of Portfolio"`
}

// exportCsv writes one row per holding plus a totals block. Totals use
// the same float formatting as the JSON export so the two never show
// different values for the same snapshot.
func exportCsv(snapshot *domain.PortfolioSnapshot) (*Export, error) {
	rows := []csvRow{}
	for _, h := range snapshot.Holdings {
		rows = append(rows, csvRow{
			Symbol:       h.Symbol,
			Company:      h.CompanyName,
			Sector:       h.Sector,
			Industry:     h.Industry,
			CurrentPrice: h.CurrentPrice,
			DayChange:    h.DayChange,
			DayChangePct: h.DayChangePct,
			Shares:       h.Quantity,
			AvgBuyPrice:  h.AverageCost,
			MarketValue:  h.MarketValue,
			GainLoss:     h.GainLoss,
			GainLossPct:  h.GainLossPct,
			PortfolioPct: h.PortfolioPct,
		})
	}

	body, err := gocsv.MarshalString(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal csv export: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(body)
	sb.WriteString("\nSummary\n")
	writeSummaryRow(&sb, "Total Value", snapshot.TotalValue)
	writeSummaryRow(&sb, "Stock Value", snapshot.StockValue)
	writeSummaryRow(&sb, "Cash", snapshot.Cash)
	writeSummaryRow(&sb, "Buying Power", snapshot.BuyingPower)
	writeSummaryRow(&sb, "Total Gain/Loss", snapshot.TotalGainLoss)
	if snapshot.TotalGainLossPct != nil {
		writeSummaryRow(&sb, "Total Gain/Loss %", *snapshot.TotalGainLossPct)
	}

	return &Export{
		ContentType: "text/csv",
		Filename:    "portfolio.csv",
		Body:        []byte(sb.String()),
	}, nil
}

func writeSummaryRow(sb *strings.Builder, label string, value float64) {
	sb.WriteString(label)
	sb.WriteString(",")
	sb.WriteString(strconv.FormatFloat(value, 'f', -1, 64))
	sb.WriteString("\n")
}

func dollars(v float64) string {
	return money.NewFromFloat(v, money.USD).Display()
}

func exportText(snapshot *domain.PortfolioSnapshot) string {
	var sb strings.Builder

	sb.WriteString("PORTFOLIO EXPORT\n")
	sb.WriteString(fmt.Sprintf("Exported: %s\n\n", time.Now().UTC().Format(time.RFC3339)))

	sb.WriteString("=== PORTFOLIO SUMMARY ===\n")
	sb.WriteString(fmt.Sprintf("Total Portfolio Value: %s\n", dollars(snapshot.TotalValue)))
	sb.WriteString(fmt.Sprintf("Stock Value: %s\n", dollars(snapshot.StockValue)))
	sb.WriteString(fmt.Sprintf("Cash: %s\n", dollars(snapshot.Cash)))
	sb.WriteString(fmt.Sprintf("Buying Power: %s\n", dollars(snapshot.BuyingPower)))
	if snapshot.TotalGainLossPct != nil {
		sb.WriteString(fmt.Sprintf("Total Gain/Loss: %s (%.2f%%)\n", dollars(snapshot.TotalGainLoss), *snapshot.TotalGainLossPct))
	} else {
		sb.WriteString(fmt.Sprintf("Total Gain/Loss: %s\n", dollars(snapshot.TotalGainLoss)))
	}
	sb.WriteString(fmt.Sprintf("Number of Holdings: %d\n", len(snapshot.Holdings)))

	sb.WriteString("\n=== HOLDINGS ===\n")
	for _, h := range snapshot.Holdings {
		sb.WriteString(fmt.Sprintf("\n%s (%s)\n", h.Symbol, h.CompanyName))
		sb.WriteString(fmt.Sprintf("  Sector: %s | Industry: %s\n", h.Sector, h.Industry))
		if h.QuoteUnavailable || h.CurrentPrice == nil {
			sb.WriteString("  Current Price: unavailable\n")
		} else {
			sb.WriteString(fmt.Sprintf("  Current Price: %s", dollars(*h.CurrentPrice)))
			if h.DayChange != nil && h.DayChangePct != nil {
				sb.WriteString(fmt.Sprintf(" | Day Change: %s (%.2f%%)", dollars(*h.DayChange*h.Quantity), *h.DayChangePct))
			}
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("  Shares: %.4f | Avg Buy Price: %s\n", h.Quantity, dollars(h.AverageCost)))
		sb.WriteString(fmt.Sprintf("  Market Value: %s\n", dollars(h.MarketValue)))
		if h.GainLossPct != nil {
			sb.WriteString(fmt.Sprintf("  Gain/Loss: %s (%.2f%%)\n", dollars(h.GainLoss), *h.GainLossPct))
		} else {
			sb.WriteString(fmt.Sprintf("  Gain/Loss: %s (percent unavailable)\n", dollars(h.GainLoss)))
		}
		sb.WriteString(fmt.Sprintf("  Portfolio Allocation: %.2f%%\n", h.PortfolioPct))
	}

	if len(snapshot.SectorAllocations) > 0 {
		sb.WriteString("\n=== SECTOR ALLOCATION ===\n")
		for _, a := range snapshot.SectorAllocations {
			sb.WriteString(fmt.Sprintf("%s: %s (%.2f%%, %d holding(s))\n", a.Sector, dollars(a.MarketValue), a.Percent, a.NumHoldings))
		}
	}

	return sb.String()
}
