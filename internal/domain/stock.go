package domain

// StockDetail is the merged view of one symbol across the configured
// market data providers. Pointer fields may be nil when neither provider
// covers them; callers treat that as "unavailable", not an error.
type StockDetail struct {
	Symbol        string   `json:"symbol"`
	CompanyName   *string  `json:"company_name"`
	Price         *float64 `json:"price"`
	PreviousClose *float64 `json:"previous_close"`
	DayChange     *float64 `json:"day_change"`
	DayChangePct  *float64 `json:"day_change_percent"`
	Open          *float64 `json:"open"`
	DayHigh       *float64 `json:"day_high"`
	DayLow        *float64 `json:"day_low"`
	Volume        *int64   `json:"volume"`
	Bid           *float64 `json:"bid"`
	Ask           *float64 `json:"ask"`
	PeRatio       *float64 `json:"pe_ratio"`
	MarketCap     *float64 `json:"market_cap"`
	Beta          *float64 `json:"beta"`
	DividendYield *float64 `json:"dividend_yield"`
	Week52High    *float64 `json:"week_52_high"`
	Week52Low     *float64 `json:"week_52_low"`
	Sector        *string  `json:"sector"`
	Industry      *string  `json:"industry"`
}

// FillMissing copies populated fields from other into d, only where d has
// no value yet. The receiver's provider always wins on conflicts.
func (d *StockDetail) FillMissing(other *StockDetail) {
	if other == nil {
		return
	}
	if d.CompanyName == nil {
		d.CompanyName = other.CompanyName
	}
	if d.Price == nil {
		d.Price = other.Price
	}
	if d.PreviousClose == nil {
		d.PreviousClose = other.PreviousClose
	}
	if d.DayChange == nil {
		d.DayChange = other.DayChange
	}
	if d.DayChangePct == nil {
		d.DayChangePct = other.DayChangePct
	}
	if d.Open == nil {
		d.Open = other.Open
	}
	if d.DayHigh == nil {
		d.DayHigh = other.DayHigh
	}
	if d.DayLow == nil {
		d.DayLow = other.DayLow
	}
	if d.Volume == nil {
		d.Volume = other.Volume
	}
	if d.Bid == nil {
		d.Bid = other.Bid
	}
	if d.Ask == nil {
		d.Ask = other.Ask
	}
	if d.PeRatio == nil {
		d.PeRatio = other.PeRatio
	}
	if d.MarketCap == nil {
		d.MarketCap = other.MarketCap
	}
	if d.Beta == nil {
		d.Beta = other.Beta
	}
	if d.DividendYield == nil {
		d.DividendYield = other.DividendYield
	}
	if d.Week52High == nil {
		d.Week52High = other.Week52High
	}
	if d.Week52Low == nil {
		d.Week52Low = other.Week52Low
	}
	if d.Sector == nil {
		d.Sector = other.Sector
	}
	if d.Industry == nil {
		d.Industry = other.Industry
	}
}

// HasFundamentals reports whether the profile-level fields a secondary
// provider can supply are already populated.
func (d StockDetail) HasFundamentals() bool {
	return d.Sector != nil && d.Industry != nil && d.Beta != nil
}

type SymbolMatch struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}
