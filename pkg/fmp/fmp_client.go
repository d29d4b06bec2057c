package fmp

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const DefaultBaseUrl = "https://financialmodelingprep.com"

// Client talks to the Financial Modeling Prep API. It is the secondary
// market data provider: company profiles (sector/industry/beta) and
// symbol search. Rate limiting is handled passively - a 429 is returned
// to the caller as ErrRateLimited, never retried here.
type Client struct {
	HttpClient *http.Client
	ApiKey     string
	BaseUrl    string
}

type ErrRateLimited struct {
	StatusCode int
}

func (e ErrRateLimited) Error() string {
	return fmt.Sprintf("fmp rate limit hit (status %d)", e.StatusCode)
}

type CompanyProfile struct {
	Symbol      string  `json:"symbol"`
	CompanyName string  `json:"companyName"`
	Price       float64 `json:"price"`
	Beta        float64 `json:"beta"`
	MarketCap   float64 `json:"marketCap"`
	Sector      string  `json:"sector"`
	Industry    string  `json:"industry"`
	Exchange    string  `json:"exchange"`
	Currency    string  `json:"currency"`
}

type SymbolSearchResult struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
	Exchange string `json:"exchangeFullName"`
}

func (c Client) baseUrl() string {
	if c.BaseUrl != "" {
		return c.BaseUrl
	}
	return DefaultBaseUrl
}

func (c Client) get(path string, params url.Values, out interface{}) error {
	params.Set("apikey", c.ApiKey)
	requestUrl := fmt.Sprintf("%s%s?%s", c.baseUrl(), path, params.Encode())
	req, err := http.NewRequest(http.MethodGet, requestUrl, nil)
	if err != nil {
		return err
	}
	response, err := c.HttpClient.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode == 429 {
		return ErrRateLimited{StatusCode: response.StatusCode}
	} else if response.StatusCode != 200 {
		type errResponse struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		errJson := errResponse{}
		if err := json.Unmarshal(responseBytes, &errJson); err != nil {
			return fmt.Errorf("request to %s failed with status code %d", path, response.StatusCode)
		}
		msg := errJson.Error
		if msg == "" {
			msg = errJson.Message
		}
		return fmt.Errorf("request to %s failed with status code %d: %s", path, response.StatusCode, msg)
	}

	if err := json.Unmarshal(responseBytes, out); err != nil {
		return fmt.Errorf("failed to parse %s response: %w", path, err)
	}
	return nil
}

// GetProfile resolves a symbol to its company profile. A successful call
// with an empty result set means the symbol does not exist, which callers
// must treat differently from a failed call.
func (c Client) GetProfile(symbol string) (*CompanyProfile, error) {
	params := url.Values{}
	params.Set("symbol", symbol)

	var profiles []CompanyProfile
	if err := c.get("/stable/profile", params, &profiles); err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, nil
	}
	return &profiles[0], nil
}

func (c Client) SearchSymbol(query string, limit int) ([]SymbolSearchResult, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", fmt.Sprintf("%d", limit))

	var results []SymbolSearchResult
	if err := c.get("/stable/search-symbol", params, &results); err != nil {
		return nil, err
	}
	return results, nil
}
