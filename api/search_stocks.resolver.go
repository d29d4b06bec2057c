package api

import (
	"errors"
	"portfoliodash/internal/domain"

	"github.com/gin-gonic/gin"
)

type searchStocksResponse struct {
	Matches []domain.SymbolMatch `json:"matches"`
}

func (m ApiHandler) searchStocks(c *gin.Context) {
	matches, err := m.StockService.SearchStocks(c, c.Query("q"))
	if err != nil {
		if errors.Is(err, domain.ErrProviderUnavailable) {
			returnErrorJsonCode(err, c, 502)
		} else {
			returnErrorJson(err, c)
		}
		return
	}

	c.JSON(200, searchStocksResponse{Matches: matches})
}
