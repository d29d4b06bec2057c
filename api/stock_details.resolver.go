package api

import (
	"errors"
	"portfoliodash/internal/domain"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) stockDetails(c *gin.Context) {
	symbol := c.Param("symbol")

	detail, err := m.StockService.GetStockDetail(c, symbol)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSymbolNotFound):
			returnErrorJsonCode(err, c, 404)
		case errors.Is(err, domain.ErrProviderUnavailable):
			returnErrorJsonCode(err, c, 502)
		default:
			returnErrorJson(err, c)
		}
		return
	}

	c.JSON(200, detail)
}
