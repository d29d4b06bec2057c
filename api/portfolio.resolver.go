package api

import (
	"errors"
	"portfoliodash/internal/domain"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) portfolio(c *gin.Context) {
	snapshot, err := m.PortfolioService.GetPortfolio(c)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotAuthenticated):
			returnErrorJsonCode(err, c, 401)
		case errors.Is(err, domain.ErrProviderUnavailable):
			returnErrorJsonCode(err, c, 502)
		default:
			returnErrorJson(err, c)
		}
		return
	}

	c.JSON(200, snapshot)
}
