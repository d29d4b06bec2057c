package api

import (
	"errors"
	"portfoliodash/internal/domain"
	"portfoliodash/internal/service"

	"github.com/gin-gonic/gin"
)

type analyzePortfolioResponse struct {
	Analysis string `json:"analysis"`
}

// analyzePortfolio runs the text export through the language model for
// a plain-English read of the portfolio. Disabled without a GPT key.
func (m ApiHandler) analyzePortfolio(c *gin.Context) {
	snapshot, err := m.PortfolioService.GetPortfolio(c)
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			returnErrorJsonCode(err, c, 401)
		} else {
			returnErrorJson(err, c)
		}
		return
	}

	analysis, err := m.ExportService.Analyze(c, snapshot)
	if err != nil {
		if errors.Is(err, service.ErrAnalysisNotConfigured) {
			returnErrorJsonCode(err, c, 503)
		} else {
			returnErrorJson(err, c)
		}
		return
	}

	c.JSON(200, analyzePortfolioResponse{Analysis: analysis})
}
