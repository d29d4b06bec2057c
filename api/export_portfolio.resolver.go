package api

import (
	"errors"
	"fmt"
	"portfoliodash/internal/domain"
	"portfoliodash/internal/service"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) exportPortfolio(c *gin.Context) {
	format, err := service.ParseExportFormat(c.Query("format"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	snapshot, err := m.PortfolioService.GetPortfolio(c)
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			returnErrorJsonCode(err, c, 401)
		} else {
			returnErrorJson(err, c)
		}
		return
	}

	export, err := m.ExportService.Export(c, snapshot, format)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.Filename))
	c.Data(200, export.ContentType, export.Body)
}
