package api

import (
	"fmt"
	"portfoliodash/internal/logger"
	"portfoliodash/internal/service"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	SessionService    service.SessionService
	PortfolioService  service.PortfolioService
	StockService      service.StockService
	ExportService     service.ExportService
	SessionSigningKey string
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowCredentials = false
	router.Use(cors.New(corsConfig))
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to portfoliodash"})
	})
	router.POST("/api/login", m.login)
	router.POST("/api/logout", m.logout)
	router.GET("/api/check-login", m.checkLogin)
	router.GET("/api/stock-details/:symbol", m.stockDetails)
	router.GET("/api/search-stocks", m.searchStocks)
	router.GET("/api/portfolio", m.requireSession, m.portfolio)
	router.GET("/api/export-portfolio", m.requireSession, m.exportPortfolio)
	router.POST("/api/analyze-portfolio", m.requireSession, m.analyzePortfolio)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	log := logger.New().With(
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
	)
	ctx.Set(logger.ContextKey, log)

	start := time.Now().UTC()
	ctx.Next()

	log.Infow("request handled",
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}
