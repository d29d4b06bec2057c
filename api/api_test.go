package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"portfoliodash/internal/domain"
	"portfoliodash/internal/repository"
	mock_repository "portfoliodash/internal/repository/mocks"
	"portfoliodash/internal/service"
	"portfoliodash/internal/util"
	"testing"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestHandler wires the real services over mocked providers so
// requests exercise the full middleware and resolver path.
func newTestHandler(
	brokerage repository.BrokerageRepository,
	quoteRepository repository.QuoteRepository,
) ApiHandler {
	sessionService := service.NewSessionService(func(apiKey, apiSecret string) repository.BrokerageRepository {
		return brokerage
	})
	stockService := service.NewStockService(quoteRepository, nil, sessionService, nil)
	return ApiHandler{
		SessionService:    sessionService,
		PortfolioService:  service.NewPortfolioService(sessionService, stockService),
		StockService:      stockService,
		ExportService:     service.NewExportService(nil),
		SessionSigningKey: "test-signing-key",
	}
}

func performRequest(router *gin.Engine, method, path string, body []byte, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func loginAndGetCookie(t *testing.T, router *gin.Engine) *http.Cookie {
	t.Helper()

	body, err := json.Marshal(map[string]string{"username": "key", "password": "secret"})
	require.NoError(t, err)

	w := performRequest(router, "POST", "/api/login", body, nil)
	require.Equal(t, 200, w.Code)

	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	t.Fatal("login response did not set a session cookie")
	return nil
}

func Test_login(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		brokerage := mock_repository.NewMockBrokerageRepository(ctrl)
		brokerage.EXPECT().GetAccount().Return(&alpaca.Account{Status: "ACTIVE"}, nil)

		handler := newTestHandler(brokerage, nil)
		router := handler.InitializeRouterEngine()

		cookie := loginAndGetCookie(t, router)
		require.NotEmpty(t, cookie.Value)

		w := performRequest(router, "GET", "/api/check-login", nil, nil)
		require.Equal(t, 200, w.Code)
		require.JSONEq(t, `{"authenticated": true}`, w.Body.String())
	})

	t.Run("invalid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		brokerage := mock_repository.NewMockBrokerageRepository(ctrl)
		brokerage.EXPECT().GetAccount().Return(nil, &alpaca.APIError{
			StatusCode: 401,
			Message:    "access key verification failed",
		})

		handler := newTestHandler(brokerage, nil)
		router := handler.InitializeRouterEngine()

		body, err := json.Marshal(map[string]string{"username": "key", "password": "wrong"})
		require.NoError(t, err)
		w := performRequest(router, "POST", "/api/login", body, nil)
		require.Equal(t, 401, w.Code)
		require.JSONEq(t, `{"status": "InvalidCredentials"}`, w.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		handler := newTestHandler(nil, nil)
		router := handler.InitializeRouterEngine()

		w := performRequest(router, "POST", "/api/login", []byte("{"), nil)
		require.Equal(t, 400, w.Code)
	})

	t.Run("device approval flow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		brokerage := mock_repository.NewMockBrokerageRepository(ctrl)
		brokerage.EXPECT().GetAccount().Return(&alpaca.Account{Status: "APPROVAL_PENDING"}, nil)
		brokerage.EXPECT().GetAccount().Return(&alpaca.Account{Status: "APPROVAL_PENDING"}, nil)
		brokerage.EXPECT().GetAccount().Return(&alpaca.Account{Status: "ACTIVE"}, nil)

		handler := newTestHandler(brokerage, nil)
		router := handler.InitializeRouterEngine()

		body, err := json.Marshal(map[string]string{"username": "key", "password": "secret"})
		require.NoError(t, err)
		w := performRequest(router, "POST", "/api/login", body, nil)
		require.Equal(t, 202, w.Code)
		require.JSONEq(t, `{"status": "DeviceApprovalRequired"}`, w.Body.String())

		// still pending on the first poll, approved on the second
		w = performRequest(router, "GET", "/api/check-login", nil, nil)
		require.JSONEq(t, `{"authenticated": false}`, w.Body.String())

		w = performRequest(router, "GET", "/api/check-login", nil, nil)
		require.JSONEq(t, `{"authenticated": true}`, w.Body.String())
	})
}

func Test_portfolio(t *testing.T) {
	t.Run("requires a session cookie", func(t *testing.T) {
		handler := newTestHandler(nil, nil)
		router := handler.InitializeRouterEngine()

		w := performRequest(router, "GET", "/api/portfolio", nil, nil)
		require.Equal(t, 401, w.Code)
	})

	t.Run("rejects a forged cookie", func(t *testing.T) {
		handler := newTestHandler(nil, nil)
		router := handler.InitializeRouterEngine()

		w := performRequest(router, "GET", "/api/portfolio", nil, []*http.Cookie{
			{Name: sessionCookieName, Value: "not-a-valid-token"},
		})
		require.Equal(t, 401, w.Code)
	})

	t.Run("happy path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		brokerage := mock_repository.NewMockBrokerageRepository(ctrl)
		quoteRepository := mock_repository.NewMockQuoteRepository(ctrl)

		brokerage.EXPECT().GetAccount().Return(&alpaca.Account{Status: "ACTIVE"}, nil)
		brokerage.EXPECT().GetPositions().Return([]alpaca.Position{
			{Symbol: "AAPL", Qty: decimal.NewFromInt(2), AvgEntryPrice: decimal.NewFromInt(100)},
		}, nil)
		brokerage.EXPECT().GetAccount().Return(&alpaca.Account{
			Status:      "ACTIVE",
			Cash:        decimal.NewFromInt(100),
			BuyingPower: decimal.NewFromInt(100),
		}, nil)
		quoteRepository.EXPECT().GetStockDetail(gomock.Any(), "AAPL").Return(&domain.StockDetail{
			Symbol:      "AAPL",
			CompanyName: util.StringPointer("Apple Inc."),
			Price:       util.FloatPointer(150),
			Sector:      util.StringPointer("Technology"),
		}, nil)

		handler := newTestHandler(brokerage, quoteRepository)
		router := handler.InitializeRouterEngine()
		cookie := loginAndGetCookie(t, router)

		w := performRequest(router, "GET", "/api/portfolio", nil, []*http.Cookie{cookie})
		require.Equal(t, 200, w.Code)

		snapshot := domain.PortfolioSnapshot{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snapshot))
		require.Len(t, snapshot.Holdings, 1)
		require.InDelta(t, 400, snapshot.TotalValue, 1e-9)
		require.InDelta(t, 300, snapshot.StockValue, 1e-9)
		require.Equal(t, "Technology", snapshot.Holdings[0].Sector)
	})
}

func Test_exportPortfolio(t *testing.T) {
	t.Run("rejects unknown formats", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		brokerage := mock_repository.NewMockBrokerageRepository(ctrl)
		brokerage.EXPECT().GetAccount().Return(&alpaca.Account{Status: "ACTIVE"}, nil)

		handler := newTestHandler(brokerage, nil)
		router := handler.InitializeRouterEngine()
		cookie := loginAndGetCookie(t, router)

		w := performRequest(router, "GET", "/api/export-portfolio?format=xml", nil, []*http.Cookie{cookie})
		require.Equal(t, 400, w.Code)
	})

	t.Run("csv download", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		brokerage := mock_repository.NewMockBrokerageRepository(ctrl)

		brokerage.EXPECT().GetAccount().Return(&alpaca.Account{Status: "ACTIVE"}, nil)
		brokerage.EXPECT().GetPositions().Return([]alpaca.Position{}, nil)
		brokerage.EXPECT().GetAccount().Return(&alpaca.Account{
			Status:      "ACTIVE",
			BuyingPower: decimal.NewFromInt(100),
		}, nil)

		handler := newTestHandler(brokerage, nil)
		router := handler.InitializeRouterEngine()
		cookie := loginAndGetCookie(t, router)

		w := performRequest(router, "GET", "/api/export-portfolio?format=csv", nil, []*http.Cookie{cookie})
		require.Equal(t, 200, w.Code)
		require.Contains(t, w.Header().Get("Content-Type"), "text/csv")
		require.Equal(t, "attachment; filename=portfolio.csv", w.Header().Get("Content-Disposition"))
		require.Contains(t, w.Body.String(), "Total Value,100\n")
	})
}

func Test_analyzePortfolio(t *testing.T) {
	t.Run("no language model configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		brokerage := mock_repository.NewMockBrokerageRepository(ctrl)

		brokerage.EXPECT().GetAccount().Return(&alpaca.Account{Status: "ACTIVE"}, nil)
		brokerage.EXPECT().GetPositions().Return([]alpaca.Position{}, nil)
		brokerage.EXPECT().GetAccount().Return(&alpaca.Account{Status: "ACTIVE"}, nil)

		handler := newTestHandler(brokerage, nil)
		router := handler.InitializeRouterEngine()
		cookie := loginAndGetCookie(t, router)

		w := performRequest(router, "POST", "/api/analyze-portfolio", nil, []*http.Cookie{cookie})
		require.Equal(t, 503, w.Code)
	})
}

func Test_stockDetails(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		quoteRepository := mock_repository.NewMockQuoteRepository(ctrl)
		quoteRepository.EXPECT().GetStockDetail(gomock.Any(), "AAPL").Return(&domain.StockDetail{
			Symbol:      "AAPL",
			CompanyName: util.StringPointer("Apple Inc."),
			Price:       util.FloatPointer(150),
		}, nil)

		handler := newTestHandler(nil, quoteRepository)
		router := handler.InitializeRouterEngine()

		w := performRequest(router, "GET", "/api/stock-details/AAPL", nil, nil)
		require.Equal(t, 200, w.Code)

		detail := domain.StockDetail{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
		require.Equal(t, "AAPL", detail.Symbol)
		require.Equal(t, util.FloatPointer(150), detail.Price)
	})

	t.Run("unknown symbol", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		quoteRepository := mock_repository.NewMockQuoteRepository(ctrl)
		quoteRepository.EXPECT().
			GetStockDetail(gomock.Any(), "ZZZT").
			Return(nil, domain.ErrSymbolNotFound)

		handler := newTestHandler(nil, quoteRepository)
		router := handler.InitializeRouterEngine()

		w := performRequest(router, "GET", "/api/stock-details/ZZZT", nil, nil)
		require.Equal(t, 404, w.Code)
	})

	t.Run("provider outage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		quoteRepository := mock_repository.NewMockQuoteRepository(ctrl)
		quoteRepository.EXPECT().
			GetStockDetail(gomock.Any(), "AAPL").
			Return(nil, domain.ErrProviderUnavailable)

		handler := newTestHandler(nil, quoteRepository)
		router := handler.InitializeRouterEngine()

		w := performRequest(router, "GET", "/api/stock-details/AAPL", nil, nil)
		require.Equal(t, 502, w.Code)
	})
}

func Test_logout(t *testing.T) {
	t.Run("session is gone after logout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		brokerage := mock_repository.NewMockBrokerageRepository(ctrl)
		brokerage.EXPECT().GetAccount().Return(&alpaca.Account{Status: "ACTIVE"}, nil)

		handler := newTestHandler(brokerage, nil)
		router := handler.InitializeRouterEngine()
		cookie := loginAndGetCookie(t, router)

		w := performRequest(router, "POST", "/api/logout", nil, []*http.Cookie{cookie})
		require.Equal(t, 200, w.Code)

		w = performRequest(router, "GET", "/api/portfolio", nil, []*http.Cookie{cookie})
		require.Equal(t, 401, w.Code)

		w = performRequest(router, "GET", "/api/check-login", nil, nil)
		require.JSONEq(t, `{"authenticated": false}`, w.Body.String())
	})
}
