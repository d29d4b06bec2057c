package repository

import (
	"errors"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
)

// BrokerageRepository wraps the brokerage client library. Credentials
// come from the login request, so one handler is constructed per
// session rather than at process start. Auth handshakes, token refresh
// and retries are all owned by the underlying client.
type BrokerageRepository interface {
	GetAccount() (*alpaca.Account, error)
	GetPositions() ([]alpaca.Position, error)
	ListAssets() ([]alpaca.Asset, error)
}

func NewBrokerageRepository(apiKey, apiSecret, endpoint string) BrokerageRepository {
	client := alpaca.NewClient(alpaca.ClientOpts{
		APIKey:     apiKey,
		APISecret:  apiSecret,
		BaseURL:    endpoint,
		RetryLimit: 3,
	})

	return brokerageRepositoryHandler{
		Client: client,
	}
}

type brokerageRepositoryHandler struct {
	Client *alpaca.Client
}

func (h brokerageRepositoryHandler) GetAccount() (*alpaca.Account, error) {
	return h.Client.GetAccount()
}

func (h brokerageRepositoryHandler) GetPositions() ([]alpaca.Position, error) {
	return h.Client.GetPositions()
}

func (h brokerageRepositoryHandler) ListAssets() ([]alpaca.Asset, error) {
	return h.Client.GetAssets(alpaca.GetAssetsRequest{
		Status: "active",
	})
}

// IsAuthError reports whether the brokerage rejected our credentials, as
// opposed to failing for some other reason.
func IsAuthError(err error) bool {
	var apiErr *alpaca.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401 || apiErr.StatusCode == 403
	}
	return false
}

// Account statuses still waiting on broker-side confirmation. These map
// to the DeviceApprovalRequired login outcome: the user completes the
// approval out-of-band and the next check-login picks it up.
func IsPendingApproval(status string) bool {
	switch status {
	case "ONBOARDING", "SUBMITTED", "APPROVAL_PENDING", "ACCOUNT_UPDATED":
		return true
	}
	return false
}
