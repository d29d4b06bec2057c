package service

import (
	"context"
	"fmt"
	"portfoliodash/internal/domain"
	"portfoliodash/internal/logger"
	"portfoliodash/internal/repository"
	"sync"
	"time"

	"github.com/google/uuid"
)

// BrokerageFactory builds a brokerage client from login credentials.
// Injected so tests can swap in a mock repository.
type BrokerageFactory func(apiKey, apiSecret string) repository.BrokerageRepository

// SessionService owns the single in-process brokerage session. All
// state transitions run under one lock so a login and logout can never
// race each other into invalidating the broker token.
type SessionService interface {
	Login(ctx context.Context, creds domain.Credentials) (domain.SessionStatus, *domain.Session, error)
	Logout(ctx context.Context)
	CheckLogin(ctx context.Context) bool
	Current() (*domain.Session, bool)
	Brokerage() (repository.BrokerageRepository, error)
}

func NewSessionService(newBrokerage BrokerageFactory) SessionService {
	return &sessionServiceHandler{
		newBrokerage: newBrokerage,
	}
}

type sessionServiceHandler struct {
	mu           sync.Mutex
	newBrokerage BrokerageFactory

	session   *domain.Session
	brokerage repository.BrokerageRepository
}

func (h *sessionServiceHandler) Login(ctx context.Context, creds domain.Credentials) (domain.SessionStatus, *domain.Session, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Password == "" {
		return domain.SessionStatusInvalidCredentials, nil, nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	brokerage := h.newBrokerage(creds.Username, creds.Password)
	acct, err := brokerage.GetAccount()
	if err != nil {
		if repository.IsAuthError(err) {
			log.Infof("login rejected by brokerage")
			return domain.SessionStatusInvalidCredentials, nil, nil
		}
		return "", nil, fmt.Errorf("brokerage account check failed: %w", err)
	}

	session := &domain.Session{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
	}
	switch {
	case repository.IsPendingApproval(acct.Status):
		// credentials are good but the user still has to confirm the
		// account out-of-band; keep the session so check-login can
		// promote it once approval completes
		session.Status = domain.SessionStatusDeviceApprovalRequired
	case acct.Status == "ACTIVE":
		session.Status = domain.SessionStatusAuthenticated
	default:
		log.Warnf("brokerage account in unusable state %q", acct.Status)
		return domain.SessionStatusInvalidCredentials, nil, nil
	}

	h.session = session
	h.brokerage = brokerage
	log.Infof("brokerage session %s created with status %s", session.ID, session.Status)

	return session.Status, session, nil
}

// Logout drops the session. Calling it when no session exists is a
// no-op.
func (h *sessionServiceHandler) Logout(ctx context.Context) {
	log := logger.FromContext(ctx)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session != nil {
		log.Infof("brokerage session %s ended", h.session.ID)
	}
	h.session = nil
	h.brokerage = nil
}

func (h *sessionServiceHandler) CheckLogin(ctx context.Context) bool {
	log := logger.FromContext(ctx)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session == nil {
		return false
	}
	if h.session.Status == domain.SessionStatusDeviceApprovalRequired {
		acct, err := h.brokerage.GetAccount()
		if err != nil {
			log.Warnf("pending session re-check failed: %v", err)
			return false
		}
		if acct.Status != "ACTIVE" {
			return false
		}
		h.session.Status = domain.SessionStatusAuthenticated
		log.Infof("brokerage session %s approved", h.session.ID)
	}
	return h.session.Authenticated()
}

func (h *sessionServiceHandler) Current() (*domain.Session, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session == nil {
		return nil, false
	}
	copied := *h.session
	return &copied, true
}

// Brokerage hands out the client for the active session. Portfolio
// calls are gated on this: anything but an authenticated session gets
// ErrNotAuthenticated.
func (h *sessionServiceHandler) Brokerage() (repository.BrokerageRepository, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session == nil || !h.session.Authenticated() {
		return nil, domain.ErrNotAuthenticated
	}
	return h.brokerage, nil
}
