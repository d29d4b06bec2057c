package domain

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionStatusAuthenticated          SessionStatus = "Authenticated"
	SessionStatusDeviceApprovalRequired SessionStatus = "DeviceApprovalRequired"
	SessionStatusInvalidCredentials     SessionStatus = "InvalidCredentials"
)

// Credentials are supplied per login request and are never stored in
// server config. Username carries the brokerage API key, Password the
// API secret.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Session is the single in-process brokerage session. It lives for the
// runtime of the server instance; there is no distributed session store.
type Session struct {
	ID        uuid.UUID
	Status    SessionStatus
	CreatedAt time.Time
}

func (s Session) Authenticated() bool {
	return s.Status == SessionStatusAuthenticated
}
