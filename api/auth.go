package api

import (
	"fmt"
	"portfoliodash/internal/domain"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

const (
	sessionCookieName    = "portfolio_session"
	sessionTokenLifetime = 24 * time.Hour
)

// The cookie only names which session the browser belongs to; the
// session itself lives in-process. A valid token for a session that no
// longer exists is worthless.
func (m ApiHandler) issueSessionToken(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"session_id": session.ID.String(),
		"iat":        time.Now().UTC().Unix(),
		"exp":        time.Now().UTC().Add(sessionTokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.SessionSigningKey))
}

func (m ApiHandler) parseSessionToken(tokenStr string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.SessionSigningKey), nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, fmt.Errorf("invalid session token")
	}
	idStr, ok := claims["session_id"].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("session token missing session_id")
	}
	sessionID, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("malformed session_id in token: %w", err)
	}
	return sessionID, nil
}

func (m ApiHandler) setSessionCookie(c *gin.Context, session *domain.Session) error {
	token, err := m.issueSessionToken(session)
	if err != nil {
		return err
	}
	c.SetCookie(sessionCookieName, token, int(sessionTokenLifetime.Seconds()), "/", "", false, true)
	return nil
}

func (m ApiHandler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}

func (m ApiHandler) requireSession(c *gin.Context) {
	tokenStr, err := c.Cookie(sessionCookieName)
	if err != nil {
		returnErrorJsonCode(domain.ErrNotAuthenticated, c, 401)
		return
	}

	sessionID, err := m.parseSessionToken(tokenStr)
	if err != nil {
		returnErrorJsonCode(domain.ErrNotAuthenticated, c, 401)
		return
	}

	current, ok := m.SessionService.Current()
	if !ok || current.ID != sessionID {
		returnErrorJsonCode(domain.ErrNotAuthenticated, c, 401)
		return
	}

	if !m.SessionService.CheckLogin(c) {
		returnErrorJsonCode(domain.ErrNotAuthenticated, c, 401)
		return
	}

	c.Next()
}
