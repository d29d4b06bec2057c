package api

import (
	"fmt"
	"portfoliodash/internal/domain"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Status domain.SessionStatus `json:"status"`
}

func (m ApiHandler) login(c *gin.Context) {
	var requestBody loginRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	status, session, err := m.SessionService.Login(c, domain.Credentials{
		Username: requestBody.Username,
		Password: requestBody.Password,
	})
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("brokerage unreachable: %w", err), c, 502)
		return
	}

	if session != nil {
		if err := m.setSessionCookie(c, session); err != nil {
			returnErrorJson(fmt.Errorf("failed to issue session cookie: %w", err), c)
			return
		}
	}

	code := 200
	switch status {
	case domain.SessionStatusDeviceApprovalRequired:
		code = 202
	case domain.SessionStatusInvalidCredentials:
		code = 401
	}
	c.JSON(code, loginResponse{Status: status})
}
