package api

import (
	"github.com/gin-gonic/gin"
)

// logout always succeeds, even when no session exists.
func (m ApiHandler) logout(c *gin.Context) {
	m.SessionService.Logout(c)
	m.clearSessionCookie(c)

	c.JSON(200, map[string]string{
		"message": "logged out",
	})
}
