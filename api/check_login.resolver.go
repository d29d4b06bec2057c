package api

import (
	"github.com/gin-gonic/gin"
)

type checkLoginResponse struct {
	Authenticated bool `json:"authenticated"`
}

// checkLogin re-verifies the session against the brokerage, so a login
// that was waiting on device approval flips to authenticated here once
// the user approves out-of-band.
func (m ApiHandler) checkLogin(c *gin.Context) {
	c.JSON(200, checkLoginResponse{
		Authenticated: m.SessionService.CheckLogin(c),
	})
}
