package middleware

import (
	"github.com/gin-gonic/gin"
)

const CtxRealIPKey = "real_ip"

// RealIP stores the resolved client IP under "real_ip".
// Forwarding headers only count when the engine trusts the peer
// (see gin.Engine.SetTrustedProxies and TrustedPlatform).
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(CtxRealIPKey, c.ClientIP())
		c.Next()
	}
}
