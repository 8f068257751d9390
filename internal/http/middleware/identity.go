// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file resolves the caller identity once per request so that every
// downstream consumer (idempotent-replay lookup, rate-limit keying, handlers)
// reads the same value from the same place.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// HeaderUserID is the development header that identifies the caller when no
// authentication middleware has populated the context.
const HeaderUserID = "X-User-ID"

// ctxKeyUserID is the Gin context key holding the resolved caller identity.
// Upstream auth middleware may set it before UserIdentity runs.
const ctxKeyUserID = "userID"

// UserIdentity stores the caller identity in the Gin context under "userID".
// A value already present (set by upstream auth) wins; otherwise the
// X-User-ID header is used. When neither is available the key stays unset and
// consumers apply their own fallback (client IP for rate limiting, the demo
// user for replay lookups).
func UserIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if v, ok := c.Get(ctxKeyUserID); ok {
			if s, ok := v.(string); ok && s != "" {
				c.Next()
				return
			}
		}
		if h := strings.TrimSpace(c.GetHeader(HeaderUserID)); h != "" {
			c.Set(ctxKeyUserID, h)
		}
		c.Next()
	}
}
