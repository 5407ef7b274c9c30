package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/nirmalvora/padosee-server/internal/reqctx"
)

const requestIDHeader = "X-Request-ID"

// RequestID keeps an incoming X-Request-ID or generates one, and exposes it
// on the request context and the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 128 {
			id = reqctx.NewRequestID()
		}

		c.Request = c.Request.WithContext(reqctx.WithRequestID(c.Request.Context(), id))
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
