package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS returns a middleware that allows cross-origin requests from the
// configured frontend origin only.
func CORS(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// The response differs by Origin even when no CORS headers are
		// added, so shared caches must always key on it.
		c.Writer.Header().Set("Vary", "Origin")

		origin := c.GetHeader("Origin")
		// No Origin header means a same-origin request, nothing to do.
		if origin == "" {
			c.Next()
			return
		}
		if origin != allowedOrigin {
			// Origin not allowed: proceed without CORS headers, the
			// browser blocks the response on the client side.
			c.Next()
			return
		}

		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == http.MethodOptions {
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
			c.Writer.Header().Set("Access-Control-Max-Age", "3600")
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
