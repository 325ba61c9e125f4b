package middlewares

import (
	"os"

	"github.com/gin-gonic/gin"
)

// SecurityHeaders hardens responses for a JSON API with a websocket
// feed: nothing is embeddable, and the CSP only allows connections back
// to the API itself and the configured front-end origin.
func SecurityHeaders() gin.HandlerFunc {
	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "http://127.0.0.1:5173"
	}
	csp := "default-src 'none'; frame-ancestors 'none'; connect-src 'self' ws: wss: " + origin

	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Content-Security-Policy", csp)
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		c.Header("Permissions-Policy", "camera=(), microphone=(), geolocation=()")

		c.Next()
	}
}
