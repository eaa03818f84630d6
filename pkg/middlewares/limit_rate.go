package middlewares

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"arealookup/pkg/code"
	"arealookup/pkg/resp"
)

// RateLimit rejects requests once the token bucket of the whole service is empty,
// a non positive limit disables it
func RateLimit(limit float64, burst int) gin.HandlerFunc {
	if limit <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	if burst <= 0 {
		burst = 1
	}
	bucket := rate.NewLimiter(rate.Limit(limit), burst)
	return func(c *gin.Context) {
		if !bucket.Allow() {
			resp.Error(c, code.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}
