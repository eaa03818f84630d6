package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"arealookup/pkg/prometheus"
)

// Metric 请求计数与耗时
func Metric(c *gin.Context) {
	start := time.Now()
	c.Next()

	path := c.FullPath()
	if path == "" {
		path = "unmatched"
	}
	prometheus.RequestCounterVec.
		WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
	prometheus.RequestDurationVec.
		WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
}
