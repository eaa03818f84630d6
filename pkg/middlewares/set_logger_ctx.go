package middlewares

import (
	"github.com/gin-gonic/gin"
	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"

	"arealookup/pkg/logger"
	"arealookup/pkg/utils/v"
)

// SetLogger binds a request logger carrying the trace id, X-Trace-ID is generated
// when the client did not send one and is echoed in the response
func SetLogger(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(v.HeaderTraceID)
		if traceID == "" {
			traceID = uuid.NewV4().String()
			c.Request.Header.Set(v.HeaderTraceID, traceID) // 请求头
		}
		c.Writer.Header().Set(v.HeaderTraceID, traceID) // 响应头

		l := base.With(zap.String("trace_id", traceID), zap.String("client_ip", c.ClientIP()))
		c.Request = c.Request.WithContext(logger.With(c.Request.Context(), l))
		c.Next()
	}
}
