package middlewares

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"arealookup/pkg/logger"
)

// Log request logx
func Log(c *gin.Context) {
	// Start timer
	start := time.Now()
	path := c.Request.URL.Path
	raw := c.Request.URL.RawQuery

	// Process request
	c.Next()

	param := gin.LogFormatterParams{
		Request: c.Request,
		Keys:    c.Keys,
	}
	// Stop timer
	param.TimeStamp = time.Now()
	param.Latency = param.TimeStamp.Sub(start)

	param.ClientIP = c.ClientIP()
	param.Method = c.Request.Method
	param.StatusCode = c.Writer.Status()
	param.ErrorMessage = c.Errors.ByType(gin.ErrorTypePrivate).String()
	param.BodySize = c.Writer.Size()

	if raw != "" {
		path = path + "?" + raw
	}
	param.Path = path
	logger.From(c.Request.Context()).Info(defaultLogFormatter(&param),
		zap.Duration("latency", param.Latency))
}

// defaultLogFormatter is the default log format function Logger middlewares uses.
func defaultLogFormatter(param *gin.LogFormatterParams) string {
	if param.Latency > time.Minute {
		param.Latency -= param.Latency % time.Second
	}
	var buf strings.Builder
	buf.WriteByte(' ')
	buf.WriteString(strconv.Itoa(param.StatusCode))
	buf.WriteString(" | ")
	buf.WriteString(param.Latency.String())
	buf.WriteString(" | ")
	buf.WriteString(param.ClientIP)
	buf.WriteString(" | ")
	buf.WriteString(param.Method)
	buf.WriteString(" |")
	buf.WriteString(strconv.Itoa(param.BodySize))
	buf.WriteString("| ")
	buf.WriteString(param.Path)
	if param.ErrorMessage != "" {
		buf.WriteString(" | ")
		buf.WriteString(param.ErrorMessage)
	}
	return buf.String()
}
