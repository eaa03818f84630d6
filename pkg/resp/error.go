package resp

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"arealookup/pkg/code"
	"arealookup/pkg/logger"
)

// Error gin Response with error, the status comes from the wrapped code.ErrorCode
func Error(c *gin.Context, err error) {
	logger.From(c.Request.Context()).Error("response failed", zap.Error(err))
	var e code.ErrorCode
	if !errors.As(err, &e) {
		e = code.ErrCodeUnknown.WithResult(err.Error())
	}
	c.AbortWithStatusJSON(e.StatusCode(), e)
}

// ErrorParam gin response with invalid parameter tip
func ErrorParam(c *gin.Context, err error) {
	Error(c, code.ErrInvalidParam.WithResult(err.Error()))
}
