package logger

import (
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// RegisterLog exposes the debug switch of every logger built by New
func RegisterLog(router gin.IRouter) {
	router.GET("/log", getLog)
	router.PUT("/log", updateLog)
}

var debug uint32

type Content struct {
	Debug *bool `json:"debug" binding:"required"`
}

func getLog(c *gin.Context) {
	enabled := atomic.LoadUint32(&debug) == 1
	c.JSON(http.StatusOK, Content{Debug: &enabled})
}

func updateLog(c *gin.Context) {
	var req Content
	if err := c.ShouldBindWith(&req, binding.JSON); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, map[string]interface{}{
			"code":    "4000000001",
			"message": err.Error(),
			"result":  nil,
		})
		return
	}
	if *req.Debug {
		atomic.StoreUint32(&debug, 1)
	} else {
		atomic.StoreUint32(&debug, 0)
	}
	c.Status(http.StatusNoContent)
}
