package resp

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"

	"arealookup/pkg/code"
	"arealookup/pkg/utils"
)

func TestError(t *testing.T) {
	gin.SetMode(gin.ReleaseMode)
	g := gin.New()
	g.GET("/coded", func(c *gin.Context) {
		Error(c, pkgerrors.WithStack(code.ErrNotFound.WithResult("area 9")))
	})
	g.GET("/plain", func(c *gin.Context) {
		Error(c, errors.New("boom"))
	})
	g.GET("/param", func(c *gin.Context) {
		ErrorParam(c, errors.New("pid is required"))
	})

	tests := []struct {
		path       string
		wantStatus int
		wantCode   string
		wantResult string
	}{
		{path: "/coded", wantStatus: http.StatusNotFound, wantCode: "4040000002", wantResult: "area 9"},
		{path: "/plain", wantStatus: http.StatusInternalServerError, wantCode: "5000000005", wantResult: "boom"},
		{path: "/param", wantStatus: http.StatusBadRequest, wantCode: "4000000001", wantResult: "pid is required"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := utils.PerformRequest(g, http.MethodGet, tt.path, nil, nil)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, gjson.Get(w.Body.String(), "code").String())
			assert.Equal(t, tt.wantResult, gjson.Get(w.Body.String(), "result").String())
		})
	}
}

func TestJSON(t *testing.T) {
	gin.SetMode(gin.ReleaseMode)
	g := gin.New()
	g.GET("/list", func(c *gin.Context) {
		JSON(c, http.StatusOK, []string{"省", "市"})
	})
	w := utils.PerformRequest(g, http.MethodGet, "/list", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `["省","市"]`, w.Body.String())
}
