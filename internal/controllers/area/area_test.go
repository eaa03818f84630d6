package area

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"arealookup/internal/code"
	"arealookup/internal/model"
	"arealookup/internal/service"
	"arealookup/internal/service/area"
	"arealookup/internal/view"
	"arealookup/pkg/utils"
	"arealookup/pkg/validator"
)

var scenario = map[int][]*model.Area{
	-1: {
		{AreaID: 1, Pid: -1, Level: 1, AreaName: "北京"},
		{AreaID: 2, Pid: -1, Level: 1, AreaName: "上海"},
	},
	1: {
		{AreaID: 11, Pid: 1, Level: 2, AreaName: "海淀"},
	},
	99: {},
}

func newRouter(t *testing.T) (*gin.Engine, *area.MockAreaSrv) {
	gin.SetMode(gin.ReleaseMode)
	require.NoError(t, validator.Install())
	ctrl := gomock.NewController(t)
	srv := service.NewMockService(ctrl)
	areaSrv := area.NewMockAreaSrv(ctrl)
	srv.EXPECT().Area().Return(areaSrv).AnyTimes()

	tmpl, err := view.Load()
	require.NoError(t, err)
	g := gin.New()
	g.SetHTMLTemplate(tmpl)
	controller := NewAreaController(srv, "/v1/areas/children")
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		g.Handle(method, "/", controller.Provinces)
		g.Handle(method, "/children", controller.Children)
	}
	return g, areaSrv
}

func TestChildren(t *testing.T) {
	tests := []struct {
		name      string
		pid       string
		wantAreas []*model.Area
	}{
		{name: "root", pid: "-1", wantAreas: scenario[-1]},
		{name: "children", pid: "1", wantAreas: scenario[1]},
		{name: "no_children", pid: "99", wantAreas: scenario[99]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, areaSrv := newRouter(t)
			areaSrv.EXPECT().ListByPid(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, pid int) ([]*model.Area, error) {
					return scenario[pid], nil
				})

			w := utils.PerformRequest(g, http.MethodGet, "/children?pid="+tt.pid, nil, nil)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
			result := gjson.Parse(w.Body.String())
			require.True(t, result.IsArray())
			items := result.Array()
			require.Len(t, items, len(tt.wantAreas))
			for i, want := range tt.wantAreas {
				assert.Equal(t, int64(want.AreaID), items[i].Get("areaId").Int())
				assert.Equal(t, int64(want.Pid), items[i].Get("pid").Int())
				assert.Equal(t, int64(want.Level), items[i].Get("level").Int())
				assert.Equal(t, want.AreaName, items[i].Get("areaName").String())
			}
		})
	}
}

func TestChildrenEmpty(t *testing.T) {
	g, areaSrv := newRouter(t)
	areaSrv.EXPECT().ListByPid(gomock.Any(), 99).Return(nil, nil)

	w := utils.PerformRequest(g, http.MethodGet, "/children?pid=99", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestChildrenInvalidPid(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "missing", path: "/children"},
		{name: "empty", path: "/children?pid="},
		{name: "not_number", path: "/children?pid=abc"},
		{name: "decimal", path: "/children?pid=1.5"},
		{name: "overflow", path: "/children?pid=99999999999999999999"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newRouter(t)
			w := utils.PerformRequest(g, http.MethodGet, tt.path, nil, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "4000000001", gjson.Get(w.Body.String(), "code").String())
		})
	}
}

func TestChildrenStorageFailure(t *testing.T) {
	g, areaSrv := newRouter(t)
	areaSrv.EXPECT().ListByPid(gomock.Any(), 1).
		Return(nil, pkgerrors.WithStack(code.ErrQueryArea.WithResult(errors.New("connection refused").Error())))

	w := utils.PerformRequest(g, http.MethodGet, "/children?pid=1", nil, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "5001000001", gjson.Get(w.Body.String(), "code").String())
	assert.Equal(t, "connection refused", gjson.Get(w.Body.String(), "result").String())
}

func TestChildrenPost(t *testing.T) {
	g, areaSrv := newRouter(t)
	areaSrv.EXPECT().ListByPid(gomock.Any(), 1).Return(scenario[1], nil)

	w := utils.PerformRequest(g, http.MethodPost, "/children",
		strings.NewReader(url.Values{"pid": []string{"1"}}.Encode()),
		http.Header{"Content-Type": []string{"application/x-www-form-urlencoded"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "海淀", gjson.Get(w.Body.String(), "0.areaName").String())
}

func TestProvinces(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		t.Run(method, func(t *testing.T) {
			g, areaSrv := newRouter(t)
			areaSrv.EXPECT().Roots(gomock.Any()).Return(scenario[-1], nil)

			w := utils.PerformRequest(g, method, "/", nil, nil)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
			body := w.Body.String()
			assert.Contains(t, body, `<option value="1" data-level="1">北京</option>`)
			assert.Contains(t, body, `<option value="2" data-level="1">上海</option>`)
			assert.Less(t, strings.Index(body, "北京"), strings.Index(body, "上海"))
		})
	}
}

func TestProvincesStorageFailure(t *testing.T) {
	g, areaSrv := newRouter(t)
	areaSrv.EXPECT().Roots(gomock.Any()).Return(nil, pkgerrors.WithStack(code.ErrQueryArea))

	w := utils.PerformRequest(g, http.MethodGet, "/", nil, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "5001000001", gjson.Get(w.Body.String(), "code").String())
}
