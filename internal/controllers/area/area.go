package area

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"arealookup/internal/request"
	"arealookup/internal/response"
	"arealookup/internal/service"
	"arealookup/internal/view"
	"arealookup/pkg/resp"
)

type AreaController struct {
	srv         service.Service
	childrenURL string
}

// NewAreaController childrenURL is where the page fetches the children of the selected area
func NewAreaController(srv service.Service, childrenURL string) *AreaController {
	return &AreaController{
		srv:         srv,
		childrenURL: childrenURL,
	}
}

// Provinces 省份页面
func (a *AreaController) Provinces(c *gin.Context) {
	areas, err := a.srv.Area().Roots(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.HTML(http.StatusOK, view.AreaPage, &response.AreaPage{
		Provinces:   response.NewAreas(areas),
		ChildrenURL: a.childrenURL,
	})
}

// Children 获取下级区域列表
func (a *AreaController) Children(c *gin.Context) {
	ctx := c.Request.Context()
	var req request.QueryChildrenReq
	// query string for GET, query string and form body for POST
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		resp.ErrorParam(c, err)
		return
	}
	pid, err := req.ParentID()
	if err != nil {
		resp.ErrorParam(c, err)
		return
	}

	areas, err := a.srv.Area().ListByPid(ctx, pid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.JSON(c, http.StatusOK, response.NewAreas(areas))
}
