package router

import (
	"github.com/gin-gonic/gin"

	"arealookup/internal/controllers/area"
	"arealookup/internal/service"
)

const childrenPath = "/v1/areas/children"

// registerArea 页面入口
func registerArea(router *gin.RouterGroup, srv service.Service) {
	areaController := area.NewAreaController(srv, childrenPath)
	match(router, "/", areaController.Provinces)
}

func registerAreaAPI(router *gin.RouterGroup, srv service.Service) {
	areaGroup := router.Group("/areas")
	{
		areaController := area.NewAreaController(srv, childrenPath)
		match(areaGroup, "/provinces", areaController.Provinces)
		match(areaGroup, "/children", areaController.Children)
	}
}
