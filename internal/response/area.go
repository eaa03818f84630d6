package response

import "arealookup/internal/model"

type Area struct {
	// 区域ID
	AreaID int `json:"areaId"`
	// 父区域ID
	Pid int `json:"pid"`
	// 区域级别
	Level int `json:"level"`
	// 区域名称
	AreaName string `json:"areaName"`
}

// NewAreas keeps the order of areas, the result is never nil so that it is
// encoded as [] instead of null
func NewAreas(areas []*model.Area) []*Area {
	results := make([]*Area, len(areas))
	for i, area := range areas {
		results[i] = &Area{
			AreaID:   area.AreaID,
			Pid:      area.Pid,
			Level:    area.Level,
			AreaName: area.AreaName,
		}
	}
	return results
}

// AreaPage is the data of the province page
type AreaPage struct {
	Provinces   []*Area
	ChildrenURL string
}
