package model

// RootPid is the pid of the top level areas (provinces)
const RootPid = -1

// Area 行政区域树节点
type Area struct {
	AreaID   int    `gorm:"column:area_id;primaryKey;autoIncrement:false"`
	Pid      int    `gorm:"column:pid;index:idx_pid;NOT NULL"`
	Level    int    `gorm:"column:area_level;NOT NULL"`
	AreaName string `gorm:"column:area_name;type:varchar(255);NOT NULL"`
}

func (Area) TableName() string {
	return "tx_area"
}
