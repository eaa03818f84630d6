package timex

import (
	"time"
)

const (
	DefaultLocation  = "Asia/Shanghai"
	TimeFormatLayout = "2006-01-02 15:04:05"
)

// CST falls back to a fixed +08:00 zone when tzdata is missing
var CST = func() *time.Location {
	loc, err := time.LoadLocation(DefaultLocation)
	if err != nil {
		return time.FixedZone("CST", 8*60*60)
	}
	return loc
}()
