package request

import "strconv"

type QueryChildrenReq struct {
	// 父区域ID，-1 为省级
	Pid string `form:"pid" binding:"required,integer"`
}

// ParentID converts the validated pid, it only fails when pid overflows int
func (q *QueryChildrenReq) ParentID() (int, error) {
	return strconv.Atoi(q.Pid)
}
