package code

import "arealookup/pkg/code"

var (
	// 001 area

	ErrQueryArea = code.Froze("5001000001", "查询区域失败")
)

// Loading checks the business codes against the common ones.
func Loading() error {
	return code.AddCode(ErrQueryArea)
}
