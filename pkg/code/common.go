package code

import "fmt"

// 3(http)+3(service)+4(error)
const codeLength = 10

var (
	// 000~099 common errors

	ErrInternalServerError = Froze("5000000000", "服务器内部错误")
	ErrInvalidParam        = Froze("4000000001", "请求参数不正确")
	ErrNotFound            = Froze("4040000002", "资源不存在")
	ErrNotAllowMethod      = Froze("4050000003", "不允许此方法")
	ErrCodeUnknown         = Froze("5000000005", "未知错误")
	ErrTooManyRequests     = Froze("4290000006", "请求过于频繁")
)

func common() []ErrorCode {
	return []ErrorCode{
		ErrInternalServerError,
		ErrInvalidParam,
		ErrNotFound,
		ErrNotAllowMethod,
		ErrCodeUnknown,
		ErrTooManyRequests,
	}
}

// AddCode checks the business codes against the common ones, every code must be
// well-formed and unique
func AddCode(codes ...ErrorCode) error {
	temp := make(map[string]string)
	for _, errorCode := range append(common(), codes...) {
		if err := check(errorCode); err != nil {
			return err
		}
		key := fmt.Sprintf("%3d%s", errorCode.StatusCode(), errorCode.Code())
		if value, ok := temp[key]; ok {
			return fmt.Errorf("error code %s(%s) already exists", key, value)
		}
		temp[key] = errorCode.Message()
	}
	return nil
}

// check validate ErrorCode's code must be 3(http)+3(service)+4(error)
func check(err ErrorCode) error {
	statusCode := err.StatusCode()
	if statusCode < 100 || statusCode >= 600 {
		return fmt.Errorf("error code %s has invalid status code %d", err.Code(), statusCode)
	}
	if l := len(err.Code()) + 3; l != codeLength {
		return fmt.Errorf("error code %d%s is %d,but it must be %d", statusCode, err.Code(), l, codeLength)
	}
	return nil
}
