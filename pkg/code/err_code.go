package code

// ErrorCode is an error carrying its http status, business code and message.
type ErrorCode interface {
	error
	ServiceName() string
	StatusCode() int
	Code() string
	Message() string
	Result() interface{}
	WithStatusCode(int) ErrorCode
	WithCode(string) ErrorCode
	WithMessage(string) ErrorCode
	WithResult(interface{}) ErrorCode
	Is(error) bool
}
