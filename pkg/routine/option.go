package routine

import "context"

type option struct {
	recoverFunc func(ctx context.Context, r interface{})
}

type Option func(*option)

// Recover is called with the recovered value before the panic is turned into an error
func Recover(f func(context.Context, interface{})) Option {
	return func(o *option) { o.recoverFunc = f }
}
