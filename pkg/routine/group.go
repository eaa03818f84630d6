package routine

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"arealookup/pkg/logger"
)

// ErrGroup cancels its context on the first error or panic, Wait returns that error
type ErrGroup struct {
	waitGroup sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	errOnce   sync.Once
	err       error
	option
}

// NewGroup starts a recoverable goroutine ErrGroup with a context.
func NewGroup(ctx context.Context, opts ...Option) *ErrGroup {
	newCtx, cancel := context.WithCancel(ctx)

	g := &ErrGroup{
		ctx:    newCtx,
		cancel: cancel,
		option: option{recoverFunc: defaultRecoverGoroutine},
	}
	for _, o := range opts {
		o(&g.option)
	}
	return g
}

// Go starts a recoverable goroutine with a context.
func (e *ErrGroup) Go(goroutine func(context.Context) error) {
	e.waitGroup.Add(1)
	go func() {
		var err error
		defer func() {
			if r := recover(); r != nil {
				if e.recoverFunc != nil {
					e.recoverFunc(e.ctx, r)
				}
				err = fmt.Errorf("panic: %v", r)
			}
			if err != nil {
				e.errOnce.Do(func() {
					e.err = err
					e.cancel()
				})
			}
			e.waitGroup.Done()
		}()
		err = goroutine(e.ctx)
	}()
}

// Wait blocks until every goroutine returned
func (e *ErrGroup) Wait() error {
	e.waitGroup.Wait()
	e.cancel()
	return e.err
}

func defaultRecoverGoroutine(ctx context.Context, r interface{}) {
	logger.From(ctx).Error("goroutine panic",
		zap.Any("recover", r), zap.ByteString("stack", debug.Stack()))
}
