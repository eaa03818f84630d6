package routine

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"arealookup/pkg/logger"
)

func TestNewGroup(t *testing.T) {
	testList := []struct {
		name     string
		input    []func(ctx context.Context) error
		expected bool
	}{
		{
			name: "error",
			input: []func(ctx context.Context) error{
				func(ctx context.Context) error {
					return nil
				},
				func(ctx context.Context) error {
					return errors.New("error")
				},
			},
			expected: true,
		},
		{
			name: "panic",
			input: []func(ctx context.Context) error{
				func(ctx context.Context) error {
					return nil
				},
				func(ctx context.Context) error {
					panic("panic")
				},
			},
			expected: true,
		},
		{
			name: "nil",
			input: []func(ctx context.Context) error{
				func(ctx context.Context) error {
					return nil
				},
				func(ctx context.Context) error {
					return nil
				},
			},
			expected: false,
		},
	}
	for _, data := range testList {
		t.Run(data.name, func(t *testing.T) {
			g := NewGroup(context.Background(), Recover(nil))
			for _, f := range data.input {
				g.Go(f)
			}
			if data.expected {
				assert.Error(t, g.Wait())
			} else {
				assert.NoError(t, g.Wait())
			}
		})
	}
}

func TestErrGroupCancel(t *testing.T) {
	g := NewGroup(context.Background())
	g.Go(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	g.Go(func(ctx context.Context) error {
		return errors.New("stop")
	})
	assert.EqualError(t, g.Wait(), "stop")
}

func TestRecoverLogged(t *testing.T) {
	var buf bytes.Buffer
	ctx := logger.With(context.Background(), logger.New(logger.WithWriter(&buf)))
	g := NewGroup(ctx)
	g.Go(func(ctx context.Context) error {
		panic("boom")
	})
	assert.EqualError(t, g.Wait(), "panic: boom")
	assert.Contains(t, buf.String(), "goroutine panic")
}
