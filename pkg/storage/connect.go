package storage

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"arealookup/pkg/logger"
)

// Connect calls New until it succeeds, at most maxRetries extra attempts with an
// exponential interval starting from 500ms
func Connect(ctx context.Context, maxRetries uint64, opts ...Option) (*DB, error) {
	var db *DB
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = 0
	err := backoff.RetryNotify(func() error {
		var err error
		db, err = New(ctx, opts...)
		return err
	}, backoff.WithContext(backoff.WithMaxRetries(policy, maxRetries), ctx),
		func(err error, next time.Duration) {
			logger.From(ctx).Warn("connect to database failed",
				zap.Duration("retry_after", next), zap.Error(err))
		})
	if err != nil {
		return nil, err
	}
	return db, nil
}
