package dbx

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sethvargo/go-retry"
	"github.com/snipvault/snipvault/internal/common"
)

const maxStoreRetries = 3

// IsRetryable reports whether err indicates the store was unavailable and
// the operation can be safely reissued: the driver lost the connection
// before the statement took effect.
func IsRetryable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	return pgconn.SafeToRetry(err)
}

// WithStoreRetry runs fn, retrying up to maxStoreRetries times with
// fibonacci backoff when the failure is a transient store outage. Exhausted
// retries surface as common.ErrorTransientStore so callers can apply their
// own backoff. Non-transient errors pass through untouched on the first
// attempt.
func WithStoreRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	b := retry.WithMaxRetries(maxStoreRetries, retry.NewFibonacci(50*time.Millisecond))
	return retry.Do(ctx, b, func(ctx context.Context) error {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if IsRetryable(err) {
			return retry.RetryableError(fmt.Errorf("%w: %v", common.ErrorTransientStore, err))
		}
		return err
	})
}
