package utils

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// Retry runs op up to attempts times with exponential backoff starting at
// initial. Returning backoff.Permanent(err) from op stops early.
func Retry(ctx context.Context, attempts uint, initial time.Duration, op func() error) error {
	if attempts == 0 {
		attempts = 1
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = initial
	b.MaxInterval = 2 * time.Second

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		return struct{}{}, op()
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(attempts),
		backoff.WithMaxElapsedTime(10*time.Second),
	)
	return err
}
