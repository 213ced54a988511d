// Package fallback races a read against a deadline and substitutes a default value.
package fallback

import (
	"context"
	"time"
)

// WithTimeout runs fn with a context that expires after d. If fn fails or the
// deadline passes first, it returns def together with the cause so callers can log it.
// fn keeps running in the background after a timeout; it must honor ctx.
func WithTimeout[T any](ctx context.Context, d time.Duration, fn func(context.Context) (T, error), def T) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	type result struct {
		val T
		err error
	}
	done := make(chan result, 1)

	go func() {
		v, err := fn(ctx)
		done <- result{val: v, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return def, r.err
		}
		return r.val, nil
	case <-ctx.Done():
		return def, ctx.Err()
	}
}
