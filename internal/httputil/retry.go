// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across gateways.
package httputil

import (
	"context"
	"time"
)

// RetryDelay is the fixed pause between retry attempts. Tests override this
// to avoid real sleeps.
var RetryDelay = 60 * time.Second

const defaultMaxAttempts = 10

// Retry runs fn up to maxAttempts times with a fixed RetryDelay pause between
// attempts. Every failure counts against the budget regardless of cause; the
// deep-research APIs this guards fail as often on capacity as on rate limits,
// so no backoff curve is applied.
//
// When maxAttempts is 0 the default (10) is used. The first success returns
// nil immediately. If the context is cancelled during a pause, Retry returns
// ctx.Err(). After exhausting attempts the last error is returned.
func Retry(ctx context.Context, maxAttempts int, fn func() error) error {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if attempt == maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(RetryDelay):
		}
	}

	return lastErr
}
