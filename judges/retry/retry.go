/*
Copyright 2026 The Legal Pedagogy Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package retry wraps judges with jittered exponential backoff so the
// thermometer's contract with a judge stays "eventually returns text or a
// terminal failure". Retry policy lives here, in the judge capability
// layer; the sampler's own failure tolerance never retries, so the two
// layers cannot double-count a failure.
package retry

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/chainguard-dev/clog"
)

// Config configures retry behavior for judge calls.
// This is particularly useful for handling rate limit and transient server errors.
type Config struct {
	// MaxRetries is the maximum number of retry attempts (default: 5)
	// 0 means do not retry at all.
	MaxRetries int
	// BaseBackoff is the initial backoff duration (default: 1s)
	BaseBackoff time.Duration
	// MaxBackoff is the maximum backoff duration (default: 60s)
	MaxBackoff time.Duration
	// MaxJitter is the maximum random jitter added to backoff (default: 500ms)
	MaxJitter time.Duration
}

// Validate checks that the retry configuration has valid values.
func (c Config) Validate() error {
	if c.MaxRetries < 0 {
		return errors.New("max retries cannot be negative")
	}
	if c.BaseBackoff < 0 {
		return errors.New("base backoff cannot be negative")
	}
	if c.MaxBackoff < 0 {
		return errors.New("max backoff cannot be negative")
	}
	if c.MaxJitter < 0 {
		return errors.New("max jitter cannot be negative")
	}
	return nil
}

// DefaultConfig returns a retry configuration suitable for quota and rate
// limit errors. Backoffs are longer than typical because quota-based rate
// limits often need more time to recover.
func DefaultConfig() Config {
	return Config{
		MaxRetries:  5,
		BaseBackoff: 1 * time.Second,
		MaxBackoff:  60 * time.Second,
		MaxJitter:   500 * time.Millisecond,
	}
}

// backoffFor computes the sleep before retry number attempt: exponential
// growth from BaseBackoff capped at MaxBackoff, plus random jitter so an
// entire panel hitting the same quota wall does not retry in lockstep.
func (c Config) backoffFor(attempt int) time.Duration {
	wait := min(c.BaseBackoff<<attempt, c.MaxBackoff)
	if c.MaxJitter > 0 {
		if n, err := rand.Int(rand.Reader, big.NewInt(int64(c.MaxJitter))); err == nil {
			wait += time.Duration(n.Int64())
		}
	}
	return wait
}

// WithBackoff runs fn until it succeeds, fails non-retryably, or exhausts
// cfg.MaxRetries. Only errors isRetryable classifies as transient are
// retried; the terminal error is wrapped with the operation label.
func WithBackoff[T any](ctx context.Context, cfg Config, operation string, isRetryable func(error) bool, fn func() (T, error)) (T, error) {
	log := clog.FromContext(ctx).With("operation", operation)
	var zero T

	for attempt := 0; ; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		if !isRetryable(err) {
			return zero, err
		}
		if attempt == cfg.MaxRetries {
			return zero, fmt.Errorf("%s failed after %d retries: %w", operation, cfg.MaxRetries, err)
		}

		wait := cfg.backoffFor(attempt)
		log.Warn("Transient judge error, retrying",
			"attempt", attempt+1,
			"max_retries", cfg.MaxRetries,
			"backoff", wait,
			"error", err.Error())

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(wait):
		}
	}
}
