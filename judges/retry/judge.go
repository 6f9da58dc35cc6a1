/*
Copyright 2026 The Legal Pedagogy Authors
SPDX-License-Identifier: Apache-2.0
*/

package retry

import (
	"context"
	"strings"

	"github.com/professorwug/legal-pedagogy/judges"
)

// retryingJudge decorates a judge with WithBackoff around every Prompt call
type retryingJudge struct {
	inner       judges.Interface
	op          string
	cfg         Config
	isRetryable func(error) bool
}

// Judge wraps inner so transient Prompt failures are retried with jittered
// exponential backoff before the error is surfaced as terminal. A nil
// isRetryable falls back to IsTransient.
func Judge(inner judges.Interface, cfg Config, isRetryable func(error) bool) (judges.Interface, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if isRetryable == nil {
		isRetryable = IsTransient
	}
	return &retryingJudge{
		inner:       inner,
		op:          "prompt_" + inner.Name(),
		cfg:         cfg,
		isRetryable: isRetryable,
	}, nil
}

// Name implements judges.Interface
func (r *retryingJudge) Name() string {
	return r.inner.Name()
}

// Prompt implements judges.Interface
func (r *retryingJudge) Prompt(ctx context.Context, text string) (string, error) {
	return WithBackoff(ctx, r.cfg, r.op, r.isRetryable, func() (string, error) {
		return r.inner.Prompt(ctx, text)
	})
}

// IsTransient classifies rate limit, quota exhaustion, and transient server
// errors as retryable, across the provider SDKs' error formats.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "503") ||
		strings.Contains(errStr, "504") ||
		strings.Contains(errStr, "529") ||
		strings.Contains(errStr, "RESOURCE_EXHAUSTED") ||
		strings.Contains(errStr, "Resource exhausted") ||
		strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "rate_limit") ||
		strings.Contains(errStr, "Overloaded") ||
		strings.Contains(errStr, "overloaded_error") ||
		strings.Contains(errStr, "quota exceeded") ||
		strings.Contains(errStr, "server error")
}
