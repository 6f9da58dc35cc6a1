/*
Copyright 2026 The Legal Pedagogy Authors
SPDX-License-Identifier: Apache-2.0
*/

package judges

import (
	"context"
	"sync/atomic"
	"time"
)

// Mock is a deterministic judge for tests. It cycles through Responses,
// counting calls atomically so it can be shared across concurrent samplers.
//
// The zero value answers every prompt with "0.5".
type Mock struct {
	// NameValue is the judge name; defaults to "mock-judge".
	NameValue string

	// Responses are cycled in call order. Empty means always "0.5".
	Responses []string

	// Err, when set, makes every Prompt return Err instead of a response.
	Err error

	// Delay is slept (context-aware) before answering, to exercise
	// concurrency and cancellation paths.
	Delay time.Duration

	// Script, when set, overrides all of the above: it receives the
	// 1-based call number and the prompt text and produces the reply.
	// Scripts may panic to simulate harness bugs.
	Script func(call int64, text string) (string, error)

	calls atomic.Int64
}

// Name implements Interface
func (m *Mock) Name() string {
	if m.NameValue == "" {
		return "mock-judge"
	}
	return m.NameValue
}

// Prompt implements Interface
func (m *Mock) Prompt(ctx context.Context, text string) (string, error) {
	call := m.calls.Add(1)

	if m.Delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(m.Delay):
		}
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if m.Script != nil {
		return m.Script(call, text)
	}
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Responses) == 0 {
		return "0.5", nil
	}
	return m.Responses[(call-1)%int64(len(m.Responses))], nil
}

// Calls returns how many times Prompt has been invoked
func (m *Mock) Calls() int64 {
	return m.calls.Load()
}
