/*
Copyright 2026 The Legal Pedagogy Authors
SPDX-License-Identifier: Apache-2.0
*/

package judges

import "context"

// Interface is the contract every judge implementation satisfies.
//
// Prompt sends the full prompt text (any shared context is already
// concatenated by the caller) and returns the raw completion text, or an
// error once the provider considers the failure terminal. Implementations
// must honor ctx cancellation.
type Interface interface {
	// Name returns the stable identifier results are keyed by.
	Name() string

	// Prompt sends text to the underlying model and returns its response.
	Prompt(ctx context.Context, text string) (string, error)
}
