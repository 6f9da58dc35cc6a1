/*
Copyright 2026 The Legal Pedagogy Authors
SPDX-License-Identifier: Apache-2.0
*/

package thermometer

import "time"

// Progress describes one completed (judge, question) pair within a run
type Progress struct {
	// ModelName and Question identify the pair that just completed.
	ModelName string
	Question  string

	// Completed and Total count pairs, not samples.
	Completed int
	Total     int

	// CallsMade is the running count of judge invocations so far.
	CallsMade int

	// Elapsed is time since the run started; ETA is the estimated time
	// remaining, (Elapsed / Completed) × (Total - Completed).
	Elapsed time.Duration
	ETA     time.Duration

	// Distribution is the pair's finished distribution, for observers
	// that track sample-level outcomes. Observers must treat it as
	// read-only.
	Distribution *BeliefDistribution
}

// ProgressObserver receives a notification after each pair completes.
// Implementations are called from the single orchestrating goroutine, in
// pair-completion order.
type ProgressObserver interface {
	PairCompleted(Progress)
}

// ProgressFunc adapts a plain function to ProgressObserver
type ProgressFunc func(Progress)

// PairCompleted implements ProgressObserver
func (f ProgressFunc) PairCompleted(p Progress) {
	f(p)
}
