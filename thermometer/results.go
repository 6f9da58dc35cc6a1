/*
Copyright 2026 The Legal Pedagogy Authors
SPDX-License-Identifier: Apache-2.0
*/

package thermometer

import "time"

// BeliefResults is the two-level store of distributions keyed by judge name
// and then by question text. It is populated by a single Measure run and
// handed to callers as a read-only view afterwards; the engine never
// mutates it once Measure returns.
//
// At most one distribution exists per (judge, question) key; re-adding the
// same key overwrites rather than merges. Duplicate question text across
// distinct semantic intents is tolerated but collapses onto one key.
type BeliefResults struct {
	// RunID uniquely identifies the measurement run that produced these
	// results, for downstream exporters.
	RunID string

	// StartedAt is when the run began.
	StartedAt time.Time

	results map[string]map[string]*BeliefDistribution

	// first-insertion orders, so listing is deterministic across runs
	modelOrder    []string
	questionOrder []string
	questionSeen  map[string]bool
}

// NewBeliefResults creates an empty results store
func NewBeliefResults() *BeliefResults {
	return &BeliefResults{
		results:      make(map[string]map[string]*BeliefDistribution),
		questionSeen: make(map[string]bool),
	}
}

// Add inserts a distribution under (modelName, question), overwriting any
// previous entry for the same key.
func (r *BeliefResults) Add(modelName, question string, dist *BeliefDistribution) {
	if _, ok := r.results[modelName]; !ok {
		r.results[modelName] = make(map[string]*BeliefDistribution)
		r.modelOrder = append(r.modelOrder, modelName)
	}
	r.results[modelName][question] = dist
	if !r.questionSeen[question] {
		r.questionSeen[question] = true
		r.questionOrder = append(r.questionOrder, question)
	}
}

// Get returns the distribution for (modelName, question), or false when
// the pair was never measured.
func (r *BeliefResults) Get(modelName, question string) (*BeliefDistribution, bool) {
	byQuestion, ok := r.results[modelName]
	if !ok {
		return nil, false
	}
	dist, ok := byQuestion[question]
	return dist, ok
}

// ModelResults returns all distributions for one judge, keyed by question.
// The returned map is a copy.
func (r *BeliefResults) ModelResults(modelName string) map[string]*BeliefDistribution {
	out := make(map[string]*BeliefDistribution, len(r.results[modelName]))
	for q, dist := range r.results[modelName] {
		out[q] = dist
	}
	return out
}

// QuestionResults returns every judge's distribution for one question,
// keyed by judge name. Judges that never saw the question are absent.
func (r *BeliefResults) QuestionResults(question string) map[string]*BeliefDistribution {
	out := make(map[string]*BeliefDistribution)
	for model, byQuestion := range r.results {
		if dist, ok := byQuestion[question]; ok {
			out[model] = dist
		}
	}
	return out
}

// ModelNames returns every judge name encountered, in first-insertion order
func (r *BeliefResults) ModelNames() []string {
	out := make([]string, len(r.modelOrder))
	copy(out, r.modelOrder)
	return out
}

// Questions returns every distinct question encountered, in first-insertion order
func (r *BeliefResults) Questions() []string {
	out := make([]string, len(r.questionOrder))
	copy(out, r.questionOrder)
	return out
}
