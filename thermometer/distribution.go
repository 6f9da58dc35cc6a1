/*
Copyright 2026 The Legal Pedagogy Authors
SPDX-License-Identifier: Apache-2.0
*/

package thermometer

import "math"

// BeliefDistribution owns the sampled responses for one (judge, question)
// pair. Statistics are recomputed on read over the valid responses only,
// and report 0.0 rather than NaN or an error when no valid responses
// exist. Response ordering is completion order and carries no positional
// meaning.
type BeliefDistribution struct {
	modelName string
	question  string
	responses []BeliefResponse
}

// NewBeliefDistribution wraps responses for the given pair. The
// distribution takes ownership of the slice.
func NewBeliefDistribution(modelName, question string, responses []BeliefResponse) *BeliefDistribution {
	return &BeliefDistribution{
		modelName: modelName,
		question:  question,
		responses: responses,
	}
}

// ModelName returns the judge name this distribution belongs to
func (d *BeliefDistribution) ModelName() string {
	return d.modelName
}

// Question returns the original, uncontextualized question text
func (d *BeliefDistribution) Question() string {
	return d.question
}

// Responses returns the raw responses in completion order.
// The returned slice is a copy.
func (d *BeliefDistribution) Responses() []BeliefResponse {
	out := make([]BeliefResponse, len(d.responses))
	copy(out, d.responses)
	return out
}

// Values returns the parsed numeric values of the valid responses
func (d *BeliefDistribution) Values() []float64 {
	values := make([]float64, 0, len(d.responses))
	for _, r := range d.responses {
		if r.NumericValue != nil {
			values = append(values, *r.NumericValue)
		}
	}
	return values
}

// ValidCount returns how many responses parsed into an in-range value
func (d *BeliefDistribution) ValidCount() int {
	n := 0
	for _, r := range d.responses {
		if r.NumericValue != nil {
			n++
		}
	}
	return n
}

// TotalCount returns the total number of responses, valid or not
func (d *BeliefDistribution) TotalCount() int {
	return len(d.responses)
}

// RejectionRate returns the fraction of responses that could not be parsed.
// An empty distribution has a rejection rate of 1.0.
func (d *BeliefDistribution) RejectionRate() float64 {
	if len(d.responses) == 0 {
		return 1.0
	}
	return 1.0 - float64(d.ValidCount())/float64(d.TotalCount())
}

// Mean returns the mean of the valid values, or 0.0 when there are none
func (d *BeliefDistribution) Mean() float64 {
	values := d.Values()
	if len(values) == 0 {
		return 0.0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Variance returns the population variance of the valid values.
// Fewer than two valid values yield 0.0.
func (d *BeliefDistribution) Variance() float64 {
	values := d.Values()
	if len(values) < 2 {
		return 0.0
	}
	mean := d.Mean()
	var sum float64
	for _, v := range values {
		diff := v - mean
		sum += diff * diff
	}
	return sum / float64(len(values))
}

// Std returns the standard deviation of the valid values
func (d *BeliefDistribution) Std() float64 {
	return math.Sqrt(d.Variance())
}
