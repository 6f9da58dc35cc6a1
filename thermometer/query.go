/*
Copyright 2026 The Legal Pedagogy Authors
SPDX-License-Identifier: Apache-2.0
*/

package thermometer

import (
	"context"
	"time"

	"github.com/chainguard-dev/clog"

	"github.com/professorwug/legal-pedagogy/judges"
)

// BeliefResponse is one sampled observation. Immutable once created.
type BeliefResponse struct {
	// RawResponse is the judge's full reply, or "ERROR: ..." when the
	// call failed.
	RawResponse string

	// NumericValue is the extracted in-range belief value; nil when the
	// response was unparseable or the call failed.
	NumericValue *float64

	// Timestamp is when the sample completed.
	Timestamp time.Time

	// Runtime is the wall-clock duration of the judge call, measured to
	// the failure point for failed calls.
	Runtime time.Duration
}

// Valid reports whether the response carries a parsed numeric value
func (r BeliefResponse) Valid() bool {
	return r.NumericValue != nil
}

// singleBeliefQuery performs exactly one judge invocation and never fails:
// judge errors (timeouts, transport failures, terminal retry exhaustion)
// are captured as an error-marker response with an absent numeric value, so
// every sample degrades the distribution's rejection rate instead of
// aborting the batch.
func singleBeliefQuery(ctx context.Context, question string, judge judges.Interface, minVal, maxVal float64) BeliefResponse {
	start := time.Now()

	raw, err := judge.Prompt(ctx, question)
	end := time.Now()

	resp := BeliefResponse{
		Timestamp: end,
		Runtime:   end.Sub(start),
	}
	if err != nil {
		clog.FromContext(ctx).With("judge", judge.Name()).
			With("error", err.Error()).
			Warn("Judge call failed, recording error marker")
		resp.RawResponse = "ERROR: " + err.Error()
		return resp
	}

	resp.RawResponse = raw
	if value, ok := ExtractNumericValue(raw, minVal, maxVal); ok {
		resp.NumericValue = &value
	}
	return resp
}
