/*
Copyright 2026 The Legal Pedagogy Authors
SPDX-License-Identifier: Apache-2.0
*/

package thermometer

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsObserver(t *testing.T) {
	t.Parallel()
	// Unique namespace so parallel tests sharing the global collectors
	// cannot interfere.
	obs := NewMetricsObserver("metrics-observer-test")

	dist := NewBeliefDistribution("holmes", "q", []BeliefResponse{
		validResponse(0.4),
		validResponse(0.6),
		invalidResponse("refusal"),
	})
	obs.PairCompleted(Progress{ModelName: "holmes", Question: "q", Distribution: dist})
	obs.PairCompleted(Progress{ModelName: "holmes", Question: "q2", Distribution: dist})

	labels := prometheus.Labels{"judge": "holmes", "namespace": "metrics-observer-test"}
	if got := testutil.ToFloat64(pairCounter.With(labels)); got != 2 {
		t.Errorf("pairs counter = %v, want 2", got)
	}
	validLabels := prometheus.Labels{"judge": "holmes", "namespace": "metrics-observer-test", "outcome": "valid"}
	if got := testutil.ToFloat64(sampleCounter.With(validLabels)); got != 4 {
		t.Errorf("valid samples counter = %v, want 4", got)
	}
	rejectedLabels := prometheus.Labels{"judge": "holmes", "namespace": "metrics-observer-test", "outcome": "rejected"}
	if got := testutil.ToFloat64(sampleCounter.With(rejectedLabels)); got != 2 {
		t.Errorf("rejected samples counter = %v, want 2", got)
	}
	if got := testutil.ToFloat64(rejectionGauge.With(labels)); got != dist.RejectionRate() {
		t.Errorf("rejection gauge = %v, want %v", got, dist.RejectionRate())
	}
}

func TestMetricsObserverNilDistribution(t *testing.T) {
	t.Parallel()
	obs := NewMetricsObserver("metrics-nil-test")
	// Must not panic on a progress event without a distribution.
	obs.PairCompleted(Progress{ModelName: "holmes"})
}
