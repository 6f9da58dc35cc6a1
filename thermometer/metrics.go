/*
Copyright 2026 The Legal Pedagogy Authors
SPDX-License-Identifier: Apache-2.0
*/

package thermometer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Global metrics with consistent dimensions
	pairCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "thermometer_pairs_completed_total",
			Help: "Total number of (judge, question) pairs measured",
		},
		[]string{"judge", "namespace"},
	)

	sampleCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "thermometer_samples_total",
			Help: "Total number of belief samples collected",
		},
		[]string{"judge", "namespace", "outcome"},
	)

	rejectionGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "thermometer_rejection_rate",
			Help: "Most recent rejection rate per judge (0.0-1.0)",
		},
		[]string{"judge", "namespace"},
	)
)

// MetricsObserver implements ProgressObserver with Prometheus metrics.
// The namespace label separates concurrent measurement campaigns sharing
// one process.
type MetricsObserver struct {
	namespace string
}

// NewMetricsObserver creates a metrics observer for the given namespace
func NewMetricsObserver(namespace string) *MetricsObserver {
	return &MetricsObserver{namespace: namespace}
}

// PairCompleted implements ProgressObserver
func (m *MetricsObserver) PairCompleted(p Progress) {
	labels := prometheus.Labels{"judge": p.ModelName, "namespace": m.namespace}
	pairCounter.With(labels).Inc()

	if p.Distribution != nil {
		valid := p.Distribution.ValidCount()
		rejected := p.Distribution.TotalCount() - valid
		sampleCounter.With(prometheus.Labels{
			"judge": p.ModelName, "namespace": m.namespace, "outcome": "valid",
		}).Add(float64(valid))
		sampleCounter.With(prometheus.Labels{
			"judge": p.ModelName, "namespace": m.namespace, "outcome": "rejected",
		}).Add(float64(rejected))
		rejectionGauge.With(labels).Set(p.Distribution.RejectionRate())
	}
}
