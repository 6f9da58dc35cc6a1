/*
Copyright 2026 The Legal Pedagogy Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package report renders BeliefResults for humans and spreadsheets: a
// markdown summary table per run and a flat CSV for downstream analysis.
// It consumes only the read API; nothing here mutates results.
package report

import (
	"fmt"

	"github.com/professorwug/legal-pedagogy/thermometer"
)

// Row is one (judge, question) summary line
type Row struct {
	Judge         string
	Question      string
	Mean          float64
	Std           float64
	ValidCount    int
	TotalCount    int
	RejectionRate float64
}

// Summarize flattens results into rows, judges in encounter order, each
// judge's questions in encounter order. Pairs a judge never saw are
// skipped.
func Summarize(results *thermometer.BeliefResults) []Row {
	rows := make([]Row, 0, len(results.ModelNames())*len(results.Questions()))
	for _, judge := range results.ModelNames() {
		for _, question := range results.Questions() {
			dist, ok := results.Get(judge, question)
			if !ok {
				continue
			}
			rows = append(rows, Row{
				Judge:         judge,
				Question:      question,
				Mean:          dist.Mean(),
				Std:           dist.Std(),
				ValidCount:    dist.ValidCount(),
				TotalCount:    dist.TotalCount(),
				RejectionRate: dist.RejectionRate(),
			})
		}
	}
	return rows
}

// truncate shortens long question text for table display
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return fmt.Sprintf("%s...", s[:max-3])
}
