/*
Copyright 2026 The Legal Pedagogy Authors
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/professorwug/legal-pedagogy/thermometer"
)

// csvHeader is the column layout of both CSV exports
var csvHeader = []string{
	"run_id", "judge", "question",
	"mean", "variance", "std",
	"valid_count", "total_count", "rejection_rate",
}

// WriteCSV writes one summary line per (judge, question) pair to w
func WriteCSV(w io.Writer, results *thermometer.BeliefResults) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, judge := range results.ModelNames() {
		for _, question := range results.Questions() {
			dist, ok := results.Get(judge, question)
			if !ok {
				continue
			}
			record := []string{
				results.RunID,
				judge,
				question,
				formatFloat(dist.Mean()),
				formatFloat(dist.Variance()),
				formatFloat(dist.Std()),
				strconv.Itoa(dist.ValidCount()),
				strconv.Itoa(dist.TotalCount()),
				formatFloat(dist.RejectionRate()),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("writing CSV record: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSamplesCSV writes every raw sample, one line each, for callers that
// want the full distributions rather than the aggregates.
func WriteSamplesCSV(w io.Writer, results *thermometer.BeliefResults) error {
	cw := csv.NewWriter(w)
	header := []string{"run_id", "judge", "question", "value", "valid", "runtime_s", "raw_response"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, judge := range results.ModelNames() {
		for _, question := range results.Questions() {
			dist, ok := results.Get(judge, question)
			if !ok {
				continue
			}
			for _, resp := range dist.Responses() {
				value := ""
				if resp.NumericValue != nil {
					value = formatFloat(*resp.NumericValue)
				}
				record := []string{
					results.RunID,
					judge,
					question,
					value,
					strconv.FormatBool(resp.Valid()),
					formatFloat(resp.Runtime.Seconds()),
					resp.RawResponse,
				}
				if err := cw.Write(record); err != nil {
					return fmt.Errorf("writing CSV record: %w", err)
				}
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 6, 64)
}
