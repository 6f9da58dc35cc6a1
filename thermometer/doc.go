/*
Copyright 2026 The Legal Pedagogy Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package thermometer measures belief distributions: it repeatedly asks a
// panel of judges the same questions under shared context, extracts a
// bounded numeric belief value from each free-text response, and
// aggregates the samples into per-(judge, question) distributions.
//
// # Overview
//
//   - ExtractNumericValue parses a raw response into an in-range value.
//   - MonteCarloBeliefOf gathers N concurrent samples for one pair.
//   - Thermometer.Measure walks judges × questions and assembles a
//     BeliefResults, reporting progress after each pair.
//
// Individual sample failures never abort a run: a failed judge call is
// recorded as an unparseable response and only degrades the pair's
// rejection rate. Callers must check BeliefDistribution.RejectionRate
// before trusting Mean or Variance.
//
// The engine treats judges as borrowed, read-only references and assumes a
// judge's Prompt method is safely reentrant from concurrent callers.
package thermometer
