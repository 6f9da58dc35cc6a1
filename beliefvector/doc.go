/*
Copyright 2026 The Legal Pedagogy Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package beliefvector turns extracted legal arguments and character
// rubric attributes into belief questions, and runs the thermometer over
// them to produce per-judge belief vectors.
//
// The package does not extract arguments itself: argument trees arrive as
// JSON from an upstream extraction step, and question sets leave as JSON
// for later runs. It sits strictly on top of the thermometer's public
// API.
package beliefvector
