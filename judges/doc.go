/*
Copyright 2026 The Legal Pedagogy Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package judges defines the judge capability consumed by the thermometer:
// a named, black-box text-completion oracle queried for belief values.
//
// The thermometer depends only on Interface. Concrete providers wrap the
// Anthropic, Google GenAI, OpenAI, and Ollama client libraries as thin
// single-turn prompt calls; Mock provides a deterministic judge for tests.
//
// Judges are constructed once by the caller and passed into the engine as
// explicit arguments. There is no process-wide default judge: call sites
// that need one receive it via dependency injection, typically from a
// Config or a YAML roster loaded at process start.
//
// # Thread Safety
//
// Every provider in this package is safe for concurrent use: the engine
// invokes Prompt from many goroutines against a shared judge instance, so
// implementations hold no mutable per-call state beyond their client's own
// connection handling.
package judges
