/*
Copyright 2026 The Legal Pedagogy Authors
SPDX-License-Identifier: Apache-2.0
*/

package thermometer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chainguard-dev/clog"
	"github.com/google/uuid"

	"github.com/professorwug/legal-pedagogy/judges"
)

// Config configures one measurement run
type Config struct {
	// NSamples is the number of Monte Carlo samples per (judge, question)
	// pair (default: 20)
	NSamples int
	// MinVal is the lower bound of the valid belief range (default: 0.0)
	MinVal float64
	// MaxVal is the upper bound of the valid belief range (default: 1.0)
	MaxVal float64
	// MaxWorkers caps simultaneous in-flight judge calls per pair (default: 8)
	MaxWorkers int
}

// DefaultConfig returns the recognized default configuration
func DefaultConfig() Config {
	return Config{
		NSamples:   20,
		MinVal:     0.0,
		MaxVal:     1.0,
		MaxWorkers: 8,
	}
}

// Validate checks that the configuration has valid values.
// These are the fatal configuration errors: they surface before any work
// begins.
func (c Config) Validate() error {
	if c.NSamples <= 0 {
		return fmt.Errorf("n_samples must be positive, got %d", c.NSamples)
	}
	if c.MaxWorkers <= 0 {
		return fmt.Errorf("max_workers must be positive, got %d", c.MaxWorkers)
	}
	if c.MinVal > c.MaxVal {
		return fmt.Errorf("min_val %f exceeds max_val %f", c.MinVal, c.MaxVal)
	}
	return nil
}

// Thermometer orchestrates belief measurement over a judge panel. It holds
// no state across runs: every Measure call is a fresh run producing a
// fresh BeliefResults.
type Thermometer struct {
	cfg       Config
	observers []ProgressObserver
}

// Option is a functional option for configuring a Thermometer
type Option func(*Thermometer) error

// WithObserver registers an additional progress observer.
// Observers are notified after each (judge, question) pair completes; they
// are observability only and must not affect results.
func WithObserver(obs ProgressObserver) Option {
	return func(t *Thermometer) error {
		if obs == nil {
			return errors.New("observer cannot be nil")
		}
		t.observers = append(t.observers, obs)
		return nil
	}
}

// New creates a Thermometer, validating cfg before any work can begin
func New(cfg Config, opts ...Option) (*Thermometer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	t := &Thermometer{cfg: cfg}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return t, nil
}

// contextualize builds the prompt sent to judges. The stored result keys
// remain the question as given, never the context-prefixed variant.
func contextualize(contextText, question string) string {
	trimmed := strings.TrimSpace(contextText)
	if trimmed == "" {
		return question
	}
	return trimmed + "\n\n" + question
}

// Measure walks the cross product of panel × questions, judges outer and
// questions inner, both in caller order, sampling each pair and storing
// its distribution. Total judge invocations are
// len(panel) × len(questions) × NSamples.
//
// An empty panel or question list yields an empty result set, not an
// error. Cancelling ctx stops the run between pairs and returns the
// partial results alongside the context error.
func (t *Thermometer) Measure(ctx context.Context, questions []string, contextText string, panel []judges.Interface) (*BeliefResults, error) {
	log := clog.FromContext(ctx)

	results := NewBeliefResults()
	results.RunID = uuid.NewString()
	results.StartedAt = time.Now()

	contextualized := make([]string, len(questions))
	for i, q := range questions {
		contextualized[i] = contextualize(contextText, q)
	}

	totalTasks := len(questions) * len(panel)
	completed := 0
	callsMade := 0
	start := time.Now()

	log.With("run_id", results.RunID).
		With("judges", len(panel)).
		With("questions", len(questions)).
		With("n_samples", t.cfg.NSamples).
		Info("Measuring beliefs")

	for _, judge := range panel {
		for i, question := range questions {
			if err := ctx.Err(); err != nil {
				log.With("completed", completed).With("total", totalTasks).
					Warn("Measurement cancelled, returning partial results")
				return results, err
			}

			responses := MonteCarloBeliefOf(ctx, contextualized[i], judge, t.cfg)
			dist := NewBeliefDistribution(judge.Name(), question, responses)
			results.Add(judge.Name(), question, dist)

			completed++
			callsMade += t.cfg.NSamples
			elapsed := time.Since(start)
			avgPerTask := elapsed / time.Duration(completed)
			eta := avgPerTask * time.Duration(totalTasks-completed)

			progress := Progress{
				ModelName:    judge.Name(),
				Question:     question,
				Completed:    completed,
				Total:        totalTasks,
				CallsMade:    callsMade,
				Elapsed:      elapsed,
				ETA:          eta,
				Distribution: dist,
			}
			log.With("completed", completed).
				With("total", totalTasks).
				With("calls_made", callsMade).
				With("eta", eta.Round(100*time.Millisecond)).
				Info("Belief pair measured")
			for _, obs := range t.observers {
				obs.PairCompleted(progress)
			}
		}
	}

	return results, nil
}

// Thermo is the one-call entry point: it measures questions against panel
// under contextText with cfg, using default progress reporting only.
func Thermo(ctx context.Context, questions []string, contextText string, panel []judges.Interface, cfg Config) (*BeliefResults, error) {
	t, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return t.Measure(ctx, questions, contextText, panel)
}
