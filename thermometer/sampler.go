/*
Copyright 2026 The Legal Pedagogy Authors
SPDX-License-Identifier: Apache-2.0
*/

package thermometer

import (
	"context"
	"sync"

	"github.com/chainguard-dev/clog"
	"golang.org/x/sync/errgroup"

	"github.com/professorwug/legal-pedagogy/judges"
)

// MonteCarloBeliefOf collects cfg.NSamples independent samples of judge's
// belief about question, with at most cfg.MaxWorkers judge calls in flight
// at once. The returned slice is in completion order, which carries no
// positional meaning.
//
// The call is a synchronization barrier: every launched sample is accounted
// for before it returns, either as a recorded response or as a logged drop.
// A panic inside a sample worker is recovered and logged, and that one
// sample is dropped; the remaining in-flight samples continue. Losing all
// N samples still returns an empty, valid slice.
//
// Cancelling ctx is respected at the query level: samples not yet started
// are dropped, and in-flight judge calls observe the cancellation and come
// back as error-marker responses.
func MonteCarloBeliefOf(ctx context.Context, question string, judge judges.Interface, cfg Config) []BeliefResponse {
	log := clog.FromContext(ctx)

	responses := make([]BeliefResponse, 0, cfg.NSamples)
	var mu sync.Mutex

	g := new(errgroup.Group)
	g.SetLimit(cfg.MaxWorkers)

	for i := 0; i < cfg.NSamples; i++ {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					log.With("judge", judge.Name()).
						With("panic", r).
						Error("Sample query panicked, dropping sample")
				}
			}()

			if err := ctx.Err(); err != nil {
				log.With("judge", judge.Name()).
					With("error", err.Error()).
					Warn("Context cancelled, dropping sample")
				return nil
			}

			resp := singleBeliefQuery(ctx, question, judge, cfg.MinVal, cfg.MaxVal)

			mu.Lock()
			responses = append(responses, resp)
			mu.Unlock()
			return nil
		})
	}

	// Workers never return errors; the Wait is the barrier.
	_ = g.Wait()

	return responses
}
