/*
Copyright 2026 The Legal Pedagogy Authors
SPDX-License-Identifier: Apache-2.0
*/

package beliefvector

import (
	"context"
	"errors"
	"fmt"

	"github.com/professorwug/legal-pedagogy/judges"
	"github.com/professorwug/legal-pedagogy/thermometer"
)

// DefaultArgumentPrompt asks a judge to rate agreement with one argument.
// Callers with their own phrasing pass it to Generate directly.
const DefaultArgumentPrompt = "On a scale from 0 to 1, how much do you agree with the following argument? Respond with a single number."

// Request bundles the inputs of one belief-vector run
type Request struct {
	// Prompt is prepended to every argument to form its question.
	Prompt string

	// Arguments is the extracted argument hierarchy.
	Arguments []Argument

	// CharacterQuestions are optional advocate-character questions
	// measured alongside the argument questions.
	CharacterQuestions []CharacterQuestion

	// Context is the shared context prefix, e.g. an oral-argument
	// transcript. May be empty.
	Context string

	// Config tunes the thermometer; zero value means defaults.
	Config thermometer.Config
}

// Generate measures a belief vector: every argument question and character
// question against every judge in panel, in order. The returned results
// are keyed by the full question text.
func Generate(ctx context.Context, req Request, panel []judges.Interface, opts ...thermometer.Option) (*thermometer.BeliefResults, error) {
	if len(req.Arguments) == 0 && len(req.CharacterQuestions) == 0 {
		return nil, errors.New("no arguments or character questions to measure")
	}

	prompt := req.Prompt
	if prompt == "" {
		prompt = DefaultArgumentPrompt
	}

	questions := Questions(prompt, req.Arguments)
	questions = append(questions, QuestionTexts(req.CharacterQuestions)...)

	cfg := req.Config
	if cfg == (thermometer.Config{}) {
		cfg = thermometer.DefaultConfig()
	}

	t, err := thermometer.New(cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("building thermometer: %w", err)
	}
	return t.Measure(ctx, questions, req.Context, panel)
}
