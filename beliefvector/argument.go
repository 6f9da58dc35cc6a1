/*
Copyright 2026 The Legal Pedagogy Authors
SPDX-License-Identifier: Apache-2.0
*/

package beliefvector

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Side identifies which party advanced an argument
type Side string

const (
	// Petitioner is the party bringing the case.
	Petitioner Side = "petitioner"
	// Respondent is the party answering it.
	Respondent Side = "respondent"
)

// Argument is one node of an extracted argument hierarchy
type Argument struct {
	// Text is the argument as stated in the brief.
	Text string `json:"argument"`

	// SubArguments are the supporting points nested under this one.
	SubArguments []Argument `json:"sub_arguments,omitempty"`

	// Side is the party that advanced the argument.
	Side Side `json:"type"`
}

// UnmarshalJSON accepts both shapes of sub_arguments found in extraction
// output: bare strings (the common case) and nested argument objects.
// Marshalling always writes the object form.
func (a *Argument) UnmarshalJSON(data []byte) error {
	var raw struct {
		Text         string            `json:"argument"`
		SubArguments []json.RawMessage `json:"sub_arguments"`
		Side         Side              `json:"type"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.Text = raw.Text
	a.Side = raw.Side
	a.SubArguments = nil
	for _, sub := range raw.SubArguments {
		var text string
		if err := json.Unmarshal(sub, &text); err == nil {
			a.SubArguments = append(a.SubArguments, Argument{Text: text})
			continue
		}
		var nested Argument
		if err := json.Unmarshal(sub, &nested); err != nil {
			return fmt.Errorf("parsing sub_argument: %w", err)
		}
		a.SubArguments = append(a.SubArguments, nested)
	}
	return nil
}

// QuestionText renders the argument as a belief question: the prompt, then
// the argument text, then the immediate sub-argument texts, space joined.
func (a Argument) QuestionText(prompt string) string {
	parts := []string{a.Text}
	for _, sub := range a.SubArguments {
		parts = append(parts, sub.Text)
	}
	full := strings.Join(parts, " ")
	return strings.TrimSpace(prompt) + " " + strings.TrimSpace(full)
}

// Questions flattens a top-level argument list into one belief question
// per argument, in input order.
func Questions(prompt string, arguments []Argument) []string {
	questions := make([]string, 0, len(arguments))
	for _, arg := range arguments {
		questions = append(questions, arg.QuestionText(prompt))
	}
	return questions
}

// LoadArguments reads an argument hierarchy from a JSON file
func LoadArguments(path string) ([]Argument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading arguments %s: %w", path, err)
	}
	var arguments []Argument
	if err := json.Unmarshal(data, &arguments); err != nil {
		return nil, fmt.Errorf("parsing arguments %s: %w", path, err)
	}
	return arguments, nil
}

// SaveArguments writes an argument hierarchy to a JSON file
func SaveArguments(path string, arguments []Argument) error {
	data, err := json.MarshalIndent(arguments, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding arguments: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing arguments %s: %w", path, err)
	}
	return nil
}
