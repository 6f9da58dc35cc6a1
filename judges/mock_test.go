/*
Copyright 2026 The Legal Pedagogy Authors
SPDX-License-Identifier: Apache-2.0
*/

package judges

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMockZeroValue(t *testing.T) {
	t.Parallel()
	m := &Mock{}

	if got := m.Name(); got != "mock-judge" {
		t.Errorf("Name() = %q, want %q", got, "mock-judge")
	}
	resp, err := m.Prompt(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Prompt() error = %v", err)
	}
	if resp != "0.5" {
		t.Errorf("Prompt() = %q, want %q", resp, "0.5")
	}
	if got := m.Calls(); got != 1 {
		t.Errorf("Calls() = %d, want 1", got)
	}
}

func TestMockCyclesResponses(t *testing.T) {
	t.Parallel()
	m := &Mock{Responses: []string{"0.1", "0.2"}}

	want := []string{"0.1", "0.2", "0.1", "0.2", "0.1"}
	for i, w := range want {
		got, err := m.Prompt(context.Background(), "q")
		if err != nil {
			t.Fatalf("call %d: Prompt() error = %v", i, err)
		}
		if got != w {
			t.Errorf("call %d: Prompt() = %q, want %q", i, got, w)
		}
	}
	if got := m.Calls(); got != 5 {
		t.Errorf("Calls() = %d, want 5", got)
	}
}

func TestMockError(t *testing.T) {
	t.Parallel()
	wantErr := errors.New("boom")
	m := &Mock{Err: wantErr}

	_, err := m.Prompt(context.Background(), "q")
	if !errors.Is(err, wantErr) {
		t.Fatalf("Prompt() error = %v, want %v", err, wantErr)
	}
	// Failed calls still count.
	if got := m.Calls(); got != 1 {
		t.Errorf("Calls() = %d, want 1", got)
	}
}

func TestMockScriptOverrides(t *testing.T) {
	t.Parallel()
	m := &Mock{
		Responses: []string{"ignored"},
		Script: func(call int64, text string) (string, error) {
			if text != "the prompt" {
				t.Errorf("script saw %q, want %q", text, "the prompt")
			}
			if call == 1 {
				return "first", nil
			}
			return "later", nil
		},
	}

	got, err := m.Prompt(context.Background(), "the prompt")
	if err != nil {
		t.Fatalf("Prompt() error = %v", err)
	}
	if got != "first" {
		t.Errorf("Prompt() = %q, want %q", got, "first")
	}
	got, _ = m.Prompt(context.Background(), "the prompt")
	if got != "later" {
		t.Errorf("second Prompt() = %q, want %q", got, "later")
	}
}

func TestMockDelayHonoursCancellation(t *testing.T) {
	t.Parallel()
	m := &Mock{Delay: 30 * time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := m.Prompt(ctx, "q")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Prompt() error = %v, want context.Canceled", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Prompt() blocked %v despite cancelled context", elapsed)
	}
}
