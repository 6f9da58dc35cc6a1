/*
Copyright 2026 The Legal Pedagogy Authors
SPDX-License-Identifier: Apache-2.0
*/

package beliefvector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestQuestionText(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		arg  Argument
		want string
	}{{
		name: "leaf_argument",
		arg:  Argument{Text: "The statute is unambiguous.", Side: Petitioner},
		want: "Rate this: The statute is unambiguous.",
	}, {
		name: "sub_arguments_joined",
		arg: Argument{
			Text: "The search was unreasonable.",
			SubArguments: []Argument{
				{Text: "No warrant was obtained."},
				{Text: "No exigency existed."},
			},
			Side: Respondent,
		},
		want: "Rate this: The search was unreasonable. No warrant was obtained. No exigency existed.",
	}, {
		name: "only_immediate_children",
		arg: Argument{
			Text: "top",
			SubArguments: []Argument{{
				Text: "child",
				SubArguments: []Argument{
					{Text: "grandchild never appears"},
				},
			}},
		},
		want: "Rate this: top child",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.arg.QuestionText("Rate this:"); got != tt.want {
				t.Errorf("QuestionText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQuestions(t *testing.T) {
	t.Parallel()
	arguments := []Argument{
		{Text: "first"},
		{Text: "second", SubArguments: []Argument{{Text: "detail"}}},
	}

	got := Questions("P:", arguments)
	want := []string{"P: first", "P: second detail"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Questions() mismatch (-want +got):\n%s", diff)
	}
}

func TestArgumentsRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "arguments.json")
	arguments := []Argument{{
		Text: "The lease was validly terminated.",
		SubArguments: []Argument{
			{Text: "Notice was served on time.", Side: Petitioner},
		},
		Side: Petitioner,
	}, {
		Text: "Termination violated the covenant of good faith.",
		Side: Respondent,
	}}

	if err := SaveArguments(path, arguments); err != nil {
		t.Fatalf("SaveArguments() error = %v", err)
	}
	got, err := LoadArguments(path)
	if err != nil {
		t.Fatalf("LoadArguments() error = %v", err)
	}
	if diff := cmp.Diff(arguments, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadArgumentsStringSubArguments(t *testing.T) {
	t.Parallel()
	// The extraction pipeline writes sub_arguments as plain strings.
	path := filepath.Join(t.TempDir(), "arguments.json")
	content := `[
  {
    "argument": "The search was unreasonable.",
    "sub_arguments": ["No warrant was obtained.", "No exigency existed."],
    "type": "petitioner"
  }
]`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing arguments: %v", err)
	}

	got, err := LoadArguments(path)
	if err != nil {
		t.Fatalf("LoadArguments() error = %v", err)
	}

	want := []Argument{{
		Text: "The search was unreasonable.",
		SubArguments: []Argument{
			{Text: "No warrant was obtained."},
			{Text: "No exigency existed."},
		},
		Side: Petitioner,
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("arguments mismatch (-want +got):\n%s", diff)
	}

	wantQuestion := "Rate this: The search was unreasonable. No warrant was obtained. No exigency existed."
	if q := got[0].QuestionText("Rate this:"); q != wantQuestion {
		t.Errorf("QuestionText() = %q, want %q", q, wantQuestion)
	}
}

func TestLoadArgumentsMixedSubArguments(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "arguments.json")
	content := `[
  {
    "argument": "top",
    "sub_arguments": [
      "a plain string point",
      {"argument": "a nested object point", "type": "respondent"}
    ],
    "type": "respondent"
  }
]`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing arguments: %v", err)
	}

	got, err := LoadArguments(path)
	if err != nil {
		t.Fatalf("LoadArguments() error = %v", err)
	}
	want := []Argument{{
		Text: "top",
		SubArguments: []Argument{
			{Text: "a plain string point"},
			{Text: "a nested object point", Side: Respondent},
		},
		Side: Respondent,
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("arguments mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadArgumentsErrors(t *testing.T) {
	t.Parallel()
	if _, err := LoadArguments(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("LoadArguments() succeeded on missing file, want error")
	}
}
