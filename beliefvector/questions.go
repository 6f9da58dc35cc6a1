/*
Copyright 2026 The Legal Pedagogy Authors
SPDX-License-Identifier: Apache-2.0
*/

package beliefvector

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// attributePlaceholder is the token in a question template replaced by
// each rubric attribute.
const attributePlaceholder = "ATTRIBUTE_TEXT"

// CharacterQuestion is one generated question about an advocate attribute
type CharacterQuestion struct {
	ID        int    `json:"id"`
	Attribute string `json:"attribute"`
	Question  string `json:"question"`
	Category  string `json:"category"`
}

// LoadRubricAttributes reads a rubric file, one attribute per line,
// skipping blank lines.
func LoadRubricAttributes(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading rubric %s: %w", path, err)
	}
	defer f.Close()

	var attributes []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			attributes = append(attributes, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning rubric %s: %w", path, err)
	}
	return attributes, nil
}

// GenerateCharacterQuestions substitutes each attribute into template,
// which must contain the ATTRIBUTE_TEXT placeholder.
func GenerateCharacterQuestions(attributes []string, template string) ([]CharacterQuestion, error) {
	if !strings.Contains(template, attributePlaceholder) {
		return nil, fmt.Errorf("template does not contain %s placeholder", attributePlaceholder)
	}

	questions := make([]CharacterQuestion, 0, len(attributes))
	for i, attribute := range attributes {
		questions = append(questions, CharacterQuestion{
			ID:        i,
			Attribute: attribute,
			Question:  strings.ReplaceAll(template, attributePlaceholder, attribute),
			Category:  "character",
		})
	}
	return questions, nil
}

// CharacterQuestionsFromFiles loads a rubric and a template file and
// generates the question set in one step.
func CharacterQuestionsFromFiles(rubricPath, templatePath string) ([]CharacterQuestion, error) {
	attributes, err := LoadRubricAttributes(rubricPath)
	if err != nil {
		return nil, err
	}
	templateBytes, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", templatePath, err)
	}
	return GenerateCharacterQuestions(attributes, strings.TrimSpace(string(templateBytes)))
}

// SaveCharacterQuestions writes generated questions to a JSON file
func SaveCharacterQuestions(path string, questions []CharacterQuestion) error {
	data, err := json.MarshalIndent(questions, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding questions: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing questions %s: %w", path, err)
	}
	return nil
}

// LoadCharacterQuestions reads previously generated questions from a JSON file
func LoadCharacterQuestions(path string) ([]CharacterQuestion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading questions %s: %w", path, err)
	}
	var questions []CharacterQuestion
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("parsing questions %s: %w", path, err)
	}
	return questions, nil
}

// QuestionTexts extracts just the question strings, in order, ready for
// the thermometer.
func QuestionTexts(questions []CharacterQuestion) []string {
	texts := make([]string, 0, len(questions))
	for _, q := range questions {
		texts = append(texts, q.Question)
	}
	return texts
}
