/*
Copyright 2026 The Legal Pedagogy Authors
SPDX-License-Identifier: Apache-2.0
*/

package judges

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// google implements Interface using Google Gemini via the GenAI SDK
type google struct {
	client       *genai.Client
	name         string
	model        string
	maxTokens    int32
	temperature  float32
	systemPrompt string
}

// GoogleOption is a functional option for configuring a Gemini judge
type GoogleOption func(*google) error

// WithGoogleModel allows overriding the model name
func WithGoogleModel(model string) GoogleOption {
	return func(g *google) error {
		if model == "" {
			return errors.New("model cannot be empty")
		}
		g.model = model
		return nil
	}
}

// WithGoogleMaxTokens sets the maximum output tokens for responses
func WithGoogleMaxTokens(tokens int32) GoogleOption {
	return func(g *google) error {
		if tokens <= 0 {
			return fmt.Errorf("max tokens must be positive, got %d", tokens)
		}
		g.maxTokens = tokens
		return nil
	}
}

// WithGoogleTemperature sets the sampling temperature
func WithGoogleTemperature(temp float32) GoogleOption {
	return func(g *google) error {
		if temp < 0.0 || temp > 2.0 {
			return fmt.Errorf("temperature must be between 0.0 and 2.0, got %f", temp)
		}
		g.temperature = temp
		return nil
	}
}

// WithGoogleSystemPrompt sets the system instruction sent with every query
func WithGoogleSystemPrompt(prompt string) GoogleOption {
	return func(g *google) error {
		g.systemPrompt = prompt
		return nil
	}
}

// WithGoogleName overrides the name results are keyed by
func WithGoogleName(name string) GoogleOption {
	return func(g *google) error {
		if name == "" {
			return errors.New("judge name cannot be empty")
		}
		g.name = name
		return nil
	}
}

// NewGoogle creates a judge backed by the given GenAI client.
// The client's backend (Vertex AI or Gemini API key) is the caller's choice.
func NewGoogle(client *genai.Client, opts ...GoogleOption) (Interface, error) {
	if client == nil {
		return nil, errors.New("genai client is required")
	}
	g := &google{
		client:      client,
		model:       "gemini-2.5-flash",
		maxTokens:   1024,
		temperature: 0.7,
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	if g.name == "" {
		g.name = g.model
	}
	return g, nil
}

// Name implements Interface
func (g *google) Name() string {
	return g.name
}

// Prompt implements Interface
func (g *google) Prompt(ctx context.Context, text string) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(g.temperature),
		MaxOutputTokens: g.maxTokens,
	}
	if g.systemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: g.systemPrompt}},
		}
	}

	response, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(text), config)
	if err != nil {
		return "", fmt.Errorf("gemini prompt failed: %w", err)
	}

	responseText := response.Text()
	if responseText == "" {
		return "", errors.New("no text content in Gemini's response")
	}
	return responseText, nil
}
