/*
Copyright 2026 The Legal Pedagogy Authors
SPDX-License-Identifier: Apache-2.0
*/

package judges

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/chainguard-dev/clog"
)

// claude implements Interface using the Anthropic Messages API
type claude struct {
	client       anthropic.Client
	name         string
	model        string
	maxTokens    int64
	temperature  float64
	systemPrompt string
}

// ClaudeOption is a functional option for configuring a Claude judge
type ClaudeOption func(*claude) error

// WithClaudeModel allows overriding the model name
func WithClaudeModel(model string) ClaudeOption {
	return func(c *claude) error {
		if !strings.HasPrefix(model, "claude-") {
			return fmt.Errorf("model %q does not appear to be a Claude model (expected claude-* format)", model)
		}
		c.model = model
		return nil
	}
}

// WithClaudeMaxTokens sets the maximum tokens for responses
func WithClaudeMaxTokens(tokens int64) ClaudeOption {
	return func(c *claude) error {
		if tokens <= 0 {
			return fmt.Errorf("max tokens must be positive, got %d", tokens)
		}
		c.maxTokens = tokens
		return nil
	}
}

// WithClaudeTemperature sets the sampling temperature.
// Belief measurement wants temperature well above zero so repeated samples
// actually spread into a distribution.
func WithClaudeTemperature(temp float64) ClaudeOption {
	return func(c *claude) error {
		if temp < 0.0 || temp > 1.0 {
			return fmt.Errorf("temperature must be between 0.0 and 1.0, got %f", temp)
		}
		c.temperature = temp
		return nil
	}
}

// WithClaudeSystemPrompt sets the system prompt sent with every query
func WithClaudeSystemPrompt(prompt string) ClaudeOption {
	return func(c *claude) error {
		c.systemPrompt = prompt
		return nil
	}
}

// WithClaudeName overrides the name results are keyed by.
// Defaults to the model name.
func WithClaudeName(name string) ClaudeOption {
	return func(c *claude) error {
		if name == "" {
			return errors.New("judge name cannot be empty")
		}
		c.name = name
		return nil
	}
}

// NewClaude creates a judge backed by the given Anthropic client.
// The client carries authentication (API key or Vertex), so one client can
// be shared across several judges with different models.
func NewClaude(client anthropic.Client, opts ...ClaudeOption) (Interface, error) {
	c := &claude{
		client:      client,
		model:       "claude-sonnet-4-5",
		maxTokens:   1024,
		temperature: 0.7,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	if c.name == "" {
		c.name = c.model
	}
	return c, nil
}

// Name implements Interface
func (c *claude) Name() string {
	return c.name
}

// Prompt implements Interface
func (c *claude) Prompt(ctx context.Context, text string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   c.maxTokens,
		Temperature: anthropic.Float(c.temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	}
	if c.systemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: c.systemPrompt}}
	}

	message, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("claude prompt failed: %w", err)
	}

	var sb strings.Builder
	for _, content := range message.Content {
		if content.Type == "text" {
			sb.WriteString(content.Text)
		}
	}
	if sb.Len() == 0 {
		clog.FromContext(ctx).With("model", c.model).Warn("Claude returned no text content")
		return "", errors.New("no text content in Claude's response")
	}
	return sb.String(), nil
}
