/*
Copyright 2026 The Legal Pedagogy Authors
SPDX-License-Identifier: Apache-2.0
*/

package judges

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
)

// oai implements Interface using the OpenAI chat completions API.
// Azure-style gateways work through the same client by pointing the
// client's base URL at the gateway.
type oai struct {
	client       openai.Client
	name         string
	model        string
	maxTokens    int64
	temperature  float64
	systemPrompt string
}

// OpenAIOption is a functional option for configuring an OpenAI judge
type OpenAIOption func(*oai) error

// WithOpenAIModel allows overriding the model name
func WithOpenAIModel(model string) OpenAIOption {
	return func(o *oai) error {
		if model == "" {
			return errors.New("model cannot be empty")
		}
		o.model = model
		return nil
	}
}

// WithOpenAIMaxTokens sets the maximum tokens for responses
func WithOpenAIMaxTokens(tokens int64) OpenAIOption {
	return func(o *oai) error {
		if tokens <= 0 {
			return fmt.Errorf("max tokens must be positive, got %d", tokens)
		}
		o.maxTokens = tokens
		return nil
	}
}

// WithOpenAITemperature sets the sampling temperature
func WithOpenAITemperature(temp float64) OpenAIOption {
	return func(o *oai) error {
		if temp < 0.0 || temp > 2.0 {
			return fmt.Errorf("temperature must be between 0.0 and 2.0, got %f", temp)
		}
		o.temperature = temp
		return nil
	}
}

// WithOpenAISystemPrompt sets the system prompt sent with every query
func WithOpenAISystemPrompt(prompt string) OpenAIOption {
	return func(o *oai) error {
		o.systemPrompt = prompt
		return nil
	}
}

// WithOpenAIName overrides the name results are keyed by
func WithOpenAIName(name string) OpenAIOption {
	return func(o *oai) error {
		if name == "" {
			return errors.New("judge name cannot be empty")
		}
		o.name = name
		return nil
	}
}

// NewOpenAI creates a judge backed by the given OpenAI client
func NewOpenAI(client openai.Client, opts ...OpenAIOption) (Interface, error) {
	o := &oai{
		client:      client,
		model:       openai.ChatModelGPT4oMini,
		maxTokens:   1024,
		temperature: 0.7,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	if o.name == "" {
		o.name = o.model
	}
	return o, nil
}

// Name implements Interface
func (o *oai) Name() string {
	return o.name
}

// Prompt implements Interface
func (o *oai) Prompt(ctx context.Context, text string) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if o.systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(o.systemPrompt))
	}
	messages = append(messages, openai.UserMessage(text))

	completion, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               openai.ChatModel(o.model),
		Messages:            messages,
		Temperature:         openai.Float(o.temperature),
		MaxCompletionTokens: openai.Int(o.maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("openai prompt failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("no choices in OpenAI's response")
	}
	return completion.Choices[0].Message.Content, nil
}
