/*
Copyright 2026 The Legal Pedagogy Authors
SPDX-License-Identifier: Apache-2.0
*/

package judges

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	ollama "github.com/ollama/ollama/api"
)

// defaultOllamaURL is where a local Ollama daemon listens
const defaultOllamaURL = "http://localhost:11434"

// olla implements Interface using a local Ollama daemon
type olla struct {
	client       *ollama.Client
	name         string
	model        string
	systemPrompt string
}

// NewOllama creates a judge backed by an Ollama daemon at baseURL.
// An empty baseURL falls back to the daemon's default local address.
func NewOllama(model, baseURL, systemPrompt string) (Interface, error) {
	if model == "" {
		return nil, fmt.Errorf("ollama model cannot be empty")
	}
	if baseURL == "" {
		baseURL = defaultOllamaURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	hc := &http.Client{Timeout: 120 * time.Second}
	return &olla{
		client:       ollama.NewClient(parsed, hc),
		name:         model,
		model:        model,
		systemPrompt: systemPrompt,
	}, nil
}

// Name implements Interface
func (o *olla) Name() string {
	return o.name
}

// Prompt implements Interface
func (o *olla) Prompt(ctx context.Context, text string) (string, error) {
	stream := false
	req := &ollama.GenerateRequest{
		Model:  o.model,
		Prompt: text,
		System: o.systemPrompt,
		Stream: &stream,
	}

	var sb strings.Builder
	err := o.client.Generate(ctx, req, func(resp ollama.GenerateResponse) error {
		sb.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama prompt failed: %w", err)
	}
	return sb.String(), nil
}
