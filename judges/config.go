/*
Copyright 2026 The Legal Pedagogy Authors
SPDX-License-Identifier: Apache-2.0
*/

package judges

import (
	"context"
	"fmt"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/vertex"
	"github.com/openai/openai-go"
	openaioption "github.com/openai/openai-go/option"
	"google.golang.org/genai"
	"gopkg.in/yaml.v3"
)

// Config describes one judge to construct. It is the YAML-friendly face of
// the provider constructors, used by LoadRoster and the example binaries.
type Config struct {
	// Provider selects the implementation: claude, google, openai, ollama, mock.
	Provider string `yaml:"provider"`

	// Model is the provider-specific model identifier.
	Model string `yaml:"model,omitempty"`

	// Name overrides the name results are keyed by; defaults to Model.
	Name string `yaml:"name,omitempty"`

	// APIKey authenticates providers that take a key directly.
	APIKey string `yaml:"api_key,omitempty"`

	// BaseURL points OpenAI-compatible or Ollama providers at a gateway.
	BaseURL string `yaml:"base_url,omitempty"`

	// Project and Region select Vertex AI authentication for Claude and
	// Gemini judges when APIKey is unset.
	Project string `yaml:"project,omitempty"`
	Region  string `yaml:"region,omitempty"`

	// SystemPrompt is sent with every query, e.g. a justice persona.
	SystemPrompt string `yaml:"system_prompt,omitempty"`

	// Temperature overrides the provider default when non-nil.
	Temperature *float64 `yaml:"temperature,omitempty"`

	// MaxTokens overrides the provider default when positive.
	MaxTokens int64 `yaml:"max_tokens,omitempty"`

	// Responses seeds a mock judge's canned replies.
	Responses []string `yaml:"responses,omitempty"`
}

// New constructs a judge from cfg
func New(ctx context.Context, cfg Config) (Interface, error) {
	switch cfg.Provider {
	case "claude":
		return newClaudeFromConfig(ctx, cfg)
	case "google", "gemini":
		return newGoogleFromConfig(ctx, cfg)
	case "openai":
		return newOpenAIFromConfig(cfg)
	case "ollama":
		return NewOllama(cfg.Model, cfg.BaseURL, cfg.SystemPrompt)
	case "mock":
		return &Mock{NameValue: cfg.Name, Responses: cfg.Responses}, nil
	default:
		return nil, fmt.Errorf("unsupported judge provider: %q", cfg.Provider)
	}
}

func newClaudeFromConfig(ctx context.Context, cfg Config) (Interface, error) {
	var client anthropic.Client
	switch {
	case cfg.APIKey != "":
		client = anthropic.NewClient(anthropicoption.WithAPIKey(cfg.APIKey))
	case cfg.Project != "" && cfg.Region != "":
		client = anthropic.NewClient(vertex.WithGoogleAuth(ctx, cfg.Region, cfg.Project))
	default:
		return nil, fmt.Errorf("claude judge requires api_key or project/region")
	}

	opts := []ClaudeOption{}
	if cfg.Model != "" {
		opts = append(opts, WithClaudeModel(cfg.Model))
	}
	if cfg.Name != "" {
		opts = append(opts, WithClaudeName(cfg.Name))
	}
	if cfg.SystemPrompt != "" {
		opts = append(opts, WithClaudeSystemPrompt(cfg.SystemPrompt))
	}
	if cfg.Temperature != nil {
		opts = append(opts, WithClaudeTemperature(*cfg.Temperature))
	}
	if cfg.MaxTokens > 0 {
		opts = append(opts, WithClaudeMaxTokens(cfg.MaxTokens))
	}
	return NewClaude(client, opts...)
}

func newGoogleFromConfig(ctx context.Context, cfg Config) (Interface, error) {
	clientConfig := &genai.ClientConfig{}
	switch {
	case cfg.APIKey != "":
		clientConfig.APIKey = cfg.APIKey
		clientConfig.Backend = genai.BackendGeminiAPI
	case cfg.Project != "" && cfg.Region != "":
		clientConfig.Project = cfg.Project
		clientConfig.Location = cfg.Region
		clientConfig.Backend = genai.BackendVertexAI
	default:
		return nil, fmt.Errorf("google judge requires api_key or project/region")
	}
	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	opts := []GoogleOption{}
	if cfg.Model != "" {
		opts = append(opts, WithGoogleModel(cfg.Model))
	}
	if cfg.Name != "" {
		opts = append(opts, WithGoogleName(cfg.Name))
	}
	if cfg.SystemPrompt != "" {
		opts = append(opts, WithGoogleSystemPrompt(cfg.SystemPrompt))
	}
	if cfg.Temperature != nil {
		opts = append(opts, WithGoogleTemperature(float32(*cfg.Temperature)))
	}
	if cfg.MaxTokens > 0 {
		opts = append(opts, WithGoogleMaxTokens(int32(cfg.MaxTokens)))
	}
	return NewGoogle(client, opts...)
}

func newOpenAIFromConfig(cfg Config) (Interface, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai judge requires api_key")
	}
	clientOpts := []openaioption.RequestOption{openaioption.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		clientOpts = append(clientOpts, openaioption.WithBaseURL(cfg.BaseURL))
	}
	client := openai.NewClient(clientOpts...)

	opts := []OpenAIOption{}
	if cfg.Model != "" {
		opts = append(opts, WithOpenAIModel(cfg.Model))
	}
	if cfg.Name != "" {
		opts = append(opts, WithOpenAIName(cfg.Name))
	}
	if cfg.SystemPrompt != "" {
		opts = append(opts, WithOpenAISystemPrompt(cfg.SystemPrompt))
	}
	if cfg.Temperature != nil {
		opts = append(opts, WithOpenAITemperature(*cfg.Temperature))
	}
	if cfg.MaxTokens > 0 {
		opts = append(opts, WithOpenAIMaxTokens(cfg.MaxTokens))
	}
	return NewOpenAI(client, opts...)
}

// roster is the YAML shape of a judge roster file
type roster struct {
	Judges []Config `yaml:"judges"`
}

// LoadRoster reads a YAML roster file and constructs every judge in it,
// in file order. The ordering matters: measurement results iterate judges
// in roster order.
func LoadRoster(ctx context.Context, path string) ([]Interface, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster %s: %w", path, err)
	}
	var r roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing roster %s: %w", path, err)
	}
	if len(r.Judges) == 0 {
		return nil, fmt.Errorf("roster %s declares no judges", path)
	}

	panel := make([]Interface, 0, len(r.Judges))
	for i, cfg := range r.Judges {
		j, err := New(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("roster %s judge %d: %w", path, i, err)
		}
		panel = append(panel, j)
	}
	return panel, nil
}
