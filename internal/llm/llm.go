// Package llm wraps the text-completion backend behind a single interface so
// every component receives the same injected client instead of constructing
// its own.
package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

// LanguageModel is the only call surface the core uses. Implementations must
// be synchronous; callers never retry beyond their own explicit loops.
type LanguageModel interface {
	Invoke(ctx context.Context, prompt string, opts ...Option) (string, error)
}

// Option tunes a single call.
type Option func(*callOptions)

type callOptions struct {
	temperature float64
}

// WithTemperature overrides the default sampling temperature for one call.
func WithTemperature(t float64) Option {
	return func(o *callOptions) { o.temperature = t }
}

// Client is the production LanguageModel backed by langchaingo.
type Client struct {
	model       llms.Model
	temperature float64
}

// Config selects the completion backend.
type Config struct {
	Provider    string // "ollama" or "openai"
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
}

// NewClient builds a client for the configured provider.
func NewClient(cfg Config) (*Client, error) {
	var model llms.Model
	var err error

	switch cfg.Provider {
	case "openai":
		opts := []openai.Option{openai.WithModel(cfg.Model)}
		if cfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
		}
		if cfg.APIKey != "" {
			opts = append(opts, openai.WithToken(cfg.APIKey))
		}
		model, err = openai.New(opts...)
	default:
		opts := []ollama.Option{ollama.WithModel(cfg.Model)}
		if cfg.BaseURL != "" {
			opts = append(opts, ollama.WithServerURL(cfg.BaseURL))
		}
		model, err = ollama.New(opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.Provider, err)
	}

	temp := cfg.Temperature
	if temp == 0 {
		temp = 0.7
	}
	return &Client{model: model, temperature: temp}, nil
}

func (c *Client) Invoke(ctx context.Context, prompt string, opts ...Option) (string, error) {
	call := callOptions{temperature: c.temperature}
	for _, o := range opts {
		o(&call)
	}
	return llms.GenerateFromSinglePrompt(ctx, c.model, prompt, llms.WithTemperature(call.temperature))
}
