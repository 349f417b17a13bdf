package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mytheresa/supplier-catalog-chat/app/config"
)

// Request describes one text generation call.
type Request struct {
	Prompt             string
	Model              string
	MaxNewTokens       int
	NumReturnSequences int
	DoSample           bool
	Temperature        float64
	// ReturnFullText prefixes the reply with the prompt.
	ReturnFullText     bool
}

// DefaultSampling returns the fixed sampling configuration used for chat replies:
// 50 new tokens, one sequence, sampling on, temperature 0.7. The reply carries
// the prompt followed by the generated continuation.
func DefaultSampling(prompt string) Request {
	return Request{
		Prompt:             prompt,
		MaxNewTokens:       50,
		NumReturnSequences: 1,
		DoSample:           true,
		Temperature:        0.7,
		ReturnFullText:     true,
	}
}

// Provider is a text generation backend.
type Provider interface {
	Generate(ctx context.Context, req Request) (string, error)
	Name() string
}

// Client adds a default model, a per-call timeout and logging around a Provider.
type Client struct {
	Provider Provider
	Model    string
	Timeout  time.Duration
}

func (c *Client) Generate(ctx context.Context, req Request) (string, error) {
	if req.Model == "" {
		req.Model = c.Model
	}
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := c.Provider.Generate(ctx, req)
	log := zerolog.Ctx(ctx).With().
		Str("provider", c.Provider.Name()).
		Str("model", req.Model).
		Dur("duration", time.Since(start)).
		Logger()
	if err != nil {
		log.Error().Err(err).Msg("generation failed")
		return "", fmt.Errorf("%s generation: %w", c.Provider.Name(), err)
	}
	log.Debug().Int("chars", len(text)).Msg("generation complete")

	if req.ReturnFullText {
		return req.Prompt + text, nil
	}
	return text, nil
}

// New builds a Client for the configured provider.
func New(cfg config.LLMConfig) (*Client, error) {
	var (
		provider Provider
		model    = cfg.Model
	)
	switch cfg.Provider {
	case "openai":
		provider = NewOpenAIProvider(cfg.OpenAIAPIKey)
		if model == "" {
			model = "gpt-4.1-mini"
		}
	case "ollama":
		provider = NewOllamaProvider(cfg.OllamaBaseURL)
		if model == "" {
			model = "llama3.2"
		}
	case "anthropic":
		provider = NewAnthropicProvider(cfg.AnthropicAPIKey)
		if model == "" {
			model = "claude-haiku-4-5"
		}
	case "echo":
		provider = EchoProvider{}
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
	return &Client{Provider: provider, Model: model, Timeout: cfg.Timeout}, nil
}
