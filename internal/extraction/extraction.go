// Package extraction provides model-backed text extraction for prompt
// composition across the intake pipeline.
package extraction

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"
)

// Extractor executes a composed prompt against a language model and returns
// the raw response text.
type Extractor interface {
	Extract(ctx context.Context, prompt string) (string, error)
}

// Client is a Gemini-backed Extractor.
type Client struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// New initializes a Gemini client from the model configuration.
func New(ctx context.Context, cfg *Config, logger *slog.Logger) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("initialize model client: %w", err)
	}

	return &Client{
		client: client,
		model:  cfg.Name,
		logger: logger.With("system", "extraction"),
	}, nil
}

// Extract sends the prompt to the configured model and returns the response
// text. Generation runs at temperature zero so structured output stays
// deterministic.
func (c *Client) Extract(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(
		ctx,
		c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr[float32](0),
		},
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrModelRequest, err)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}

	c.logger.Debug("model response received",
		"model", c.model,
		"length", len(text),
	)

	return text, nil
}
