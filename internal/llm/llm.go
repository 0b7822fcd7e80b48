package llm

import (
	"context"

	"seoforge/internal/config"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Generator is the text-generation boundary every pipeline stage depends on.
// One call per invocation: system instruction plus user instruction in, raw
// model text out. Implementations must be safe for concurrent use.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Client wraps the Gemini API behind the Generator interface.
type Client struct {
	modelName   string
	maxTokens   int32
	temperature float32
	gClient     *genai.Client
}

// NewClient creates a new LLM client from the injected Gemini configuration.
func NewClient(ctx context.Context, cfg config.GeminiConfig) (*Client, error) {
	modelName := cfg.Model
	if modelName == "" {
		modelName = DefaultModel
	}

	gClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		modelName:   modelName,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		gClient:     gClient,
	}, nil
}

// Generate makes a single generation call and returns the raw text response.
// There is no retry and no timeout beyond the transport's own; a transport
// error is handed back to the caller untouched.
func (c *Client) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	contents := []*genai.Content{{
		Parts: []*genai.Part{{Text: userPrompt}},
		Role:  "user",
	}}

	genConfig := &genai.GenerateContentConfig{}
	if systemPrompt != "" {
		genConfig.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		}
	}
	if c.maxTokens > 0 {
		genConfig.MaxOutputTokens = c.maxTokens
	}
	if c.temperature > 0 {
		temp := c.temperature
		genConfig.Temperature = &temp
	}

	resp, err := c.gClient.Models.GenerateContent(ctx, c.modelName, contents, genConfig)
	if err != nil {
		return "", err
	}

	return resp.Text(), nil
}

// ModelName returns the model name used by this client.
func (c *Client) ModelName() string {
	return c.modelName
}
