// Package gemini provides a Gemini reasoning client backed by the
// google.golang.org/genai SDK.
//
// Gemini is the default upstream for the assistant. A single prompt string is
// sent per request with fixed generation parameters; the raw completion text
// is returned unmodified.
package gemini

import (
	"context"
	"errors"

	"google.golang.org/genai"

	"github.com/agentforgood/sahayak-go/pkg/llm"
)

// DefaultModel is the model used when the configuration does not name one.
const DefaultModel = "gemini-2.0-flash"

// Client is a Gemini reasoning client.
// It implements the llm.Provider interface on top of the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// Config is the configuration for the Gemini client.
// APIKey: Gemini API key (required)
// Model: Model name to use, defaults to DefaultModel
type Config struct {
	APIKey string
	Model  string
}

// NewClient creates a new Gemini reasoning client.
//
// Args:
//   - ctx: Context for client initialization
//   - cfg: Gemini configuration containing APIKey and Model
//
// Returns:
//   - *Client: Gemini client instance
//   - error: Returns an error if the API key is missing or initialization fails
func NewClient(ctx context.Context, cfg *Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini: api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		client: client,
		model:  model,
	}, nil
}

// Generate generates a completion for the assembled prompt.
//
// Args:
//   - ctx: Context for controlling the request lifecycle; cancellation
//     propagates directly to the underlying HTTP call
//   - prompt: The assembled prompt text
//   - opts: Optional generation parameters (temperature, max_tokens, top_p, etc.)
//
// Returns:
//   - string: Generated completion text
//   - error: Returns an error if the upstream call fails
func (c *Client) Generate(ctx context.Context, prompt string, opts ...llm.GenerateOption) (string, error) {
	options := llm.ApplyGenerateOptions(opts)

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(options.Temperature)),
		TopP:            genai.Ptr(float32(options.TopP)),
		MaxOutputTokens: int32(options.MaxTokens),
	}
	if len(options.Stop) > 0 {
		config.StopSequences = options.Stop
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if text == "" && len(resp.Candidates) == 0 {
		return "", errors.New("llm generation failed: no candidates returned from Gemini API")
	}

	return text, nil
}

// GenerateWithMessages generates a completion from a message history.
//
// The Gemini API separates the system instruction from the conversation, so
// messages with role "system" become the system instruction and the remaining
// messages are sent as alternating user/model content.
//
// Args:
//   - ctx: Context for controlling the request lifecycle
//   - messages: Message history list, each message contains role and content
//   - opts: Optional generation parameters
//
// Returns:
//   - string: Generated completion text
//   - error: Returns an error if the upstream call fails
func (c *Client) GenerateWithMessages(ctx context.Context, messages []llm.Message, opts ...llm.GenerateOption) (string, error) {
	options := llm.ApplyGenerateOptions(opts)

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(options.Temperature)),
		TopP:            genai.Ptr(float32(options.TopP)),
		MaxOutputTokens: int32(options.MaxTokens),
	}
	if len(options.Stop) > 0 {
		config.StopSequences = options.Stop
	}

	var contents []*genai.Content
	for _, msg := range messages {
		switch msg.Role {
		case "system":
			config.SystemInstruction = genai.NewContentFromText(msg.Content, genai.RoleUser)
		case "assistant":
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		}
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if text == "" && len(resp.Candidates) == 0 {
		return "", errors.New("llm generation failed: no candidates returned from Gemini API")
	}

	return text, nil
}

// Close closes the client connection.
// The genai client does not require explicit closing; this method is retained
// for interface compatibility.
//
// Returns:
//   - error: Always returns nil
func (c *Client) Close() error {
	return nil
}
