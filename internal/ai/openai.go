package ai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIClient completes prompts through the OpenAI chat completions API or
// any endpoint compatible with it (Gemini).
type OpenAIClient struct {
	provider Provider
	apiKey   string
	model    string
	client   openai.Client
}

// NewOpenAIClient creates a chat completions client. An empty baseURL uses
// the OpenAI default. SDK retries are disabled.
func NewOpenAIClient(provider Provider, apiKey, model, baseURL string) *OpenAIClient {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAIClient{
		provider: provider,
		apiKey:   apiKey,
		model:    model,
		client:   openai.NewClient(opts...),
	}
}

// Complete sends the prompt with the system instruction and returns the reply text.
func (c *OpenAIClient) Complete(ctx context.Context, req Request) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w for %s", ErrMissingAPIKey, c.provider)
	}

	var messages []openai.ChatCompletionMessageParamUnion
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.model),
		Messages: messages,
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	if req.TopP > 0 {
		params.TopP = openai.Float(req.TopP)
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", classify(c.provider, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyResponse, c.provider)
	}

	return resp.Choices[0].Message.Content, nil
}
