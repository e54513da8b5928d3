package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicClient completes prompts through the Anthropic messages API.
type AnthropicClient struct {
	apiKey    string
	model     anthropic.Model
	maxTokens int64
	client    anthropic.Client
}

// NewAnthropicClient creates a messages API client. SDK retries are disabled.
func NewAnthropicClient(apiKey, model, baseURL string, maxTokens int64) *AnthropicClient {
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &AnthropicClient{
		apiKey:    apiKey,
		model:     anthropic.Model(model),
		maxTokens: maxTokens,
		client:    anthropic.NewClient(opts...),
	}
}

// Complete sends the prompt and returns the concatenated text blocks of the
// reply. TopP is not sent: recent Claude models reject it alongside a temperature.
func (c *AnthropicClient) Complete(ctx context.Context, req Request) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w for %s", ErrMissingAPIKey, ProviderAnthropic)
	}

	params := anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: req.System},
		}
	}
	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Temperature)
	}
	if req.TopK > 0 {
		params.TopK = anthropic.Int(req.TopK)
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", classify(ProviderAnthropic, err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(text.Text)
		}
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmptyResponse, ProviderAnthropic)
	}

	return sb.String(), nil
}
