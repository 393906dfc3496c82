// Package summarize wraps the external NLP model that condenses study notes.
// The model itself is a collaborator behind the Summarizer interface; only
// the call surface is owned here.
package summarize

import (
	"context"
	"fmt"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const systemPrompt = "You are a study assistant. Summarize the provided notes into a short, clear digest a student can revise from. Keep key terms and definitions."

// Summarizer condenses a block of study text.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Client calls an OpenAI-compatible completion endpoint.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient builds a client from AI_URL, AI_API_KEY and AI_MODEL.
func NewClient() (*Client, error) {
	aiURL := os.Getenv("AI_URL")
	aiKey := os.Getenv("AI_API_KEY")

	if aiURL == "" || aiKey == "" {
		return nil, fmt.Errorf("missing required environment variables: AI_URL, AI_API_KEY")
	}

	model := os.Getenv("AI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(
		option.WithBaseURL(aiURL+"/v1/"),
		option.WithAPIKey(aiKey),
	)

	return &Client{client: &client, model: model}, nil
}

// Summarize sends the text to the model and returns its digest.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(text),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return resp.Choices[0].Message.Content, nil
}
