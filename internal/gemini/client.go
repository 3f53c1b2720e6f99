package gemini

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/oukeidos/bunkai/internal/httpclient"
	"google.golang.org/api/option"
)

// Generator is the minimal contract the analysis controller needs from a
// text-generation backend. Implemented by this package's Client, the openai
// package, and test mocks.
type Generator interface {
	// Generate sends the user prompt and returns the raw response text.
	// The text may still carry markdown fences; decoding happens upstream.
	Generate(ctx context.Context, userPrompt string) (string, UsageMetadata, error)
	// SetSystemInstruction sets the fixed instruction block for the session.
	SetSystemInstruction(prompt string)
}

// Client handles communication with the Gemini API.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

var _ Generator = (*Client)(nil)

// NewClient creates a new Gemini client.
func NewClient(ctx context.Context, apiKey string, modelName string) (*Client, error) {
	// Note: option.WithHTTPClient interferes with the genai library's internal
	// header injection for API keys, causing 403 errors. Timeouts are enforced
	// via context in Generate instead.
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	model := client.GenerativeModel(modelName)
	model.ResponseMIMEType = "application/json"

	return &Client{
		client: client,
		model:  model,
	}, nil
}

// Close closes the underlying genai client.
func (c *Client) Close() error {
	return c.client.Close()
}

// SetSystemInstruction sets the system prompt for the model.
func (c *Client) SetSystemInstruction(prompt string) {
	c.model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(prompt)},
	}
}

// Generate sends a prompt to Gemini and returns the raw response text.
func (c *Client) Generate(ctx context.Context, userPrompt string) (string, UsageMetadata, error) {
	ctx, cancel := context.WithTimeout(ctx, httpclient.DefaultTimeout)
	defer cancel()

	resp, err := c.model.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", UsageMetadata{}, classifyGeminiError(err)
	}

	text, err := extractResponseText(resp)
	if err != nil {
		return "", UsageMetadata{}, classifyEmptyResponse(err)
	}

	var usage UsageMetadata
	if resp.UsageMetadata != nil {
		usage = UsageMetadata{
			PromptTokenCount:     int(resp.UsageMetadata.PromptTokenCount),
			CandidatesTokenCount: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokenCount:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}

	return text, usage, nil
}

func extractResponseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("no response received from Gemini")
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned from Gemini")
	}
	for i, candidate := range resp.Candidates {
		if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
			continue
		}
		var combined string
		for _, part := range candidate.Content.Parts {
			text, ok := part.(genai.Text)
			if !ok {
				continue
			}
			combined += string(text)
		}
		if combined != "" {
			return combined, nil
		}
		if i == len(resp.Candidates)-1 {
			break
		}
	}
	return "", fmt.Errorf("no text parts found in Gemini response")
}
