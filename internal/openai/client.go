// Package openai provides an alternative generation backend using the OpenAI
// Responses API, selectable with --provider openai.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/oukeidos/bunkai/internal/apperrors"
	"github.com/oukeidos/bunkai/internal/gemini"
	"github.com/oukeidos/bunkai/internal/httpclient"
	"github.com/oukeidos/bunkai/internal/logger"
)

type requestData struct {
	Model           string      `json:"model"`
	Input           []inputItem `json:"input"`
	MaxOutputTokens int         `json:"max_output_tokens,omitempty"`
}

type inputItem struct {
	Type    string `json:"type"`
	Role    string `json:"role,omitempty"`
	Content string `json:"content,omitempty"`
}

type responseData struct {
	ID     string       `json:"id"`
	Status string       `json:"status"`
	Output []outputItem `json:"output"`
	Usage  usage        `json:"usage"`
}

type outputItem struct {
	Type    string            `json:"type"`
	Role    string            `json:"role,omitempty"`
	Content []responseContent `json:"content,omitempty"`
}

type responseContent struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

type errorEnvelope struct {
	Error errorDetails `json:"error"`
}

type errorDetails struct {
	Message string      `json:"message"`
	Type    string      `json:"type"`
	Code    interface{} `json:"code"`
}

func (e errorDetails) codeString() string {
	if e.Code == nil {
		return ""
	}
	return fmt.Sprint(e.Code)
}

// Client calls the OpenAI Responses API. It satisfies the same Generator
// contract as the Gemini client so the controller does not care which
// provider is behind it.
type Client struct {
	apiKey            string
	model             string
	baseURL           string
	systemInstruction string
}

var _ gemini.Generator = (*Client)(nil)

func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: "https://api.openai.com/v1",
	}
}

// SetSystemInstruction stores the instruction block sent with every request.
func (c *Client) SetSystemInstruction(prompt string) {
	c.systemInstruction = prompt
}

// Generate sends the user prompt and returns the raw response text.
func (c *Client) Generate(ctx context.Context, userPrompt string) (string, gemini.UsageMetadata, error) {
	req := requestData{
		Model: c.model,
		Input: []inputItem{
			{Type: "message", Role: "system", Content: c.systemInstruction},
			{Type: "message", Role: "user", Content: userPrompt},
		},
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", gemini.UsageMetadata{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.baseURL + "/responses"
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", gemini.UsageMetadata{}, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	client := httpclient.GetDefaultClient()
	body, resp, err := httpclient.DoAndRead(client, httpReq)
	if err != nil {
		return "", gemini.UsageMetadata{}, apperrors.New(
			apperrors.KindTransient,
			"OpenAI request failed due to a temporary network/runtime error.",
			fmt.Errorf("request failed: %w", err),
		)
	}

	if resp.StatusCode != http.StatusOK {
		details := parseErrorDetails(body)
		return "", gemini.UsageMetadata{}, classifyOpenAIError(resp.StatusCode, resp.Status, details)
	}

	var result responseData
	if err := json.Unmarshal(body, &result); err != nil {
		return "", gemini.UsageMetadata{}, apperrors.New(
			apperrors.KindValidation,
			"OpenAI response format was invalid.",
			fmt.Errorf("failed to decode response: %w", err),
		)
	}

	logger.Debug("OpenAI API response", "status", resp.Status, "usage_total", result.Usage.TotalTokens, "response_id", result.ID)

	text := extractOutputText(result)
	if text == "" {
		return "", gemini.UsageMetadata{}, apperrors.Validation(fmt.Errorf("no output text in OpenAI response (status %q)", result.Status))
	}

	meta := gemini.UsageMetadata{
		PromptTokenCount:     result.Usage.InputTokens,
		CandidatesTokenCount: result.Usage.OutputTokens,
		TotalTokenCount:      result.Usage.TotalTokens,
	}
	return text, meta, nil
}

func extractOutputText(result responseData) string {
	var combined strings.Builder
	for _, item := range result.Output {
		if item.Type != "message" {
			continue
		}
		for _, content := range item.Content {
			if content.Type == "output_text" {
				combined.WriteString(content.Text)
			}
		}
	}
	return combined.String()
}

func parseErrorDetails(body []byte) errorDetails {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return errorDetails{}
	}
	return envelope.Error
}

func classifyOpenAIError(statusCode int, status string, details errorDetails) error {
	cause := fmt.Errorf("openai status=%s type=%s code=%s message=%s", status, details.Type, details.codeString(), details.Message)

	switch statusCode {
	case http.StatusTooManyRequests:
		return apperrors.New(
			apperrors.KindRateLimit,
			"OpenAI API rate limit exceeded (429): please try again later.",
			cause,
		)
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperrors.New(
			apperrors.KindAuth,
			fmt.Sprintf("OpenAI API authentication/authorization failed (%d): please verify your API key and permissions.", statusCode),
			cause,
		)
	case http.StatusNotFound:
		if isModelNotFound(details) {
			return apperrors.New(
				apperrors.KindBadRequest,
				"The model does not exist or you do not have access to it.",
				cause,
			)
		}
		return apperrors.New(
			apperrors.KindBadRequest,
			"OpenAI resource not found (404).",
			cause,
		)
	default:
		if statusCode >= 500 {
			return apperrors.New(
				apperrors.KindTransient,
				fmt.Sprintf("OpenAI server error (%d): please try again later.", statusCode),
				cause,
			)
		}
		return apperrors.New(
			apperrors.KindBadRequest,
			fmt.Sprintf("OpenAI API error (%d): %s", statusCode, status),
			cause,
		)
	}
}

func isModelNotFound(details errorDetails) bool {
	needle := strings.ToLower(details.codeString() + " " + details.Type + " " + details.Message)
	if strings.Contains(needle, "model_not_found") {
		return true
	}
	return strings.Contains(needle, "does not exist or you do not have access to it")
}
