// Package openai provides a language model adapter using the OpenAI API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/inquiro-labs/inquiro/internal/core/domain"
	"github.com/inquiro-labs/inquiro/internal/core/ports/driven"
	"github.com/inquiro-labs/inquiro/internal/logger"
)

// Ensure LLMService implements the interface.
var _ driven.LanguageModel = (*LLMService)(nil)

// Default configuration values.
const (
	DefaultBaseURL    = "https://api.openai.com/v1"
	DefaultLLMModel   = "gpt-4o-mini"
	DefaultLLMTimeout = 120 * time.Second
)

// LLMConfig holds configuration for the OpenAI language model service.
type LLMConfig struct {
	// APIKey is the OpenAI API key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://api.openai.com/v1).
	// Can be changed for Azure OpenAI or compatible APIs.
	BaseURL string

	// Model is the model to use (default: gpt-4o-mini).
	Model string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration

	// MaxTokens caps completion length. Zero means no explicit cap.
	MaxTokens int

	// Temperature controls sampling randomness. Zero means API default.
	Temperature float64
}

// LLMService provides text generation and tool selection using the
// OpenAI chat completions API. Tool selection uses the API's native
// structured tool calling.
type LLMService struct {
	client      *http.Client
	baseURL     string
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
}

// chatCompletionRequest is the OpenAI /chat/completions request format.
type chatCompletionRequest struct {
	Model       string              `json:"model"`
	Messages    []chatCompletionMsg `json:"messages"`
	MaxTokens   int                 `json:"max_tokens,omitempty"`
	Temperature float64             `json:"temperature,omitempty"`
	Tools       []toolSpec          `json:"tools,omitempty"`
	ToolChoice  string              `json:"tool_choice,omitempty"`
}

// chatCompletionMsg is the OpenAI chat message format.
type chatCompletionMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// toolSpec wraps a function definition in the OpenAI tools format.
type toolSpec struct {
	Type     string       `json:"type"`
	Function functionSpec `json:"function"`
}

type functionSpec struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Parameters  domain.ToolParameters `json:"parameters"`
}

// chatCompletionResponse is the OpenAI /chat/completions response format.
type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content   string `json:"content"`
			ToolCalls []struct {
				Function struct {
					Name      string `json:"name"`
					Arguments string `json:"arguments"`
				} `json:"function"`
			} `json:"tool_calls"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// NewLLMService creates a new OpenAI language model service.
func NewLLMService(cfg LLMConfig) (*LLMService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultLLMModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultLLMTimeout
	}

	return &LLMService{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}, nil
}

// GenerateText produces a text completion from a prompt.
func (s *LLMService) GenerateText(ctx context.Context, prompt, systemPrompt string) (string, error) {
	resp, err := s.chatCompletion(ctx, prompt, systemPrompt, nil)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no response choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

// SelectTool asks the model to pick a tool using native structured tool
// calling. Any failure degrades to the document-answer fallback instead
// of an error: a misrouted call must never break the answering pipeline.
func (s *LLMService) SelectTool(
	ctx context.Context,
	prompt, systemPrompt string,
	tools []domain.ToolDefinition,
) (domain.ToolCall, error) {
	specs := make([]toolSpec, len(tools))
	for i, t := range tools {
		specs[i] = toolSpec{
			Type: "function",
			Function: functionSpec{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		}
	}

	resp, err := s.chatCompletion(ctx, prompt, systemPrompt, specs)
	if err != nil {
		logger.Warn("Tool selection request failed: %v (using fallback)", err)
		return domain.FallbackToolCall(prompt), nil
	}

	call, err := s.parseToolChoice(resp)
	if err != nil {
		logger.Warn("Tool selection unusable: %v (using fallback)", err)
		return domain.FallbackToolCall(prompt), nil
	}
	return call, nil
}

// parseToolChoice extracts the first tool call from the response.
func (s *LLMService) parseToolChoice(resp *chatCompletionResponse) (domain.ToolCall, error) {
	if len(resp.Choices) == 0 {
		return domain.ToolCall{}, fmt.Errorf("no response choices returned")
	}

	msg := resp.Choices[0].Message
	if len(msg.ToolCalls) == 0 {
		// Some models answer in text despite the tools field. Try the
		// loose parser before giving up.
		return domain.ParseToolCall(msg.Content)
	}

	fn := msg.ToolCalls[0].Function
	call := domain.ToolCall{Name: fn.Name}
	if err := json.Unmarshal([]byte(fn.Arguments), &call.Arguments); err != nil {
		return domain.ToolCall{}, fmt.Errorf("%w: arguments not a string map: %v", domain.ErrMalformedToolCall, err)
	}
	if err := call.Validate(); err != nil {
		return domain.ToolCall{}, err
	}
	return call, nil
}

// chatCompletion sends one request to /chat/completions.
func (s *LLMService) chatCompletion(
	ctx context.Context,
	prompt, systemPrompt string,
	tools []toolSpec,
) (*chatCompletionResponse, error) {
	var messages []chatCompletionMsg
	if systemPrompt != "" {
		messages = append(messages, chatCompletionMsg{Role: "system", Content: systemPrompt})
	}
	messages = append(messages, chatCompletionMsg{Role: "user", Content: prompt})

	reqBody := chatCompletionRequest{
		Model:    s.model,
		Messages: messages,
	}
	if s.maxTokens > 0 {
		reqBody.MaxTokens = s.maxTokens
	}
	if s.temperature > 0 {
		reqBody.Temperature = s.temperature
	}
	if len(tools) > 0 {
		reqBody.Tools = tools
		reqBody.ToolChoice = "auto"
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+"/chat/completions",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var chatResp chatCompletionResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if chatResp.Error != nil {
		return nil, fmt.Errorf("openai error: %s", chatResp.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai error (status %d): %s", resp.StatusCode, string(body))
	}

	return &chatResp, nil
}

// ModelName returns the name of the model being used.
func (s *LLMService) ModelName() string {
	return s.model
}

// Ping validates the service is reachable by checking the /models endpoint.
// This is a lightweight check that validates the API key without running inference.
func (s *LLMService) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/models", http.NoBody)
	if err != nil {
		return fmt.Errorf("openai: failed to create ping request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("openai: ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("openai: API returned status %d (failed to read body: %w)", resp.StatusCode, err)
		}
		return fmt.Errorf("openai: API returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// Close releases resources.
func (s *LLMService) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}
