// Package ollama provides a language model adapter using Ollama.
package ollama

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
	DefaultBaseURL    = "http://localhost:11434"
	DefaultLLMModel   = "llama3.2"
	DefaultLLMTimeout = 120 * time.Second
)

// LLMConfig holds configuration for the Ollama language model service.
type LLMConfig struct {
	// BaseURL is the Ollama API base URL (default: http://localhost:11434).
	BaseURL string

	// Model is the model to use (default: llama3.2).
	Model string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration

	// MaxTokens caps completion length. Zero means no explicit cap.
	MaxTokens int

	// Temperature controls sampling randomness. Zero means API default.
	Temperature float64
}

// LLMService provides text generation and tool selection using a local
// Ollama instance. Local models have no native structured tool calling,
// so the tool catalog is inlined into the prompt and the response is run
// through the loose JSON parser.
type LLMService struct {
	client      *http.Client
	baseURL     string
	model       string
	maxTokens   int
	temperature float64
}

// chatRequest is the Ollama /api/chat request format.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  *options      `json:"options,omitempty"`
}

// chatMessage is the Ollama chat message format.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// options holds generation parameters.
type options struct {
	NumPredict  int     `json:"num_predict,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
}

// chatResponse is the Ollama /api/chat response format.
type chatResponse struct {
	Message chatMessage `json:"message"`
	Done    bool        `json:"done"`
}

// NewLLMService creates a new Ollama language model service.
func NewLLMService(cfg LLMConfig) *LLMService {
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
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}
}

// GenerateText produces a text completion from a prompt.
func (s *LLMService) GenerateText(ctx context.Context, prompt, systemPrompt string) (string, error) {
	var messages []chatMessage
	if systemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: systemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: prompt})

	return s.chat(ctx, messages)
}

// toolInstructions is appended after the inlined tool catalog so the
// model responds with a parseable JSON object.
const toolInstructions = `
Respond with ONLY a JSON object in this exact format, with no extra text:
{"name": "<tool_name>", "arguments": {"query": "<value>"}}`

// SelectTool asks the model to pick a tool by inlining the catalog into
// the prompt. Any failure degrades to the document-answer fallback
// instead of an error: a misrouted call must never break the answering
// pipeline.
func (s *LLMService) SelectTool(
	ctx context.Context,
	prompt, systemPrompt string,
	tools []domain.ToolDefinition,
) (domain.ToolCall, error) {
	catalog, err := json.MarshalIndent(tools, "", "  ")
	if err != nil {
		logger.Warn("Tool catalog marshal failed: %v (using fallback)", err)
		return domain.FallbackToolCall(prompt), nil
	}

	toolPrompt := fmt.Sprintf("%s\n\nAvailable tools:\n%s\n%s", prompt, catalog, toolInstructions)

	var messages []chatMessage
	if systemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: systemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: toolPrompt})

	response, err := s.chat(ctx, messages)
	if err != nil {
		logger.Warn("Tool selection request failed: %v (using fallback)", err)
		return domain.FallbackToolCall(prompt), nil
	}

	call, err := domain.ParseToolCall(response)
	if err != nil {
		logger.Warn("Tool selection unusable: %v (using fallback)", err)
		return domain.FallbackToolCall(prompt), nil
	}
	return call, nil
}

// chat sends one request to /api/chat.
func (s *LLMService) chat(ctx context.Context, messages []chatMessage) (string, error) {
	reqBody := chatRequest{
		Model:    s.model,
		Messages: messages,
		Stream:   false,
	}
	if s.maxTokens > 0 || s.temperature > 0 {
		reqBody.Options = &options{
			NumPredict:  s.maxTokens,
			Temperature: s.temperature,
		}
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+"/api/chat",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("ollama error (status %d): failed to read response", resp.StatusCode)
		}
		return "", fmt.Errorf("ollama error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	return chatResp.Message.Content, nil
}

// ModelName returns the name of the model being used.
func (s *LLMService) ModelName() string {
	return s.model
}

// Ping validates the Ollama instance is reachable and the model exists.
func (s *LLMService) Ping(ctx context.Context) error {
	reqBody, err := json.Marshal(map[string]string{"model": s.model})
	if err != nil {
		return fmt.Errorf("ollama: marshal ping request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+"/api/show",
		bytes.NewReader(reqBody),
	)
	if err != nil {
		return fmt.Errorf("ollama: failed to create ping request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("ollama: ping failed (is Ollama running?): %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ollama: model %q not available (status %d), try: ollama pull %s",
			s.model, resp.StatusCode, s.model)
	}
	return nil
}

// Close releases resources.
func (s *LLMService) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}
