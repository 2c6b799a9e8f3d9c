package driven

import (
	"context"

	"github.com/inquiro-labs/inquiro/internal/core/domain"
)

// LanguageModel provides text generation for the answering pipeline.
//
// Implementations include:
//   - OpenAI (hosted, native structured tool calling)
//   - Ollama (local, tool catalog inlined into the prompt)
type LanguageModel interface {
	// GenerateText produces a text completion from a prompt. An empty
	// systemPrompt means no system message. Errors are returned to the
	// caller; there is no cheaper generation path to fall back to at
	// this level.
	GenerateText(ctx context.Context, prompt, systemPrompt string) (string, error)

	// SelectTool asks the model to pick one of the supplied tools.
	// Implementations must degrade to domain.FallbackToolCall(prompt)
	// on any failure (backend error, unparseable response, unknown tool
	// name) instead of returning an error: a misrouted tool call must
	// fall back to the safest option, not surface to the end user.
	SelectTool(ctx context.Context, prompt, systemPrompt string, tools []domain.ToolDefinition) (domain.ToolCall, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
