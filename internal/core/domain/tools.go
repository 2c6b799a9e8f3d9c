package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Registered tool names. These are the only two capabilities the language
// model may select; anything else is treated as an invalid tool call.
const (
	// ToolGoogleSearch searches the web for recent or additional information.
	ToolGoogleSearch = "google_search"

	// ToolAnswerFromDocument answers using the provided document context.
	// It is also the safe default whenever tool selection is ambiguous.
	ToolAnswerFromDocument = "answer_from_document"
)

// ToolCall is the language model's structured decision of which capability
// to invoke next.
type ToolCall struct {
	Name      string            `json:"name"`
	Arguments map[string]string `json:"arguments"`
}

// ToolDefinition describes a callable capability to the language model.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  ToolParameters `json:"parameters"`
}

// ToolParameters is a JSON-Schema object describing tool arguments.
type ToolParameters struct {
	Type       string                  `json:"type"`
	Properties map[string]ToolProperty `json:"properties"`
	Required   []string                `json:"required"`
}

// ToolProperty describes a single tool argument.
type ToolProperty struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// ToolDefinitions returns the static catalog of the two registered tools.
// The orchestrator and the model adapters share this one source of truth so
// the names the model is told about never drift from the names the
// orchestrator dispatches on.
func ToolDefinitions() []ToolDefinition {
	return []ToolDefinition{
		{
			Name:        ToolGoogleSearch,
			Description: "Search the web for recent or additional information",
			Parameters: ToolParameters{
				Type: "object",
				Properties: map[string]ToolProperty{
					"query": {
						Type:        "string",
						Description: "The search query to find relevant information",
					},
				},
				Required: []string{"query"},
			},
		},
		{
			Name:        ToolAnswerFromDocument,
			Description: "Answer questions using the provided document context",
			Parameters: ToolParameters{
				Type: "object",
				Properties: map[string]ToolProperty{
					"query": {
						Type:        "string",
						Description: "The question to answer from the document",
					},
				},
				Required: []string{"query"},
			},
		},
	}
}

// KnownTool returns true if name is one of the registered tool names.
func KnownTool(name string) bool {
	return name == ToolGoogleSearch || name == ToolAnswerFromDocument
}

// FallbackToolCall returns the default tool call used whenever tool
// selection fails or produces an invalid result: answer from the local
// document context, the safest available option.
func FallbackToolCall(query string) ToolCall {
	return ToolCall{
		Name:      ToolAnswerFromDocument,
		Arguments: map[string]string{"query": query},
	}
}

// Validate checks that the tool call names a registered tool and carries
// an arguments object.
func (c ToolCall) Validate() error {
	if !KnownTool(c.Name) {
		return fmt.Errorf("%w: %q", ErrUnknownTool, c.Name)
	}
	if c.Arguments == nil {
		return fmt.Errorf("%w: missing arguments", ErrMalformedToolCall)
	}
	return nil
}

// ParseToolCall parses a loosely structured model response into a ToolCall.
//
// Models without native tool calling return free text that usually, but not
// always, contains a JSON object. The parser strips markdown code fences,
// excises everything outside the first '{' and the last '}', and requires
// both the "name" and "arguments" keys with a registered tool name.
//
// It returns ErrMalformedToolCall or ErrUnknownTool on failure; callers
// decide the fallback policy.
func ParseToolCall(raw string) (ToolCall, error) {
	cleaned := stripCodeFences(raw)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end < start {
		return ToolCall{}, fmt.Errorf("%w: no JSON object in response", ErrMalformedToolCall)
	}
	cleaned = cleaned[start : end+1]

	// Decode into raw messages first so a missing key can be told apart
	// from an empty value.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		return ToolCall{}, fmt.Errorf("%w: %v", ErrMalformedToolCall, err)
	}

	nameRaw, ok := fields["name"]
	if !ok {
		return ToolCall{}, fmt.Errorf("%w: missing \"name\" key", ErrMalformedToolCall)
	}
	argsRaw, ok := fields["arguments"]
	if !ok {
		return ToolCall{}, fmt.Errorf("%w: missing \"arguments\" key", ErrMalformedToolCall)
	}

	var call ToolCall
	if err := json.Unmarshal(nameRaw, &call.Name); err != nil {
		return ToolCall{}, fmt.Errorf("%w: name is not a string", ErrMalformedToolCall)
	}
	if err := json.Unmarshal(argsRaw, &call.Arguments); err != nil {
		return ToolCall{}, fmt.Errorf("%w: arguments is not a string map", ErrMalformedToolCall)
	}

	if err := call.Validate(); err != nil {
		return ToolCall{}, err
	}

	return call, nil
}

// stripCodeFences removes a surrounding markdown code fence, with or
// without a language tag, from the response.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	// Drop a language tag such as "json" on the opening fence line.
	if idx := strings.Index(s, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(s[:idx])
		if firstLine != "" && !strings.ContainsAny(firstLine, "{}") {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
