package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inquiro-labs/inquiro/internal/core/domain"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *LLMService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc, err := NewLLMService(LLMConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})
	require.NoError(t, err)
	return svc
}

func TestNewLLMService_RequiresAPIKey(t *testing.T) {
	_, err := NewLLMService(LLMConfig{})
	assert.Error(t, err)
}

func TestGenerateText(t *testing.T) {
	var gotReq chatCompletionRequest
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"hello"}}]}`))
	})

	got, err := svc.GenerateText(context.Background(), "say hello", "be brief")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "be brief", gotReq.Messages[0].Content)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	assert.Empty(t, gotReq.Tools)
}

func TestGenerateText_APIError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited","type":"rate_limit"}}`))
	})

	_, err := svc.GenerateText(context.Background(), "p", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestSelectTool_NativeToolCall(t *testing.T) {
	var gotReq chatCompletionRequest
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"tool_calls":[
			{"function":{"name":"google_search","arguments":"{\"query\":\"latest results\"}"}}
		]}}]}`))
	})

	call, err := svc.SelectTool(context.Background(), "question", "", domain.ToolDefinitions())
	require.NoError(t, err)
	assert.Equal(t, domain.ToolGoogleSearch, call.Name)
	assert.Equal(t, "latest results", call.Arguments["query"])

	// The catalog goes over the wire in the native tools format.
	require.Len(t, gotReq.Tools, 2)
	assert.Equal(t, "function", gotReq.Tools[0].Type)
	assert.Equal(t, "auto", gotReq.ToolChoice)
}

func TestSelectTool_TextResponseParsedLoosely(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":
			"{\"name\": \"answer_from_document\", \"arguments\": {\"query\": \"q\"}}"}}]}`))
	})

	call, err := svc.SelectTool(context.Background(), "question", "", domain.ToolDefinitions())
	require.NoError(t, err)
	assert.Equal(t, domain.ToolAnswerFromDocument, call.Name)
}

func TestSelectTool_FallbackNeverErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "backend error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "unknown tool name",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"choices":[{"message":{"tool_calls":[
					{"function":{"name":"delete_everything","arguments":"{}"}}
				]}}]}`))
			},
		},
		{
			name: "arguments not an object",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"choices":[{"message":{"tool_calls":[
					{"function":{"name":"google_search","arguments":"42"}}
				]}}]}`))
			},
		},
		{
			name: "no choices",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"choices":[]}`))
			},
		},
		{
			name: "free text without tool call",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"I think you should search"}}]}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, tt.handler)

			call, err := svc.SelectTool(context.Background(), "the question", "", domain.ToolDefinitions())
			require.NoError(t, err)
			assert.Equal(t, domain.FallbackToolCall("the question"), call)
		})
	}
}
