package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/ports/driven"
)

func newTestService(t *testing.T, handler http.Handler) *LLMService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := NewLLMService(Config{APIKey: "sk-ant-test", BaseURL: srv.URL})
	require.NoError(t, err)
	return svc
}

func TestNewLLMService_RequiresAPIKey(t *testing.T) {
	_, err := NewLLMService(Config{})
	assert.ErrorContains(t, err, "API key is required")
}

func TestNewLLMService_Defaults(t *testing.T) {
	svc, err := NewLLMService(Config{APIKey: "sk-ant-test"})
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, svc.ModelName())
	assert.Equal(t, DefaultBaseURL, svc.baseURL)
}

func TestLLMService_Chat(t *testing.T) {
	var gotReq messagesRequest
	var gotKey, gotVersion string
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{
				{"type": "text", "text": "Resposta "},
				{"type": "text", "text": "do modelo."},
			},
		})
	}))

	out, err := svc.Chat(context.Background(), []driven.ChatMessage{
		{Role: "system", Content: "instruções do sistema"},
		{Role: "user", Content: "pergunta"},
	}, driven.ChatOptions{MaxTokens: 900, Temperature: 0.2})
	require.NoError(t, err)
	assert.Equal(t, "Resposta do modelo.", out)
	assert.Equal(t, "sk-ant-test", gotKey)
	assert.Equal(t, anthropicVersion, gotVersion)

	// The system message moves to the dedicated field.
	assert.Equal(t, "instruções do sistema", gotReq.System)
	require.Len(t, gotReq.Messages, 1)
	assert.Equal(t, "user", gotReq.Messages[0].Role)
	assert.Equal(t, 900, gotReq.MaxTokens)
}

func TestLLMService_Chat_DefaultMaxTokens(t *testing.T) {
	var gotReq messagesRequest
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{{"type": "text", "text": "ok"}},
		})
	}))

	_, err := svc.Chat(context.Background(), []driven.ChatMessage{{Role: "user", Content: "oi"}}, driven.ChatOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1024, gotReq.MaxTokens)
}

func TestLLMService_Chat_APIError(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"type": "invalid_request_error", "message": "max_tokens required"},
		})
	}))

	_, err := svc.Chat(context.Background(), []driven.ChatMessage{{Role: "user", Content: "oi"}}, driven.ChatOptions{})
	assert.ErrorContains(t, err, "max_tokens required")
}

func TestLLMService_Ping(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotReq messagesRequest
		svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
			json.NewEncoder(w).Encode(map[string]any{
				"content": []map[string]any{{"type": "text", "text": "pong"}},
			})
		}))
		require.NoError(t, svc.Ping(context.Background()))
		assert.Equal(t, 1, gotReq.MaxTokens)
	})

	t.Run("unauthorized", func(t *testing.T) {
		svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "bad key", http.StatusUnauthorized)
		}))
		assert.ErrorContains(t, svc.Ping(context.Background()), "status 401")
	})
}

func TestLLMService_Close(t *testing.T) {
	svc, err := NewLLMService(Config{APIKey: "sk-ant-test"})
	require.NoError(t, err)
	assert.NoError(t, svc.Close())
}
