package ai

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/domain"
)

func TestCreateLLMService_Unconfigured(t *testing.T) {
	svc, err := CreateLLMService(nil)
	require.NoError(t, err)
	assert.Nil(t, svc)

	// A cloud provider without an API key is not configured.
	svc, err = CreateLLMService(&domain.LLMSettings{Provider: domain.AIProviderOpenAI})
	require.NoError(t, err)
	assert.Nil(t, svc)

	svc, err = CreateLLMService(&domain.LLMSettings{Provider: domain.AIProvider("skynet")})
	require.NoError(t, err)
	assert.Nil(t, svc)
}

func TestCreateLLMService_Providers(t *testing.T) {
	tests := []struct {
		name     string
		settings domain.LLMSettings
		model    string
	}{
		{
			name:     "openai",
			settings: domain.LLMSettings{Provider: domain.AIProviderOpenAI, APIKey: "sk-test", Model: "gpt-4.1-mini"},
			model:    "gpt-4.1-mini",
		},
		{
			name:     "anthropic",
			settings: domain.LLMSettings{Provider: domain.AIProviderAnthropic, APIKey: "sk-ant-test"},
			model:    "claude-sonnet-4-20250514",
		},
		{
			name:     "ollama",
			settings: domain.LLMSettings{Provider: domain.AIProviderOllama, BaseURL: "http://localhost:11434"},
			model:    "llama3.2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := CreateLLMService(&tt.settings)
			require.NoError(t, err)
			require.NotNil(t, svc)
			defer svc.Close()
			assert.Equal(t, tt.model, svc.ModelName())
		})
	}
}

func TestCreateAndValidateLLMService_Unconfigured(t *testing.T) {
	svc, err := CreateAndValidateLLMService(nil)
	require.NoError(t, err)
	assert.Nil(t, svc)

	svc, err = CreateAndValidateLLMService(&domain.LLMSettings{Provider: domain.AIProviderAnthropic})
	require.NoError(t, err)
	assert.Nil(t, svc)
}

func TestCreateAndValidateLLMService_PingSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc, err := CreateAndValidateLLMService(&domain.LLMSettings{
		Provider: domain.AIProviderOllama,
		BaseURL:  srv.URL,
		Model:    "llama3.2",
	})
	require.NoError(t, err)
	require.NotNil(t, svc)
	defer svc.Close()
	assert.Equal(t, "llama3.2", svc.ModelName())
}

func TestCreateAndValidateLLMService_PingFailure(t *testing.T) {
	svc, err := CreateAndValidateLLMService(&domain.LLMSettings{
		Provider: domain.AIProviderOllama,
		BaseURL:  "http://127.0.0.1:1",
	})
	assert.Nil(t, svc)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
	assert.ErrorContains(t, err, "settings wizard")
}

func TestValidateLLMConfig(t *testing.T) {
	// Unconfigured settings are valid: answering degrades locally.
	assert.NoError(t, ValidateLLMConfig(nil))
	assert.NoError(t, ValidateLLMConfig(&domain.LLMSettings{Provider: domain.AIProviderOpenAI}))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	assert.NoError(t, ValidateLLMConfig(&domain.LLMSettings{
		Provider: domain.AIProviderOllama,
		BaseURL:  srv.URL,
	}))

	assert.Error(t, ValidateLLMConfig(&domain.LLMSettings{
		Provider: domain.AIProviderOllama,
		BaseURL:  "http://127.0.0.1:1",
	}))
}

func TestConfigValidator(t *testing.T) {
	v := NewConfigValidator()
	assert.NoError(t, v.ValidateLLM(nil))
}
