package domain

const unknownDescription = "Unknown"

// AIProvider identifies a remote reasoning provider.
type AIProvider string

// Available AI providers.
const (
	// AIProviderOpenAI is the OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderAnthropic is the Anthropic cloud API.
	AIProviderAnthropic AIProvider = "anthropic"

	// AIProviderOllama is a local Ollama instance.
	AIProviderOllama AIProvider = "ollama"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderOpenAI, AIProviderAnthropic, AIProviderOllama:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderOpenAI || p == AIProviderAnthropic
}

// IsLocal returns true if this provider runs locally.
func (p AIProvider) IsLocal() bool {
	return p == AIProviderOllama
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	case AIProviderAnthropic:
		return "Anthropic (cloud)"
	case AIProviderOllama:
		return "Ollama (local)"
	default:
		return unknownDescription
	}
}

// LLMSettings configures the remote reasoning provider.
type LLMSettings struct {
	// Provider is the AI provider for answer synthesis.
	Provider AIProvider

	// Model is the model identifier.
	Model string

	// APIKey authenticates against cloud providers.
	APIKey string

	// BaseURL overrides the provider endpoint (local providers,
	// compatible gateways).
	BaseURL string
}

// IsConfigured returns true if the settings are usable as-is.
// Remote reasoning is optional; unconfigured settings degrade answering
// to the local summary.
func (s *LLMSettings) IsConfigured() bool {
	if s == nil || !s.Provider.IsValid() {
		return false
	}
	if s.Provider.RequiresAPIKey() && s.APIKey == "" {
		return false
	}
	return true
}

// StorageBackend identifies a durable-record backend.
type StorageBackend string

// Available storage backends.
const (
	// StorageBackendFile keeps the index as one JSON file.
	StorageBackendFile StorageBackend = "file"

	// StorageBackendSQLite keeps the index in a SQLite database.
	StorageBackendSQLite StorageBackend = "sqlite"
)

// IsValid returns true if the storage backend is recognised.
func (b StorageBackend) IsValid() bool {
	return b == StorageBackendFile || b == StorageBackendSQLite
}

// StorageSettings configures where the durable record lives.
type StorageSettings struct {
	// Backend selects the durable-record adapter.
	Backend StorageBackend

	// Dir is the data directory holding the record.
	Dir string
}

// AllLLMProviders returns the selectable providers, in wizard order.
func AllLLMProviders() []AIProvider {
	return []AIProvider{AIProviderOpenAI, AIProviderAnthropic, AIProviderOllama}
}

// DefaultLLMModels maps each provider to its default model.
func DefaultLLMModels() map[AIProvider]string {
	return map[AIProvider]string{
		AIProviderOpenAI:    "gpt-4.1-mini",
		AIProviderAnthropic: "claude-sonnet-4-20250514",
		AIProviderOllama:    "llama3.2",
	}
}

// Settings aggregates all application configuration.
type Settings struct {
	// LLM configures remote reasoning.
	LLM LLMSettings

	// Storage configures the durable record.
	Storage StorageSettings

	// TopK is the number of chunks retrieved per question.
	TopK int

	// ChunkSize is the target chunk size in characters.
	ChunkSize int
}

// DefaultSettings returns the settings used before anything is
// configured: local summaries only, file-backed index, the ranker and
// chunker defaults.
func DefaultSettings() Settings {
	return Settings{
		LLM: LLMSettings{
			Provider: AIProviderOpenAI,
			Model:    DefaultLLMModels()[AIProviderOpenAI],
		},
		Storage: StorageSettings{
			Backend: StorageBackendFile,
		},
		TopK:      12,
		ChunkSize: 1400,
	}
}
