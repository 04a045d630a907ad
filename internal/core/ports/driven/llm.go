package driven

import (
	"context"

	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/domain"
)

// LLMService provides the remote reasoning call used for answer
// synthesis. This is an optional service - when nil, answering degrades
// gracefully to the deterministic local summary.
//
// Implementations may include:
//   - OpenAI (GPT models)
//   - Anthropic (Claude)
//   - Ollama (local models)
type LLMService interface {
	// Chat sends a conversation and returns the model's reply text.
	Chat(ctx context.Context, messages []ChatMessage, opts ChatOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight
	// request. Used at startup before committing to remote reasoning.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// AIConfigValidator validates LLM settings by constructing and pinging
// the corresponding provider client.
type AIConfigValidator interface {
	// ValidateLLM returns an error when the settings do not reach a
	// working provider.
	ValidateLLM(settings *domain.LLMSettings) error
}

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	// Role is one of "system" or "user".
	Role string

	// Content is the message text.
	Content string
}

// ChatOptions configures chat behaviour.
type ChatOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic).
	Temperature float64
}
