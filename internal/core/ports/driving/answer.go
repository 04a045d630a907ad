package driving

import (
	"context"

	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/domain"
)

// AnswerService answers operator questions about indexed documents.
type AnswerService interface {
	// Answer runs the tiered answer pipeline for one question.
	// It never fails: every outcome, including internal errors, is
	// returned as an answer-shaped result.
	Answer(ctx context.Context, question string, useRemote bool) domain.Answer

	// LastSources returns the citations from the most recent Answer
	// call, for after-the-fact display.
	LastSources() []string

	// Status returns a human-readable diagnostic line: remote reasoning
	// availability, active model and indexed document count.
	Status(ctx context.Context) string
}
