package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrExtraction indicates every PDF extraction backend failed to
	// read the file. Fatal to that ingestion call.
	ErrExtraction = errors.New("pdf extraction failed")

	// ErrEmptyDocument indicates the PDF was read but yielded no usable
	// pages. Fatal to that ingestion call.
	ErrEmptyDocument = errors.New("document has no readable pages")

	// ErrRemoteReasoning indicates the remote reasoning call failed.
	// It is absorbed by the answer pipeline and never reaches callers.
	ErrRemoteReasoning = errors.New("remote reasoning failed")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	// Answering degrades to the local summary without it.
	ErrLLMUnavailable = errors.New("LLM service unavailable")
)
