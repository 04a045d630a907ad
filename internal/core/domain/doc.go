// Package domain holds the core types of the edital question-answering
// engine: the indexed document catalog, retrieval chunks, mined facts
// and answers, plus the configuration model and sentinel errors.
package domain
