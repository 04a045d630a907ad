// Package chunker splits page text into paragraph-aligned, size-bounded
// chunks.
package chunker

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultTargetSize is the default chunk size budget in characters.
const DefaultTargetSize = 1400

var blankLineRe = regexp.MustCompile(`\n{2,}`)

// Chunker packs consecutive paragraphs into chunks without exceeding a
// target size. A single paragraph longer than the target becomes its
// own oversized chunk and is not subdivided.
type Chunker struct {
	targetSize int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithTargetSize sets the chunk size budget in characters.
func WithTargetSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.targetSize = size
		}
	}
}

// New creates a new chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{targetSize: DefaultTargetSize}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TargetSize returns the configured size budget.
func (c *Chunker) TargetSize() int {
	return c.targetSize
}

// Split breaks one page's text into chunk texts, in page order.
// Paragraphs (text separated by blank lines) are greedily concatenated
// while the running length stays within the budget; the paragraph that
// would exceed it starts the next chunk.
func (c *Chunker) Split(pageText string) []string {
	var paragraphs []string
	for _, p := range blankLineRe.Split(pageText, -1) {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}

	var chunks []string
	var cur string
	curLen := 0
	for _, p := range paragraphs {
		pLen := utf8.RuneCountInString(p)
		switch {
		case cur == "":
			cur, curLen = p, pLen
		case curLen+1+pLen <= c.targetSize:
			cur += "\n" + p
			curLen += 1 + pLen
		default:
			chunks = append(chunks, cur)
			cur, curLen = p, pLen
		}
	}
	if cur != "" {
		chunks = append(chunks, cur)
	}
	return chunks
}
