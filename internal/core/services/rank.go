package services

import (
	"math"
	"sort"

	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/domain"
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/text"
)

// DefaultTopK is the number of chunks retrieved per question.
const DefaultTopK = 12

// rankChunks scores every chunk against the query with an IDF-weighted
// term-overlap score and returns the top k, best first. Chunks with no
// query-term overlap are dropped; ties keep corpus order. This is a
// deliberate bag-of-words lexical ranker: no synonym or paraphrase
// matching.
func rankChunks(query string, chunks []domain.Chunk, k int) []domain.Chunk {
	if len(chunks) == 0 || k <= 0 {
		return nil
	}

	queryTerms := uniqueTerms(text.Tokenize(query))
	if len(queryTerms) == 0 {
		return nil
	}

	idf := idfMap(chunks)

	type scored struct {
		chunk domain.Chunk
		score float64
	}
	matches := make([]scored, 0, len(chunks))
	for _, ch := range chunks {
		if s := scoreChunk(queryTerms, ch.Text, idf); s > 0 {
			matches = append(matches, scored{chunk: ch, score: s})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if k > len(matches) {
		k = len(matches)
	}
	top := make([]domain.Chunk, k)
	for i := range top {
		top[i] = matches[i].chunk
	}
	return top
}

// idfMap computes a smoothed inverse document frequency for every term
// in the corpus: ln((N+1)/(df+0.5)) + 1. Recomputed per query since the
// corpus may have changed between calls.
func idfMap(chunks []domain.Chunk) map[string]float64 {
	df := make(map[string]int)
	for _, ch := range chunks {
		seen := make(map[string]struct{})
		for _, t := range text.Tokenize(ch.Text) {
			seen[t] = struct{}{}
		}
		for t := range seen {
			df[t]++
		}
	}

	n := len(chunks)
	if n < 1 {
		n = 1
	}
	idf := make(map[string]float64, len(df))
	for t, d := range df {
		idf[t] = math.Log(float64(n+1)/(float64(d)+0.5)) + 1.0
	}
	return idf
}

// scoreChunk sums (tf/chunkLen)*idf over the unique query terms present
// in the chunk. Terms are visited in first-appearance order so repeated
// calls add the floats in the same order.
func scoreChunk(queryTerms []string, chunkText string, idf map[string]float64) float64 {
	terms := text.Tokenize(chunkText)
	if len(terms) == 0 {
		return 0
	}

	tf := make(map[string]int, len(terms))
	for _, t := range terms {
		tf[t]++
	}

	score := 0.0
	for _, q := range queryTerms {
		if count, ok := tf[q]; ok {
			w, ok := idf[q]
			if !ok {
				w = 1.0
			}
			score += (float64(count) / float64(len(terms))) * w
		}
	}
	return score
}

// uniqueTerms deduplicates tokens preserving first-appearance order.
func uniqueTerms(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
