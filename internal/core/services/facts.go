package services

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/domain"
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/text"
)

// Fixed pattern rules for mining structured facts out of assembled
// context. Extraction is deterministic and never fails: a pattern that
// does not match simply leaves its field unset.
var (
	dateRe = regexp.MustCompile(`\b[0-3]?\d/[0-1]?\d/\d{4}\b`)
	timeRe = regexp.MustCompile(`\b([01]?\d|2[0-3])[:hH.]([0-5]\d)\b`)
	linkRe = regexp.MustCompile(`(?i)https?://[^\s)]+`)

	// Windowed number-before-"dias" patterns. Validity anchors on
	// "validade" with "proposta" as fallback; the deadline anchors on
	// "prazo" with "entrega" as fallback. The last match wins within
	// each anchor: closer numeric mentions are the likelier ones.
	validadeRe = regexp.MustCompile(`validade[^.\n]{0,60}?(\d{2,3})\s*dias`)
	propostaRe = regexp.MustCompile(`proposta[^.\n]{0,60}?(\d{2,3})\s*dias`)
	prazoRe    = regexp.MustCompile(`prazo[^.\n]{0,100}?(\d{1,3})\s*dias`)
	entregaRe  = regexp.MustCompile(`entrega[^.\n]{0,100}?(\d{1,3})\s*dias`)

	bulletRe = regexp.MustCompile(`(?i)^([-•–·]\s|\(?[a-z]\)|\(?\d+\))`)
)

// platformKeys is the ordered list of known procurement platforms.
// The first keyword found in the context wins; order is part of the
// observable contract.
var platformKeys = []string{
	"comprasnet", "compras gov", "bbmnet", "bnc", "banco do brasil",
	"portal de compras públicas", "pcp", "licitanet", "compras pará",
	"bionexo", "sei", "licitacoes-e", "gov.br",
}

// habKeys flag lines likely to belong to a qualification-documents
// section.
var habKeys = []string{
	"habilita", "habilitac", "documentos", "regularidade",
	"qualificação", "certidão", "declaração",
}

// habItemCap bounds the collected qualification lines.
const habItemCap = 20

// ExtractFacts mines candidate structured facts from an assembled
// context string.
func ExtractFacts(contextText string) domain.Facts {
	var lines []string
	for _, ln := range strings.Split(contextText, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}
	joined := strings.ToLower(strings.Join(lines, " "))

	facts := domain.Facts{
		Dates:    dedupe(dateRe.FindAllString(contextText, -1)),
		Times:    extractTimes(contextText),
		Platform: detectPlatform(joined),
		Links:    capSlice(dedupe(linkRe.FindAllString(contextText, -1)), 3),
		Validity: lastWindowedMatch(joined, validadeRe, propostaRe),
		Deadline: lastWindowedMatch(joined, prazoRe, entregaRe),
	}
	facts.Habilitacao = extractHabilitacao(lines)
	return facts
}

// extractTimes normalises every time match to HH:MM, deduplicated in
// order of first appearance.
func extractTimes(contextText string) []string {
	var times []string
	for _, m := range timeRe.FindAllStringSubmatch(contextText, -1) {
		hour := m[1]
		if len(hour) == 1 {
			hour = "0" + hour
		}
		times = append(times, hour+":"+m[2])
	}
	return dedupe(times)
}

// detectPlatform returns the first known platform keyword present in
// the lowercased context, or empty when none matches.
func detectPlatform(joined string) string {
	for _, kw := range platformKeys {
		if strings.Contains(joined, kw) {
			return kw
		}
	}
	return ""
}

// lastWindowedMatch returns "<n> dias" for the last match of primary,
// falling back to the last match of secondary.
func lastWindowedMatch(joined string, primary, secondary *regexp.Regexp) string {
	for _, re := range []*regexp.Regexp{primary, secondary} {
		matches := re.FindAllStringSubmatch(joined, -1)
		if len(matches) > 0 {
			return matches[len(matches)-1][1] + " dias"
		}
	}
	return ""
}

// extractHabilitacao collects qualification-document lines: around each
// line containing a keyword it keeps, from the 3 lines before through
// the 7 after, the lines that look like list items or carry a keyword
// themselves.
func extractHabilitacao(lines []string) []string {
	var items []string
	for i, ln := range lines {
		if !containsAnyKey(strings.ToLower(ln)) {
			continue
		}
		start := i - 3
		if start < 0 {
			start = 0
		}
		end := i + 8
		if end > len(lines) {
			end = len(lines)
		}
		for _, w := range lines[start:end] {
			switch {
			case bulletRe.MatchString(strings.TrimSpace(w)):
				items = append(items, text.NormalizeSpace(w))
			case containsAnyKey(strings.ToLower(w)):
				items = append(items, text.NormalizeSpace(w))
			}
		}
	}

	seen := make(map[string]struct{}, len(items))
	clean := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok || utf8.RuneCountInString(it) <= 5 {
			continue
		}
		seen[it] = struct{}{}
		clean = append(clean, it)
	}
	return capSlice(clean, habItemCap)
}

func containsAnyKey(lower string) bool {
	for _, k := range habKeys {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// dedupe removes duplicates preserving first-seen order.
func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func capSlice(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}
