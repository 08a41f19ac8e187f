package service

import (
	"strings"
	"unicode"

	"billy-chat/internal/models"
)

// NormalizeText canonicalizes text for substring comparison: lowercase with
// all whitespace and the punctuation set `, . ? ! ~` removed. Idempotent.
func NormalizeText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsSpace(r) {
			continue
		}
		switch r {
		case ',', '.', '?', '!', '~':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeLoose is the legacy normalization: lowercase, the punctuation set
// `! ? . , ; :` removed and runs of whitespace collapsed to single spaces.
// Idempotent.
func NormalizeLoose(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch r {
		case '!', '?', '.', ',', ';', ':':
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// ExpandQuery expands a query into its synonym-equivalence set. The
// normalized original is always present; any synonym group whose canonical
// term or alternate occurs in the normalized query contributes its full
// membership, normalized and deduplicated. One matching word pulls in the
// entire group, in both directions.
func ExpandQuery(query string, synonyms models.SynonymTable) []string {
	normalized := NormalizeText(query)

	seen := map[string]bool{normalized: true}
	variants := []string{normalized}
	add := func(term string) {
		if term == "" || seen[term] {
			return
		}
		seen[term] = true
		variants = append(variants, term)
	}

	for canonical, alternates := range synonyms {
		nc := NormalizeText(canonical)
		activated := nc != "" && strings.Contains(normalized, nc)
		if !activated {
			for _, alt := range alternates {
				na := NormalizeText(alt)
				if na != "" && strings.Contains(normalized, na) {
					activated = true
					break
				}
			}
		}
		if !activated {
			continue
		}
		add(nc)
		for _, alt := range alternates {
			add(NormalizeText(alt))
		}
	}

	return variants
}
