// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract scans raw manuscript text for theory terms and
// citation spans. It is the lexical front end of the pipeline: pure
// pattern matching, no interpretation of what it finds.
package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/review-engine/pkg/types"
)

// Citation span patterns.
var (
	// ismRe matches capitalized foreign school names ending in -ism,
	// e.g. Formalism, Structuralism.
	ismRe = regexp.MustCompile(`\b[A-Z][a-zA-Z]*ism\b`)

	// classicRe matches titles inside Chinese book-title marks 《…》.
	classicRe = regexp.MustCompile(`《([^》]+)》`)

	// foreignRe matches any capitalized word run. It over-matches on
	// purpose: sentence-initial English words hit it too. Consumers must
	// treat results as candidates and filter by table lookup.
	foreignRe = regexp.MustCompile(`\b([A-Z][a-zA-Z]+)\b`)

	// modernRe matches the modern-paper citation sentence shape:
	// 作者《标题》，《刊名》YYYY年第N期.
	modernRe = regexp.MustCompile(`(\p{Han}+)《([^》]+)》，《([^》]+)》(\d{4})年第(\d+)期`)
)

// TheoryTerms returns the theory-school names present in text: every
// vocabulary entry occurring as a substring, plus every capitalized
// "-ism" token found verbatim. The result is deduplicated and sorted,
// so it does not depend on vocabulary iteration order. Empty text
// yields an empty set.
func TheoryTerms(text string, vocabulary []string) []string {
	seen := make(map[string]bool)

	for _, term := range vocabulary {
		if strings.Contains(text, term) {
			seen[term] = true
		}
	}
	for _, term := range ismRe.FindAllString(text, -1) {
		seen[term] = true
	}

	terms := make([]string, 0, len(seen))
	for term := range seen {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// Citations runs the three independent citation span scans over text.
// No normalization or deduplication is performed; each sequence is in
// discovery order.
func Citations(text string) types.CitationBundle {
	var bundle types.CitationBundle

	for _, m := range classicRe.FindAllStringSubmatch(text, -1) {
		bundle.ChineseClassics = append(bundle.ChineseClassics, m[1])
	}

	for _, m := range foreignRe.FindAllStringSubmatch(text, -1) {
		bundle.ForeignTokens = append(bundle.ForeignTokens, m[1])
	}

	for _, m := range modernRe.FindAllStringSubmatch(text, -1) {
		bundle.ModernPapers = append(bundle.ModernPapers, types.ModernCitation{
			Author: m[1],
			Title:  m[2],
			Venue:  m[3],
			Year:   m[4],
			Issue:  m[5],
		})
	}

	return bundle
}
