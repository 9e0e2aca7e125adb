// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citecheck audits extracted citation spans for formatting and
// translation problems against the reference tables.
package citecheck

import (
	"fmt"

	"github.com/pdiddy/review-engine/pkg/types"
)

// Reference answers the two lookups the audit needs. The static rule
// tables satisfy it; a citation-database client could as well.
type Reference interface {
	IsClassic(title string) bool
	Translation(name string) (string, bool)
}

// Audit runs two independent checks over the bundle: canonical classics
// get an edition/page reminder, and foreign-name candidates found in the
// mistranslation table get a standard-translation notice. Candidates
// missing from the table are dropped silently — that lookup is the
// filter for the extractor's over-broad capitalization pattern. Matches
// are not deduplicated: a name repeated in the text surfaces once per
// occurrence.
func Audit(bundle types.CitationBundle, ref Reference) []string {
	var issues []string

	for _, classic := range bundle.ChineseClassics {
		if ref.IsClassic(classic) {
			issues = append(issues, fmt.Sprintf("《%s》引用时应标注具体版本和页码", classic))
		}
	}

	for _, token := range bundle.ForeignTokens {
		if standard, ok := ref.Translation(token); ok {
			issues = append(issues, fmt.Sprintf("%s的标准译名为\"%s\"，请检查译名是否规范", token, standard))
		}
	}

	return issues
}
