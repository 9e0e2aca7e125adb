// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data model shared across the review pipeline:
// extracted citation spans, per-stage analysis records, and the assembled
// report. Every value here is a pure function of the manuscript text and
// the rule tables; nothing is mutated after creation.
package types

// ModernCitation is a modern-paper citation matched against the fixed
// sentence shape 作者《标题》，《刊名》YYYY年第N期.
type ModernCitation struct {
	// Author is the cited author name as it appears before the title.
	Author string `json:"author" yaml:"author"`

	// Title is the cited paper title.
	Title string `json:"title" yaml:"title"`

	// Venue is the journal the paper appeared in.
	Venue string `json:"venue" yaml:"venue"`

	// Year is the four-digit publication year.
	Year string `json:"year" yaml:"year"`

	// Issue is the issue number within the year.
	Issue string `json:"issue" yaml:"issue"`
}

// CitationBundle holds the three citation span sequences extracted from a
// manuscript, each in discovery order.
type CitationBundle struct {
	// ChineseClassics are titles found inside Chinese book-title marks 《…》.
	ChineseClassics []string `json:"chinese_classics" yaml:"chinese_classics"`

	// ForeignTokens are capitalized word runs. The pattern over-matches on
	// purpose; entries are candidate names, not confirmed citations, and
	// are filtered downstream by table lookup.
	ForeignTokens []string `json:"foreign_texts" yaml:"foreign_texts"`

	// ModernPapers are citations matching the modern-paper sentence shape.
	ModernPapers []ModernCitation `json:"modern_papers" yaml:"modern_papers"`
}

// Diagnosis is the first-stage result: surface-level hard errors found by
// table lookup. Both lists are in table order.
type Diagnosis struct {
	// Typos are known incorrect-term usages, each naming the wrong and
	// corrected forms.
	Typos []string `json:"typos" yaml:"typos"`

	// TermMisuses are descriptions of conflated concept pairs.
	TermMisuses []string `json:"term_misuses" yaml:"term_misuses"`
}

// Empty reports whether the diagnosis found no issues.
func (d Diagnosis) Empty() bool {
	return len(d.Typos) == 0 && len(d.TermMisuses) == 0
}

// TheoryClass is the lineage classification of a theory term.
type TheoryClass string

const (
	// TheoryWestern marks curated Western-canonical schools.
	TheoryWestern TheoryClass = "western"

	// TheoryChinese marks curated China-specific concepts.
	TheoryChinese TheoryClass = "china-specific"

	// TheoryOther marks terms outside both curated sets.
	TheoryOther TheoryClass = "other"
)

// LineageAnalysis records the genealogy assessment of the manuscript's
// theory terms: one remark per term, plus recommended further reading for
// terms in the curated classes.
type LineageAnalysis struct {
	Solid   []string `json:"solid_theories" yaml:"solid_theories"`
	Missing []string `json:"missing_literature" yaml:"missing_literature"`
}

// Depth grades how deep the manuscript's textual interpretation goes.
type Depth string

const (
	DepthMedium Depth = "中等"
	DepthDeep   Depth = "较深"
)

// Originality grades the interpretation's originality.
type Originality string

const (
	OriginalityAverage Originality = "一般"
	OriginalityGood    Originality = "较好"
)

// Interpretation is the evaluation of the manuscript's textual
// interpretation from surface cues.
type Interpretation struct {
	Depth       Depth       `json:"depth" yaml:"depth"`
	Originality Originality `json:"originality" yaml:"originality"`
	Issues      []string    `json:"issues" yaml:"issues"`
}

// DiscourseAnalysis records stylistic and logical findings: jargon
// overload on the discourse side, theory-transplant patterns on the
// logic side.
type DiscourseAnalysis struct {
	DiscourseIssues []string `json:"discourse_issues" yaml:"discourse_issues"`
	LogicIssues     []string `json:"logic_issues" yaml:"logic_issues"`
}
