// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Perspective is the second report section: the manuscript's theoretical
// footing and interpretive quality.
type Perspective struct {
	// CoreTheories are the theory terms found in the manuscript, sorted.
	CoreTheories []string `json:"core_theories" yaml:"core_theories"`

	// Lineage assesses each theory term's scholarly genealogy.
	Lineage LineageAnalysis `json:"theoretical_lineage" yaml:"theoretical_lineage"`

	// Interpretation grades the textual interpretation.
	Interpretation Interpretation `json:"interpretation_evaluation" yaml:"interpretation_evaluation"`

	// AcademicPosition is a single qualitative placement of the work
	// between traditional scholarship and the contemporary front line.
	AcademicPosition string `json:"academic_position" yaml:"academic_position"`
}

// Surgery is the third report section: concrete revision guidance.
type Surgery struct {
	// CitationIssues are edition/page reminders and translation corrections.
	CitationIssues []string `json:"citation_issues" yaml:"citation_issues"`

	// Discourse holds the stylistic and logic findings.
	Discourse DiscourseAnalysis `json:"aesthetic_analysis" yaml:"aesthetic_analysis"`

	// RestructuringSuggestions is the fixed closing suggestion list.
	RestructuringSuggestions []string `json:"restructuring_suggestions" yaml:"restructuring_suggestions"`
}

// Report is the complete review of one manuscript. It is assembled once
// from the six analysis results and consumed once by rendering; there is
// no further lifecycle.
type Report struct {
	// ID uniquely identifies this report generation.
	ID string `json:"id" yaml:"id"`

	// Title is the fixed report title.
	Title string `json:"title" yaml:"title"`

	// GeneratedAt is the report creation time, the only field that varies
	// between runs on identical input.
	GeneratedAt time.Time `json:"date" yaml:"date"`

	Diagnosis   Diagnosis   `json:"diagnosis" yaml:"diagnosis"`
	Perspective Perspective `json:"perspective" yaml:"perspective"`
	Surgery     Surgery     `json:"surgery" yaml:"surgery"`
}
