// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report assembles the six analysis results into one review
// report and renders it as a Markdown document. Assembly is pure
// aggregation: the only decisions are the fixed section order and the
// fixed closing templates.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/review-engine/pkg/types"
)

// Title is the fixed report title.
const Title = "文学/美学/艺术学论文深度审核报告"

// Assemble merges the analysis results into a Report. The academic
// position paragraph and the restructuring suggestions come from the
// rule tables; everything else is handed through unchanged.
func Assemble(
	diagnosis types.Diagnosis,
	theories []string,
	lineage types.LineageAnalysis,
	interpretation types.Interpretation,
	citationIssues []string,
	disc types.DiscourseAnalysis,
	academicPosition string,
	restructuring []string,
) *types.Report {
	return &types.Report{
		ID:          uuid.NewString(),
		Title:       Title,
		GeneratedAt: time.Now(),
		Diagnosis:   diagnosis,
		Perspective: types.Perspective{
			CoreTheories:     theories,
			Lineage:          lineage,
			Interpretation:   interpretation,
			AcademicPosition: academicPosition,
		},
		Surgery: types.Surgery{
			CitationIssues:           citationIssues,
			Discourse:                disc,
			RestructuringSuggestions: restructuring,
		},
	}
}
