// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package review orchestrates the three-stage manuscript review:
// diagnosis (hard errors), perspective (theoretical footing), and
// surgery (revision guidance). Every stage is a pure function of the
// manuscript text and the rule tables, so the whole pipeline is
// deterministic up to the report timestamp.
package review

import (
	"fmt"

	"github.com/pdiddy/review-engine/internal/citecheck"
	"github.com/pdiddy/review-engine/internal/diagnose"
	"github.com/pdiddy/review-engine/internal/discourse"
	"github.com/pdiddy/review-engine/internal/extract"
	"github.com/pdiddy/review-engine/internal/interpret"
	"github.com/pdiddy/review-engine/internal/lineage"
	"github.com/pdiddy/review-engine/internal/report"
	"github.com/pdiddy/review-engine/internal/rules"
	"github.com/pdiddy/review-engine/pkg/types"
)

// Run reviews one manuscript text against rs and returns the assembled
// report. It is the pipeline's single entry point: the surrounding CLI
// hands in a string and receives a Report. Failure is all-or-nothing;
// no partial report is produced.
func Run(text string, rs *rules.Ruleset) (*types.Report, error) {
	if err := rs.Compile(); err != nil {
		return nil, fmt.Errorf("preparing ruleset: %w", err)
	}

	diagnosis := diagnose.Run(text, rs)

	theories := extract.TheoryTerms(text, rs.TheoryVocabulary)
	citations := extract.Citations(text)

	lineageAnalysis := lineage.Analyze(theories, rs)
	interpretation := interpret.Evaluate(text)

	citationIssues := citecheck.Audit(citations, rs)
	discourseAnalysis := discourse.Review(text)

	return report.Assemble(
		diagnosis,
		theories,
		lineageAnalysis,
		interpretation,
		citationIssues,
		discourseAnalysis,
		rs.AcademicPosition,
		rs.Restructuring,
	), nil
}
