// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package interpret grades the depth and originality of a manuscript's
// textual interpretation from surface cues. The current heuristic is a
// single keyword branch standing in for deeper stylistic analysis.
package interpret

import (
	"strings"

	"github.com/pdiddy/review-engine/pkg/types"
)

// issueNoContemporary is the stock issue removed when the manuscript
// engages with contemporary practice.
const issueNoContemporary = "缺乏对当代艺术实践的观照"

// baselineIssues are the stock findings every evaluation starts from.
var baselineIssues = []string{
	"文本阐释较为表面，缺乏深入的文化语境分析",
	"理论与文本结合不够紧密，存在生搬硬套现象",
	issueNoContemporary,
}

// contemporaryKeywords upgrade the evaluation one level when present.
var contemporaryKeywords = []string{"当代艺术", "数字艺术"}

// Evaluate returns the interpretation grade for text. The baseline is
// medium depth and average originality with the three stock issues; a
// contemporary-practice keyword upgrades both grades and drops the
// contemporary-practice issue.
func Evaluate(text string) types.Interpretation {
	ev := types.Interpretation{
		Depth:       types.DepthMedium,
		Originality: types.OriginalityAverage,
		Issues:      append([]string(nil), baselineIssues...),
	}

	for _, kw := range contemporaryKeywords {
		if strings.Contains(text, kw) {
			ev.Depth = types.DepthDeep
			ev.Originality = types.OriginalityGood
			ev.Issues = dropIssue(ev.Issues, issueNoContemporary)
			break
		}
	}

	return ev
}

// dropIssue removes the first occurrence of issue from issues.
func dropIssue(issues []string, issue string) []string {
	for i, v := range issues {
		if v == issue {
			return append(issues[:i], issues[i+1:]...)
		}
	}
	return issues
}
