// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package discourse reviews rhetorical and logical posture: jargon
// density on the discourse side, theory-transplant patterns on the logic
// side. Both checks are coarse co-occurrence heuristics, not grammatical
// analysis.
package discourse

import (
	"regexp"
	"strings"

	"github.com/pdiddy/review-engine/pkg/types"
)

var (
	// jargonRe matches Han runs ending in an academic suffix marker
	// (主义/理论/转向/维度/谱系).
	jargonRe = regexp.MustCompile(`\p{Han}+[主义理论转向维度谱系]`)

	// transplantRe matches 西方…理论…中国 in left-to-right order, read as
	// a Western framework applied to Chinese practice unadapted.
	transplantRe = regexp.MustCompile(`西方.*理论.*中国`)
)

// jargonThreshold is the jargon-marker count above which the overload
// warning fires.
const jargonThreshold = 20

// Review scans text for discourse and logic issues. The transplant check
// emits at most one warning regardless of how often the pattern occurs.
func Review(text string) types.DiscourseAnalysis {
	var da types.DiscourseAnalysis

	if len(jargonRe.FindAllString(text, -1)) > jargonThreshold {
		da.DiscourseIssues = append(da.DiscourseIssues, "使用了过多的学术术语，可能掩盖思想的贫瘠")
	}

	if strings.Contains(text, "西方") && strings.Contains(text, "中国") && transplantRe.MatchString(text) {
		da.LogicIssues = append(da.LogicIssues, "存在将西方理论直接套用于中国艺术实践的倾向，需注意避免理论殖民")
	}

	return da
}
