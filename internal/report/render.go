// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"strings"

	"github.com/pdiddy/review-engine/pkg/types"
)

const dateFmt = "2006-01-02 15:04:05"

// finalAssessment closes every report. Fixed template, rendered
// unconditionally.
const finalAssessment = "该论文具有一定的学术价值，但在理论深度、文本阐释和学术话语等方面仍有提升空间。通过上述修改建议，有望进一步增强其学术影响力和理论贡献。"

// Render expands a Report into the Markdown review document. Section
// order and heading text are the external contract downstream consumers
// grep against; do not reorder or reword them. The diagnosis section
// falls back to a fixed no-findings line when empty; the three surgery
// subsections render only when non-empty.
func Render(r *types.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", r.Title)
	fmt.Fprintf(&b, "**审核日期**：%s\n\n", r.GeneratedAt.Format(dateFmt))

	b.WriteString("## 第一步：诊断结果\n\n")
	b.WriteString("### 硬伤列表\n")
	if r.Diagnosis.Empty() {
		b.WriteString("- 未发现明显的硬伤\n")
	} else {
		writeIssueGroup(&b, "typos", r.Diagnosis.Typos)
		writeIssueGroup(&b, "term_misuses", r.Diagnosis.TermMisuses)
	}

	b.WriteString("\n## 第二步：透视分析\n\n")

	b.WriteString("### 核心理论\n")
	fmt.Fprintf(&b, "- %s\n\n", strings.Join(r.Perspective.CoreTheories, ", "))

	b.WriteString("### 理论谱系评估\n")
	for _, line := range r.Perspective.Lineage.Solid {
		fmt.Fprintf(&b, "- %s\n", line)
	}

	b.WriteString("\n### 缺失的关键文献\n")
	for _, line := range r.Perspective.Lineage.Missing {
		fmt.Fprintf(&b, "- %s\n", line)
	}

	b.WriteString("\n### 文本阐释评估\n")
	fmt.Fprintf(&b, "- **深度**：%s\n", r.Perspective.Interpretation.Depth)
	fmt.Fprintf(&b, "- **独创性**：%s\n", r.Perspective.Interpretation.Originality)
	b.WriteString("- **存在的问题**：\n")
	for _, issue := range r.Perspective.Interpretation.Issues {
		fmt.Fprintf(&b, "  - %s\n", issue)
	}

	b.WriteString("\n### 学术位置评估\n")
	fmt.Fprintf(&b, "%s\n", r.Perspective.AcademicPosition)

	b.WriteString("\n## 第三步：修改建议\n\n")

	if len(r.Surgery.CitationIssues) > 0 {
		b.WriteString("### 引文问题\n")
		for _, issue := range r.Surgery.CitationIssues {
			fmt.Fprintf(&b, "- %s\n", issue)
		}
	}

	if len(r.Surgery.Discourse.DiscourseIssues) > 0 {
		b.WriteString("\n### 话语规范问题\n")
		for _, issue := range r.Surgery.Discourse.DiscourseIssues {
			fmt.Fprintf(&b, "- %s\n", issue)
		}
	}

	if len(r.Surgery.Discourse.LogicIssues) > 0 {
		b.WriteString("\n### 审美逻辑问题\n")
		for _, issue := range r.Surgery.Discourse.LogicIssues {
			fmt.Fprintf(&b, "- %s\n", issue)
		}
	}

	b.WriteString("\n### 整体重构策略\n")
	for _, suggestion := range r.Surgery.RestructuringSuggestions {
		fmt.Fprintf(&b, "- %s\n", suggestion)
	}

	b.WriteString("\n## 最终评估\n")
	b.WriteString(finalAssessment + "\n")

	return b.String()
}

// writeIssueGroup renders one labeled diagnosis bucket, skipping empty
// buckets.
func writeIssueGroup(b *strings.Builder, label string, issues []string) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintf(b, "- **%s**：\n", label)
	for _, issue := range issues {
		fmt.Fprintf(b, "  - %s\n", issue)
	}
}
