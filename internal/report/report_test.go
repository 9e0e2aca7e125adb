package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/review-engine/pkg/types"
)

func TestAssemble(t *testing.T) {
	diagnosis := types.Diagnosis{Typos: []string{"t1"}}
	lineage := types.LineageAnalysis{Solid: []string{"s1"}}
	interpretation := types.Interpretation{Depth: types.DepthMedium, Originality: types.OriginalityAverage}
	disc := types.DiscourseAnalysis{LogicIssues: []string{"l1"}}

	r := Assemble(diagnosis, []string{"现象学"}, lineage, interpretation,
		[]string{"c1"}, disc, "POS", []string{"r1"})

	require.NotEmpty(t, r.ID)
	assert.Equal(t, Title, r.Title)
	assert.WithinDuration(t, time.Now(), r.GeneratedAt, time.Minute)
	assert.Equal(t, diagnosis, r.Diagnosis)
	assert.Equal(t, []string{"现象学"}, r.Perspective.CoreTheories)
	assert.Equal(t, "POS", r.Perspective.AcademicPosition)
	assert.Equal(t, []string{"c1"}, r.Surgery.CitationIssues)
	assert.Equal(t, []string{"r1"}, r.Surgery.RestructuringSuggestions)
}

// fullReport covers every section with one entry each and a fixed
// timestamp so the rendered bytes are stable.
func fullReport() *types.Report {
	return &types.Report{
		ID:          "test-report",
		Title:       Title,
		GeneratedAt: time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC),
		Diagnosis: types.Diagnosis{
			Typos: []string{"将\"解构论\"误写为\"解构主义\""},
		},
		Perspective: types.Perspective{
			CoreTheories: []string{"现象学"},
			Lineage: types.LineageAnalysis{
				Solid:   []string{"s1"},
				Missing: []string{"m1"},
			},
			Interpretation: types.Interpretation{
				Depth:       types.DepthMedium,
				Originality: types.OriginalityAverage,
				Issues:      []string{"i1"},
			},
			AcademicPosition: "POS",
		},
		Surgery: types.Surgery{
			CitationIssues: []string{"c1"},
			Discourse: types.DiscourseAnalysis{
				DiscourseIssues: []string{"d1"},
				LogicIssues:     []string{"l1"},
			},
			RestructuringSuggestions: []string{"r1", "r2"},
		},
	}
}

// The rendered shape is the external contract: fixed section order,
// fixed heading text, fixed templates.
func TestRenderFullReport(t *testing.T) {
	want := `# 文学/美学/艺术学论文深度审核报告

**审核日期**：2026-08-25 10:00:00

## 第一步：诊断结果

### 硬伤列表
- **typos**：
  - 将"解构论"误写为"解构主义"

## 第二步：透视分析

### 核心理论
- 现象学

### 理论谱系评估
- s1

### 缺失的关键文献
- m1

### 文本阐释评估
- **深度**：中等
- **独创性**：一般
- **存在的问题**：
  - i1

### 学术位置评估
POS

## 第三步：修改建议

### 引文问题
- c1

### 话语规范问题
- d1

### 审美逻辑问题
- l1

### 整体重构策略
- r1
- r2

## 最终评估
该论文具有一定的学术价值，但在理论深度、文本阐释和学术话语等方面仍有提升空间。通过上述修改建议，有望进一步增强其学术影响力和理论贡献。
`

	assert.Equal(t, want, Render(fullReport()))
}

func TestRenderDeterministic(t *testing.T) {
	r := fullReport()
	assert.Equal(t, Render(r), Render(r))
}

func TestRenderEmptyDiagnosisFallback(t *testing.T) {
	r := fullReport()
	r.Diagnosis = types.Diagnosis{}

	out := Render(r)
	assert.Contains(t, out, "### 硬伤列表\n- 未发现明显的硬伤\n")
	assert.NotContains(t, out, "**typos**")
}

// Empty surgery subsections disappear entirely instead of rendering
// empty headings.
func TestRenderOmitsEmptySurgerySections(t *testing.T) {
	r := fullReport()
	r.Surgery.CitationIssues = nil
	r.Surgery.Discourse = types.DiscourseAnalysis{}

	out := Render(r)
	assert.NotContains(t, out, "### 引文问题")
	assert.NotContains(t, out, "### 话语规范问题")
	assert.NotContains(t, out, "### 审美逻辑问题")
	assert.Contains(t, out, "### 整体重构策略")
}

func TestRenderSectionOrder(t *testing.T) {
	out := Render(fullReport())

	headings := []string{"## 第一步：诊断结果", "## 第二步：透视分析", "## 第三步：修改建议", "## 最终评估"}
	last := -1
	for _, h := range headings {
		idx := strings.Index(out, h)
		require.Greater(t, idx, last, "heading %q out of order", h)
		last = idx
	}
}
