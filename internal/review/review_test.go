package review

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/review-engine/internal/report"
	"github.com/pdiddy/review-engine/internal/rules"
	"github.com/pdiddy/review-engine/pkg/types"
)

const sampleManuscript = `本文以解构主义为方法，解读《文心雕龙》的文体观。
Heidegger的存在论为此提供了参照，数字艺术的兴起则使问题更为迫切。
有论者将西方的理论直接套用于中国的批评实践，这一倾向值得警惕。`

func TestRunSample(t *testing.T) {
	rep, err := Run(sampleManuscript, rules.Default())
	require.NoError(t, err)

	assert.Equal(t, report.Title, rep.Title)
	assert.NotEmpty(t, rep.ID)
	assert.False(t, rep.GeneratedAt.IsZero())

	assert.Contains(t, rep.Perspective.CoreTheories, "解构主义")
	assert.Contains(t, rep.Surgery.CitationIssues, "《文心雕龙》引用时应标注具体版本和页码")
	assert.Contains(t, rep.Surgery.CitationIssues, "Heidegger的标准译名为\"海德格尔\"，请检查译名是否规范")
}

// A manuscript engaging digital art gets the upgraded interpretation
// grade and loses the contemporary-practice issue.
func TestRunContemporaryUpgrade(t *testing.T) {
	rep, err := Run("数字艺术重塑了审美经验的生成方式。", rules.Default())
	require.NoError(t, err)

	assert.Equal(t, types.DepthDeep, rep.Perspective.Interpretation.Depth)
	assert.NotContains(t, rep.Perspective.Interpretation.Issues, "缺乏对当代艺术实践的观照")
}

// 西方…理论…中国 in left-to-right order draws exactly one transplant
// warning.
func TestRunTransplantWarning(t *testing.T) {
	rep, err := Run("将西方的理论直接套用于中国的艺术实践。", rules.Default())
	require.NoError(t, err)

	require.Len(t, rep.Surgery.Discourse.LogicIssues, 1)
	assert.Contains(t, rep.Surgery.Discourse.LogicIssues[0], "理论殖民")
}

// Identical input and tables produce identical reports except for the
// generation identity.
func TestRunDeterministic(t *testing.T) {
	a, err := Run(sampleManuscript, rules.Default())
	require.NoError(t, err)
	b, err := Run(sampleManuscript, rules.Default())
	require.NoError(t, err)

	a.ID, b.ID = "", ""
	a.GeneratedAt = b.GeneratedAt
	assert.Equal(t, a, b)
}

func TestRunEmptyText(t *testing.T) {
	rep, err := Run("", rules.Default())
	require.NoError(t, err)

	assert.True(t, rep.Diagnosis.Empty())
	assert.Empty(t, rep.Perspective.CoreTheories)

	rendered := report.Render(rep)
	assert.Contains(t, rendered, "- 未发现明显的硬伤")
}

// A malformed confusion pattern fails the whole run; no partial report
// is produced.
func TestRunMalformedRuleset(t *testing.T) {
	rs := rules.Default()
	rs.Confusions = append(rs.Confusions, rules.ConfusionRule{Pattern: "[", Description: "broken"})

	rep, err := Run("任意文本", rs)
	require.Error(t, err)
	assert.Nil(t, rep)
}

// The rendered report keeps the three-stage section order.
func TestRunRenderedSectionOrder(t *testing.T) {
	rep, err := Run(sampleManuscript, rules.Default())
	require.NoError(t, err)

	out := report.Render(rep)
	first := strings.Index(out, "## 第一步：诊断结果")
	second := strings.Index(out, "## 第二步：透视分析")
	third := strings.Index(out, "## 第三步：修改建议")
	final := strings.Index(out, "## 最终评估")

	require.True(t, first >= 0 && second > first && third > second && final > third)
}
