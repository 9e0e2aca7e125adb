package discourse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReviewTransplantPattern(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "western theory applied to chinese practice",
			text: "将西方的理论直接套用于中国的艺术实践。",
			want: 1,
		},
		{
			name: "pattern repeated still warns once",
			text: "西方理论与中国语境；再看西方理论在中国的旅行。",
			want: 1,
		},
		{
			name: "wrong order",
			text: "中国学界对理论的消化先于对西方的引介。",
			want: 0,
		},
		{
			name: "missing marker",
			text: "西方理论自身的谱系演变。",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			da := Review(tt.text)
			assert.Len(t, da.LogicIssues, tt.want)
		})
	}
}

func TestReviewJargonOverload(t *testing.T) {
	// 21 suffix-marked terms: above the threshold.
	dense := strings.Repeat("解构主义，", 21)
	da := Review(dense)
	assert.Equal(t, []string{"使用了过多的学术术语，可能掩盖思想的贫瘠"}, da.DiscourseIssues)

	// Exactly at the threshold: no warning.
	sparse := strings.Repeat("解构主义，", 20)
	assert.Empty(t, Review(sparse).DiscourseIssues)
}

func TestReviewCleanText(t *testing.T) {
	da := Review("一段朴素的文字。")
	assert.Empty(t, da.DiscourseIssues)
	assert.Empty(t, da.LogicIssues)
}
