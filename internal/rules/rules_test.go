package rules

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/review-engine/pkg/types"
)

func TestDefaultLookups(t *testing.T) {
	rs := Default()

	assert.Equal(t, types.TheoryWestern, rs.Classify("解构主义"))
	assert.Equal(t, types.TheoryChinese, rs.Classify("物感"))
	assert.Equal(t, types.TheoryOther, rs.Classify("叙事学"))
	assert.Equal(t, types.TheoryOther, rs.Classify(""))

	assert.True(t, rs.IsClassic("文心雕龙"))
	assert.False(t, rs.IsClassic("文心雕龙注"))

	std, ok := rs.Translation("Heidegger")
	require.True(t, ok)
	assert.Equal(t, "海德格尔", std)

	_, ok = rs.Translation("Kant")
	assert.False(t, ok)
}

func TestCompile(t *testing.T) {
	rs := Default()
	require.NoError(t, rs.Compile())

	compiled := rs.CompiledConfusions()
	require.Len(t, compiled, len(rs.Confusions))
	assert.True(t, compiled[0].Re.MatchString("解构主义与结构主义"))
	assert.Equal(t, "混淆了解构主义和结构主义", compiled[0].Description)
}

// A malformed table entry must surface at compile time, not mid-review.
func TestCompileMalformedPattern(t *testing.T) {
	rs := Default()
	rs.Confusions = append(rs.Confusions, ConfusionRule{Pattern: "(", Description: "broken"})

	err := rs.Compile()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "confusion pattern")
}

func TestCompiledConfusionsNilBeforeCompile(t *testing.T) {
	assert.Nil(t, Default().CompiledConfusions())
}

func TestYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	want := Default()

	require.NoError(t, WriteFile(path, want))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestReadFileMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, writeTestFile(path, "typos: [unclosed"))

	_, err := ReadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing ruleset file")
}
