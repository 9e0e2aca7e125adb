// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lineage assesses the scholarly genealogy of the theory terms a
// manuscript invokes: whether each school's intellectual history is
// adequately grounded, and what further reading would close the gap.
package lineage

import (
	"fmt"

	"github.com/pdiddy/review-engine/pkg/types"
)

// Lookup resolves a theory term's lineage class. The static rule tables
// satisfy it today; a network-backed literature search can replace them
// without touching the analyzer.
type Lookup interface {
	Classify(term string) types.TheoryClass
}

// Analyze classifies each term and emits one lineage remark per term.
// Terms in the two curated classes additionally get a synthesized
// further-reading citation. The recommendations come from a fixed table,
// not a live literature search; they are placeholders for the retrieval
// integration the Lookup seam exists for.
func Analyze(terms []string, lookup Lookup) types.LineageAnalysis {
	var la types.LineageAnalysis

	for _, term := range terms {
		switch lookup.Classify(term) {
		case types.TheoryWestern:
			la.Solid = append(la.Solid, fmt.Sprintf("理论\"%s\"的谱系较为清晰，但需补充最新研究成果", term))
			la.Missing = append(la.Missing, fmt.Sprintf("%s领域的最新研究：张三《%s的当代转向》，2024", term, term))
		case types.TheoryChinese:
			la.Solid = append(la.Solid, fmt.Sprintf("理论\"%s\"的中国特色鲜明，但需加强与西方理论的对话", term))
			la.Missing = append(la.Missing, fmt.Sprintf("%s与西方现象学比较研究：李四《从%s到现象学》，2023", term, term))
		default:
			la.Solid = append(la.Solid, fmt.Sprintf("理论\"%s\"的运用基本合理", term))
		}
	}

	return la
}
