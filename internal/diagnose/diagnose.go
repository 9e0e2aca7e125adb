// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package diagnose performs the first review stage: a screen for hard
// surface errors. It is a shallow lexical check against fixed tables,
// not semantic error detection — a manuscript that passes clean has
// merely avoided the known surface forms, and no false-negative
// guarantee is claimed.
package diagnose

import (
	"fmt"
	"strings"

	"github.com/pdiddy/review-engine/internal/rules"
	"github.com/pdiddy/review-engine/pkg/types"
)

// Run screens text against the typo-correction table and the
// term-confusion pattern list. Table entries are independent: every
// matching entry emits an issue, in table order. The ruleset must be
// compiled.
func Run(text string, rs *rules.Ruleset) types.Diagnosis {
	var d types.Diagnosis

	for _, fix := range rs.Typos {
		if strings.Contains(text, fix.Wrong) {
			d.Typos = append(d.Typos, fmt.Sprintf("将\"%s\"误写为\"%s\"", fix.Wrong, fix.Right))
		}
	}

	for _, rule := range rs.CompiledConfusions() {
		if rule.Re.MatchString(text) {
			d.TermMisuses = append(d.TermMisuses, rule.Description)
		}
	}

	return d
}
