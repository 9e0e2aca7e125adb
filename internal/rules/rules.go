// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rules holds the static tables that configure the review
// pipeline: the theory vocabulary, the typo and term-confusion screens,
// the lineage classification, the canonical-classics list, and the
// mistranslation table. The tables are the system's real configuration
// surface: swapping a table changes review behavior without touching any
// analyzer. Tables are ordered association lists, not maps, because
// every matching entry applies and application order is part of the
// contract.
package rules

import (
	"fmt"
	"regexp"

	"github.com/pdiddy/review-engine/pkg/types"
)

// TypoFix maps an incorrect surface form to its corrected form.
type TypoFix struct {
	Wrong string `json:"wrong" yaml:"wrong"`
	Right string `json:"right" yaml:"right"`
}

// ConfusionRule pairs a co-occurrence regex with the description emitted
// when it matches. The pattern requires two terms to appear in
// left-to-right order anywhere in the text, a proxy for the two concepts
// being conflated.
type ConfusionRule struct {
	Pattern     string `json:"pattern" yaml:"pattern"`
	Description string `json:"description" yaml:"description"`
}

// Translation maps a foreign name to its standard Chinese rendering.
type Translation struct {
	Foreign  string `json:"foreign" yaml:"foreign"`
	Standard string `json:"standard" yaml:"standard"`
}

// CompiledConfusion is a ConfusionRule with its pattern compiled.
type CompiledConfusion struct {
	Re          *regexp.Regexp
	Description string
}

// Ruleset bundles every rule table the pipeline consumes. A Ruleset must
// be compiled before its confusion rules are used.
type Ruleset struct {
	// TheoryVocabulary lists the known theory-school names matched as
	// substrings of the manuscript.
	TheoryVocabulary []string `json:"theory_vocabulary" yaml:"theory_vocabulary"`

	// Typos is the incorrect-term correction table, in application order.
	Typos []TypoFix `json:"typos" yaml:"typos"`

	// Confusions is the term-confusion pattern list, in application order.
	Confusions []ConfusionRule `json:"confusions" yaml:"confusions"`

	// WesternCanon and ChineseCanon are the two curated lineage classes;
	// terms in neither fall back to the default class.
	WesternCanon []string `json:"western_canon" yaml:"western_canon"`
	ChineseCanon []string `json:"chinese_canon" yaml:"chinese_canon"`

	// Classics are titles that require an edition and page citation.
	Classics []string `json:"classics" yaml:"classics"`

	// Translations is the mistranslation table for foreign names.
	Translations []Translation `json:"translations" yaml:"translations"`

	// Restructuring is the fixed closing suggestion list of the report.
	Restructuring []string `json:"restructuring" yaml:"restructuring"`

	// AcademicPosition is the report's fixed academic-position paragraph.
	AcademicPosition string `json:"academic_position" yaml:"academic_position"`

	compiled []CompiledConfusion
}

// Default returns the built-in rule tables.
func Default() *Ruleset {
	return &Ruleset{
		TheoryVocabulary: []string{
			"解构主义", "物感", "向心补偿", "现象学", "存在主义", "结构主义",
			"后现代主义", "生态美学", "数字美学", "媒介考古学", "阐释学",
			"接受美学", "新批评", "文化研究", "女性主义", "后殖民主义",
			"精神分析", "符号学", "叙事学", "修辞学", "形式主义",
		},
		Typos: []TypoFix{
			{Wrong: "现象学主义", Right: "现象学"},
			{Wrong: "黑格尔", Right: "海德格尔"},
			{Wrong: "解构论", Right: "解构主义"},
			{Wrong: "文心雕龙注", Right: "文心雕龙"},
		},
		Confusions: []ConfusionRule{
			{Pattern: "解构主义.*结构主义", Description: "混淆了解构主义和结构主义"},
			{Pattern: "物感.*物化", Description: "混淆了物感和物化概念"},
		},
		WesternCanon: []string{"解构主义", "现象学"},
		ChineseCanon: []string{"物感", "向心补偿"},
		Classics:     []string{"文心雕龙", "诗品", "人间词话"},
		Translations: []Translation{
			{Foreign: "Heidegger", Standard: "海德格尔"},
			{Foreign: "Hegel", Standard: "黑格尔"},
			{Foreign: "Nietzsche", Standard: "尼采"},
		},
		Restructuring: []string{
			"强化理论与文本的结合，避免生搬硬套",
			"补充该领域的最新研究成果",
			"加强对当代艺术实践的观照",
			"优化学术话语，避免过度使用术语",
			"注意引文的规范性和准确性",
		},
		AcademicPosition: "论文观点处于传统研究与当代前沿之间，具有一定的学术价值，但缺乏对最新研究成果的关注",
	}
}

// Compile compiles the confusion patterns. It must run before
// CompiledConfusions and reports the first malformed table entry.
func (r *Ruleset) Compile() error {
	compiled := make([]CompiledConfusion, 0, len(r.Confusions))
	for _, rule := range r.Confusions {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return fmt.Errorf("compiling confusion pattern %q: %w", rule.Pattern, err)
		}
		compiled = append(compiled, CompiledConfusion{Re: re, Description: rule.Description})
	}
	r.compiled = compiled
	return nil
}

// CompiledConfusions returns the confusion rules compiled by Compile,
// in table order. Nil before Compile has run.
func (r *Ruleset) CompiledConfusions() []CompiledConfusion {
	return r.compiled
}

// Classify resolves a theory term against the curated lineage classes.
func (r *Ruleset) Classify(term string) types.TheoryClass {
	for _, t := range r.WesternCanon {
		if t == term {
			return types.TheoryWestern
		}
	}
	for _, t := range r.ChineseCanon {
		if t == term {
			return types.TheoryChinese
		}
	}
	return types.TheoryOther
}

// IsClassic reports whether title is on the canonical-classics list.
func (r *Ruleset) IsClassic(title string) bool {
	for _, t := range r.Classics {
		if t == title {
			return true
		}
	}
	return false
}

// Translation returns the standard rendering for a foreign name, if the
// name is in the mistranslation table.
func (r *Ruleset) Translation(name string) (string, bool) {
	for _, t := range r.Translations {
		if t.Foreign == name {
			return t.Standard, true
		}
	}
	return "", false
}
