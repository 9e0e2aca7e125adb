// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/review-engine/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect and manage the review rule tables",
	Long: `Rules manages the tables that configure every review check: the
theory vocabulary, typo corrections, term-confusion patterns, lineage
classes, canonical classics, and the mistranslation table.

Use init to write the built-in tables to a YAML file for editing, show
to print a ruleset, and import to load a ruleset into a SQLite rule
database.`,
}

// --- init subcommand ---

var rulesInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the built-in rule tables to a YAML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "rules.yaml"
		if len(args) > 0 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("refusing to overwrite existing %s", path)
		}
		if err := rules.WriteFile(path, rules.Default()); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Ruleset written to %s\n", path)
		return nil
	},
}

// --- show subcommand ---

var rulesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a ruleset as YAML",
	Long: `Show prints the built-in rule tables, or the contents of --rules or
--rules-db, as YAML on stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := loadRuleset(cmd)
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(rs)
		if err != nil {
			return fmt.Errorf("marshaling ruleset: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

// --- import subcommand ---

var rulesImportCmd = &cobra.Command{
	Use:   "import <db-path> [ruleset.yaml]",
	Short: "Load a ruleset into a SQLite rule database",
	Long: `Import writes a ruleset into a SQLite rule database, replacing any
tables already stored there. Without a YAML argument the built-in
tables are imported. The ruleset is compiled first, so a malformed
confusion pattern fails the import instead of a later review.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rs := rules.Default()
		if len(args) > 1 {
			var err error
			rs, err = rules.ReadFile(args[1])
			if err != nil {
				return err
			}
		}
		if err := rs.Compile(); err != nil {
			return fmt.Errorf("validating ruleset: %w", err)
		}

		store, err := rules.Open(args[0])
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Import(rs); err != nil {
			return fmt.Errorf("importing ruleset: %w", err)
		}

		logger.Info("Ruleset imported",
			zap.String("db", args[0]),
			zap.Int("vocabulary", len(rs.TheoryVocabulary)),
			zap.Int("typos", len(rs.Typos)),
			zap.Int("translations", len(rs.Translations)))
		fmt.Fprintf(os.Stderr, "Ruleset imported into %s\n", args[0])
		return nil
	},
}

func init() {
	rulesShowCmd.Flags().String("rules", "", "YAML ruleset file to show")
	rulesShowCmd.Flags().String("rules-db", "", "SQLite rule database to show")

	rulesCmd.AddCommand(rulesInitCmd)
	rulesCmd.AddCommand(rulesShowCmd)
	rulesCmd.AddCommand(rulesImportCmd)

	rootCmd.AddCommand(rulesCmd)
}
