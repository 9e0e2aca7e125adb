// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/review-engine/internal/report"
	"github.com/pdiddy/review-engine/internal/review"
	"github.com/pdiddy/review-engine/internal/rules"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review one manuscript and print the report",
	Long: `Review runs the three-stage pipeline over a single manuscript text
given via --file or inline via --content, and prints the rendered
Markdown report to stdout or --output.

The rule tables default to the built-in set; --rules loads a YAML
ruleset file and --rules-db loads a SQLite rule database.`,
	RunE: runReview,
}

func runReview(cmd *cobra.Command, args []string) error {
	text, err := manuscriptText(cmd)
	if err != nil {
		return err
	}

	rs, err := loadRuleset(cmd)
	if err != nil {
		return err
	}

	logger.Info("Reviewing manuscript", zap.Int("chars", len([]rune(text))))

	rep, err := review.Run(text, rs)
	if err != nil {
		logger.Error("Review failed", zap.Error(err))
		return fmt.Errorf("reviewing manuscript: %w", err)
	}

	logger.Debug("Report assembled",
		zap.String("report_id", rep.ID),
		zap.Int("theories", len(rep.Perspective.CoreTheories)),
		zap.Int("citation_issues", len(rep.Surgery.CitationIssues)))

	rendered := report.Render(rep)

	if pretty, _ := cmd.Flags().GetBool("pretty"); pretty {
		rendered = prettyRender(rendered)
	}

	if out, _ := cmd.Flags().GetString("output"); out != "" {
		if err := os.WriteFile(out, []byte(rendered), 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Report written to %s\n", out)
		return nil
	}

	fmt.Print(rendered)
	return nil
}

// manuscriptText resolves the manuscript input: --file takes precedence
// over --content; neither is an error before the pipeline runs.
func manuscriptText(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading manuscript file: %w", err)
		}
		return string(data), nil
	}
	if content, _ := cmd.Flags().GetString("content"); content != "" {
		return content, nil
	}
	return "", fmt.Errorf("manuscript required: provide --file or --content")
}

// loadRuleset resolves the rule tables: --rules-db, then --rules, then
// the config file's rules.db / rules.file keys, then the built-in set.
func loadRuleset(cmd *cobra.Command) (*rules.Ruleset, error) {
	dbPath, _ := cmd.Flags().GetString("rules-db")
	if dbPath == "" {
		dbPath = viper.GetString("rules.db")
	}
	if dbPath != "" {
		store, err := rules.Open(dbPath)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		rs, err := store.Load()
		if err != nil {
			return nil, fmt.Errorf("loading rules from %s: %w", dbPath, err)
		}
		logger.Debug("Loaded ruleset", zap.String("source", dbPath))
		return rs, nil
	}

	filePath, _ := cmd.Flags().GetString("rules")
	if filePath == "" {
		filePath = viper.GetString("rules.file")
	}
	if filePath != "" {
		rs, err := rules.ReadFile(filePath)
		if err != nil {
			return nil, err
		}
		logger.Debug("Loaded ruleset", zap.String("source", filePath))
		return rs, nil
	}

	return rules.Default(), nil
}

// prettyRender styles the Markdown report for the terminal. Falls back
// to the plain report if the renderer cannot be built.
func prettyRender(markdown string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return markdown
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}

func init() {
	reviewCmd.Flags().String("file", "", "path to the manuscript file")
	reviewCmd.Flags().String("content", "", "manuscript text passed inline")
	reviewCmd.Flags().String("rules", "", "YAML ruleset file (default: built-in tables)")
	reviewCmd.Flags().String("rules-db", "", "SQLite rule database")
	reviewCmd.Flags().String("output", "", "write the report to a file instead of stdout")
	reviewCmd.Flags().Bool("pretty", false, "render the report with terminal styling")

	rootCmd.AddCommand(reviewCmd)
}
