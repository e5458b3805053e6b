package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/anasfik/nostr/src/lint"
	_ "github.com/anasfik/nostr/src/lint/modules"
	"github.com/anasfik/nostr/src/log"
	"github.com/anasfik/nostr/src/output"
)

var (
	lintModules  []string
	lintNoModule []string
	lintJUnit    string
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Run advisory checks on the assembled site config",
	Long: `Assemble the site config and run lint modules over every value.

Modules run in parallel. Critical findings (hidden bidi characters,
leaked credentials) fail the command; warnings and info do not.`,
	Args: cobra.NoArgs,
	RunE: runLint,
}

func init() {
	lintCmd.Flags().StringSliceVar(&lintModules, "module", nil, "run only these modules (comma-separated)")
	lintCmd.Flags().StringSliceVar(&lintNoModule, "no-module", nil, "skip these modules (comma-separated)")
	lintCmd.Flags().StringVar(&lintJUnit, "junit", "", "write a JUnit XML report to this path (default: lint.junit from config)")

	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	color := output.UseColor()
	w := os.Stdout
	logger := log.WithComponent("lint")

	built, _, err := assemble(w, color)
	if err != nil {
		return err
	}

	engine, err := lint.NewEngine(cfg.Lint, lintModules, lintNoModule)
	if err != nil {
		return err
	}
	logger.Debug().Strs("modules", engine.ModuleNames()).Msg("engine ready")

	fields, err := lint.Flatten(built)
	if err != nil {
		return err
	}

	start := time.Now()
	findings, modStats, runErr := engine.RunWithStats(context.Background(), fields)
	elapsed := time.Since(start)

	var critical, warning, info int
	for _, f := range findings {
		switch f.Severity {
		case lint.SeverityCritical:
			critical++
		case lint.SeverityWarning:
			warning++
		case lint.SeverityInfo:
			info++
		}
	}

	junit := lintJUnit
	if junit == "" {
		junit = cfg.Lint.JUnit
	}
	if junit != "" {
		if jErr := output.WriteLintJUnit(junit, findings, modStats, fields); jErr != nil {
			logger.Warn().Err(jErr).Msg("failed to write junit report")
		}
	}
	output.Annotate(w, configPath(), findings)

	// ── Lint section ──
	output.SectionStart(w, "docsite_lint", "Lint")
	sec := output.NewSection(w, "Lint", elapsed, color)
	output.LintTable(w, modStats)
	sec.Separator()
	sec.Row("%-16s%6d  %8d  (%d critical)", "total", len(fields), len(findings), critical)
	sec.Close()
	output.SectionEnd(w, "docsite_lint")

	// ── Findings section (only when findings > 0) ──
	if len(findings) > 0 {
		output.SectionStart(w, "docsite_findings", "Findings")
		fSec := output.NewSection(w, "Findings", 0, color)
		output.SectionFindings(fSec, findings, color)
		fSec.Separator()
		fSec.Row("%s", output.FindingsSummaryLine(len(findings), critical, warning, info, len(fields), color))
		fSec.Close()
		output.SectionEnd(w, "docsite_findings")
	}

	if runErr != nil {
		logger.Warn().Err(runErr).Msg("some modules failed")
	}

	if critical > 0 {
		return fmt.Errorf("lint failed: %d critical findings", critical)
	}
	return nil
}
