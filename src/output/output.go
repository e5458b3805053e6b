package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/anasfik/nostr/src/lint"
	"github.com/anasfik/nostr/src/site"
)

// Colors for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// UseColor returns true if colored output should be used.
// Respects NO_COLOR env, TERM=dumb, and terminal detection.
func UseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal() || IsCI()
}

// FindingsSummaryLine returns a one-line findings summary, optionally colored.
func FindingsSummaryLine(total, critical, warning, info, fieldsScanned int, color bool) string {
	parts := []string{}
	if critical > 0 {
		s := fmt.Sprintf("%d critical", critical)
		if color {
			s = colorRed + s + colorReset
		}
		parts = append(parts, s)
	}
	if warning > 0 {
		s := fmt.Sprintf("%d warning", warning)
		if color {
			s = colorYellow + s + colorReset
		}
		parts = append(parts, s)
	}
	if info > 0 {
		parts = append(parts, fmt.Sprintf("%d info", info))
	}

	summary := "no findings"
	if len(parts) > 0 {
		summary = strings.Join(parts, ", ")
	}

	totalStr := fmt.Sprintf("%d", total)
	if color {
		totalStr = colorBold + totalStr + colorReset
	}
	return fmt.Sprintf("%s findings in %d fields: %s", totalStr, fieldsScanned, summary)
}

// severityTag returns a short severity label, optionally colored.
func severityTag(s lint.Severity, color bool) string {
	var tag, c string
	switch s {
	case lint.SeverityCritical:
		tag, c = "CRIT", colorRed
	case lint.SeverityWarning:
		tag, c = "WARN", colorYellow
	case lint.SeverityInfo:
		tag, c = "INFO", colorGray
	default:
		return s.String()
	}
	if !color {
		return tag
	}
	return c + tag + colorReset
}

// LintTable writes a per-module stats table inside a section.
func LintTable(w io.Writer, stats []lint.ModuleStats) {
	fmt.Fprintf(w, "    │ %-16s%6s  %8s  %s\n", "module", "fields", "findings", "elapsed")
	for _, s := range stats {
		fmt.Fprintf(w, "    │ %-16s%6d  %8d  %s\n", s.Name, s.Fields, s.Findings, formatElapsed(s.Elapsed))
	}
}

// SectionFindings renders findings grouped by field inside a section.
// Findings must already be sorted by field (lint.Engine does this).
func SectionFindings(sec *Section, findings []lint.Finding, color bool) {
	if len(findings) == 0 {
		return
	}

	sec.Row("")
	current := ""
	for i, f := range findings {
		if i == 0 || f.Field != current {
			if i > 0 {
				sec.Row("")
			}
			current = f.Field
			if color {
				sec.Row("%s", colorBold+f.Field+colorReset)
			} else {
				sec.Row("%s", f.Field)
			}
		}
		loc := "-"
		if f.Column > 0 {
			loc = fmt.Sprintf("col %d", f.Column)
		}
		sec.Row("  %-7s %-4s  %-8s %s", loc, severityTag(f.Severity, color), f.Module, f.Message)
	}
	sec.Row("")
}

// SectionValidation renders every violation of a failed build, one row
// per field.
func SectionValidation(sec *Section, verr *site.ValidationError, color bool) {
	for _, fe := range verr.Errors() {
		field := fe.Field
		if color {
			field = colorBold + field + colorReset
		}
		sec.Row("%s %s: %s", StatusIcon("failed", color), field, fe.Message)
	}
}

// SectionWarnings renders soft issues reported by validation.
func SectionWarnings(sec *Section, warnings []string, color bool) {
	for _, w := range warnings {
		sec.Row("%s %s", severityTag(lint.SeverityWarning, color), w)
	}
}

// RowStatus writes a row with label, detail, and a status icon.
func RowStatus(sec *Section, label, detail, status string, color bool) {
	icon := StatusIcon(status, color)
	if detail != "" {
		sec.Row("%s: %s %s", label, detail, icon)
	} else {
		sec.Row("%s %s", label, icon)
	}
}
