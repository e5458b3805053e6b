package config

import (
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/anasfik/nostr/src/site"
)

var identifierRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_.\-]*$`)

// Validate checks the docsite-level settings of a loaded Config. The site
// section is checked by site.Build, which reports field paths of its own.
// Returns warnings (soft issues) and a hard error if the config is invalid.
func Validate(cfg *Config) (warnings []string, err error) {
	var errs []string

	// ── Version ───────────────────────────────────────────────────────────

	if cfg.Version != CurrentVersion {
		errs = append(errs, fmt.Sprintf("version: must be %d, got %d (run `docsite migrate`)", CurrentVersion, cfg.Version))
	}

	// ── Output ────────────────────────────────────────────────────────────

	format, ferr := site.ParseFormat(cfg.Output.Format)
	if ferr != nil {
		errs = append(errs, "output.format: "+ferr.Error())
	}
	if cfg.Output.Path != "" {
		errs = append(errs, validateOutputPath(cfg.Output.Path, "output.path")...)
		if ferr == nil && !strings.HasSuffix(cfg.Output.Path, "."+string(format)) {
			warnings = append(warnings, fmt.Sprintf("output.path: %q does not end in .%s", cfg.Output.Path, format))
		}
	}

	// ── Lint ──────────────────────────────────────────────────────────────

	for i, pattern := range cfg.Lint.Exclude {
		if _, err := path.Match(pattern, ""); err != nil {
			errs = append(errs, fmt.Sprintf("lint.exclude[%d]: bad pattern %q", i, pattern))
		}
	}
	for name, mc := range cfg.Lint.Modules {
		if !isIdentifier(name) {
			errs = append(errs, fmt.Sprintf("lint.modules: key %q is not a valid identifier (must match [a-zA-Z][a-zA-Z0-9_.\\-]*)", name))
		}
		for i, pattern := range mc.Exclude {
			if _, err := path.Match(pattern, ""); err != nil {
				errs = append(errs, fmt.Sprintf("lint.modules.%s.exclude[%d]: bad pattern %q", name, i, pattern))
			}
		}
	}
	if cfg.Lint.JUnit != "" {
		errs = append(errs, validateOutputPath(cfg.Lint.JUnit, "lint.junit")...)
	}

	if len(errs) > 0 {
		return warnings, fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return warnings, nil
}

func isIdentifier(s string) bool {
	return identifierRe.MatchString(s)
}

// validateOutputPath checks that an output path is safe.
func validateOutputPath(p string, field string) []string {
	if filepath.IsAbs(p) {
		return []string{fmt.Sprintf("%s: output path %q must be relative, not absolute", field, p)}
	}
	if strings.HasPrefix(p, "~") {
		return []string{fmt.Sprintf("%s: output path %q must not start with ~", field, p)}
	}
	if len(p) >= 2 && p[1] == ':' && ((p[0] >= 'A' && p[0] <= 'Z') || (p[0] >= 'a' && p[0] <= 'z')) {
		return []string{fmt.Sprintf("%s: output path %q looks like a Windows drive path", field, p)}
	}
	if strings.Contains(p, "..") {
		return []string{fmt.Sprintf("%s: output path %q must not contain '..'", field, p)}
	}

	normalized := strings.TrimPrefix(p, "./")
	if clean := filepath.Clean(normalized); clean != normalized {
		return []string{fmt.Sprintf("%s: output path %q is not in canonical form (cleaned to %q)", field, p, clean)}
	}
	return nil
}
