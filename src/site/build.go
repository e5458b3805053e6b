// Package site assembles and validates the documentation-site configuration
// consumed by the site engine, and renders it in the engine's formats.
//
// Build is pure: it reads nothing but its Input and the clock, and the
// SiteConfig it returns shares no memory with the Input.
package site

import (
	"strconv"
	"strings"
	"time"
)

// YearPlaceholder is replaced with the current calendar year in the footer
// copyright text.
const YearPlaceholder = "{year}"

type buildOptions struct {
	now  func() time.Time
	warn func(string)
}

// Option configures Build.
type Option func(*buildOptions)

// WithClock sets the clock Build reads the copyright year from.
func WithClock(now func() time.Time) Option {
	return func(o *buildOptions) {
		o.now = now
	}
}

// WithWarnings registers a callback for soft validation issues. Warnings never
// fail a build.
func WithWarnings(fn func(string)) Option {
	return func(o *buildOptions) {
		o.warn = fn
	}
}

// Build assembles a SiteConfig from in. It returns a *ValidationError listing
// every violated invariant when the result would be unusable by the engine.
func Build(in Input, opts ...Option) (SiteConfig, error) {
	o := buildOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := SiteConfig(in).clone()
	cfg.Theme.Footer.Copyright = ExpandYear(in.Theme.Footer.Copyright, o.now().Year())
	cfg.Theme.Code.ExtraLanguages = normalizeLanguages(cfg.Theme.Code.ExtraLanguages)
	if cfg.Engine.Version == "" {
		cfg.Engine.Version = DefaultEngineVersion
	}

	warnings, err := Validate(cfg)
	if err != nil {
		return SiteConfig{}, err
	}
	if o.warn != nil {
		for _, w := range warnings {
			o.warn(w)
		}
	}
	return cfg, nil
}

// BuildDefault assembles the Dart Nostr site from DefaultInput.
func BuildDefault(opts ...Option) (SiteConfig, error) {
	return Build(DefaultInput(), opts...)
}

// ExpandYear substitutes every {year} in text.
func ExpandYear(text string, year int) string {
	return strings.ReplaceAll(text, YearPlaceholder, strconv.Itoa(year))
}

// normalizeLanguages lowercases, trims and de-duplicates language names.
// Empty entries are kept so validation can report them.
func normalizeLanguages(langs []string) []string {
	if len(langs) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(langs))
	out := make([]string, 0, len(langs))
	for _, l := range langs {
		l = strings.ToLower(strings.TrimSpace(l))
		if l != "" && seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}
