package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/anasfik/nostr/src/site"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvURL, EnvBaseURL, EnvEditURL, EnvEngineVersion} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_MissingDefaultFileGivesDefaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(site.DefaultInput(), cfg.Input()); diff != "" {
		t.Fatalf("defaults differ from site literals (-want +got):\n%s", diff)
	}
	if cfg.Version != CurrentVersion || cfg.Output.Format != "js" {
		t.Fatalf("unexpected defaults: version=%d format=%q", cfg.Version, cfg.Output.Format)
	}
	if cfg.File != "" {
		t.Fatalf("no file was read, got File=%q", cfg.File)
	}
}

func TestLoad_UnversionedFileNeedsMigration(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, ".docsite.yml", "metadata:\n  title: Old Layout\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Version != 0 {
		t.Fatalf("version = %d, want 0 for a file without a version key", cfg.Version)
	}
	if cfg.File != path {
		t.Errorf("File = %q, want %q", cfg.File, path)
	}

	_, err = Validate(cfg)
	if err == nil || !strings.Contains(err.Error(), "docsite migrate") {
		t.Fatalf("expected a migrate hint, got %v", err)
	}
}

func TestLoad_UnversionedTOMLNeedsMigration(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "docsite.toml", "[output]\nformat = \"json\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "version: must be 1") {
		t.Fatalf("expected version error, got %v", err)
	}
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("expected error for a missing explicit config file")
	}
}

func TestLoad_YAMLOverlaysDefaults(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, ".docsite.yml", `
version: 1
site:
  metadata:
    title: Nostr for Dart
  i18n:
    default_locale: en
    locales: [en, fr]
  theme:
    footer:
      columns:
        - title: Links
          items:
            - label: Docs
              target: /docs
            - label: Relay
              target: https://relay.example.org
output:
  format: json
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	in := cfg.Input()
	if in.Metadata.Title != "Nostr for Dart" {
		t.Errorf("title = %q", in.Metadata.Title)
	}
	if in.Metadata.BaseURL != "/nostr" {
		t.Errorf("base url not kept from defaults: %q", in.Metadata.BaseURL)
	}
	if diff := cmp.Diff([]string{"en", "fr"}, in.I18n.Locales); diff != "" {
		t.Errorf("locales (-want +got):\n%s", diff)
	}

	want := []site.FooterColumn{{
		Title: "Links",
		Items: []site.FooterLink{
			{Label: "Docs", To: "/docs"},
			{Label: "Relay", Href: "https://relay.example.org"},
		},
	}}
	if diff := cmp.Diff(want, in.Theme.Footer.Columns); diff != "" {
		t.Errorf("footer columns (-want +got):\n%s", diff)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("output format = %q", cfg.Output.Format)
	}
	if cfg.Version != CurrentVersion || cfg.File != path {
		t.Errorf("version=%d file=%q", cfg.Version, cfg.File)
	}
}

func TestLoad_TargetConflict(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "docsite.yaml", `
version: 1
site:
  theme:
    footer:
      columns:
        - title: Links
          items:
            - label: Docs
              target: /docs
              href: https://x.dev
`)
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "target cannot be combined") {
		t.Fatalf("expected target conflict error, got %v", err)
	}
}

func TestLoad_TOML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "docsite.toml", `
version = 1

[site.metadata]
title = "Dart Nostr (TOML)"
url = "https://docs.example.org"

[output]
format = "yaml"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Site.Metadata.Title != "Dart Nostr (TOML)" || cfg.Site.Metadata.URL != "https://docs.example.org" {
		t.Errorf("metadata not decoded: %+v", cfg.Site.Metadata)
	}
	if cfg.Site.Metadata.Favicon != "img/favicon.ico" {
		t.Errorf("favicon not kept from defaults: %q", cfg.Site.Metadata.Favicon)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("output format = %q", cfg.Output.Format)
	}
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "docsite.json", `{}`)

	_, err := Load(path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv(EnvURL, "https://fork.github.io")
	t.Setenv(EnvBaseURL, "/nostr-fork/")
	t.Setenv(EnvEditURL, "")
	t.Setenv(EnvEngineVersion, "3.1.0")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	m := cfg.Site.Metadata
	if m.URL != "https://fork.github.io" || m.BaseURL != "/nostr-fork/" {
		t.Errorf("metadata overrides not applied: %+v", m)
	}
	if cfg.Site.Preset.Docs.EditURL != "" {
		t.Errorf("edit url should be cleared, got %q", cfg.Site.Preset.Docs.EditURL)
	}
	if cfg.Site.Engine.Version != "3.1.0" {
		t.Errorf("engine version = %q", cfg.Site.Engine.Version)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"old version", func(c *Config) { c.Version = 0 }, "version: must be 1"},
		{"bad format", func(c *Config) { c.Output.Format = "xml" }, "output.format"},
		{"absolute output", func(c *Config) { c.Output.Path = "/tmp/docusaurus.config.js" }, "must be relative"},
		{"traversal", func(c *Config) { c.Output.Path = "../docusaurus.config.js" }, "must not contain '..'"},
		{"unclean", func(c *Config) { c.Output.Path = "site//docusaurus.config.js" }, "canonical form"},
		{"bad exclude", func(c *Config) { c.Lint.Exclude = []string{"themeConfig.["} }, "lint.exclude[0]"},
		{"bad module key", func(c *Config) { c.Lint.Modules["1links"] = ModuleConfig{} }, "lint.modules"},
		{"junit path", func(c *Config) { c.Lint.JUnit = "~/report.xml" }, "lint.junit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.mutate(cfg)

			_, err := Validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidate_OutputExtensionWarns(t *testing.T) {
	cfg := defaults()
	cfg.Output.Format = "json"
	cfg.Output.Path = "website/docusaurus.config.js"

	warnings, err := Validate(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], ".json") {
		t.Fatalf("expected extension warning, got %v", warnings)
	}
}
