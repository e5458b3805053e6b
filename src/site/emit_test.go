package site

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatJS, false},
		{"JS", FormatJS, false},
		{"javascript", FormatJS, false},
		{"json", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"YAML", FormatYAML, false},
		{"toml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteJSON_EngineKeys(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, defaultConfig(t)); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}

	if doc["baseUrl"] != "/nostr" || doc["onBrokenLinks"] != "throw" || doc["organizationName"] != "anasfik" {
		t.Fatalf("top-level keys wrong: %v", doc)
	}

	presets := doc["presets"].([]any)
	classic := presets[0].([]any)
	if classic[0] != "classic" {
		t.Fatalf("preset name = %v, want classic", classic[0])
	}
	opts := classic[1].(map[string]any)
	if opts["blog"] != false {
		t.Fatalf("blog = %v, want false", opts["blog"])
	}

	navbar := doc["themeConfig"].(map[string]any)["navbar"].(map[string]any)
	first := navbar["items"].([]any)[0].(map[string]any)
	if first["type"] != "docSidebar" || first["sidebarId"] != "tutorialSidebar" {
		t.Fatalf("sidebar item = %v", first)
	}
	second := navbar["items"].([]any)[1].(map[string]any)
	if _, ok := second["type"]; ok {
		t.Fatalf("external item must not carry a type: %v", second)
	}

	footer := doc["themeConfig"].(map[string]any)["footer"].(map[string]any)
	docsCol := footer["links"].([]any)[0].(map[string]any)
	item := docsCol["items"].([]any)[0].(map[string]any)
	if item["to"] != "/" {
		t.Fatalf("docs footer item = %v, want to=/", item)
	}
	if _, ok := item["href"]; ok {
		t.Fatalf("internal footer item must not carry href: %v", item)
	}
}

func TestWriteJSON_BlogEnabled(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Preset.BlogEnabled = true

	var buf bytes.Buffer
	if err := WriteJSON(&buf, cfg); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"blog": {}`) {
		t.Fatalf("expected blog options object, got:\n%s", buf.String())
	}
}

func TestWriteYAML_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteYAML(&buf, defaultConfig(t)); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	var doc struct {
		Title string `yaml:"title"`
		I18n  struct {
			Locales []string `yaml:"locales"`
		} `yaml:"i18n"`
		Presets [][]any `yaml:"presets"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, buf.String())
	}
	if doc.Title != "Dart Nostr" || len(doc.I18n.Locales) != 1 || doc.Presets[0][0] != "classic" {
		t.Fatalf("unexpected YAML document: %+v", doc)
	}
}

func TestWriteJS_EngineV2(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJS(&buf, defaultConfig(t)); err != nil {
		t.Fatalf("WriteJS: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`const lightCodeTheme = require("prism-react-renderer/themes/github");`,
		`const darkCodeTheme = require("prism-react-renderer/themes/dracula");`,
		`"sidebarPath": require.resolve("./sidebars.js")`,
		`"customCss": require.resolve("./src/css/custom.css")`,
		`"theme": lightCodeTheme`,
		`"darkTheme": darkCodeTheme`,
		`"copyright": "Copyright © 2024 My Project, Inc. Built with Docusaurus."`,
		"module.exports = config;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s\n%s", want, out)
		}
	}
	if strings.Contains(out, "@docsite-expr-") {
		t.Fatalf("unreplaced expression placeholder in output:\n%s", out)
	}
}

func TestWriteJS_EngineV3(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Engine.Version = "3.1.0"

	var buf bytes.Buffer
	if err := WriteJS(&buf, cfg); err != nil {
		t.Fatalf("WriteJS: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"const {themes: prismThemes} = require('prism-react-renderer');",
		`"theme": prismThemes.github`,
		`"darkTheme": prismThemes.dracula`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s\n%s", want, out)
		}
	}
	if strings.Contains(out, "prism-react-renderer/themes/") {
		t.Fatalf("v3 output must not import per-theme modules:\n%s", out)
	}
}

func TestWriteJS_QuotesPaths(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Preset.Docs.SidebarPath = `./side"bars.js`

	var buf bytes.Buffer
	if err := WriteJS(&buf, cfg); err != nil {
		t.Fatalf("WriteJS: %v", err)
	}
	if !strings.Contains(buf.String(), `require.resolve("./side\"bars.js")`) {
		t.Fatalf("path not quoted as a JS string:\n%s", buf.String())
	}
}

func TestWriteJS_ValuesStayLiterals(t *testing.T) {
	tests := []struct {
		name    string
		tagline string
		want    string
	}{
		{
			name:    "nul prefixed code",
			tagline: "\x00js:require('child_process').execSync('id')",
			want:    `"tagline": "\u0000js:require('child_process').execSync('id')",`,
		},
		{
			name:    "placeholder lookalike",
			tagline: "@docsite-expr-000000000000000000000000-0@",
			want:    `"tagline": "@docsite-expr-000000000000000000000000-0@",`,
		},
		{
			name:    "bare expression",
			tagline: "require.resolve('./x')",
			want:    `"tagline": "require.resolve('./x')",`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig(t)
			cfg.Metadata.Tagline = tt.tagline

			var buf bytes.Buffer
			if err := WriteJS(&buf, cfg); err != nil {
				t.Fatalf("WriteJS: %v", err)
			}
			out := buf.String()
			if !strings.Contains(out, tt.want) {
				t.Fatalf("tagline not emitted as a string literal, want %s\n%s", tt.want, out)
			}
			if strings.Contains(out, `"tagline": require(`) {
				t.Fatalf("tagline emitted as code:\n%s", out)
			}
			if !strings.Contains(out, `"sidebarPath": require.resolve("./sidebars.js")`) {
				t.Fatalf("own expressions must still be substituted:\n%s", out)
			}
		})
	}
}

func TestWriteJS_UnsupportedEngine(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Engine.Version = "4.0.0"

	if err := WriteJS(&bytes.Buffer{}, cfg); err == nil {
		t.Fatal("expected error for unsupported engine version")
	}
}

func TestFormatFileName(t *testing.T) {
	for _, f := range Formats {
		if !strings.HasPrefix(f.FileName(), "docusaurus.config.") {
			t.Errorf("%s: unexpected file name %q", f, f.FileName())
		}
	}
}
