package site

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects an output encoding for the assembled configuration.
type Format string

const (
	FormatJS   Format = "js"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats, JS first since it is what the
// engine loads.
var Formats = []Format{FormatJS, FormatJSON, FormatYAML}

// ParseFormat maps a user-supplied name (case-insensitive, "yml" accepted)
// to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "js", "javascript", "":
		return FormatJS, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (supported: js, json, yaml)", s)
}

// FileName is the conventional file name for the format.
func (f Format) FileName() string {
	switch f {
	case FormatJSON:
		return "docusaurus.config.json"
	case FormatYAML:
		return "docusaurus.config.yaml"
	default:
		return "docusaurus.config.js"
	}
}

// Write renders cfg to w in the given format.
func Write(w io.Writer, cfg SiteConfig, format Format) error {
	switch format {
	case FormatJS:
		return WriteJS(w, cfg)
	case FormatJSON:
		return WriteJSON(w, cfg)
	case FormatYAML:
		return WriteYAML(w, cfg)
	}
	return fmt.Errorf("unknown format %q", format)
}

// WriteJSON renders the engine document as indented JSON.
func WriteJSON(w io.Writer, cfg SiteConfig) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(cfg))
}

// WriteYAML renders the engine document as YAML.
func WriteYAML(w io.Writer, cfg SiteConfig) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(cfg)); err != nil {
		return err
	}
	return enc.Close()
}

// jsExprs holds the raw JavaScript expressions of one WriteJS call. Each
// stands in the document as a placeholder carrying a random per-render
// token. Only registered placeholders are substituted.
type jsExprs struct {
	token string
	code  map[string]string
	order []string
}

func newJSExprs() (*jsExprs, error) {
	var b [12]byte
	if _, err := rand.Read(b[:]); err != nil {
		return nil, fmt.Errorf("generating expression token: %w", err)
	}
	return &jsExprs{token: hex.EncodeToString(b[:]), code: make(map[string]string)}, nil
}

func (x *jsExprs) expr(code string) string {
	p := fmt.Sprintf("@docsite-expr-%s-%d@", x.token, len(x.order))
	x.code[p] = code
	x.order = append(x.order, p)
	return p
}

// substitute replaces each quoted placeholder in object with its expression.
func (x *jsExprs) substitute(object string) (string, error) {
	for _, p := range x.order {
		quoted := jsString(p)
		if strings.Count(object, quoted) != 1 {
			return "", fmt.Errorf("expression placeholder %s not found exactly once", p)
		}
		object = strings.Replace(object, quoted, x.code[p], 1)
	}
	return object, nil
}

// jsString quotes s as a JavaScript string literal.
func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// WriteJS renders the configuration as the engine's CommonJS config module.
// Prism themes are imported the way the targeted engine major expects:
// per-theme modules before v3, the bundled themes object from v3 on.
func WriteJS(w io.Writer, cfg SiteConfig) error {
	ver, err := ParseEngineVersion(cfg.Engine.Version)
	if err != nil {
		return err
	}

	exprs, err := newJSExprs()
	if err != nil {
		return err
	}
	expr := exprs.expr

	doc := NewDocument(cfg)
	classic := &doc.Presets[0].Options
	classic.Docs.SidebarPath = expr("require.resolve(" + jsString(classic.Docs.SidebarPath) + ")")
	classic.Theme.CustomCSS = expr("require.resolve(" + jsString(classic.Theme.CustomCSS) + ")")

	var header strings.Builder
	header.WriteString("// @ts-check\n")
	header.WriteString("// Generated by docsite from .docsite.yml. Do not edit by hand.\n\n")

	prism := &doc.ThemeConfig.Prism
	if ver.Major() < 3 {
		header.WriteString(fmt.Sprintf("const lightCodeTheme = require(%s);\n", jsString("prism-react-renderer/themes/"+prism.Theme)))
		header.WriteString(fmt.Sprintf("const darkCodeTheme = require(%s);\n\n", jsString("prism-react-renderer/themes/"+prism.DarkTheme)))
		prism.Theme = expr("lightCodeTheme")
		prism.DarkTheme = expr("darkCodeTheme")
	} else {
		header.WriteString("const {themes: prismThemes} = require('prism-react-renderer');\n\n")
		prism.Theme = expr("prismThemes." + prism.Theme)
		prism.DarkTheme = expr("prismThemes." + prism.DarkTheme)
	}

	var body bytes.Buffer
	enc := json.NewEncoder(&body)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	object, err := exprs.substitute(strings.TrimRight(body.String(), "\n"))
	if err != nil {
		return err
	}

	var out strings.Builder
	out.WriteString(header.String())
	out.WriteString("/** @type {import('@docusaurus/types').Config} */\n")
	out.WriteString("const config = " + object + ";\n\n")
	out.WriteString("module.exports = config;\n")

	_, err = io.WriteString(w, out.String())
	return err
}
