package modules

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/anasfik/nostr/src/lint"
)

func init() {
	lint.Register("links", func() lint.Module { return &linksModule{} })
}

// linksModule checks link targets against each other and against the
// deployment coordinates: plain-http URLs, repeated footer targets, and
// an editUrl pointing outside organizationName/projectName.
type linksModule struct {
	allowHTTP map[string]bool // hosts allowed over plain http
}

func (m *linksModule) Name() string        { return "links" }
func (m *linksModule) DefaultEnabled() bool { return true }

// Configure implements lint.ConfigurableModule.
func (m *linksModule) Configure(opts map[string]any) error {
	hosts, err := stringsOption(opts, "allow_http_hosts")
	if err != nil {
		return err
	}
	m.allowHTTP = map[string]bool{"localhost": true, "127.0.0.1": true}
	for _, h := range hosts {
		m.allowHTTP[strings.ToLower(h)] = true
	}
	return nil
}

const footerItemsPattern = "themeConfig.footer.links[*].items[*].*"

func (m *linksModule) Check(ctx context.Context, fields []lint.Field) ([]lint.Finding, error) {
	if m.allowHTTP == nil {
		if err := m.Configure(nil); err != nil {
			return nil, err
		}
	}

	var (
		findings  []lint.Finding
		byPath    = make(map[string]string, len(fields))
		seenFirst = map[string]string{} // footer target → first field path
	)
	for _, f := range fields {
		byPath[f.Path] = f.Value
	}

	for _, f := range fields {
		if err := ctx.Err(); err != nil {
			return findings, err
		}

		if u, err := url.Parse(f.Value); err == nil && u.Scheme == "http" && !m.allowHTTP[strings.ToLower(u.Hostname())] {
			findings = append(findings, lint.Finding{
				Field:    f.Path,
				Module:   m.Name(),
				Severity: lint.SeverityWarning,
				Message:  fmt.Sprintf("plain http link %s (GitHub pages serves https only)", f.Value),
			})
		}

		if isFooterTarget(f.Path) {
			key := strings.TrimRight(f.Value, "/")
			if first, dup := seenFirst[key]; dup {
				findings = append(findings, lint.Finding{
					Field:    f.Path,
					Module:   m.Name(),
					Severity: lint.SeverityInfo,
					Message:  fmt.Sprintf("footer target %s already linked at %s", f.Value, first),
				})
			} else {
				seenFirst[key] = f.Path
			}
		}
	}

	if f, ok := m.checkEditURL(byPath); ok {
		findings = append(findings, f)
	}
	return findings, nil
}

func isFooterTarget(path string) bool {
	return lint.MatchField(footerItemsPattern, path) &&
		(strings.HasSuffix(path, ".href") || strings.HasSuffix(path, ".to"))
}

// checkEditURL reports a GitHub editUrl that does not point into the
// deployed repository.
func (m *linksModule) checkEditURL(byPath map[string]string) (lint.Finding, bool) {
	const field = "presets.classic.docs.editUrl"
	edit, org, project := byPath[field], byPath["organizationName"], byPath["projectName"]
	if edit == "" || org == "" || project == "" {
		return lint.Finding{}, false
	}
	u, err := url.Parse(edit)
	if err != nil || !strings.EqualFold(u.Hostname(), "github.com") {
		return lint.Finding{}, false
	}

	want := "/" + strings.ToLower(org) + "/" + strings.ToLower(project) + "/"
	if strings.HasPrefix(strings.ToLower(u.Path), want) {
		return lint.Finding{}, false
	}
	return lint.Finding{
		Field:    field,
		Module:   m.Name(),
		Severity: lint.SeverityWarning,
		Message:  fmt.Sprintf("editUrl does not point into github.com%s (organizationName/projectName)", want),
	}, true
}
