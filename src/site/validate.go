package site

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// FieldError is a single violated invariant, keyed by the engine's field path.
type FieldError struct {
	Field   string // e.g. "themeConfig.footer.links[1].items[0].label"
	Value   any
	Message string
}

// Error implements the error interface.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError bundles every invariant a configuration violates.
// Configuration errors are fatal; there is no partial result.
type ValidationError struct {
	errs []FieldError
}

// Errors returns the individual violations in the order they were found.
func (e *ValidationError) Errors() []FieldError {
	out := make([]FieldError, len(e.errs))
	copy(out, e.errs)
	return out
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.errs))
	for i, fe := range e.errs {
		msgs[i] = fe.Error()
	}
	return "invalid site config: " + strings.Join(msgs, "; ")
}

// Has reports whether any violation was recorded for field.
func (e *ValidationError) Has(field string) bool {
	for _, fe := range e.errs {
		if fe.Field == field {
			return true
		}
	}
	return false
}

type validator struct {
	errs     []FieldError
	warnings []string
}

func (v *validator) add(field, message string, value any) {
	v.errs = append(v.errs, FieldError{Field: field, Value: value, Message: message})
}

func (v *validator) warn(format string, args ...any) {
	v.warnings = append(v.warnings, fmt.Sprintf(format, args...))
}

func (v *validator) notEmpty(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		v.add(field, "is required", value)
		return false
	}
	return true
}

func (v *validator) oneOf(field, value string, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.add(field, fmt.Sprintf("unknown value %q (supported: %s)", value, strings.Join(allowed, ", ")), value)
}

// absURL requires an absolute http(s) URL with a host.
func (v *validator) absURL(field, value string) bool {
	if !v.notEmpty(field, value) {
		return false
	}
	u, err := url.Parse(value)
	if err != nil {
		v.add(field, fmt.Sprintf("invalid URL: %v", err), value)
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		v.add(field, fmt.Sprintf("unsupported URL scheme %q (allowed: http, https)", u.Scheme), value)
		return false
	}
	if u.Host == "" {
		v.add(field, "URL must have a host", value)
		return false
	}
	return true
}

func (v *validator) err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return &ValidationError{errs: append([]FieldError(nil), v.errs...)}
}

// supportedEngines is the range of engine releases whose config shape the
// emitters know.
var supportedEngines = mustConstraint(">= 2.0.0-0, < 4.0.0-0")

func mustConstraint(s string) *semver.Constraints {
	c, err := semver.NewConstraint(s)
	if err != nil {
		panic(err)
	}
	return c
}

var themeNameRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*$`)

// Validate checks the structural invariants of an assembled configuration.
// It returns soft warnings and, when any invariant is violated, a
// *ValidationError.
func Validate(cfg SiteConfig) (warnings []string, err error) {
	v := &validator{}

	validateMetadata(v, cfg.Metadata)

	v.oneOf("onBrokenLinks", string(cfg.BrokenLinks.OnBrokenLinks), linkPolicies...)
	v.oneOf("onBrokenMarkdownLinks", string(cfg.BrokenLinks.OnBrokenMarkdownLinks), linkPolicies...)

	validateLocales(v, cfg.I18n)
	validatePreset(v, cfg.Preset)
	validateNavbar(v, cfg.Theme.Navbar)
	validateFooter(v, cfg.Theme.Footer)
	validateCode(v, cfg.Theme.Code)

	if _, verr := ParseEngineVersion(cfg.Engine.Version); verr != nil {
		v.add("engine.version", verr.Error(), cfg.Engine.Version)
	}

	return v.warnings, v.err()
}

var linkPolicies = []string{string(LinkIgnore), string(LinkLog), string(LinkWarn), string(LinkThrow)}

func validateMetadata(v *validator, m SiteMetadata) {
	v.notEmpty("title", m.Title)
	v.notEmpty("favicon", m.Favicon)

	urlOK := v.absURL("url", m.URL)
	if urlOK {
		u, _ := url.Parse(m.URL)
		if u.Path != "" && u.Path != "/" {
			v.add("url", fmt.Sprintf("must not contain a path (got %q); put it in baseUrl", u.Path), m.URL)
			urlOK = false
		}
	}

	if !v.notEmpty("baseUrl", m.BaseURL) {
		return
	}
	if !strings.HasPrefix(m.BaseURL, "/") {
		v.add("baseUrl", "must start with /", m.BaseURL)
		return
	}
	if !strings.HasSuffix(m.BaseURL, "/") {
		v.warn("baseUrl %q has no trailing slash; the engine appends one", m.BaseURL)
	}

	if urlOK {
		page := m.PageURL()
		if u, err := url.Parse(page); err != nil || !u.IsAbs() || u.Host == "" {
			v.add("baseUrl", fmt.Sprintf("url and baseUrl do not form an absolute URL (%q)", page), m.BaseURL)
		}
	}
}

func validateLocales(v *validator, l LocaleConfig) {
	v.notEmpty("i18n.defaultLocale", l.DefaultLocale)
	if len(l.Locales) == 0 {
		v.add("i18n.locales", "at least one locale is required", l.Locales)
		return
	}

	seen := make(map[string]bool, len(l.Locales))
	for i, loc := range l.Locales {
		path := fmt.Sprintf("i18n.locales[%d]", i)
		if !v.notEmpty(path, loc) {
			continue
		}
		if seen[loc] {
			v.add(path, fmt.Sprintf("duplicate locale %q", loc), loc)
		}
		seen[loc] = true
	}

	if l.DefaultLocale != "" && !seen[l.DefaultLocale] {
		v.add("i18n.locales", fmt.Sprintf("must contain the default locale %q", l.DefaultLocale), l.Locales)
	}
}

func validatePreset(v *validator, p PresetOptions) {
	const base = "presets.classic"

	if v.notEmpty(base+".docs.routeBasePath", p.Docs.RouteBasePath) && !strings.HasPrefix(p.Docs.RouteBasePath, "/") {
		v.add(base+".docs.routeBasePath", "must start with /", p.Docs.RouteBasePath)
	}
	v.notEmpty(base+".docs.sidebarPath", p.Docs.SidebarPath)
	if p.Docs.EditURL != "" {
		v.absURL(base+".docs.editUrl", p.Docs.EditURL)
	}
	v.notEmpty(base+".theme.customCss", p.CustomCSS)
}

func validateNavbar(v *validator, n NavbarSpec) {
	const base = "themeConfig.navbar"

	if n.Logo.Alt != "" || n.Logo.Src != "" {
		v.notEmpty(base+".logo.src", n.Logo.Src)
		if n.Logo.Alt == "" {
			v.warn("%s.logo.alt is empty; the logo has no accessible name", base)
		}
	}

	for i, item := range n.Items {
		path := fmt.Sprintf("%s.items[%d]", base, i)

		v.notEmpty(path+".label", item.Label)
		v.oneOf(path+".position", string(item.Position), string(PositionLeft), string(PositionRight))

		switch item.Kind {
		case KindSidebarLink:
			v.notEmpty(path+".sidebarId", item.SidebarID)
			if item.Href != "" {
				v.add(path+".href", "is not valid for kind sidebar-link", item.Href)
			}
		case KindExternalLink:
			v.absURL(path+".href", item.Href)
			if item.SidebarID != "" {
				v.add(path+".sidebarId", "is not valid for kind external-link", item.SidebarID)
			}
		case "":
			v.add(path+".kind", "is required", item.Kind)
		default:
			v.add(path+".kind", fmt.Sprintf("unknown nav item kind %q (supported: %s, %s)", item.Kind, KindSidebarLink, KindExternalLink), item.Kind)
		}
	}
}

func validateFooter(v *validator, f FooterSpec) {
	const base = "themeConfig.footer"

	v.oneOf(base+".style", string(f.Style), string(FooterLight), string(FooterDark))

	for ci, col := range f.Columns {
		cpath := fmt.Sprintf("%s.links[%d]", base, ci)
		v.notEmpty(cpath+".title", col.Title)
		if len(col.Items) == 0 {
			v.warn("%s (%q) has no items", cpath, col.Title)
		}

		for ii, link := range col.Items {
			ipath := fmt.Sprintf("%s.items[%d]", cpath, ii)
			v.notEmpty(ipath+".label", link.Label)

			switch {
			case link.Href != "" && link.To != "":
				v.add(ipath, "href and to are mutually exclusive", link.Target())
			case link.Href != "":
				v.absURL(ipath+".href", link.Href)
			case link.To != "":
				if !strings.HasPrefix(link.To, "/") {
					v.add(ipath+".to", "internal path must start with /", link.To)
				}
			default:
				v.add(ipath, "one of href or to is required", "")
			}
		}
	}

	if v.notEmpty(base+".copyright", f.Copyright) && strings.Contains(f.Copyright, "My Project, Inc.") {
		v.warn("%s still names the template owner \"My Project, Inc.\"", base)
	}
}

func validateCode(v *validator, c CodeThemeSpec) {
	const base = "themeConfig.prism"

	themes := []struct {
		field string
		ref   ThemeRef
	}{
		{base + ".theme", c.Light},
		{base + ".darkTheme", c.Dark},
	}
	for _, t := range themes {
		if v.notEmpty(t.field, string(t.ref)) && !themeNameRe.MatchString(string(t.ref)) {
			v.add(t.field, "theme name must be an identifier", t.ref)
		}
	}

	for i, lang := range c.ExtraLanguages {
		v.notEmpty(fmt.Sprintf("%s.additionalLanguages[%d]", base, i), lang)
	}
}

// ParseEngineVersion parses an engine release and checks the emitters
// support it.
func ParseEngineVersion(s string) (*semver.Version, error) {
	ver, err := semver.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("invalid engine version %q: %w", s, err)
	}
	if !supportedEngines.Check(ver) {
		return nil, fmt.Errorf("engine version %s is not supported (want %s)", ver, supportedEngines)
	}
	return ver, nil
}

// isAbsoluteURL reports whether s parses as a URL with both scheme and host.
func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}
