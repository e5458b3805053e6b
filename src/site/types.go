package site

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// SiteConfig is the assembled documentation-site configuration handed to the
// site engine. Values returned by Build own their slices; treat them as
// read-only.
type SiteConfig struct {
	Metadata    SiteMetadata     `yaml:"metadata" toml:"metadata"`
	Deployment  Deployment       `yaml:"deployment" toml:"deployment"`
	BrokenLinks BrokenLinkPolicy `yaml:"broken_links" toml:"broken_links"`
	I18n        LocaleConfig     `yaml:"i18n" toml:"i18n"`
	Preset      PresetOptions    `yaml:"preset" toml:"preset"`
	Theme       ThemeConfig      `yaml:"theme" toml:"theme"`
	Engine      EngineSpec       `yaml:"engine" toml:"engine"`
}

// SiteMetadata identifies the site.
type SiteMetadata struct {
	Title   string `yaml:"title" toml:"title"`
	Tagline string `yaml:"tagline" toml:"tagline"`
	Favicon string `yaml:"favicon" toml:"favicon"` // relative to the static dir
	URL     string `yaml:"url" toml:"url"`         // canonical origin, no path
	BaseURL string `yaml:"base_url" toml:"base_url"`
}

// Deployment holds the GitHub pages coordinates.
type Deployment struct {
	OrganizationName string `yaml:"organization" toml:"organization"`
	ProjectName      string `yaml:"project" toml:"project"`
}

// LinkPolicy is how the engine reacts to a broken link.
type LinkPolicy string

const (
	LinkIgnore LinkPolicy = "ignore"
	LinkLog    LinkPolicy = "log"
	LinkWarn   LinkPolicy = "warn"
	LinkThrow  LinkPolicy = "throw"
)

// BrokenLinkPolicy configures broken-link handling for pages and markdown.
type BrokenLinkPolicy struct {
	OnBrokenLinks         LinkPolicy `yaml:"on_broken_links" toml:"on_broken_links"`
	OnBrokenMarkdownLinks LinkPolicy `yaml:"on_broken_markdown_links" toml:"on_broken_markdown_links"`
}

// LocaleConfig lists the locales the site is built for.
type LocaleConfig struct {
	DefaultLocale string   `yaml:"default_locale" toml:"default_locale"`
	Locales       []string `yaml:"locales" toml:"locales"`
}

// DocsOptions configures the docs plugin of the classic preset.
type DocsOptions struct {
	RouteBasePath string `yaml:"route_base_path" toml:"route_base_path"`
	SidebarPath   string `yaml:"sidebar_path" toml:"sidebar_path"`
	EditURL       string `yaml:"edit_url" toml:"edit_url"`
}

// PresetOptions configures the classic preset. BlogEnabled=false removes the
// blog routes entirely.
type PresetOptions struct {
	Docs        DocsOptions `yaml:"docs" toml:"docs"`
	BlogEnabled bool        `yaml:"blog" toml:"blog"`
	CustomCSS   string      `yaml:"custom_css" toml:"custom_css"`
}

// ThemeConfig holds the cosmetic options of the classic theme.
type ThemeConfig struct {
	SocialCard string        `yaml:"social_card" toml:"social_card"`
	Navbar     NavbarSpec    `yaml:"navbar" toml:"navbar"`
	Footer     FooterSpec    `yaml:"footer" toml:"footer"`
	Code       CodeThemeSpec `yaml:"code" toml:"code"`
}

// Logo is the navbar brand image.
type Logo struct {
	Alt string `yaml:"alt" toml:"alt"`
	Src string `yaml:"src" toml:"src"`
}

// NavbarSpec describes the top navigation bar.
type NavbarSpec struct {
	Title string    `yaml:"title" toml:"title"`
	Logo  Logo      `yaml:"logo" toml:"logo"`
	Items []NavItem `yaml:"items" toml:"items"`
}

// NavItemKind tags the NavItem variant.
type NavItemKind string

const (
	KindSidebarLink  NavItemKind = "sidebar-link"
	KindExternalLink NavItemKind = "external-link"
)

// Position places a navbar item.
type Position string

const (
	PositionLeft  Position = "left"
	PositionRight Position = "right"
)

// NavItem is one navbar entry. SidebarID is set only for sidebar links, Href
// only for external links.
type NavItem struct {
	Kind      NavItemKind `yaml:"kind" toml:"kind"`
	Label     string      `yaml:"label" toml:"label"`
	Position  Position    `yaml:"position" toml:"position"`
	SidebarID string      `yaml:"sidebar_id,omitempty" toml:"sidebar_id,omitempty"`
	Href      string      `yaml:"href,omitempty" toml:"href,omitempty"`
}

// FooterStyle selects the footer palette.
type FooterStyle string

const (
	FooterLight FooterStyle = "light"
	FooterDark  FooterStyle = "dark"
)

// FooterSpec describes the page footer. Copyright may contain {year}, which
// Build replaces with the current calendar year.
type FooterSpec struct {
	Style     FooterStyle    `yaml:"style" toml:"style"`
	Columns   []FooterColumn `yaml:"columns" toml:"columns"`
	Copyright string         `yaml:"copyright" toml:"copyright"`
}

// FooterColumn is a titled group of footer links.
type FooterColumn struct {
	Title string       `yaml:"title" toml:"title"`
	Items []FooterLink `yaml:"items" toml:"items"`
}

// FooterLink points either at an absolute URL (Href) or at an internal
// route (To). Exactly one of the two is set.
type FooterLink struct {
	Label string `yaml:"label" toml:"label"`
	Href  string `yaml:"href,omitempty" toml:"href,omitempty"`
	To    string `yaml:"to,omitempty" toml:"to,omitempty"`
}

// Target returns whichever of Href or To is set.
func (l FooterLink) Target() string {
	if l.Href != "" {
		return l.Href
	}
	return l.To
}

// UnmarshalYAML accepts a "target" shorthand in addition to href/to.
// Absolute URLs become Href, anything else becomes To.
func (l *FooterLink) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("footer link: expected a mapping, got %s", nodeKind(value))
	}

	var raw struct {
		Label  string `yaml:"label"`
		Href   string `yaml:"href"`
		To     string `yaml:"to"`
		Target string `yaml:"target"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Target != "" && (raw.Href != "" || raw.To != "") {
		return fmt.Errorf("footer link %q: target cannot be combined with href or to", raw.Label)
	}

	l.Label = raw.Label
	l.Href = raw.Href
	l.To = raw.To
	if raw.Target != "" {
		if isAbsoluteURL(raw.Target) {
			l.Href = raw.Target
		} else {
			l.To = raw.Target
		}
	}
	return nil
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.AliasNode:
		return "alias"
	default:
		return "node"
	}
}

// ThemeRef names a prism-react-renderer theme ("github", "dracula", ...).
type ThemeRef string

// CodeThemeSpec configures syntax highlighting. ExtraLanguages is a set; Build
// lowercases and de-duplicates it keeping first-seen order.
type CodeThemeSpec struct {
	Light          ThemeRef `yaml:"light" toml:"light"`
	Dark           ThemeRef `yaml:"dark" toml:"dark"`
	ExtraLanguages []string `yaml:"extra_languages" toml:"extra_languages"`
}

// EngineSpec records which engine release the emitted file targets.
type EngineSpec struct {
	Version string `yaml:"version" toml:"version"`
}

// clone returns a deep copy so the result shares no slices with c.
func (c SiteConfig) clone() SiteConfig {
	out := c
	out.I18n.Locales = append([]string(nil), c.I18n.Locales...)
	out.Theme.Navbar.Items = append([]NavItem(nil), c.Theme.Navbar.Items...)
	out.Theme.Code.ExtraLanguages = append([]string(nil), c.Theme.Code.ExtraLanguages...)
	if c.Theme.Footer.Columns != nil {
		out.Theme.Footer.Columns = make([]FooterColumn, len(c.Theme.Footer.Columns))
		for i, col := range c.Theme.Footer.Columns {
			col.Items = append([]FooterLink(nil), col.Items...)
			out.Theme.Footer.Columns[i] = col
		}
	}
	return out
}

// PageURL joins the canonical URL and base path into the site root URL.
func (m SiteMetadata) PageURL() string {
	base := m.BaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return strings.TrimRight(m.URL, "/") + base
}
