package site

import (
	"encoding/json"
)

// Document is SiteConfig laid out with the engine's key names and nesting.
// It is what WriteJSON and WriteYAML serialize, and what WriteJS prints as
// a module.
type Document struct {
	Title                 string         `json:"title" yaml:"title"`
	Tagline               string         `json:"tagline,omitempty" yaml:"tagline,omitempty"`
	Favicon               string         `json:"favicon" yaml:"favicon"`
	URL                   string         `json:"url" yaml:"url"`
	BaseURL               string         `json:"baseUrl" yaml:"baseUrl"`
	OrganizationName      string         `json:"organizationName,omitempty" yaml:"organizationName,omitempty"`
	ProjectName           string         `json:"projectName,omitempty" yaml:"projectName,omitempty"`
	OnBrokenLinks         LinkPolicy     `json:"onBrokenLinks" yaml:"onBrokenLinks"`
	OnBrokenMarkdownLinks LinkPolicy     `json:"onBrokenMarkdownLinks" yaml:"onBrokenMarkdownLinks"`
	I18n                  I18nDoc        `json:"i18n" yaml:"i18n"`
	Presets               []PresetEntry  `json:"presets" yaml:"presets"`
	ThemeConfig           ThemeConfigDoc `json:"themeConfig" yaml:"themeConfig"`
}

type I18nDoc struct {
	DefaultLocale string   `json:"defaultLocale" yaml:"defaultLocale"`
	Locales       []string `json:"locales" yaml:"locales"`
}

// PresetEntry serializes as the engine's [name, options] tuple.
type PresetEntry struct {
	Name    string
	Options ClassicOptions
}

func (p PresetEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{p.Name, p.Options})
}

func (p PresetEntry) MarshalYAML() (any, error) {
	return []any{p.Name, p.Options}, nil
}

type ClassicOptions struct {
	Docs  DocsDoc  `json:"docs" yaml:"docs"`
	Blog  any      `json:"blog" yaml:"blog"` // false, or an options object
	Theme ThemeDoc `json:"theme" yaml:"theme"`
}

type DocsDoc struct {
	RouteBasePath string `json:"routeBasePath" yaml:"routeBasePath"`
	SidebarPath   string `json:"sidebarPath" yaml:"sidebarPath"`
	EditURL       string `json:"editUrl,omitempty" yaml:"editUrl,omitempty"`
}

type ThemeDoc struct {
	CustomCSS string `json:"customCss" yaml:"customCss"`
}

type ThemeConfigDoc struct {
	Image  string    `json:"image,omitempty" yaml:"image,omitempty"`
	Navbar NavbarDoc `json:"navbar" yaml:"navbar"`
	Footer FooterDoc `json:"footer" yaml:"footer"`
	Prism  PrismDoc  `json:"prism" yaml:"prism"`
}

type NavbarDoc struct {
	Title string       `json:"title,omitempty" yaml:"title,omitempty"`
	Logo  *LogoDoc     `json:"logo,omitempty" yaml:"logo,omitempty"`
	Items []NavItemDoc `json:"items" yaml:"items"`
}

type LogoDoc struct {
	Alt string `json:"alt" yaml:"alt"`
	Src string `json:"src" yaml:"src"`
}

type NavItemDoc struct {
	Type      string `json:"type,omitempty" yaml:"type,omitempty"`
	SidebarID string `json:"sidebarId,omitempty" yaml:"sidebarId,omitempty"`
	Href      string `json:"href,omitempty" yaml:"href,omitempty"`
	Position  string `json:"position" yaml:"position"`
	Label     string `json:"label" yaml:"label"`
}

type FooterDoc struct {
	Style     string          `json:"style" yaml:"style"`
	Links     []FooterLinkCol `json:"links" yaml:"links"`
	Copyright string          `json:"copyright" yaml:"copyright"`
}

type FooterLinkCol struct {
	Title string          `json:"title" yaml:"title"`
	Items []FooterItemDoc `json:"items" yaml:"items"`
}

type FooterItemDoc struct {
	Label string `json:"label" yaml:"label"`
	To    string `json:"to,omitempty" yaml:"to,omitempty"`
	Href  string `json:"href,omitempty" yaml:"href,omitempty"`
}

type PrismDoc struct {
	Theme               string   `json:"theme" yaml:"theme"`
	DarkTheme           string   `json:"darkTheme" yaml:"darkTheme"`
	AdditionalLanguages []string `json:"additionalLanguages,omitempty" yaml:"additionalLanguages,omitempty"`
}

// sidebarItemType is the engine's name for a navbar link into a docs sidebar.
const sidebarItemType = "docSidebar"

// NewDocument lays cfg out in the engine's shape.
func NewDocument(cfg SiteConfig) Document {
	doc := Document{
		Title:                 cfg.Metadata.Title,
		Tagline:               cfg.Metadata.Tagline,
		Favicon:               cfg.Metadata.Favicon,
		URL:                   cfg.Metadata.URL,
		BaseURL:               cfg.Metadata.BaseURL,
		OrganizationName:      cfg.Deployment.OrganizationName,
		ProjectName:           cfg.Deployment.ProjectName,
		OnBrokenLinks:         cfg.BrokenLinks.OnBrokenLinks,
		OnBrokenMarkdownLinks: cfg.BrokenLinks.OnBrokenMarkdownLinks,
		I18n: I18nDoc{
			DefaultLocale: cfg.I18n.DefaultLocale,
			Locales:       append([]string(nil), cfg.I18n.Locales...),
		},
	}

	var blog any = false
	if cfg.Preset.BlogEnabled {
		blog = map[string]any{}
	}
	doc.Presets = []PresetEntry{{
		Name: "classic",
		Options: ClassicOptions{
			Docs: DocsDoc{
				RouteBasePath: cfg.Preset.Docs.RouteBasePath,
				SidebarPath:   cfg.Preset.Docs.SidebarPath,
				EditURL:       cfg.Preset.Docs.EditURL,
			},
			Blog:  blog,
			Theme: ThemeDoc{CustomCSS: cfg.Preset.CustomCSS},
		},
	}}

	tc := &doc.ThemeConfig
	tc.Image = cfg.Theme.SocialCard

	tc.Navbar.Title = cfg.Theme.Navbar.Title
	if logo := cfg.Theme.Navbar.Logo; logo.Src != "" {
		tc.Navbar.Logo = &LogoDoc{Alt: logo.Alt, Src: logo.Src}
	}
	tc.Navbar.Items = make([]NavItemDoc, 0, len(cfg.Theme.Navbar.Items))
	for _, item := range cfg.Theme.Navbar.Items {
		d := NavItemDoc{Position: string(item.Position), Label: item.Label}
		switch item.Kind {
		case KindSidebarLink:
			d.Type = sidebarItemType
			d.SidebarID = item.SidebarID
		case KindExternalLink:
			d.Href = item.Href
		}
		tc.Navbar.Items = append(tc.Navbar.Items, d)
	}

	tc.Footer.Style = string(cfg.Theme.Footer.Style)
	tc.Footer.Copyright = cfg.Theme.Footer.Copyright
	tc.Footer.Links = make([]FooterLinkCol, 0, len(cfg.Theme.Footer.Columns))
	for _, col := range cfg.Theme.Footer.Columns {
		fc := FooterLinkCol{Title: col.Title, Items: make([]FooterItemDoc, 0, len(col.Items))}
		for _, link := range col.Items {
			fc.Items = append(fc.Items, FooterItemDoc{Label: link.Label, To: link.To, Href: link.Href})
		}
		tc.Footer.Links = append(tc.Footer.Links, fc)
	}

	tc.Prism = PrismDoc{
		Theme:               string(cfg.Theme.Code.Light),
		DarkTheme:           string(cfg.Theme.Code.Dark),
		AdditionalLanguages: append([]string(nil), cfg.Theme.Code.ExtraLanguages...),
	}

	return doc
}
