package site

import (
	"strings"
	"testing"
)

func defaultConfig(t *testing.T) SiteConfig {
	t.Helper()
	return mustBuild(t, DefaultInput(), WithClock(fixedClock(2024)))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SiteConfig)
		field  string // expected violation; empty means valid
	}{
		{"defaults", func(c *SiteConfig) {}, ""},
		{"empty title", func(c *SiteConfig) { c.Metadata.Title = "" }, "title"},
		{"empty favicon", func(c *SiteConfig) { c.Metadata.Favicon = "" }, "favicon"},
		{"relative url", func(c *SiteConfig) { c.Metadata.URL = "anasfik.github.io" }, "url"},
		{"ftp url", func(c *SiteConfig) { c.Metadata.URL = "ftp://anasfik.github.io" }, "url"},
		{"url with path", func(c *SiteConfig) { c.Metadata.URL = "https://anasfik.github.io/nostr" }, "url"},
		{"base without slash", func(c *SiteConfig) { c.Metadata.BaseURL = "nostr/" }, "baseUrl"},
		{"empty base", func(c *SiteConfig) { c.Metadata.BaseURL = "" }, "baseUrl"},
		{"trailing slash base", func(c *SiteConfig) { c.Metadata.BaseURL = "/nostr/" }, ""},
		{"bad broken-link policy", func(c *SiteConfig) { c.BrokenLinks.OnBrokenLinks = "explode" }, "onBrokenLinks"},
		{"no locales", func(c *SiteConfig) { c.I18n.Locales = nil }, "i18n.locales"},
		{"duplicate locale", func(c *SiteConfig) { c.I18n.Locales = []string{"en", "en"} }, "i18n.locales[1]"},
		{"empty default locale", func(c *SiteConfig) { c.I18n.DefaultLocale = "" }, "i18n.defaultLocale"},
		{"extra locale ok", func(c *SiteConfig) { c.I18n.Locales = []string{"fr", "en"} }, ""},
		{"route base relative", func(c *SiteConfig) { c.Preset.Docs.RouteBasePath = "docs" }, "presets.classic.docs.routeBasePath"},
		{"no sidebar path", func(c *SiteConfig) { c.Preset.Docs.SidebarPath = "" }, "presets.classic.docs.sidebarPath"},
		{"bad edit url", func(c *SiteConfig) { c.Preset.Docs.EditURL = "github.com/anasfik" }, "presets.classic.docs.editUrl"},
		{"no edit url ok", func(c *SiteConfig) { c.Preset.Docs.EditURL = "" }, ""},
		{"no custom css", func(c *SiteConfig) { c.Preset.CustomCSS = "" }, "presets.classic.theme.customCss"},
		{"logo without src", func(c *SiteConfig) { c.Theme.Navbar.Logo.Src = "" }, "themeConfig.navbar.logo.src"},
		{"bad position", func(c *SiteConfig) { c.Theme.Navbar.Items[0].Position = "center" }, "themeConfig.navbar.items[0].position"},
		{"sidebar link without id", func(c *SiteConfig) { c.Theme.Navbar.Items[0].SidebarID = "" }, "themeConfig.navbar.items[0].sidebarId"},
		{"sidebar link with href", func(c *SiteConfig) { c.Theme.Navbar.Items[0].Href = "https://x.dev" }, "themeConfig.navbar.items[0].href"},
		{"external link without href", func(c *SiteConfig) { c.Theme.Navbar.Items[1].Href = "" }, "themeConfig.navbar.items[1].href"},
		{"unknown kind", func(c *SiteConfig) { c.Theme.Navbar.Items[1].Kind = "dropdown" }, "themeConfig.navbar.items[1].kind"},
		{"missing kind", func(c *SiteConfig) { c.Theme.Navbar.Items[1].Kind = "" }, "themeConfig.navbar.items[1].kind"},
		{"bad footer style", func(c *SiteConfig) { c.Theme.Footer.Style = "neon" }, "themeConfig.footer.style"},
		{"empty column title", func(c *SiteConfig) { c.Theme.Footer.Columns[2].Title = "" }, "themeConfig.footer.links[2].title"},
		{"link without target", func(c *SiteConfig) { c.Theme.Footer.Columns[1].Items[1].Href = "" }, "themeConfig.footer.links[1].items[1]"},
		{"link with both targets", func(c *SiteConfig) { c.Theme.Footer.Columns[0].Items[0].Href = "https://x.dev" }, "themeConfig.footer.links[0].items[0]"},
		{"relative internal path", func(c *SiteConfig) { c.Theme.Footer.Columns[0].Items[0].To = "docs" }, "themeConfig.footer.links[0].items[0].to"},
		{"empty copyright", func(c *SiteConfig) { c.Theme.Footer.Copyright = "" }, "themeConfig.footer.copyright"},
		{"empty light theme", func(c *SiteConfig) { c.Theme.Code.Light = "" }, "themeConfig.prism.theme"},
		{"theme path", func(c *SiteConfig) { c.Theme.Code.Dark = "../dracula" }, "themeConfig.prism.darkTheme"},
		{"empty language", func(c *SiteConfig) { c.Theme.Code.ExtraLanguages = []string{"dart", ""} }, "themeConfig.prism.additionalLanguages[1]"},
		{"engine too old", func(c *SiteConfig) { c.Engine.Version = "1.14.7" }, "engine.version"},
		{"engine garbage", func(c *SiteConfig) { c.Engine.Version = "latest" }, "engine.version"},
		{"engine v3", func(c *SiteConfig) { c.Engine.Version = "3.5.2" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig(t)
			tt.mutate(&cfg)

			_, err := Validate(cfg)
			if tt.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			requireValidationError(t, err, tt.field)
		})
	}
}

func TestValidate_CollectsEveryViolation(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Metadata.Title = ""
	cfg.I18n.Locales = []string{"fr"}
	cfg.Theme.Navbar.Items[0].Label = ""

	_, err := Validate(cfg)
	verr := requireValidationError(t, err, "title")
	if len(verr.Errors()) != 3 {
		t.Fatalf("expected 3 violations, got %d: %v", len(verr.Errors()), err)
	}
	for _, field := range []string{"i18n.locales", "themeConfig.navbar.items[0].label"} {
		if !verr.Has(field) {
			t.Errorf("missing violation for %s", field)
		}
	}
	if !strings.HasPrefix(err.Error(), "invalid site config: ") {
		t.Errorf("unexpected message format: %q", err.Error())
	}
}

func TestValidate_EmptyColumnWarns(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Theme.Footer.Columns[2].Items = nil

	warnings, err := Validate(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, w := range warnings {
		if strings.Contains(w, `"More" has no items`) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected empty-column warning, got %v", warnings)
	}
}

func TestPageURL(t *testing.T) {
	tests := []struct {
		url, base, want string
	}{
		{"https://anasfik.github.io", "/nostr", "https://anasfik.github.io/nostr/"},
		{"https://anasfik.github.io/", "/nostr/", "https://anasfik.github.io/nostr/"},
		{"https://docs.example.org", "/", "https://docs.example.org/"},
	}
	for _, tt := range tests {
		m := SiteMetadata{URL: tt.url, BaseURL: tt.base}
		if got := m.PageURL(); got != tt.want {
			t.Errorf("PageURL(%q, %q) = %q, want %q", tt.url, tt.base, got, tt.want)
		}
	}
}
