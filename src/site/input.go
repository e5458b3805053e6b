package site

// Input is the literal material Build assembles a SiteConfig from. It has the
// same shape as SiteConfig; Footer.Copyright is a template that may contain
// {year}.
type Input SiteConfig

// DefaultEngineVersion is the engine release the emitted file targets when
// nothing else is configured.
const DefaultEngineVersion = "2.4.3"

// DefaultInput returns the literals of the Dart Nostr documentation site.
func DefaultInput() Input {
	return Input{
		Metadata: SiteMetadata{
			Title:   "Dart Nostr",
			Tagline: "Dart implmentation for the Nostr protocol",
			Favicon: "img/favicon.ico",
			URL:     "https://anasfik.github.io",
			BaseURL: "/nostr",
		},
		Deployment: Deployment{
			OrganizationName: "anasfik",
			ProjectName:      "nostr",
		},
		BrokenLinks: BrokenLinkPolicy{
			OnBrokenLinks:         LinkThrow,
			OnBrokenMarkdownLinks: LinkWarn,
		},
		I18n: LocaleConfig{
			DefaultLocale: "en",
			Locales:       []string{"en"},
		},
		Preset: PresetOptions{
			Docs: DocsOptions{
				RouteBasePath: "/",
				SidebarPath:   "./sidebars.js",
				EditURL:       "https://github.com/anasfik/nostr/tree/main/docs/",
			},
			BlogEnabled: false,
			CustomCSS:   "./src/css/custom.css",
		},
		Theme: ThemeConfig{
			SocialCard: "img/logo.png",
			Navbar: NavbarSpec{
				Title: "Dart Nostr",
				Logo: Logo{
					Alt: "Dart Nostr logo",
					Src: "img/logo.png",
				},
				Items: []NavItem{
					{
						Kind:      KindSidebarLink,
						SidebarID: "tutorialSidebar",
						Position:  PositionLeft,
						Label:     "Documentation",
					},
					{
						Kind:     KindExternalLink,
						Href:     "https://github.com/anasfik/nostr",
						Label:    "GitHub",
						Position: PositionRight,
					},
				},
			},
			Footer: FooterSpec{
				Style: FooterDark,
				Columns: []FooterColumn{
					{
						Title: "Docs",
						Items: []FooterLink{
							{Label: "Documentation", To: "/"},
						},
					},
					{
						Title: "Community",
						Items: []FooterLink{
							{Label: "Issues", Href: "https://github.com/anasfik/nostr/issues"},
							{Label: "Pub", Href: "https://pub.dev/packages/dart_nostr"},
						},
					},
					{
						Title: "More",
						Items: []FooterLink{
							{Label: "Author", Href: "https://github.com/anasfik"},
						},
					},
				},
				Copyright: "Copyright © {year} My Project, Inc. Built with Docusaurus.",
			},
			Code: CodeThemeSpec{
				Light:          "github",
				Dark:           "dracula",
				ExtraLanguages: []string{"dart"},
			},
		},
		Engine: EngineSpec{Version: DefaultEngineVersion},
	}
}
