package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/anasfik/nostr/src/config"
	"github.com/anasfik/nostr/src/gitver"
	"github.com/anasfik/nostr/src/log"
	"github.com/anasfik/nostr/src/site"
)

var (
	initForce   bool
	initDocsDir string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter " + config.DefaultFile,
	Long: `Write a starter config with the Dart Nostr defaults.

When run inside a git checkout with an origin remote, the deployment
coordinates, canonical URL, base path, edit URL and repository links are
taken from the remote and the current branch.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	initCmd.Flags().StringVar(&initDocsDir, "docs-dir", "docs", "docs directory used for the edit URL")

	rootCmd.AddCommand(initCmd)
}

const initHeader = "# docsite configuration. Run `docsite build` to write docusaurus.config.js.\n"

func runInit(cmd *cobra.Command, args []string) error {
	path := configPath()
	logger := log.WithComponent("init")

	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	starter := &config.Config{
		Version: config.CurrentVersion,
		Site:    site.DefaultInput(),
		Output:  config.OutputConfig{Format: string(site.FormatJS)},
		Lint:    config.DefaultLintConfig(),
	}

	pm, err := gitver.DetectProject(".")
	if err != nil {
		logger.Warn().Err(err).Msg("no git coordinates, keeping defaults")
	} else {
		applyProject(&starter.Site, pm, initDocsDir)
		logger.Debug().Str("repo", pm.URL).Str("branch", pm.Branch).Msg("detected project")
	}

	var buf bytes.Buffer
	buf.WriteString(initHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(starter); err != nil {
		return fmt.Errorf("encoding starter config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logger.Info().Str("file", path).Msg("wrote starter config")
	return nil
}

// applyProject points the repository-derived fields of in at pm.
func applyProject(in *site.Input, pm *gitver.ProjectMeta, docsDir string) {
	in.Deployment = site.Deployment{OrganizationName: pm.Owner, ProjectName: pm.Name}
	if pages := pm.PagesURL(); pages != "" {
		in.Metadata.URL = pages
		in.Metadata.BaseURL = pm.BaseURL()
	}
	in.Preset.Docs.EditURL = pm.EditURL(docsDir)
	in.Theme.Footer.Copyright = "Copyright © " + site.YearPlaceholder + " " + pm.Owner + ". Built with Docusaurus."

	for i, item := range in.Theme.Navbar.Items {
		if item.Kind == site.KindExternalLink && item.Label == "GitHub" {
			in.Theme.Navbar.Items[i].Href = pm.URL
		}
	}
	for _, col := range in.Theme.Footer.Columns {
		for j, link := range col.Items {
			if link.Label == "Issues" {
				col.Items[j] = site.FooterLink{Label: link.Label, Href: pm.IssuesURL()}
			}
		}
	}
}
