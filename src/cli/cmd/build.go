package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/anasfik/nostr/src/log"
	"github.com/anasfik/nostr/src/output"
	"github.com/anasfik/nostr/src/site"
)

var (
	buildFormat string
	buildOutput string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Assemble, validate and write the site config",
	Long: `Assemble the site configuration, validate it and write it in the
engine's format.

The format defaults to output.format from the config (js). The output path
defaults to output.path, then to docusaurus.config.<format>. Use --output -
to write to stdout.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildFormat, "format", "f", "", "output format: js, json or yaml")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output path, or - for stdout")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	color := output.UseColor()
	w := os.Stdout
	logger := log.WithComponent("build")

	formatName := buildFormat
	if formatName == "" {
		formatName = cfg.Output.Format
	}
	format, err := site.ParseFormat(formatName)
	if err != nil {
		return err
	}

	target := buildOutput
	if target == "" {
		target = cfg.Output.Path
	}
	if target == "" {
		target = format.FileName()
	}

	start := time.Now()
	built, warnings, err := assemble(w, color)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := site.Write(&buf, built, format); err != nil {
		return fmt.Errorf("rendering %s: %w", format, err)
	}

	if target == "-" {
		_, err := w.Write(buf.Bytes())
		return err
	}

	if dir := filepath.Dir(target); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(target, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	logger.Debug().Str("path", target).Int("bytes", buf.Len()).Msg("config written")

	output.ContextBlock(w, siteContext(built))

	output.SectionStart(w, "docsite_build", "Build")
	sec := output.NewSection(w, "Build", time.Since(start), color)
	if len(warnings) > 0 {
		output.SectionWarnings(sec, warnings, color)
		sec.Separator()
	}
	output.RowStatus(sec, "wrote", fmt.Sprintf("%s (%s)", target, format), "success", color)
	sec.Close()
	output.SectionEnd(w, "docsite_build")
	return nil
}

// siteContext names the assembled site for the context block.
func siteContext(built site.SiteConfig) []output.KV {
	return []output.KV{
		{Key: "site", Value: built.Metadata.Title},
		{Key: "url", Value: built.Metadata.PageURL()},
		{Key: "engine", Value: built.Engine.Version},
		{Key: "locales", Value: strings.Join(built.I18n.Locales, ", ")},
		{Key: "config", Value: cfg.File},
	}
}
