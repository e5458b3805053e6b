package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/anasfik/nostr/src/output"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Assemble and validate the site config without writing it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		color := output.UseColor()
		w := os.Stdout

		start := time.Now()
		built, warnings, err := assemble(w, color)
		if err != nil {
			return err
		}

		output.ContextBlock(w, siteContext(built))

		sec := output.NewSection(w, "Validate", time.Since(start), color)
		output.SectionWarnings(sec, warnings, color)
		output.RowStatus(sec, "valid", fmt.Sprintf("%d locale(s), %d nav item(s)", len(built.I18n.Locales), len(built.Theme.Navbar.Items)), "success", color)
		sec.Close()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
