package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anasfik/nostr/src/site"
	"github.com/anasfik/nostr/src/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(version.String())
		if verbose {
			fmt.Printf("default engine %s\n", site.DefaultEngineVersion)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
