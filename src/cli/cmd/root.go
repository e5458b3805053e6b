package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anasfik/nostr/src/config"
	"github.com/anasfik/nostr/src/log"
	"github.com/anasfik/nostr/src/output"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string
	cfg       *config.Config
)

// Commands that work on raw files and must not require a loadable config.
var skipConfig = map[string]bool{"version": true, "init": true, "migrate": true}

var rootCmd = &cobra.Command{
	Use:   "docsite",
	Short: "Assemble the Dart Nostr documentation site config",
	Long: `docsite builds the Docusaurus configuration for the Dart Nostr
documentation site from .docsite.yml (or built-in defaults), validates it,
and writes it in the form the site engine loads.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "info"
		if verbose {
			level = "debug"
		}
		switch logFormat {
		case "console", "json":
		default:
			return fmt.Errorf("unknown log format %q (supported: console, json)", logFormat)
		}
		log.Configure(log.Config{Level: level, JSON: logFormat == "json", NoColor: !output.UseColor()})

		if skipConfig[cmd.Name()] {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		logger := log.WithComponent("config")
		warnings, err := config.Validate(cfg)
		for _, w := range warnings {
			logger.Warn().Msg(w)
		}
		if err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		if cfg.File == "" {
			logger.Debug().Str("looked_for", configPath()).Msg("no config file, using defaults")
		} else {
			logger.Debug().Str("file", cfg.File).Int("version", cfg.Version).Msg("config loaded")
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, YAML or TOML (default: "+config.DefaultFile+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "diagnostic log format: console or json")
}

// configPath names the file settings came from, for messages.
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultFile
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
