package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/anasfik/nostr/src/log"
	"github.com/anasfik/nostr/src/output"
	"github.com/anasfik/nostr/src/site"
)

// assemble builds the site config from the loaded settings. On a validation
// failure it renders every violation to w before returning the error.
func assemble(w io.Writer, color bool) (site.SiteConfig, []string, error) {
	logger := log.WithComponent("site")

	var warnings []string
	built, err := site.Build(cfg.Input(), site.WithWarnings(func(msg string) {
		warnings = append(warnings, msg)
		logger.Debug().Msg(msg)
	}))

	var verr *site.ValidationError
	if errors.As(err, &verr) {
		sec := output.NewSection(w, "Validate", 0, color)
		output.SectionValidation(sec, verr, color)
		sec.Close()
		return site.SiteConfig{}, nil, fmt.Errorf("site config has %d violation(s)", len(verr.Errors()))
	}
	if err != nil {
		return site.SiteConfig{}, nil, err
	}

	logger.Debug().
		Str("title", built.Metadata.Title).
		Str("url", built.Metadata.PageURL()).
		Str("engine", built.Engine.Version).
		Msg("site assembled")
	return built, warnings, nil
}
