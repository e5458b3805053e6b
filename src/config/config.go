package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/anasfik/nostr/src/site"
)

// DefaultFile is the override file docsite looks for when --config is not given.
const DefaultFile = ".docsite.yml"

// CurrentVersion is the schema version written by `docsite init` and
// produced by MigrateToLatest.
const CurrentVersion = 1

// ErrUnsupportedFormat is returned when a config file has an extension
// Load cannot decode.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config is the top-level docsite configuration.
type Config struct {
	Version int          `yaml:"version" toml:"version"`
	Site    site.Input   `yaml:"site" toml:"site"`
	Output  OutputConfig `yaml:"output" toml:"output"`
	Lint    LintConfig   `yaml:"lint" toml:"lint"`

	// File is the path settings were read from; empty when only the
	// built-in defaults apply.
	File string `yaml:"-" toml:"-"`
}

// OutputConfig controls what `docsite build` writes.
type OutputConfig struct {
	Format string `yaml:"format" toml:"format"` // js, json or yaml
	Path   string `yaml:"path" toml:"path"`     // empty means the format's conventional file name
}

// Input returns the site literals to assemble from.
func (c *Config) Input() site.Input {
	return c.Site
}

// Load reads configuration from a YAML or TOML file, then applies DOCSITE_*
// environment overrides. If path is empty, it tries the default file.
// Returns the Dart Nostr defaults if the default file doesn't exist; an
// explicitly named file must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	cfg := defaults()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		// A file without a version key is the unversioned layout, not the
		// current one.
		cfg.Version = 0
		if err := decode(path, data, cfg); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		cfg.File = path
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// defaults only
	default:
		return nil, err
	}

	applyEnv(cfg, os.LookupEnv)
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yaml.Unmarshal(data, cfg)
	case ".toml":
		return toml.Unmarshal(data, cfg)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

func defaults() *Config {
	return &Config{
		Version: CurrentVersion,
		Site:    site.DefaultInput(),
		Output:  OutputConfig{Format: string(site.FormatJS)},
		Lint:    DefaultLintConfig(),
	}
}
