package config

// ModuleConfig holds per-module overrides.
type ModuleConfig struct {
	Enabled *bool          `yaml:"enabled,omitempty" toml:"enabled,omitempty"`
	Exclude []string       `yaml:"exclude,omitempty" toml:"exclude,omitempty"` // field path globs
	Options map[string]any `yaml:"options,omitempty" toml:"options,omitempty"`
}

// LintConfig holds lint-specific configuration.
type LintConfig struct {
	Exclude []string                `yaml:"exclude" toml:"exclude"` // field path globs skipped by every module
	Modules map[string]ModuleConfig `yaml:"modules" toml:"modules"`
	JUnit   string                  `yaml:"junit" toml:"junit"` // optional JUnit XML report path
}

// DefaultLintConfig returns production defaults.
func DefaultLintConfig() LintConfig {
	return LintConfig{
		Exclude: []string{},
		Modules: map[string]ModuleConfig{},
	}
}
