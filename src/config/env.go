package config

// Environment variables that override file values. They are applied last so
// CI jobs can retarget a fork's pages without editing the file.
const (
	EnvURL           = "DOCSITE_URL"
	EnvBaseURL       = "DOCSITE_BASE_URL"
	EnvEditURL       = "DOCSITE_EDIT_URL"
	EnvEngineVersion = "DOCSITE_ENGINE_VERSION"
)

// applyEnv overlays set variables onto cfg. An empty value is still an
// override; it lets a job clear the edit URL.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvURL); ok {
		cfg.Site.Metadata.URL = v
	}
	if v, ok := lookup(EnvBaseURL); ok {
		cfg.Site.Metadata.BaseURL = v
	}
	if v, ok := lookup(EnvEditURL); ok {
		cfg.Site.Preset.Docs.EditURL = v
	}
	if v, ok := lookup(EnvEngineVersion); ok {
		cfg.Site.Engine.Version = v
	}
}
