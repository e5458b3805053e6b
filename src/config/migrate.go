package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MigrateToLatest takes raw YAML data and migrates it to the current schema version.
// Returns the migrated YAML bytes ready for writing.
//
// Migration chain:
//
//	version 0 (unversioned, site keys at top level) → 1
//	version 1 → current (no-op)
func MigrateToLatest(data []byte) ([]byte, error) {
	ver, err := peekVersion(data)
	if err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	switch ver {
	case CurrentVersion:
		return data, nil
	case 0:
		return migrateV0(data)
	default:
		return nil, fmt.Errorf("migrate: unknown config version %d (latest supported: %d)", ver, CurrentVersion)
	}
}

// peekVersion extracts the version field from raw YAML without full parsing.
// Returns 0 if no version field is present.
func peekVersion(data []byte) (int, error) {
	var probe struct {
		Version int `yaml:"version"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return 0, fmt.Errorf("reading version: %w", err)
	}
	return probe.Version, nil
}

// topLevelKeys stay at the document root when an unversioned file is
// wrapped; everything else moves under site.
var topLevelKeys = map[string]bool{"output": true, "lint": true}

// migrateV0 wraps an unversioned file, whose site keys sit at the root, in
// the version 1 layout.
func migrateV0(data []byte) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	var root *yaml.Node
	switch {
	case doc.Kind == 0:
		root = &yaml.Node{Kind: yaml.MappingNode}
	case doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 && doc.Content[0].Kind == yaml.MappingNode:
		root = doc.Content[0]
	default:
		return nil, fmt.Errorf("migrate: config root must be a mapping")
	}

	siteNode := &yaml.Node{Kind: yaml.MappingNode}
	out := &yaml.Node{Kind: yaml.MappingNode}
	out.Content = append(out.Content, scalar("version"), scalarInt(CurrentVersion))

	var kept []*yaml.Node
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if key.Value == "site" {
			return nil, fmt.Errorf("migrate: config has a site section but no version field; add version: %d", CurrentVersion)
		}
		if topLevelKeys[key.Value] {
			kept = append(kept, key, val)
			continue
		}
		siteNode.Content = append(siteNode.Content, key, val)
	}
	if len(siteNode.Content) > 0 {
		out.Content = append(out.Content, scalar("site"), siteNode)
	}
	out.Content = append(out.Content, kept...)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{out}}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return buf.Bytes(), nil
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func scalarInt(n int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(n)}
}
