package lint

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/anasfik/nostr/src/site"
)

// Flatten lists every string leaf of the engine document for cfg, in key
// order. Paths use the engine's key names, the same ones site.Validate
// reports. The preset tuple is addressed by name: presets.classic.docs.editUrl.
func Flatten(cfg site.SiteConfig) ([]Field, error) {
	data, err := json.Marshal(site.NewDocument(cfg))
	if err != nil {
		return nil, fmt.Errorf("flattening config: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("flattening config: %w", err)
	}

	var fields []Field
	walk("", doc, &fields)
	return fields, nil
}

func walk(prefix string, v any, out *[]Field) {
	switch t := v.(type) {
	case string:
		*out = append(*out, Field{Path: prefix, Value: t})
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			walk(join(prefix, k), t[k], out)
		}
	case []any:
		if prefix == "presets" {
			for i, p := range t {
				if tuple, ok := p.([]any); ok && len(tuple) == 2 {
					if name, ok := tuple[0].(string); ok {
						walk(join(prefix, name), tuple[1], out)
						continue
					}
				}
				walk(fmt.Sprintf("%s[%d]", prefix, i), p, out)
			}
			return
		}
		for i, e := range t {
			walk(fmt.Sprintf("%s[%d]", prefix, i), e, out)
		}
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
