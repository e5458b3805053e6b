package modules

import (
	"testing"
	"time"

	"github.com/anasfik/nostr/src/lint"
	"github.com/anasfik/nostr/src/site"
)

func defaultFields(t *testing.T) []lint.Field {
	t.Helper()
	cfg, err := site.BuildDefault(site.WithClock(func() time.Time {
		return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}))
	if err != nil {
		t.Fatalf("BuildDefault: %v", err)
	}
	fields, err := lint.Flatten(cfg)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	return fields
}

func setField(fields []lint.Field, path, value string) []lint.Field {
	out := append([]lint.Field(nil), fields...)
	for i := range out {
		if out[i].Path == path {
			out[i].Value = value
			return out
		}
	}
	return append(out, lint.Field{Path: path, Value: value})
}

func TestRegistered(t *testing.T) {
	for _, name := range []string{"links", "secrets", "unicode"} {
		if _, err := lint.Get(name); err != nil {
			t.Errorf("module %s not registered: %v", name, err)
		}
	}
}
