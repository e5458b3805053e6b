package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, buf.String())
	}
	return m
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Output: &buf, JSON: true, Level: "info"})
	t.Cleanup(func() { Configure(Config{}) })

	l := WithComponent("site")
	l.Info().Str("field", "title").Msg("assembled")

	m := decodeLine(t, &buf)
	if m["component"] != "site" || m["field"] != "title" || m["message"] != "assembled" {
		t.Fatalf("unexpected log fields: %v", m)
	}
}

func TestConfigure_Level(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Output: &buf, JSON: true, Level: "warn"})
	t.Cleanup(func() { Configure(Config{}) })

	l := Base()
	l.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %s", buf.String())
	}
	l.Warn().Msg("shown")
	if buf.Len() == 0 {
		t.Fatal("warn should pass at warn level")
	}
}

func TestDerive(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Output: &buf, JSON: true, Level: "debug"})
	t.Cleanup(func() { Configure(Config{}) })

	l := Derive(func(c *zerolog.Context) {
		*c = c.Str("format", "yaml")
	})
	l.Debug().Msg("emit")

	if m := decodeLine(t, &buf); m["format"] != "yaml" {
		t.Fatalf("derived field missing: %v", m)
	}
}
