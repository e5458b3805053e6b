package modules

import (
	"context"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/anasfik/nostr/src/lint"
)

func init() {
	lint.Register("unicode", func() lint.Module { return &unicodeModule{} })
}

// unicodeModule flags invisible and direction-changing characters in
// config values.
type unicodeModule struct {
	detectBidi         bool
	detectZeroWidth    bool
	detectControlASCII bool
	allowControl       map[rune]bool
	allowControlIn     []string // field path patterns
}

func (m *unicodeModule) Name() string        { return "unicode" }
func (m *unicodeModule) DefaultEnabled() bool { return true }

// Configure implements lint.ConfigurableModule.
func (m *unicodeModule) Configure(opts map[string]any) error {
	var err error
	if m.detectBidi, err = boolOption(opts, "detect_bidi", true); err != nil {
		return err
	}
	if m.detectZeroWidth, err = boolOption(opts, "detect_zero_width", true); err != nil {
		return err
	}
	if m.detectControlASCII, err = boolOption(opts, "detect_control_ascii", true); err != nil {
		return err
	}

	codes, err := intsOption(opts, "allow_control_ascii")
	if err != nil {
		return err
	}
	m.allowControl = make(map[rune]bool, len(codes))
	for _, c := range codes {
		switch {
		case c == '\t' || c == '\n' || c == '\r':
			return fmt.Errorf("allow_control_ascii: %d is always allowed; remove it", c)
		case c < 0 || c > 0x7F || !unicode.IsControl(rune(c)):
			return fmt.Errorf("allow_control_ascii: %d is not an ASCII control character", c)
		}
		m.allowControl[rune(c)] = true
	}

	m.allowControlIn, err = stringsOption(opts, "allow_control_ascii_in_fields")
	return err
}

func (m *unicodeModule) Check(ctx context.Context, fields []lint.Field) ([]lint.Finding, error) {
	if m.allowControl == nil {
		if err := m.Configure(nil); err != nil {
			return nil, err
		}
	}

	var findings []lint.Finding
	for _, f := range fields {
		if err := ctx.Err(); err != nil {
			return findings, err
		}
		controlAllowed := m.controlAllowedIn(f.Path)

		col := 0
		for _, r := range f.Value {
			col++
			msg := checkRune(r)
			if msg == "" || !m.enabledFor(r, controlAllowed) {
				continue
			}
			findings = append(findings, lint.Finding{
				Field:    f.Path,
				Column:   col,
				Module:   m.Name(),
				Severity: severityForRune(r),
				Message:  fmt.Sprintf("%s (U+%04X)", msg, r),
			})
		}
	}
	return findings, nil
}

func (m *unicodeModule) controlAllowedIn(field string) bool {
	for _, pattern := range m.allowControlIn {
		if lint.MatchField(pattern, field) {
			return true
		}
	}
	return false
}

// enabledFor applies the detect_* switches and the control allowlist.
// Bidi and zero-width detection ignore the allowlist.
func (m *unicodeModule) enabledFor(r rune, controlAllowedHere bool) bool {
	switch {
	case isBidi(r):
		return m.detectBidi
	case isZeroWidth(r):
		return m.detectZeroWidth
	case r < 0x80 && unicode.IsControl(r):
		if !m.detectControlASCII {
			return false
		}
		return !(controlAllowedHere && m.allowControl[r])
	}
	return true
}

func isBidi(r rune) bool {
	return (r >= '\u202A' && r <= '\u202E') || (r >= '\u2066' && r <= '\u2069')
}

func isZeroWidth(r rune) bool {
	return r == '\u200B' || r == '\u200C' || r == '\u200D' || r == '\uFEFF'
}

var runeNames = map[rune]string{
	'\u202A': "bidi override: left-to-right embedding",
	'\u202B': "bidi override: right-to-left embedding",
	'\u202C': "bidi override: pop directional formatting",
	'\u202D': "bidi override: left-to-right override",
	'\u202E': "bidi override: right-to-left override",
	'\u2066': "bidi override: left-to-right isolate",
	'\u2067': "bidi override: right-to-left isolate",
	'\u2068': "bidi override: first strong isolate",
	'\u2069': "bidi override: pop directional isolate",

	'\u200B': "zero-width space",
	'\u200C': "zero-width non-joiner",
	'\u200D': "zero-width joiner",
	'\uFEFF': "zero-width no-break space (stray BOM)",

	'\u00AD': "soft hyphen (invisible)",
	'\u034F': "combining grapheme joiner",
	'\u2060': "word joiner (invisible)",
	'\u2061': "invisible math operator",
	'\u2062': "invisible math operator",
	'\u2063': "invisible math operator",
	'\u2064': "invisible math operator",
	'\u180E': "mongolian vowel separator (invisible whitespace)",

	'\u00A0': "non-breaking space",
	'\u205F': "medium mathematical space",
	'\u3000': "ideographic space",

	utf8.RuneError: "replacement character (text was mis-decoded)",
}

// checkRune names the problem with r, or returns "" for ordinary text.
func checkRune(r rune) string {
	if name, ok := runeNames[r]; ok {
		return name
	}
	switch {
	case r >= '\u2000' && r <= '\u200A':
		return "unusual whitespace character"
	case r < 0x80 && unicode.IsControl(r) && r != '\t' && r != '\n' && r != '\r':
		return "ASCII control character"
	case r >= 0xE0001 && r <= 0xE007F:
		return "tag character (invisible)"
	}
	return ""
}

func severityForRune(r rune) lint.Severity {
	switch {
	case isBidi(r), isZeroWidth(r):
		return lint.SeverityCritical
	case r >= 0xE0001 && r <= 0xE007F:
		return lint.SeverityCritical
	default:
		return lint.SeverityWarning
	}
}
