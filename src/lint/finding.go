package lint

import "fmt"

// Severity indicates how serious a finding is.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Finding represents a single lint result.
type Finding struct {
	Field    string // engine key path, e.g. themeConfig.footer.links[1].items[0].href
	Column   int    // 1-based rune offset into the value, 0 when not applicable
	Module   string
	Severity Severity
	Message  string
}

// Field is one string leaf of the assembled configuration, passed to each
// module for inspection.
type Field struct {
	Path  string
	Value string
}
