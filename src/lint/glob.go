package lint

import (
	"path"
	"regexp"
	"strings"
)

var indexRe = regexp.MustCompile(`\[([^\]]*)\]`)

// MatchField matches an exclude pattern against a field path. Segments are
// separated by "." and list indexes may be written [N] or [*]; "*" matches
// within one segment and "**" matches any number of segments.
//
//	themeConfig.footer.links[*].items[*].href
//	themeConfig.**.href
func MatchField(pattern, field string) bool {
	return matchGlob(segments(pattern), segments(field))
}

// segments rewrites a dotted path into slash form so path.Match applies
// per segment: links[2].href → links/2/href.
func segments(p string) string {
	p = indexRe.ReplaceAllString(p, ".$1")
	return strings.ReplaceAll(p, ".", "/")
}

// matchGlob extends path.Match with support for "**" (zero or more path
// segments). Patterns without "**" delegate directly to path.Match.
func matchGlob(pattern, name string) bool {
	if !strings.Contains(pattern, "**") {
		matched, _ := path.Match(pattern, name)
		return matched
	}

	idx := strings.Index(pattern, "**")
	prefix := pattern[:idx]
	suffix := strings.TrimLeft(pattern[idx+2:], "/")

	// The prefix (before **) must match the leading segments of name.
	if prefix != "" {
		prefix = strings.TrimRight(prefix, "/")
		n := strings.Count(prefix, "/") + 1
		parts := strings.Split(name, "/")
		if len(parts) < n {
			return false
		}
		if ok, _ := path.Match(prefix, strings.Join(parts[:n], "/")); !ok {
			return false
		}
		name = strings.Join(parts[n:], "/")
	}

	// No suffix: ** at end matches everything remaining.
	if suffix == "" {
		return true
	}

	// Try matching suffix against every possible tail of name.
	parts := strings.Split(name, "/")
	for i := 0; i <= len(parts); i++ {
		if matchGlob(suffix, strings.Join(parts[i:], "/")) {
			return true
		}
	}
	return false
}
