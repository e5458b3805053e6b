package output

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/anasfik/nostr/src/lint"
)

// CI environment detection.

func IsCI() bool {
	return os.Getenv("CI") == "true"
}

func IsGitHubActions() bool {
	return os.Getenv("GITHUB_ACTIONS") == "true"
}

func IsGitLabCI() bool {
	return os.Getenv("GITLAB_CI") == "true"
}

// Collapsible log groups. Outside CI both are no-ops.

func SectionStart(w io.Writer, id, name string) {
	switch {
	case IsGitHubActions():
		fmt.Fprintf(w, "::group::%s\n", name)
	case IsGitLabCI():
		fmt.Fprintf(w, "\033[0Ksection_start:%d:%s\r\033[0K%s\n", time.Now().Unix(), id, name)
	}
}

func SectionEnd(w io.Writer, id string) {
	switch {
	case IsGitHubActions():
		fmt.Fprintln(w, "::endgroup::")
	case IsGitLabCI():
		fmt.Fprintf(w, "\033[0Ksection_end:%d:%s\r\033[0K\n", time.Now().Unix(), id)
	}
}

// Annotate emits GitHub Actions workflow commands so findings show up on
// the run summary. file is the config file the fields came from.
func Annotate(w io.Writer, file string, findings []lint.Finding) {
	if !IsGitHubActions() {
		return
	}
	for _, f := range findings {
		level := "notice"
		switch f.Severity {
		case lint.SeverityCritical:
			level = "error"
		case lint.SeverityWarning:
			level = "warning"
		}
		fmt.Fprintf(w, "::%s file=%s,title=%s::%s: %s\n",
			level, escapeProperty(file), escapeProperty(f.Module), escapeData(f.Field), escapeData(f.Message))
	}
}

// Workflow command escaping.
func escapeData(s string) string {
	return strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A").Replace(s)
}

func escapeProperty(s string) string {
	return strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A", ":", "%3A", ",", "%2C").Replace(s)
}

// JUnit XML types for CI test reporting.

type JUnitTestSuites struct {
	XMLName  xml.Name         `xml:"testsuites"`
	Name     string           `xml:"name,attr"`
	Tests    int              `xml:"tests,attr"`
	Failures int              `xml:"failures,attr"`
	Time     string           `xml:"time,attr"`
	Suites   []JUnitTestSuite `xml:"testsuite"`
}

type JUnitTestSuite struct {
	Name     string          `xml:"name,attr"`
	Tests    int             `xml:"tests,attr"`
	Failures int             `xml:"failures,attr"`
	Time     string          `xml:"time,attr"`
	Cases    []JUnitTestCase `xml:"testcase"`
}

type JUnitTestCase struct {
	Name      string        `xml:"name,attr"`
	Classname string        `xml:"classname,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
}

type JUnitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Body    string `xml:",chardata"`
}

// WriteLintJUnit writes lint results as JUnit XML to path.
// Each module becomes a test suite and each field it checked a test case;
// only critical findings count as failures.
func WriteLintJUnit(path string, findings []lint.Finding, stats []lint.ModuleStats, fields []lint.Field) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report dir: %w", err)
		}
	}

	byModule := make(map[string]map[string][]lint.Finding)
	for _, f := range findings {
		if byModule[f.Module] == nil {
			byModule[f.Module] = make(map[string][]lint.Finding)
		}
		byModule[f.Module][f.Field] = append(byModule[f.Module][f.Field], f)
	}

	root := JUnitTestSuites{Name: "docsite-lint"}
	var total time.Duration

	for _, st := range stats {
		total += st.Elapsed
		suite := JUnitTestSuite{
			Name: "docsite/lint/" + st.Name,
			Time: fmt.Sprintf("%.3f", st.Elapsed.Seconds()),
		}

		for _, field := range fields {
			tc := JUnitTestCase{Name: field.Path, Classname: "docsite.lint." + st.Name}

			if ff := byModule[st.Name][field.Path]; len(ff) > 0 {
				worst := lint.SeverityInfo
				lines := make([]string, 0, len(ff))
				for _, finding := range ff {
					if finding.Severity > worst {
						worst = finding.Severity
					}
					lines = append(lines, fmt.Sprintf("  [%s] %s", finding.Severity, finding.Message))
				}
				if worst >= lint.SeverityCritical {
					tc.Failure = &JUnitFailure{
						Message: fmt.Sprintf("%d finding(s) in %s", len(ff), field.Path),
						Type:    worst.String(),
						Body:    strings.Join(lines, "\n"),
					}
					suite.Failures++
				}
			}

			suite.Cases = append(suite.Cases, tc)
			suite.Tests++
		}

		root.Tests += suite.Tests
		root.Failures += suite.Failures
		root.Suites = append(root.Suites, suite)
	}
	root.Time = fmt.Sprintf("%.3f", total.Seconds())

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.WriteString(f, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(f)
	enc.Indent("", "  ")
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("encoding junit xml: %w", err)
	}
	_, err = io.WriteString(f, "\n")
	return err
}
