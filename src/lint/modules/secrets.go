package modules

import (
	"context"
	"sync"

	"github.com/zricethezav/gitleaks/v8/detect"

	"github.com/anasfik/nostr/src/lint"
)

func init() {
	lint.Register("secrets", func() lint.Module { return &secretsModule{} })
}

// secretsModule runs the gitleaks default ruleset over every value. Edit
// URLs with embedded tokens and pasted search API keys are the usual hits.
type secretsModule struct {
	once     sync.Once
	detector *detect.Detector
	initErr  error
}

func (m *secretsModule) Name() string        { return "secrets" }
func (m *secretsModule) DefaultEnabled() bool { return true }

func (m *secretsModule) Check(ctx context.Context, fields []lint.Field) ([]lint.Finding, error) {
	m.once.Do(func() {
		m.detector, m.initErr = detect.NewDetectorDefaultConfig()
	})
	if m.initErr != nil {
		return nil, m.initErr
	}

	var findings []lint.Finding
	for _, f := range fields {
		if err := ctx.Err(); err != nil {
			return findings, err
		}
		for _, h := range m.detector.DetectBytes([]byte(f.Value)) {
			findings = append(findings, lint.Finding{
				Field:    f.Path,
				Column:   h.StartColumn,
				Module:   m.Name(),
				Severity: lint.SeverityCritical,
				Message:  h.Description + " (" + h.RuleID + ")",
			})
		}
	}
	return findings, nil
}
