package lint

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/anasfik/nostr/src/config"
	"github.com/anasfik/nostr/src/log"
)

// Engine orchestrates lint modules across the fields of a site config.
type Engine struct {
	Config  config.LintConfig
	Modules []Module
}

// NewEngine creates a lint engine with the selected modules.
func NewEngine(cfg config.LintConfig, moduleNames []string, skipNames []string) (*Engine, error) {
	skipSet := make(map[string]bool, len(skipNames))
	for _, name := range skipNames {
		skipSet[name] = true
	}

	var modules []Module

	if len(moduleNames) > 0 {
		// Explicit module selection
		for _, name := range moduleNames {
			if skipSet[name] {
				continue
			}
			m, err := Get(name)
			if err != nil {
				return nil, err
			}
			if err := configureModule(m, cfg, name); err != nil {
				return nil, err
			}
			modules = append(modules, m)
		}
	} else {
		// All default-enabled modules minus skipped
		for _, name := range All() {
			if skipSet[name] {
				continue
			}
			m, err := Get(name)
			if err != nil {
				return nil, err
			}

			mc, ok := cfg.Modules[name]
			if ok && mc.Enabled != nil {
				if !*mc.Enabled {
					continue
				}
			} else if !m.DefaultEnabled() {
				continue
			}

			if err := configureModule(m, cfg, name); err != nil {
				return nil, err
			}
			modules = append(modules, m)
		}
	}

	if len(modules) == 0 {
		return nil, fmt.Errorf("no lint modules selected")
	}

	return &Engine{Config: cfg, Modules: modules}, nil
}

// ModuleStats holds per-module scan statistics.
type ModuleStats struct {
	Name     string
	Fields   int
	Findings int
	Critical int
	Warnings int
	Elapsed  time.Duration
}

// RunWithStats executes all modules and returns findings plus per-module
// statistics. Findings are sorted by field, then module.
func (e *Engine) RunWithStats(ctx context.Context, fields []Field) ([]Finding, []ModuleStats, error) {
	var (
		mu       sync.Mutex
		findings []Finding
		wg       sync.WaitGroup
		errs     []error
	)
	logger := log.WithComponent("lint")

	sem := semaphore.NewWeighted(int64(runtime.NumCPU()))

	kept := make([]Field, 0, len(fields))
	for _, f := range fields {
		if !e.isExcluded(f.Path) {
			kept = append(kept, f)
		}
	}

	// Per-module stat counters (index matches e.Modules)
	modStats := make([]ModuleStats, len(e.Modules))
	for i, m := range e.Modules {
		modStats[i].Name = m.Name()
	}

	for mi, mod := range e.Modules {
		if err := sem.Acquire(ctx, 1); err != nil {
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
			break
		}
		wg.Add(1)
		go func(m Module, idx int) {
			defer wg.Done()
			defer sem.Release(1)

			subset := make([]Field, 0, len(kept))
			for _, f := range kept {
				if !e.isModuleExcluded(m.Name(), f.Path) {
					subset = append(subset, f)
				}
			}

			start := time.Now()
			results, err := m.Check(ctx, subset)
			elapsed := time.Since(start)

			mu.Lock()
			defer mu.Unlock()
			modStats[idx].Fields = len(subset)
			modStats[idx].Elapsed = elapsed
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", m.Name(), err))
				return
			}
			for _, r := range results {
				modStats[idx].Findings++
				if r.Severity == SeverityCritical {
					modStats[idx].Critical++
				} else if r.Severity == SeverityWarning {
					modStats[idx].Warnings++
				}
			}
			findings = append(findings, results...)
			logger.Debug().
				Str("module", m.Name()).
				Int("fields", len(subset)).
				Int("findings", len(results)).
				Dur("elapsed", elapsed).
				Msg("module done")
		}(mod, mi)
	}

	wg.Wait()

	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Field != findings[j].Field {
			return findings[i].Field < findings[j].Field
		}
		if findings[i].Module != findings[j].Module {
			return findings[i].Module < findings[j].Module
		}
		return findings[i].Column < findings[j].Column
	})

	if len(errs) > 0 {
		return findings, modStats, fmt.Errorf("%d module errors (first: %w)", len(errs), errs[0])
	}

	return findings, modStats, nil
}

// ModuleNames returns the names of all active modules in this engine.
func (e *Engine) ModuleNames() []string {
	names := make([]string, len(e.Modules))
	for i, m := range e.Modules {
		names[i] = m.Name()
	}
	return names
}

func (e *Engine) isExcluded(field string) bool {
	for _, pattern := range e.Config.Exclude {
		if MatchField(pattern, field) {
			return true
		}
	}
	return false
}

// isModuleExcluded checks per-module exclude patterns from config.
// Engine-wide isExcluded drops fields before any module sees them;
// module excludes hide fields from that module only.
func (e *Engine) isModuleExcluded(moduleName, field string) bool {
	mc, ok := e.Config.Modules[moduleName]
	if !ok {
		return false
	}
	for _, pattern := range mc.Exclude {
		if MatchField(pattern, field) {
			return true
		}
	}
	return false
}

// configureModule passes options to modules that implement ConfigurableModule.
func configureModule(m Module, cfg config.LintConfig, name string) error {
	cm, ok := m.(ConfigurableModule)
	if !ok {
		return nil
	}
	mc, exists := cfg.Modules[name]
	if !exists || mc.Options == nil {
		// Call with empty map so the module can apply defaults.
		return cm.Configure(nil)
	}
	if err := cm.Configure(mc.Options); err != nil {
		return fmt.Errorf("lint: configuring %s: %w", name, err)
	}
	return nil
}
