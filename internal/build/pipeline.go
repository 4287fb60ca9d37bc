// Package build orchestrates one compilation pass: it validates configured
// units, loads their style sources, compiles them, and writes the output
// files. Failures are collected per unit; a single bad unit never prevents
// the rest of the batch from compiling and being written.
package build

import (
	"context"
	"sort"
	"time"

	"github.com/styletree/styletree/internal/config"
	errs "github.com/styletree/styletree/internal/errors"
	"github.com/styletree/styletree/internal/loader"
	"github.com/styletree/styletree/internal/logging"
	"github.com/styletree/styletree/internal/styles"
)

// UnitReport describes the outcome of compiling one unit.
type UnitReport struct {
	Name     string
	Output   string
	Size     int
	Duration time.Duration
	// Deps holds the absolute paths of every file the unit's style tree
	// was read from; the watch loop tracks these.
	Deps []string
	Err  error
}

// Result aggregates one pass over all configured units, reports sorted by
// unit name.
type Result struct {
	Reports  []UnitReport
	Duration time.Duration
}

// Succeeded counts units compiled and written.
func (r *Result) Succeeded() int {
	n := 0
	for _, rep := range r.Reports {
		if rep.Err == nil {
			n++
		}
	}
	return n
}

// Failed counts units that were rejected or failed.
func (r *Result) Failed() int {
	return len(r.Reports) - r.Succeeded()
}

// Deps returns the deduplicated union of every unit's tracked files.
func (r *Result) Deps() []string {
	seen := make(map[string]bool)
	var deps []string
	for _, rep := range r.Reports {
		for _, d := range rep.Deps {
			if !seen[d] {
				seen[d] = true
				deps = append(deps, d)
			}
		}
	}
	sort.Strings(deps)
	return deps
}

// Pipeline compiles configured units to CSS files. The compiler's
// property-name cache persists across Run calls, so repeated watch-mode
// rebuilds skip redundant name work.
type Pipeline struct {
	cfg      *config.Config
	opts     styles.Options
	compiler *styles.Compiler
	writer   FileWriter
	logger   logging.Logger
}

// New creates a pipeline for the given configuration.
func New(cfg *config.Config, logger logging.Logger) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		opts:     styles.Options{Format: cfg.FormatMode()},
		compiler: styles.NewCompiler(),
		logger:   logger.WithComponent("build"),
	}
}

// Run compiles every configured unit and returns the aggregated result.
// Units are processed in name order.
func (p *Pipeline) Run(ctx context.Context) *Result {
	start := time.Now()

	names := make([]string, 0, len(p.cfg.Units))
	for name := range p.cfg.Units {
		names = append(names, name)
	}
	sort.Strings(names)

	result := &Result{Reports: make([]UnitReport, 0, len(names))}
	for _, name := range names {
		result.Reports = append(result.Reports, p.compileUnit(ctx, name, p.cfg.Units[name]))
	}
	result.Duration = time.Since(start)

	p.logger.Info(ctx, "build finished",
		"units", len(result.Reports),
		"succeeded", result.Succeeded(),
		"failed", result.Failed(),
		"duration", result.Duration.String(),
	)
	return result
}

func (p *Pipeline) compileUnit(ctx context.Context, name string, uc config.UnitConfig) UnitReport {
	start := time.Now()
	report := UnitReport{Name: name, Output: uc.Output}

	if err := uc.Validate(); err != nil {
		report.Err = errs.Config(name, err.Error())
		report.Duration = time.Since(start)
		return report
	}

	tree, deps, err := loader.Load(uc.Src)
	report.Deps = deps
	if err != nil {
		report.Err = errs.Parse(name, uc.Src, err)
		report.Duration = time.Since(start)
		return report
	}

	css := p.compiler.CompileUnit(styles.Unit{
		Tree:    tree,
		Output:  uc.Output,
		Exclude: uc.Exclude,
	}, p.opts)

	if err := p.writer.Write(uc.Output, []byte(css)); err != nil {
		report.Err = errs.IO(name, uc.Output, err)
		report.Duration = time.Since(start)
		return report
	}

	report.Size = len(css)
	report.Duration = time.Since(start)
	p.logger.Debug(ctx, "unit compiled",
		"unit", name,
		"output", uc.Output,
		"bytes", report.Size,
	)
	return report
}
