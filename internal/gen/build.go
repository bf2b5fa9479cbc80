package gen

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/carlosskii/typeglue/internal/decl"
	"github.com/carlosskii/typeglue/internal/diagnostic"
	"github.com/carlosskii/typeglue/internal/glue"
)

// Builder generates conversions for many declarations and renders them into
// one file per target package.
type Builder struct {
	config Config
	logger *slog.Logger
}

// NewBuilder creates a new Builder. A nil logger discards log output.
func NewBuilder(config Config, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if config.Filename == "" {
		config.Filename = DefaultConfig().Filename
	}

	return &Builder{config: config, logger: logger}
}

// Result is the outcome of a build.
type Result struct {
	// Files holds one file per target, in the order targets first appear.
	Files []GeneratedFile
	// Diagnostics is the build log: every invocation's diagnostics merged.
	Diagnostics diagnostic.Diagnostics
	// Generated counts declarations that produced output.
	Generated int
	// Skipped counts declarations rejected with a fatal diagnostic.
	Skipped int
}

// Failed reports whether the build must fail. Recoverable diagnostics fail
// it too.
func (r *Result) Failed() bool {
	return r.Diagnostics.HasErrors()
}

// fileGroup collects the outputs rendered into one file.
type fileGroup struct {
	dir      string
	filename string
	pkg      string
	outputs  []*glue.Output
}

// Build runs the generator over decls in order. A fatal diagnostic skips
// its declaration only; siblings are still generated.
func (b *Builder) Build(decls []*decl.Declaration) (*Result, error) {
	result := &Result{}
	groups := linkedhashmap.New() // path -> *fileGroup

	for _, d := range decls {
		var diags diagnostic.Diagnostics

		out, err := glue.Generate(d, &diags)
		result.Diagnostics.Merge(diags)

		for _, diag := range diags.All() {
			b.logger.Debug("diagnostic", "decl", d.Name, "code", diag.Code, "severity", diag.Severity)
		}

		if err != nil {
			if !diagnostic.IsFatal(err) {
				return nil, fmt.Errorf("generating %s: %w", d.Name, err)
			}

			b.logger.Info("skipping declaration", "decl", d.Name, "pos", d.Pos.String())
			result.Skipped++

			continue
		}

		if err := b.add(groups, out); err != nil {
			return nil, err
		}

		result.Generated++
	}

	var errs []error

	it := groups.Iterator()
	for it.Next() {
		g := it.Value().(*fileGroup)

		file, err := b.Render(g.dir, g.filename, g.pkg, g.outputs)
		if err != nil {
			errs = append(errs, fmt.Errorf("rendering %s: %w", filepath.Join(g.dir, g.filename), err))
			continue
		}

		b.logger.Debug("rendered file", "path", file.Path(), "decls", len(g.outputs))
		result.Files = append(result.Files, *file)
	}

	if len(errs) > 0 {
		return result, errors.Join(errs...)
	}

	return result, nil
}

func (b *Builder) add(groups *linkedhashmap.Map, out *glue.Output) error {
	d := out.Decl

	filename := d.Filename
	if filename == "" {
		filename = b.config.Filename
	}

	key := filepath.Join(d.Dir, filename)

	if v, ok := groups.Get(key); ok {
		g := v.(*fileGroup)
		if g.pkg != d.Package {
			return fmt.Errorf("%s: package %q conflicts with package %q already generated into %s",
				d.Name, d.Package, g.pkg, key)
		}

		g.outputs = append(g.outputs, out)

		return nil
	}

	if d.Package == "" {
		return fmt.Errorf("%s: no target package", d.Name)
	}

	groups.Put(key, &fileGroup{
		dir:      d.Dir,
		filename: filename,
		pkg:      d.Package,
		outputs:  []*glue.Output{out},
	})

	return nil
}
