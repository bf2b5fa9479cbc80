package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/davecgh/go-spew/spew"

	"github.com/carlosskii/typeglue/internal/analyze"
	"github.com/carlosskii/typeglue/internal/decl"
	"github.com/carlosskii/typeglue/internal/gen"
	"github.com/carlosskii/typeglue/internal/schema"
)

// app runs one generation.
type app struct {
	stdout io.Writer
	stderr io.Writer
	config *Config
	logger *slog.Logger
}

func newApp(stdout, stderr io.Writer, config *Config, logger *slog.Logger) *app {
	return &app{stdout: stdout, stderr: stderr, config: config, logger: logger}
}

// Run loads every input, generates, writes the files and reports
// diagnostics. Any diagnostic fails the run with exit code 1; files for
// unaffected declarations are written first.
func (a *app) Run() error {
	decls, err := a.load()
	if err != nil {
		return err
	}

	a.logger.Info("loaded declarations", "count", len(decls))

	if a.config.Dump {
		spew.Fdump(a.stderr, decls)
	}

	builder := gen.NewBuilder(a.config.Gen, a.logger)

	result, err := builder.Build(decls)
	if err != nil {
		return fmt.Errorf("generating: %w", err)
	}

	if err := a.write(result.Files); err != nil {
		return err
	}

	a.logger.Info("generation finished",
		"files", len(result.Files),
		"generated", result.Generated,
		"skipped", result.Skipped,
		"diagnostics", result.Diagnostics.Len())

	if err := a.report(result); err != nil {
		return err
	}

	if result.Failed() {
		return &ExitError{
			Code:    exitFailed,
			Message: fmt.Sprintf("typeglue: build failed with %d diagnostic(s)", result.Diagnostics.Len()),
		}
	}

	return nil
}

func (a *app) load() ([]*decl.Declaration, error) {
	var decls []*decl.Declaration

	if len(a.config.Patterns) > 0 {
		a.logger.Debug("loading packages", "patterns", a.config.Patterns)

		loaded, err := analyze.NewLoader("", a.config.Gen.Filename).Load(a.config.Patterns...)
		if err != nil {
			return nil, err
		}

		decls = append(decls, loaded...)
	}

	for _, path := range a.config.Schemas {
		a.logger.Debug("loading schema", "path", path)

		f, err := schema.LoadFile(path)
		if err != nil {
			return nil, err
		}

		loaded, err := f.ToDeclarations(a.config.OutDir)
		if err != nil {
			return nil, fmt.Errorf("invalid schema %s: %w", path, err)
		}

		decls = append(decls, loaded...)
	}

	return decls, nil
}

func (a *app) write(files []gen.GeneratedFile) error {
	if !a.config.DryRun {
		for _, f := range files {
			a.logger.Debug("writing file", "path", f.Path())
		}

		return gen.WriteFiles(files)
	}

	for _, f := range files {
		if _, err := fmt.Fprintf(a.stdout, "// %s\n%s\n", f.Path(), f.Content); err != nil {
			return fmt.Errorf("printing %s: %w", f.Path(), err)
		}
	}

	return nil
}

func (a *app) report(result *gen.Result) error {
	if a.config.JSON {
		return result.Diagnostics.WriteJSON(a.stdout)
	}

	return result.Diagnostics.WriteText(a.stderr)
}
