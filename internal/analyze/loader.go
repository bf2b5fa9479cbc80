package analyze

import (
	"errors"
	"fmt"
	"path/filepath"

	"golang.org/x/tools/go/packages"

	"github.com/carlosskii/typeglue/internal/decl"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Loader loads Go packages and extracts annotated declarations.
type Loader struct {
	// Dir is the directory patterns are resolved in. Empty means the
	// current directory.
	Dir string
	// Generated is the name of generated files. Errors reported in them are
	// ignored so that a stale file can be regenerated.
	Generated string
}

// NewLoader creates a new Loader.
func NewLoader(dir, generated string) *Loader {
	return &Loader{Dir: dir, Generated: generated}
}

// Load loads the specified packages and returns the declarations of their
// annotated types, package by package in source order. Patterns are standard
// Go package patterns (e.g., "./examples/shapes").
func (l *Loader) Load(patterns ...string) ([]*decl.Declaration, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  l.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			if l.inGenerated(e) {
				continue
			}

			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	var decls []*decl.Declaration

	for _, pkg := range pkgs {
		if pkg.Types == nil || pkg.TypesInfo == nil {
			return nil, fmt.Errorf("failed to process package %s: no type information", pkg.PkgPath)
		}

		for _, s := range AnnotatedSpecs(pkg.Syntax, pkg.TypesInfo) {
			decls = append(decls, FromTypeSpec(pkg.Fset, s.Spec, s.Obj))
		}
	}

	return decls, nil
}

// inGenerated reports whether a package error points into a generated file.
func (l *Loader) inGenerated(e packages.Error) bool {
	if l.Generated == "" || e.Kind != packages.TypeError {
		return false
	}

	file, _, _ := splitPos(e.Pos)

	return filepath.Base(file) == l.Generated
}
