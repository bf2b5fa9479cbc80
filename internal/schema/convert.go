package schema

import (
	"errors"
	"fmt"
	"go/token"
	"path/filepath"

	"github.com/carlosskii/typeglue/internal/annotation"
	"github.com/carlosskii/typeglue/internal/decl"
	"github.com/carlosskii/typeglue/internal/match"
)

// ToDeclarations validates the schema and converts it into declarations whose
// generated file goes into outDir, or next to the schema file when outDir is
// empty.
func (f *File) ToDeclarations(outDir string) ([]*decl.Declaration, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	dir := outDir
	if dir == "" {
		dir = filepath.Dir(f.Path)
	}

	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving output directory: %w", err)
	}

	imports := make([]decl.Import, 0, len(f.Imports))
	for _, imp := range f.Imports {
		imports = append(imports, decl.Import{Name: imp.Name, Path: imp.Path})
	}

	decls := make([]*decl.Declaration, 0, len(f.Declarations))

	for i := range f.Declarations {
		sd := &f.Declarations[i]

		d := &decl.Declaration{
			Name:     sd.Name,
			Pos:      sd.Pos,
			Imports:  imports,
			Package:  f.Package,
			Dir:      dir,
			Filename: f.Output,
			EmitType: true,
		}

		for _, g := range sd.Generics {
			p := decl.GenericParam{Name: g.Name, Constraint: g.Constraint, Pos: g.Pos}
			if g.Const != "" {
				p.Kind = decl.ParamConst
				p.Type = g.Const
			}

			d.TypeParams = append(d.TypeParams, p)
		}

		d.Fields = convertFields(sd.Fields)

		for _, v := range sd.Variants {
			d.Variants = append(d.Variants, decl.Variant{
				Name:   v.Name,
				Fields: convertFields(v.Fields),
				Pos:    v.Pos,
			})
		}

		d.Shape = decl.Classify(sd.Kind, d.Fields)
		decls = append(decls, d)
	}

	return decls, nil
}

func convertFields(fields []Field) []decl.Field {
	if len(fields) == 0 {
		return nil
	}

	out := make([]decl.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, decl.Field{
			Name:        f.Name,
			Type:        f.Type,
			Tag:         f.Tag,
			Annotations: annotation.FromTag(f.Tag, f.Pos),
			Pos:         f.Pos,
		})
	}

	return out
}

// Validate checks the schema for errors that prevent it from describing Go
// types at all. Shapes the generator cannot handle are left to its
// diagnostics.
func (f *File) Validate() error {
	var errs []error

	report := func(pos decl.Position, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%s: %s", pos, fmt.Sprintf(format, args...)))
	}

	filePos := decl.Position{File: f.Path}

	if f.Version != CurrentVersion {
		report(filePos, "unsupported schema version %q", f.Version)
	}

	if !token.IsIdentifier(f.Package) {
		report(filePos, "package %q is not a valid Go package name", f.Package)
	}

	for _, imp := range f.Imports {
		if imp.Path == "" {
			report(filePos, "import without path")
		}

		if imp.Name != "" && !token.IsIdentifier(imp.Name) {
			report(filePos, "import name %q is not a valid identifier", imp.Name)
		}
	}

	seen := make(map[string]bool)

	for i := range f.Declarations {
		d := &f.Declarations[i]

		if !token.IsIdentifier(d.Name) {
			report(d.Pos, "declaration name %q is not a valid identifier", d.Name)
		} else if seen[d.Name] {
			report(d.Pos, "duplicate declaration %s", d.Name)
		}

		seen[d.Name] = true

		switch d.Kind {
		case decl.KindEnum:
			if len(d.Fields) > 0 {
				report(d.Pos, "%s: enum declarations have variants, not fields", d.Name)
			}
		case "":
			report(d.Pos, "%s: missing kind", d.Name)
		case decl.KindUnion:
		default:
			// Unknown kinds classify as unsupported unless they look like a typo.
			if c, ok := match.Closest(d.Kind, decl.KindStruct, decl.KindEnum, decl.KindUnion); ok {
				report(d.Pos, "%s: unknown kind %q, did you mean %q?", d.Name, d.Kind, c)
			}

			if len(d.Variants) > 0 {
				report(d.Pos, "%s: only enum declarations have variants", d.Name)
			}
		}

		for _, g := range d.Generics {
			if !token.IsIdentifier(g.Name) {
				report(g.Pos, "%s: generic parameter name %q is not a valid identifier", d.Name, g.Name)
			}

			if g.Const != "" && g.Constraint != "" {
				report(g.Pos, "%s: generic parameter %s cannot be both const and constrained", d.Name, g.Name)
			}
		}

		validateFields(d.Name, d.Fields, report)

		variants := make(map[string]bool)

		for _, v := range d.Variants {
			if !token.IsIdentifier(v.Name) {
				report(v.Pos, "%s: variant name %q is not a valid identifier", d.Name, v.Name)
			} else if variants[v.Name] {
				report(v.Pos, "%s: duplicate variant %s", d.Name, v.Name)
			}

			variants[v.Name] = true

			validateFields(d.Name+"."+v.Name, v.Fields, report)
		}
	}

	validateVariantTypes(f.Declarations, seen, report)

	return errors.Join(errs...)
}

// validateVariantTypes reports enum variants whose generated type name,
// the enum name followed by the variant name, is already taken by a
// declaration or another variant.
func validateVariantTypes(decls []Declaration, names map[string]bool, report func(decl.Position, string, ...any)) {
	owner := make(map[string]string)

	for i := range decls {
		d := &decls[i]
		if d.Kind != decl.KindEnum {
			continue
		}

		for _, v := range d.Variants {
			typeName := d.Name + v.Name

			if names[typeName] {
				report(v.Pos, "%s: variant %s generates type %s, which is already declared", d.Name, v.Name, typeName)
			} else if prev, ok := owner[typeName]; ok && prev != d.Name+"."+v.Name {
				report(v.Pos, "%s: variant %s generates type %s, which variant %s also generates", d.Name, v.Name, typeName, prev)
			}

			owner[typeName] = d.Name + "." + v.Name
		}
	}
}

func validateFields(owner string, fields []Field, report func(decl.Position, string, ...any)) {
	seen := make(map[string]bool)

	for i, f := range fields {
		if f.Name != "" {
			if seen[f.Name] {
				report(f.Pos, "%s: duplicate field %s", owner, f.Name)
			}

			seen[f.Name] = true
		}

		if f.Type == "" {
			report(f.Pos, "%s: field %d has no type", owner, i)
		}

		if f.Name != "" && !token.IsIdentifier(f.Name) {
			report(f.Pos, "%s: field name %q is not a valid identifier", owner, f.Name)
		}
	}
}
