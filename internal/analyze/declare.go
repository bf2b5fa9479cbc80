package analyze

import (
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"

	"github.com/carlosskii/typeglue/internal/annotation"
	"github.com/carlosskii/typeglue/internal/decl"
)

// Directive marks a type declaration for generation when it appears on its
// own line in the type's doc comment.
const Directive = "//glue:generate"

// HasDirective reports whether a doc comment carries Directive.
func HasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}

	for _, c := range doc.List {
		text := strings.TrimSpace(c.Text)
		if text == Directive || strings.HasPrefix(text, Directive+" ") {
			return true
		}
	}

	return false
}

// AnnotatedSpec is a type spec carrying Directive together with its object.
type AnnotatedSpec struct {
	Spec *ast.TypeSpec
	Obj  *types.TypeName
}

// AnnotatedSpecs returns the annotated type specs of files in source order.
func AnnotatedSpecs(files []*ast.File, info *types.Info) []AnnotatedSpec {
	var specs []AnnotatedSpec

	for _, file := range files {
		for _, d := range file.Decls {
			if gd, ok := d.(*ast.GenDecl); ok {
				specs = append(specs, Annotated(gd, info)...)
			}
		}
	}

	return specs
}

// Annotated returns the type specs of gd that carry Directive. A single
// spec without parentheses takes the declaration's doc comment.
func Annotated(gd *ast.GenDecl, info *types.Info) []AnnotatedSpec {
	if gd.Tok != token.TYPE {
		return nil
	}

	var specs []AnnotatedSpec

	for _, s := range gd.Specs {
		spec := s.(*ast.TypeSpec)

		doc := spec.Doc
		if doc == nil && !gd.Lparen.IsValid() {
			doc = gd.Doc
		}

		if !HasDirective(doc) {
			continue
		}

		obj, ok := info.Defs[spec.Name].(*types.TypeName)
		if !ok {
			continue
		}

		specs = append(specs, AnnotatedSpec{Spec: spec, Obj: obj})
	}

	return specs
}

// FromTypeSpec builds the declaration of an annotated Go type. Struct types
// become named or unit records; every other type is unsupported.
func FromTypeSpec(fset *token.FileSet, spec *ast.TypeSpec, obj *types.TypeName) *decl.Declaration {
	pos := position(fset, spec.Name.Pos())

	d := &decl.Declaration{
		Name:    obj.Name(),
		Pos:     pos,
		Package: obj.Pkg().Name(),
		Dir:     filepath.Dir(pos.File),
		Shape:   decl.ShapeUnsupported,
	}

	stringer := NewTypeStringer(obj.Pkg())

	named, ok := obj.Type().(*types.Named)
	if !ok || spec.Assign.IsValid() {
		return d
	}

	tparams := named.TypeParams()
	for i := 0; i < tparams.Len(); i++ {
		tp := tparams.At(i)
		d.TypeParams = append(d.TypeParams, decl.GenericParam{
			Name:       tp.Obj().Name(),
			Kind:       decl.ParamType,
			Constraint: stringer.TypeString(tp.Constraint()),
			Pos:        position(fset, tp.Obj().Pos()),
		})
	}

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return d
	}

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if field.Name() == "_" {
			continue
		}

		fieldPos := position(fset, field.Pos())
		tag := st.Tag(i)

		d.Fields = append(d.Fields, decl.Field{
			Name:        field.Name(),
			Type:        stringer.TypeString(field.Type()),
			Tag:         tag,
			Annotations: annotation.FromTag(tag, fieldPos),
			Pos:         fieldPos,
		})
	}

	d.Shape = decl.Classify(decl.KindStruct, d.Fields)
	d.Imports = stringer.Imports()

	return d
}

func position(fset *token.FileSet, pos token.Pos) decl.Position {
	p := fset.Position(pos)

	return decl.Position{File: p.Filename, Line: p.Line, Column: p.Column}
}
