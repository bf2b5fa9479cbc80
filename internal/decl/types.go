package decl

import (
	"fmt"
	"strings"

	"github.com/carlosskii/typeglue/internal/common"
)

// Position locates an element of a declaration in its source file.
type Position struct {
	File   string `json:"file,omitempty"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

// IsValid reports whether the position carries at least a line number.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// String returns "file:line:column", omitting unknown parts.
func (p Position) String() string {
	s := p.File
	if p.IsValid() {
		if s != "" {
			s += ":"
		}

		s += fmt.Sprintf("%d", p.Line)
		if p.Column > 0 {
			s += fmt.Sprintf(":%d", p.Column)
		}
	}

	if s == "" {
		return "-"
	}

	return s
}

// ParamKind distinguishes type parameters from constant parameters.
type ParamKind int

const (
	ParamType ParamKind = iota
	ParamConst
)

// GenericParam is a single generic parameter of a declaration.
type GenericParam struct {
	Name       string
	Kind       ParamKind
	Constraint string // type parameters only, e.g. "any"
	Type       string // constant parameters only, e.g. "int"
	Pos        Position
}

// IsConst reports whether the parameter is a constant parameter.
func (p GenericParam) IsConst() bool {
	return p.Kind == ParamConst
}

// Annotation is a key/argument marker attached to a field.
type Annotation struct {
	Key  string
	Args []string
	Raw  string // source form, e.g. `glue:"default"`
	Pos  Position
}

// Field is a record field or a variant payload element.
type Field struct {
	Name        string // empty for positional fields
	Type        string // Go type expression
	Tag         string // raw struct tag without backquotes
	Annotations []Annotation
	Pos         Position
}

// IsNamed reports whether the field is addressed by name.
func (f *Field) IsNamed() bool {
	return f.Name != ""
}

// Variant is one alternative of a tagged union.
type Variant struct {
	Name   string
	Fields []Field
	Pos    Position
}

// HasNamedFields reports whether any payload field carries a name.
func (v *Variant) HasNamedFields() bool {
	for i := range v.Fields {
		if v.Fields[i].IsNamed() {
			return true
		}
	}

	return false
}

// Import is a package import required by field type expressions.
type Import struct {
	Name string // package name used in type expressions
	Path string // import path
}

// Alias returns the explicit import name, or "" when the package name matches
// the last path element.
func (i Import) Alias() string {
	if i.Name == "" || i.Name == common.PkgAlias(i.Path) {
		return ""
	}

	return i.Name
}

// LocalName returns the identifier the package is referred to by.
func (i Import) LocalName() string {
	if i.Name != "" {
		return i.Name
	}

	return common.PkgAlias(i.Path)
}

// Declaration is the structural description of one composite type.
type Declaration struct {
	Name       string
	Shape      Shape
	TypeParams []GenericParam
	Fields     []Field   // records
	Variants   []Variant // unions
	Imports    []Import
	Pos        Position

	// Package is the Go package name of the generated file.
	Package string
	// Dir is the directory the generated file is written to.
	Dir string
	// Filename overrides the generated file name when set.
	Filename string
	// EmitType requests the Go type definition alongside the conversions.
	// Schema declarations set it; Go source declarations already have one.
	EmitType bool
}

// IsGeneric reports whether the declaration has any generic parameter.
func (d *Declaration) IsGeneric() bool {
	return len(d.TypeParams) > 0
}

// ConstParam returns the first constant generic parameter, if any.
func (d *Declaration) ConstParam() (GenericParam, bool) {
	for _, p := range d.TypeParams {
		if p.IsConst() {
			return p, true
		}
	}

	return GenericParam{}, false
}

// TypeParamList renders the type parameter list, e.g. "[T any, K comparable]".
func (d *Declaration) TypeParamList() string {
	if !d.IsGeneric() {
		return ""
	}

	parts := make([]string, 0, len(d.TypeParams))
	for _, p := range d.TypeParams {
		constraint := p.Constraint
		if constraint == "" {
			constraint = "any"
		}

		parts = append(parts, p.Name+" "+constraint)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// TypeRef renders the instantiated type, e.g. "List[T]".
func (d *Declaration) TypeRef() string {
	if !d.IsGeneric() {
		return d.Name
	}

	names := make([]string, 0, len(d.TypeParams))
	for _, p := range d.TypeParams {
		names = append(names, p.Name)
	}

	return d.Name + "[" + strings.Join(names, ", ") + "]"
}

// PositionalName is the Go field name used for the i-th positional field.
func PositionalName(i int) string {
	return fmt.Sprintf("F%d", i)
}

// FieldName returns the Go field name of the i-th field of fields.
func FieldName(fields []Field, i int) string {
	if fields[i].IsNamed() {
		return fields[i].Name
	}

	return PositionalName(i)
}
