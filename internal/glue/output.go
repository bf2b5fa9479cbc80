package glue

import "github.com/carlosskii/typeglue/internal/decl"

// FuncKind distinguishes constructors from extractors.
type FuncKind int

const (
	FuncConstruct FuncKind = iota
	FuncExtract
)

// Param is a function parameter.
type Param struct {
	Name string
	Type string
}

// Assign sets one field of a constructed composite literal.
type Assign struct {
	Field string
	Expr  string
}

// Func is a generated conversion function.
type Func struct {
	Kind       FuncKind
	Name       string
	Doc        string
	TypeParams string
	Params     []Param
	Result     string

	// Literal is the type of the composite literal a constructor returns.
	Literal string
	// Assigns are the literal's keyed elements, active fields first.
	Assigns []Assign
	// Defaults, when set, is the type whose Default method supplies the
	// excluded fields; it is bound to DefaultsVar before the literal.
	Defaults string

	// Return is the expression an extractor returns.
	Return string
}

// IsExtract reports whether the function reads a field back out.
func (f Func) IsExtract() bool {
	return f.Kind == FuncExtract
}

// StructField is a field of an emitted struct type.
type StructField struct {
	Name string
	Type string
	Tag  string
}

// TypeDef is a Go type definition emitted for schema declarations.
type TypeDef struct {
	Doc        string
	Name       string
	TypeParams string

	// Interface marks a sealed union interface with a single unexported
	// marker method named Marker.
	Interface bool
	Marker    string

	// Fields of a struct type.
	Fields []StructField
	// Implements names the union interface a variant struct belongs to; the
	// struct then gets an empty Marker method.
	Implements string
}

// Output holds everything generated for one declaration.
type Output struct {
	Decl  *decl.Declaration
	Types []TypeDef
	// Obligations lists types that must provide a Default method returning
	// themselves. The Go compiler checks each through an interface
	// assertion.
	Obligations []string
	Funcs       []Func
}

// TypeExprs returns every type expression the rendered output refers to.
func (o *Output) TypeExprs() []string {
	var exprs []string

	if o.Decl != nil {
		for _, p := range o.Decl.TypeParams {
			exprs = append(exprs, p.Constraint)
		}
	}

	for _, t := range o.Types {
		for _, f := range t.Fields {
			exprs = append(exprs, f.Type)
		}
	}

	for _, fn := range o.Funcs {
		for _, p := range fn.Params {
			exprs = append(exprs, p.Type)
		}

		exprs = append(exprs, fn.Result)
	}

	return exprs
}
