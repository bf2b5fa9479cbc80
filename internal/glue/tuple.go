package glue

import (
	"fmt"

	"github.com/carlosskii/typeglue/internal/annotation"
	"github.com/carlosskii/typeglue/internal/common"
	"github.com/carlosskii/typeglue/internal/decl"
	"github.com/carlosskii/typeglue/internal/diagnostic"
)

// generateTuple handles structs whose fields are identified by position.
func generateTuple(d *decl.Declaration, diags *diagnostic.Diagnostics) (*Output, error) {
	if err := rejectConstParams(d, diags); err != nil {
		return nil, err
	}

	// Malformed entries are recoverable here as on named records; only a
	// real exclusion aborts.
	for i := range d.Fields {
		f := &d.Fields[i]
		if annotation.Parse(d.Name, decl.PositionalName(i), f, diags) {
			return nil, diags.AddFatal(within(d, decl.PositionalName(i), f.Pos,
				diagnostic.CodeExcludeOnPositional, "positional records cannot exclude fields"))
		}
	}

	out := &Output{Decl: d}
	if d.EmitType {
		out.Types = append(out.Types, structType(d, d.Name, d.TypeParamList(), d.Fields))
	}

	ctor := Func{
		Kind:       FuncConstruct,
		Name:       constructorName(d),
		TypeParams: d.TypeParamList(),
		Result:     d.TypeRef(),
		Literal:    d.TypeRef(),
	}

	ctor.Params, ctor.Assigns = positionalParams(newNamer(d), d.Fields)
	if common.IsSingle(d.Fields) {
		ctor.Doc = fmt.Sprintf("%s wraps a value in %s.", ctor.Name, article(d.Name))
	} else {
		ctor.Doc = fmt.Sprintf("%s builds %s from its fields in order.", ctor.Name, article(d.Name))
	}

	out.Funcs = append(out.Funcs, ctor)

	if common.IsSingle(d.Fields) {
		out.Funcs = append(out.Funcs, extractor(d, decl.FieldName(d.Fields, 0), d.Fields[0].Type))
	}

	return out, nil
}

// positionalParams names one parameter per field, "value" for a single
// field and v0, v1, ... otherwise, and assigns each to its field.
func positionalParams(names *namer, fields []decl.Field) ([]Param, []Assign) {
	params := make([]Param, 0, len(fields))
	assigns := make([]Assign, 0, len(fields))

	for i := range fields {
		base := "value"
		if common.IsMultiple(fields) {
			base = fmt.Sprintf("v%d", i)
		}

		name := names.name(base)
		params = append(params, Param{Name: name, Type: fields[i].Type})
		assigns = append(assigns, Assign{Field: decl.FieldName(fields, i), Expr: name})
	}

	return params, assigns
}
