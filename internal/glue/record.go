package glue

import (
	"fmt"

	"github.com/carlosskii/typeglue/internal/annotation"
	"github.com/carlosskii/typeglue/internal/common"
	"github.com/carlosskii/typeglue/internal/decl"
	"github.com/carlosskii/typeglue/internal/diagnostic"
)

// generateRecord handles structs whose fields are addressed by name.
func generateRecord(d *decl.Declaration, diags *diagnostic.Diagnostics) (*Output, error) {
	if err := rejectConstParams(d, diags); err != nil {
		return nil, err
	}

	active, excluded := annotation.Partition(d, diags)
	if common.IsEmpty(active) {
		return nil, diags.AddFatal(at(d, diagnostic.CodeAllFieldsExcluded, "cannot exclude every field"))
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

	if len(excluded) > 0 {
		ctor.Defaults = d.TypeRef()

		// Generic types cannot be asserted at package level; the
		// Default call in the constructor body is checked instead.
		if !d.IsGeneric() {
			out.Obligations = append(out.Obligations, d.Name)
		}
	}

	names := newNamer(d)

	if common.IsSingle(active) {
		f := &d.Fields[active[0]]
		param := names.name("value")

		ctor.Doc = fmt.Sprintf("%s builds %s from its %s field.", ctor.Name, article(d.Name), f.Name)
		ctor.Params = []Param{{Name: param, Type: f.Type}}
		ctor.Assigns = []Assign{{Field: f.Name, Expr: param}}
	} else {
		ctor.Doc = fmt.Sprintf("%s builds %s from its fields in declaration order.", ctor.Name, article(d.Name))

		for _, i := range active {
			f := &d.Fields[i]
			param := names.name(f.Name)

			ctor.Params = append(ctor.Params, Param{Name: param, Type: f.Type})
			ctor.Assigns = append(ctor.Assigns, Assign{Field: f.Name, Expr: param})
		}
	}

	for _, i := range excluded {
		f := &d.Fields[i]
		ctor.Assigns = append(ctor.Assigns, Assign{Field: f.Name, Expr: DefaultsVar + "." + f.Name})
	}

	out.Funcs = append(out.Funcs, ctor)

	if common.IsSingle(active) {
		f := &d.Fields[active[0]]
		out.Funcs = append(out.Funcs, extractor(d, f.Name, f.Type))
	}

	return out, nil
}

// extractor reads a single field back out of the composite type.
func extractor(d *decl.Declaration, field, typ string) Func {
	v := newNamer(d).name("v")

	return Func{
		Kind:       FuncExtract,
		Name:       extractorName(d),
		Doc:        fmt.Sprintf("%s returns the %s field of %s.", extractorName(d), field, article(d.Name)),
		TypeParams: d.TypeParamList(),
		Params:     []Param{{Name: v, Type: d.TypeRef()}},
		Result:     typ,
		Return:     v + "." + field,
	}
}
