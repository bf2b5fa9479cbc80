package glue

import (
	"fmt"

	"github.com/carlosskii/typeglue/internal/common"
	"github.com/carlosskii/typeglue/internal/decl"
	"github.com/carlosskii/typeglue/internal/diagnostic"
)

// generateUnion handles tagged unions. Each variant is processed on its own;
// a skipped variant leaves its siblings untouched.
func generateUnion(d *decl.Declaration, diags *diagnostic.Diagnostics) (*Output, error) {
	if p, ok := common.First(d.TypeParams); ok {
		return nil, diags.AddFatal(within(d, p.Name, p.Pos, diagnostic.CodeGenericUnion,
			"tagged unions with generic parameters are not supported"))
	}

	out := &Output{Decl: d}
	if d.EmitType {
		out.Types = append(out.Types, unionTypes(d)...)
	}

	for i := range d.Variants {
		v := &d.Variants[i]

		switch {
		case v.HasNamedFields():
			diags.AddRecoverable(within(d, v.Name, v.Pos, diagnostic.CodeNamedFieldsInVariant,
				"variants with named fields are not supported"))
			continue

		case common.IsEmpty(v.Fields):
			diags.AddRecoverable(within(d, v.Name, v.Pos, diagnostic.CodeUnitVariant,
				"unit variants are not supported"))
			continue
		}

		ctor := Func{
			Kind:    FuncConstruct,
			Name:    variantConstructorName(d, v),
			Doc:     fmt.Sprintf("%s builds the %s variant of %s.", variantConstructorName(d, v), v.Name, d.Name),
			Result:  d.Name,
			Literal: variantTypeName(d, v),
		}

		ctor.Params, ctor.Assigns = positionalParams(newNamer(d), v.Fields)
		out.Funcs = append(out.Funcs, ctor)
	}

	return out, nil
}
