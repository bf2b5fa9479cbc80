package glue

import (
	"github.com/carlosskii/typeglue/internal/decl"
	"github.com/carlosskii/typeglue/internal/diagnostic"
)

// Generate produces the conversions for one declaration.
//
// Recoverable diagnostics are appended to diags. A fatal diagnostic is
// appended as well and returned as a *diagnostic.Error; the output is nil in
// that case.
func Generate(d *decl.Declaration, diags *diagnostic.Diagnostics) (*Output, error) {
	switch d.Shape {
	case decl.ShapeNamedRecord:
		return generateRecord(d, diags)

	case decl.ShapePositionalRecord:
		return generateTuple(d, diags)

	case decl.ShapeUnion:
		return generateUnion(d, diags)

	case decl.ShapeUnitRecord:
		return nil, diags.AddFatal(at(d, diagnostic.CodeUnsupportedShape,
			"cannot generate conversions for a fieldless record"))

	default:
		return nil, diags.AddFatal(at(d, diagnostic.CodeUnsupportedShape,
			"can only generate conversions for records or tagged unions"))
	}
}

// at builds a diagnostic located at the declaration itself.
func at(d *decl.Declaration, code diagnostic.Code, message string) diagnostic.Diagnostic {
	return diagnostic.Diagnostic{
		Code:    code,
		Message: message,
		Decl:    d.Name,
		Pos:     d.Pos,
	}
}

// within builds a diagnostic for an element of the declaration, falling back
// to the declaration's position.
func within(d *decl.Declaration, element string, pos decl.Position, code diagnostic.Code, message string) diagnostic.Diagnostic {
	diag := at(d, code, message)
	diag.Element = element

	if pos.IsValid() {
		diag.Pos = pos
	}

	return diag
}

func rejectConstParams(d *decl.Declaration, diags *diagnostic.Diagnostics) error {
	p, ok := d.ConstParam()
	if !ok {
		return nil
	}

	return diags.AddFatal(within(d, p.Name, p.Pos, diagnostic.CodeConstGeneric,
		"cannot generate conversions for types with const generic parameters"))
}
