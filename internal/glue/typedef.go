package glue

import (
	"fmt"

	"github.com/carlosskii/typeglue/internal/decl"
)

// structType describes a struct definition; positional fields are named
// F0, F1, ...
func structType(d *decl.Declaration, name, typeParams string, fields []decl.Field) TypeDef {
	t := TypeDef{
		Name:       name,
		TypeParams: typeParams,
		Fields:     make([]StructField, 0, len(fields)),
	}

	if name == d.Name {
		t.Doc = fmt.Sprintf("%s is generated from its schema declaration.", name)
	}

	for i := range fields {
		t.Fields = append(t.Fields, StructField{
			Name: decl.FieldName(fields, i),
			Type: fields[i].Type,
			Tag:  fields[i].Tag,
		})
	}

	return t
}

// unionTypes describes a sealed interface and one struct per variant,
// skipped variants included.
func unionTypes(d *decl.Declaration) []TypeDef {
	types := []TypeDef{{
		Doc:       fmt.Sprintf("%s is a tagged union; its variants are the %s* types.", d.Name, d.Name),
		Name:      d.Name,
		Interface: true,
		Marker:    unionMarker(d),
	}}

	for i := range d.Variants {
		v := &d.Variants[i]

		t := structType(d, variantTypeName(d, v), "", v.Fields)
		t.Doc = fmt.Sprintf("%s is the %s variant of %s.", t.Name, v.Name, d.Name)
		t.Implements = d.Name
		t.Marker = unionMarker(d)

		types = append(types, t)
	}

	return types
}
