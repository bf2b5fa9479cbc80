package decl

//go:generate go tool stringer -type=Shape -linecomment -output=shape_string.go

// Shape is the structural classification of a declaration.
type Shape int

const (
	ShapeUnsupported      Shape = iota // unsupported
	ShapeNamedRecord                   // named record
	ShapePositionalRecord              // positional record
	ShapeUnitRecord                    // unit record
	ShapeUnion                         // tagged union
)

// Declaration kinds accepted by schema front ends.
const (
	KindStruct = "struct"
	KindEnum   = "enum"
	KindUnion  = "union"
)

// Classify derives the shape of a declaration from its kind and fields.
//
// A struct is a named record when every field has a name, a positional
// record when none has, and a unit record without fields. An enum is a
// tagged union. Everything else, including a union of records and a struct
// mixing named and positional fields, is unsupported.
func Classify(kind string, fields []Field) Shape {
	switch kind {
	case KindStruct:
		if len(fields) == 0 {
			return ShapeUnitRecord
		}

		named := 0
		for i := range fields {
			if fields[i].IsNamed() {
				named++
			}
		}

		switch named {
		case len(fields):
			return ShapeNamedRecord
		case 0:
			return ShapePositionalRecord
		default:
			return ShapeUnsupported
		}

	case KindEnum:
		return ShapeUnion

	default:
		return ShapeUnsupported
	}
}
