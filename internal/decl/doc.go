// Package decl defines the structural model of a composite type declaration
// that typeglue generates conversions for.
//
// Front ends (Go sources, YAML and HCL schemas) build a Declaration once per
// annotated type; the glue package consumes it and never mutates it.
//
// Key types:
//   - Declaration: name, generic parameters, shape and fields or variants
//   - Shape: closed classification of the declaration's structural form
//   - Field: optional name, type expression, struct tag and annotations
//   - Variant: one alternative of a tagged union with its payload fields
package decl
