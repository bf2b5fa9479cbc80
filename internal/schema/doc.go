// Package schema loads declarations from YAML and HCL schema files.
//
// A schema describes types that do not exist in Go yet: positional records
// and tagged unions among them. Every declaration is generated together with
// its Go type definition.
//
// Key types:
//   - File: the parsed schema, independent of its source format
//   - Declaration, Field, Variant, Generic: schema entries with positions
//   - ImportEntry: an import given as a path or as a name/path pair
package schema
