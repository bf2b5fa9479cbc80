// Package glue synthesizes conversion functions for composite type
// declarations.
//
// Generate classifies a declaration by shape and routes it to one of three
// generators:
//
//   - named records: a bidirectional From/Into pair for a single active
//     field, or a From constructor taking every active field in order;
//     fields tagged glue:"default" are filled from the type's Default method
//   - positional records: the same arity rules over F0, F1, ... fields;
//     exclusion markers are rejected
//   - tagged unions: one From<Variant> constructor per variant with a
//     positional payload; unit and named-field variants are skipped
//
// Arity-N constructors have no matching extractor. Union constructors never
// have one, since several variants may share a payload type.
//
// Fatal problems abort the declaration and are returned as a
// *diagnostic.Error; recoverable ones are appended to the caller's
// diagnostic.Diagnostics and generation continues.
package glue
