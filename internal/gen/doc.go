// Package gen renders generated conversions into Go source files.
//
// Generation approach uses text/template + go/format for readable,
// deterministic Go code:
//   - One file per target package, declarations in input order
//   - Imports pruned to the packages referenced by emitted signatures
//   - Type definitions for schema declarations, written as strings
//   - Default-value obligations as compile-time interface assertions
//
// Build drives glue.Generate over many declarations, merging each
// invocation's diagnostics into a build-scoped log.
package gen
