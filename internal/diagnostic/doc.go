// Package diagnostic provides structured, positioned diagnostics for the
// typeglue generator.
//
// Key capabilities:
//   - Fatal diagnostics that abort generation of one declaration
//   - Recoverable diagnostics that are collected while generation continues
//   - A build-scoped aggregate that fails the build when non-empty
//   - Text and JSON reports for the host toolchain
package diagnostic
