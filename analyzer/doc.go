// Package analyzer reports typeglue diagnostics for annotated Go types.
//
// Every type marked with //glue:generate is run through the generator
// without writing anything; fatal and recoverable diagnostics are reported
// at the type, field or annotation they concern. This lets editors and
// linters surface problems before go generate runs.
//
// # Usage
//
// The analyzer can be used with the go/analysis drivers, e.g. singlechecker,
// or through golangci-lint with the gclplugin package.
package analyzer
