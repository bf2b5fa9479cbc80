// Package analyze loads Go packages and extracts declarations of annotated
// types.
//
// It uses golang.org/x/tools/go/packages with AST and go/types. A type is
// selected by the //glue:generate directive in its doc comment; its fields,
// struct tags and type parameters become a decl.Declaration.
//
// Key types:
//   - Loader: loads package patterns and returns their declarations
//   - TypeStringer: prints field types relative to the declaring package
//     and records the imports the printed types need
package analyze
