/*
Package gclplugin provides golangci-lint plugin integration for the [typeglue] analyzer.

# Usage

1. Add a file `.custom-gcl.yaml` to your source with:

	---
	version: v2.7.0

	name: golangci-lint
	destination: .

	plugins:
	  - module: github.com/carlosskii/typeglue
	    import: github.com/carlosskii/typeglue/gclplugin
	    version: v0.1.0

2. Run `golangci-lint custom` from your project root.

3. Configure the linter in `.golangci.yaml`:

	---
	version: "2"
	linters:
	  default: none
	  enable:
	    - typeglue
	  settings:
	    custom:
	      typeglue:
	        type: module
	        description: "typeglue checks types marked for conversion generation."
	        settings:
	          recoverable: true
	          disable: ["malformed-annotation"]

4. Run the linter:

	./golangci-lint run .

[typeglue]: https://pkg.go.dev/github.com/carlosskii/typeglue/analyzer
*/
package gclplugin
