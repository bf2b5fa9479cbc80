package analyzer

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
)

// Public API constants for the typeglue analyzer.
const (
	name = "typeglue"
	doc  = `typeglue checks that types marked //glue:generate can be generated`
	url  = "https://pkg.go.dev/github.com/carlosskii/typeglue/analyzer"
)

// New creates a new instance of the typeglue analyzer configured with opts.
func New(opts ...Option) *analysis.Analyzer {
	r := defaultRunOptions()
	Options(opts).apply(r)

	a := &analysis.Analyzer{
		Name:     name,
		Doc:      doc,
		URL:      url,
		Run:      r.run,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}

	registerFlags(r, &a.Flags)

	return a
}

// Analyzer is a pre-configured *[analysis.Analyzer] with default options.
var Analyzer = New()
