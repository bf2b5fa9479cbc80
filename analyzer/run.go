package analyzer

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/carlosskii/typeglue/internal/analyze"
	"github.com/carlosskii/typeglue/internal/decl"
	"github.com/carlosskii/typeglue/internal/diagnostic"
	"github.com/carlosskii/typeglue/internal/glue"
)

// ErrResultMissing is returned when a required analyzer result is missing.
var ErrResultMissing = errors.New("analyzer result missing")

// run generates every annotated type of the package in memory and reports
// the resulting diagnostics.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("typeglue: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	skip := false

	in.Preorder([]ast.Node{(*ast.File)(nil), (*ast.GenDecl)(nil)}, func(n ast.Node) {
		switch node := n.(type) {
		case *ast.File:
			skip = !r.generated && ast.IsGenerated(node)

		case *ast.GenDecl:
			if skip {
				return
			}

			for _, s := range analyze.Annotated(node, p.TypesInfo) {
				r.check(p, s)
			}
		}
	})

	return nil, nil
}

func (r *runOptions) check(p *analysis.Pass, s analyze.AnnotatedSpec) {
	d := analyze.FromTypeSpec(p.Fset, s.Spec, s.Obj)

	var diags diagnostic.Diagnostics

	// A fatal result is recorded in diags as well.
	_, _ = glue.Generate(d, &diags)

	file := p.Fset.File(s.Spec.Pos())

	for _, diag := range diags.All() {
		if !r.reports(diag) {
			continue
		}

		p.Report(analysis.Diagnostic{
			Pos:      tokenPos(file, diag.Pos, s.Spec.Name.Pos()),
			Category: string(diag.Code),
			Message:  message(diag),
		})
	}
}

func message(d diagnostic.Diagnostic) string {
	subject := d.Decl
	if d.Element != "" {
		subject += "." + d.Element
	}

	return fmt.Sprintf("%s: %s", subject, d.Message)
}

// tokenPos maps a line and column back into file, using fallback when the
// position lies elsewhere.
func tokenPos(file *token.File, pos decl.Position, fallback token.Pos) token.Pos {
	if file == nil || !pos.IsValid() || pos.File != file.Name() || pos.Line > file.LineCount() {
		return fallback
	}

	p := file.LineStart(pos.Line)
	if pos.Column > 1 {
		p += token.Pos(pos.Column - 1)
	}

	return p
}
