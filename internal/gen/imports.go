package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"sort"

	"github.com/carlosskii/typeglue/internal/glue"
)

// usedImports returns the declared imports that the outputs' type
// expressions refer to, sorted by path.
func usedImports(outputs []*glue.Output) ([]importSpec, error) {
	used := make(map[string]bool)

	for _, out := range outputs {
		for _, expr := range out.TypeExprs() {
			if err := collectPackageRefs(expr, used); err != nil {
				return nil, fmt.Errorf("%s: %w", out.Decl.Name, err)
			}
		}
	}

	byPath := make(map[string]importSpec)
	byName := make(map[string]string)

	for _, out := range outputs {
		for _, imp := range out.Decl.Imports {
			name := imp.LocalName()
			if !used[name] {
				continue
			}

			if path, ok := byName[name]; ok && path != imp.Path {
				return nil, fmt.Errorf("%s: import name %q refers to both %q and %q",
					out.Decl.Name, name, path, imp.Path)
			}

			byName[name] = imp.Path
			byPath[imp.Path] = importSpec{Alias: imp.Alias(), Path: imp.Path}
		}
	}

	specs := make([]importSpec, 0, len(byPath))
	for _, spec := range byPath {
		specs = append(specs, spec)
	}

	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Path < specs[j].Path
	})

	return specs, nil
}

// collectPackageRefs records the package qualifiers used in a type
// expression, e.g. "time" for "map[string]time.Duration".
func collectPackageRefs(expr string, used map[string]bool) error {
	if expr == "" {
		return nil
	}

	node, err := parser.ParseExpr(expr)
	if err != nil {
		return fmt.Errorf("invalid type expression %q: %w", expr, err)
	}

	ast.Inspect(node, func(n ast.Node) bool {
		if sel, ok := n.(*ast.SelectorExpr); ok {
			if id, ok := sel.X.(*ast.Ident); ok {
				used[id.Name] = true
			}
		}

		return true
	})

	return nil
}
