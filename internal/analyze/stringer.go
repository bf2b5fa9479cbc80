package analyze

import (
	"go/types"
	"sort"

	"github.com/carlosskii/typeglue/internal/decl"
)

// TypeStringer prints types the way they are written inside the declaring
// package and records every other package it names.
type TypeStringer struct {
	pkg     *types.Package
	imports map[string]decl.Import // keyed by path
}

// NewTypeStringer creates a TypeStringer for types referenced from pkg.
func NewTypeStringer(pkg *types.Package) *TypeStringer {
	return &TypeStringer{
		pkg:     pkg,
		imports: make(map[string]decl.Import),
	}
}

// TypeString returns the Go source form of t, e.g. "map[string]time.Duration".
func (s *TypeStringer) TypeString(t types.Type) string {
	return types.TypeString(t, s.qualify)
}

func (s *TypeStringer) qualify(p *types.Package) string {
	if p == nil || p == s.pkg {
		return ""
	}

	if s.pkg != nil && p.Path() == s.pkg.Path() {
		return ""
	}

	s.imports[p.Path()] = decl.Import{Name: p.Name(), Path: p.Path()}

	return p.Name()
}

// Imports returns the recorded imports sorted by path.
func (s *TypeStringer) Imports() []decl.Import {
	if len(s.imports) == 0 {
		return nil
	}

	imports := make([]decl.Import, 0, len(s.imports))
	for _, imp := range s.imports {
		imports = append(imports, imp)
	}

	sort.Slice(imports, func(i, j int) bool {
		return imports[i].Path < imports[j].Path
	})

	return imports
}
