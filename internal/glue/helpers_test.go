package glue

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carlosskii/typeglue/internal/annotation"
	"github.com/carlosskii/typeglue/internal/decl"
	"github.com/carlosskii/typeglue/internal/diagnostic"
)

func named(name, typ string) decl.Field {
	return decl.Field{Name: name, Type: typ}
}

func tagged(name, typ, tag string) decl.Field {
	return decl.Field{
		Name:        name,
		Type:        typ,
		Tag:         tag,
		Annotations: annotation.FromTag(tag, decl.Position{File: "types.go", Line: 10}),
	}
}

func positional(types ...string) []decl.Field {
	fields := make([]decl.Field, 0, len(types))
	for _, t := range types {
		fields = append(fields, decl.Field{Type: t})
	}

	return fields
}

func mustGenerate(t *testing.T, d *decl.Declaration) (*Output, diagnostic.Diagnostics) {
	t.Helper()

	var diags diagnostic.Diagnostics

	out, err := Generate(d, &diags)
	require.NoError(t, err)
	require.NotNil(t, out)

	return out, diags
}

func mustFail(t *testing.T, d *decl.Declaration, code diagnostic.Code) diagnostic.Diagnostic {
	t.Helper()

	var diags diagnostic.Diagnostics

	out, err := Generate(d, &diags)
	require.Error(t, err)
	require.True(t, diagnostic.IsFatal(err))
	require.Nil(t, out)
	require.Len(t, diags.Fatal, 1)
	require.Equal(t, code, diags.Fatal[0].Code)

	return diags.Fatal[0]
}

func funcNamed(out *Output, name string) *Func {
	for i := range out.Funcs {
		if out.Funcs[i].Name == name {
			return &out.Funcs[i]
		}
	}

	return nil
}
