package glue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlosskii/typeglue/internal/decl"
	"github.com/carlosskii/typeglue/internal/diagnostic"
)

func TestTuple_SingleField(t *testing.T) {
	d := &decl.Declaration{
		Name:   "Log",
		Shape:  decl.ShapePositionalRecord,
		Fields: positional("[]string"),
	}

	out, _ := mustGenerate(t, d)
	require.Len(t, out.Funcs, 2)

	ctor := out.Funcs[0]
	assert.Equal(t, "LogFrom", ctor.Name)
	assert.Equal(t, []Param{{"value", "[]string"}}, ctor.Params)
	assert.Equal(t, []Assign{{"F0", "value"}}, ctor.Assigns)

	into := out.Funcs[1]
	assert.Equal(t, "LogInto", into.Name)
	assert.Equal(t, "[]string", into.Result)
	assert.Equal(t, "v.F0", into.Return)
}

func TestTuple_MultiField(t *testing.T) {
	d := &decl.Declaration{
		Name:   "Ticker",
		Shape:  decl.ShapePositionalRecord,
		Fields: positional("string", "int32"),
	}

	out, _ := mustGenerate(t, d)
	require.Len(t, out.Funcs, 1)

	ctor := out.Funcs[0]
	assert.Equal(t, []Param{{"v0", "string"}, {"v1", "int32"}}, ctor.Params)
	assert.Equal(t, []Assign{{"F0", "v0"}, {"F1", "v1"}}, ctor.Assigns)
	assert.Empty(t, ctor.Defaults)
}

func TestTuple_Generic(t *testing.T) {
	d := &decl.Declaration{
		Name:       "List",
		Shape:      decl.ShapePositionalRecord,
		TypeParams: []decl.GenericParam{{Name: "T", Constraint: "any"}},
		Fields:     positional("[]T"),
		EmitType:   true,
	}

	out, _ := mustGenerate(t, d)

	require.Len(t, out.Types, 1)
	assert.Equal(t, "[T any]", out.Types[0].TypeParams)
	assert.Equal(t, []StructField{{Name: "F0", Type: "[]T"}}, out.Types[0].Fields)

	assert.Equal(t, "List[T]", out.Funcs[0].Result)
	assert.Equal(t, "List[T]", out.Funcs[1].Params[0].Type)
}

func TestTuple_ExclusionRejected(t *testing.T) {
	for _, tag := range []string{`glue:"default"`, `glue:"skip" glue:"default"`} {
		t.Run(tag, func(t *testing.T) {
			fields := positional("string", "int32")
			fields[1] = tagged("", "int32", tag)

			d := &decl.Declaration{Name: "Ticker", Shape: decl.ShapePositionalRecord, Fields: fields}

			diag := mustFail(t, d, diagnostic.CodeExcludeOnPositional)
			assert.Equal(t, "positional records cannot exclude fields", diag.Message)
			assert.Equal(t, "F1", diag.Element)
		})
	}
}

func TestTuple_MalformedAnnotationIsRecoverable(t *testing.T) {
	fields := positional("string", "int32")
	fields[0] = tagged("", "string", `glue:"skip"`)

	d := &decl.Declaration{Name: "Ticker", Shape: decl.ShapePositionalRecord, Fields: fields}

	out, diags := mustGenerate(t, d)

	assert.Empty(t, diags.Fatal)
	require.Len(t, diags.Recoverable, 1)
	assert.Equal(t, diagnostic.CodeMalformedAnnotation, diags.Recoverable[0].Code)
	assert.Equal(t, "Ticker", diags.Recoverable[0].Decl)
	assert.Equal(t, "F0", diags.Recoverable[0].Element)

	require.Len(t, out.Funcs, 1)
	assert.Equal(t, "TickerFrom", out.Funcs[0].Name)
	assert.Len(t, out.Funcs[0].Params, 2)
}
