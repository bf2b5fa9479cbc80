package diagnostic

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlosskii/typeglue/internal/decl"
)

func TestDiagnostics_AddFatal(t *testing.T) {
	var diags Diagnostics

	err := diags.AddFatal(Diagnostic{
		Code:    CodeAllFieldsExcluded,
		Message: "cannot exclude every field",
		Decl:    "Config",
		Pos:     decl.Position{File: "types.go", Line: 4, Column: 6},
	})

	require.Error(t, err)
	assert.True(t, IsFatal(err))
	assert.True(t, IsFatal(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsFatal(errors.New("plain")))

	assert.True(t, diags.HasFatal())
	assert.True(t, diags.HasErrors())
	assert.Equal(t, SeverityFatal, diags.Fatal[0].Severity)
	assert.Equal(t,
		"types.go:4:6: fatal: [all-fields-excluded] cannot exclude every field (Config)",
		err.Error())
}

func TestDiagnostics_RecoverableFailsBuild(t *testing.T) {
	var diags Diagnostics
	assert.True(t, diags.IsValid())
	require.NoError(t, diags.Error())

	diags.AddRecoverable(Diagnostic{
		Code:    CodeUnitVariant,
		Message: "unit variants are not supported",
		Decl:    "Shape",
		Element: "Empty",
	})

	assert.False(t, diags.HasFatal())
	assert.True(t, diags.HasErrors())
	assert.False(t, diags.IsValid())
	assert.Equal(t, SeverityRecoverable, diags.Recoverable[0].Severity)
	require.EqualError(t, diags.Error(), "error: [unit-variant] unit variants are not supported (Shape.Empty)")
}

func TestDiagnostics_MergeAndOrder(t *testing.T) {
	var build, first, second Diagnostics

	first.AddRecoverable(Diagnostic{Code: CodeMalformedAnnotation, Pos: decl.Position{File: "a.go", Line: 9}})
	second.AddRecoverable(Diagnostic{Code: CodeUnitVariant, Pos: decl.Position{File: "a.go", Line: 2}})
	_ = second.AddFatal(Diagnostic{Code: CodeGenericUnion, Pos: decl.Position{File: "a.go", Line: 9}})

	build.Merge(first)
	build.Merge(second)

	require.Equal(t, 3, build.Len())

	all := build.All()
	assert.Equal(t, CodeUnitVariant, all[0].Code)
	assert.Equal(t, CodeGenericUnion, all[1].Code)
	assert.Equal(t, CodeMalformedAnnotation, all[2].Code)
}

func TestDiagnostics_WriteJSON(t *testing.T) {
	var diags Diagnostics
	diags.AddRecoverable(Diagnostic{
		Code:    CodeNamedFieldsInVariant,
		Message: "variants with named fields are not supported",
		Decl:    "Event",
		Element: "Click",
		Pos:     decl.Position{File: "events.yaml", Line: 12, Column: 9},
	})

	var buf bytes.Buffer
	require.NoError(t, diags.WriteJSON(&buf))

	var report struct {
		Failed      bool `json:"failed"`
		Diagnostics []struct {
			Severity string `json:"severity"`
			Code     string `json:"code"`
			Element  string `json:"element"`
			Pos      struct {
				File string `json:"file"`
				Line int    `json:"line"`
			} `json:"pos"`
		} `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))

	assert.True(t, report.Failed)
	require.Len(t, report.Diagnostics, 1)
	assert.Equal(t, "error", report.Diagnostics[0].Severity)
	assert.Equal(t, "named-variant-fields", report.Diagnostics[0].Code)
	assert.Equal(t, "Click", report.Diagnostics[0].Element)
	assert.Equal(t, "events.yaml", report.Diagnostics[0].Pos.File)
	assert.Equal(t, 12, report.Diagnostics[0].Pos.Line)
}

func TestDiagnostics_WriteJSON_Empty(t *testing.T) {
	var diags Diagnostics

	var buf bytes.Buffer
	require.NoError(t, diags.WriteJSON(&buf))
	assert.JSONEq(t, `{"diagnostics": [], "failed": false}`, buf.String())
}

func TestDiagnostics_WriteText(t *testing.T) {
	var diags Diagnostics
	_ = diags.AddFatal(Diagnostic{
		Code:    CodeUnsupportedShape,
		Message: "cannot generate conversions for a fieldless record",
		Decl:    "Marker",
		Pos:     decl.Position{File: "m.go", Line: 1, Column: 6},
	})

	var buf bytes.Buffer
	require.NoError(t, diags.WriteText(&buf))
	assert.Equal(t,
		"m.go:1:6: fatal: [unsupported-shape] cannot generate conversions for a fieldless record (Marker)\n",
		buf.String())
}

func TestSeverity_Text(t *testing.T) {
	for _, s := range []Severity{SeverityRecoverable, SeverityFatal} {
		text, err := s.MarshalText()
		require.NoError(t, err)

		var got Severity
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, s, got)
	}

	var s Severity
	assert.Error(t, s.UnmarshalText([]byte("warning")))
}
