package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlosskii/typeglue/internal/diagnostic"
)

const validSchema = `package: shapes
declarations:
  - name: Ticker
    kind: struct
    fields: [{type: string}, {type: int32}]
  - name: Meters
    kind: struct
    fields: [{type: float64}]
`

const failingSchema = `package: shapes
declarations:
  - name: Meters
    kind: struct
    fields: [{type: float64}]
  - name: Shape
    kind: enum
    variants:
      - {name: Circle, fields: [{type: float64}]}
      - {name: Point}
  - name: Empty
    kind: struct
`

func writeSchema(t *testing.T, content string) (dir, path string) {
	t.Helper()

	dir = t.TempDir()
	path = filepath.Join(dir, "shapes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return dir, path
}

func TestRun_WritesGeneratedFile(t *testing.T) {
	dir, path := writeSchema(t, validSchema)

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(&stdout, &stderr, []string{"-log-level", "error", path}))

	data, err := os.ReadFile(filepath.Join(dir, "glue_gen.go"))
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "// Code generated by typeglue. DO NOT EDIT.")
	assert.Contains(t, content, "type Ticker struct {")
	assert.Contains(t, content, "func TickerFrom(v0 string, v1 int32) Ticker {")
	assert.Contains(t, content, "func MetersInto(v Meters) float64 {")
	assert.Empty(t, stdout.String())
}

func TestRun_DryRun(t *testing.T) {
	dir, path := writeSchema(t, validSchema)

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(&stdout, &stderr, []string{"-dry-run", "-log-level", "error", path}))

	assert.Contains(t, stdout.String(), "// "+filepath.Join(dir, "glue_gen.go"))
	assert.Contains(t, stdout.String(), "func MetersFrom(value float64) Meters {")

	_, err := os.Stat(filepath.Join(dir, "glue_gen.go"))
	assert.True(t, os.IsNotExist(err))
}

func TestRun_DiagnosticsFailBuild(t *testing.T) {
	dir, path := writeSchema(t, failingSchema)

	var stdout, stderr bytes.Buffer
	err := run(&stdout, &stderr, []string{"-log-level", "error", path})
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, exitFailed, exitErr.Code)
	assert.Contains(t, exitErr.Message, "2 diagnostic(s)")

	assert.Contains(t, stderr.String(), "fatal: [unsupported-shape]")
	assert.Contains(t, stderr.String(), "error: [unit-variant]")

	// Unaffected declarations are still generated.
	data, err := os.ReadFile(filepath.Join(dir, "glue_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "func ShapeFromCircle(value float64) Shape {")
	assert.NotContains(t, string(data), "ShapeFromPoint")
	assert.NotContains(t, string(data), "EmptyFrom")
}

func TestRun_JSONReport(t *testing.T) {
	_, path := writeSchema(t, failingSchema)

	var stdout, stderr bytes.Buffer
	err := run(&stdout, &stderr, []string{"-json", "-log-level", "error", path})
	require.Error(t, err)

	var report diagnostic.Report
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))

	assert.True(t, report.Failed)
	require.Len(t, report.Diagnostics, 2)
	assert.Equal(t, diagnostic.CodeUnitVariant, report.Diagnostics[0].Code)
	assert.Equal(t, diagnostic.SeverityRecoverable, report.Diagnostics[0].Severity)
	assert.Equal(t, diagnostic.CodeUnsupportedShape, report.Diagnostics[1].Code)
	assert.Equal(t, diagnostic.SeverityFatal, report.Diagnostics[1].Severity)
}

func TestRun_Dump(t *testing.T) {
	_, path := writeSchema(t, validSchema)

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(&stdout, &stderr, []string{"-dry-run", "-dump", "-log-level", "error", path}))

	assert.Contains(t, stderr.String(), "Ticker")
	assert.Contains(t, stderr.String(), "decl.Declaration")
}

func TestRun_InvalidSchema(t *testing.T) {
	_, path := writeSchema(t, "package: 1shapes\n")

	var stdout, stderr bytes.Buffer
	err := run(&stdout, &stderr, []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid schema")
}

func TestRun_MissingSchema(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(&stdout, &stderr, []string{filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read schema file")
}
