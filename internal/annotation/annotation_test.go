package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlosskii/typeglue/internal/decl"
	"github.com/carlosskii/typeglue/internal/diagnostic"
)

func TestFromTag(t *testing.T) {
	pos := decl.Position{File: "a.go", Line: 5}

	tests := []struct {
		name string
		tag  string
		want []decl.Annotation
	}{
		{
			name: "no tag",
			tag:  "",
		},
		{
			name: "other keys only",
			tag:  `json:"name" yaml:"name"`,
		},
		{
			name: "exclusion",
			tag:  `json:"timeout" glue:"default"`,
			want: []decl.Annotation{{Key: "glue", Args: []string{"default"}, Raw: `glue:"default"`, Pos: pos}},
		},
		{
			name: "empty value",
			tag:  `glue:""`,
			want: []decl.Annotation{{Key: "glue", Raw: `glue:""`, Pos: pos}},
		},
		{
			name: "extra arguments",
			tag:  `glue:"default, skip"`,
			want: []decl.Annotation{{Key: "glue", Args: []string{"default", "skip"}, Raw: `glue:"default, skip"`, Pos: pos}},
		},
		{
			name: "repeated key",
			tag:  `glue:"skip" glue:"default"`,
			want: []decl.Annotation{
				{Key: "glue", Args: []string{"skip"}, Raw: `glue:"skip"`, Pos: pos},
				{Key: "glue", Args: []string{"default"}, Raw: `glue:"default"`, Pos: pos},
			},
		},
		{
			name: "syntax error before the entry",
			tag:  `json:name glue:"default"`,
		},
		{
			name: "syntax error after the entry",
			tag:  `glue:"default" json:name`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromTag(tt.tag, pos))
		})
	}
}

func field(name, tag string) decl.Field {
	return decl.Field{
		Name:        name,
		Type:        "string",
		Tag:         tag,
		Annotations: FromTag(tag, decl.Position{File: "a.go", Line: 1}),
	}
}

func TestParse_NoAnnotation(t *testing.T) {
	var diags diagnostic.Diagnostics
	f := field("Name", `json:"name"`)

	assert.False(t, Parse("Person", f.Name, &f, &diags))
	assert.True(t, diags.IsValid())
}

func TestParse_Excluded(t *testing.T) {
	var diags diagnostic.Diagnostics
	f := field("Timeout", `glue:"default"`)

	assert.True(t, Parse("Config", f.Name, &f, &diags))
	assert.True(t, diags.IsValid())
}

func TestParse_MalformedFailsOpen(t *testing.T) {
	var diags diagnostic.Diagnostics
	f := field("Timeout", `glue:"skip"`)

	assert.False(t, Parse("Config", f.Name, &f, &diags))
	require.Len(t, diags.Recoverable, 1)
	assert.Empty(t, diags.Fatal)

	d := diags.Recoverable[0]
	assert.Equal(t, diagnostic.CodeMalformedAnnotation, d.Code)
	assert.Contains(t, d.Message, "unrecognized annotation form")
	assert.NotContains(t, d.Message, "did you mean")
	assert.Equal(t, "Config", d.Decl)
	assert.Equal(t, "Timeout", d.Element)
}

func TestParse_SuggestsCloseSpelling(t *testing.T) {
	var diags diagnostic.Diagnostics
	f := field("Timeout", `glue:"Defualt"`)

	assert.False(t, Parse("Config", f.Name, &f, &diags))
	require.Len(t, diags.Recoverable, 1)
	assert.Contains(t, diags.Recoverable[0].Message, `did you mean "default"?`)
}

func TestParse_AnyRecognizedFormExcludes(t *testing.T) {
	var diags diagnostic.Diagnostics
	f := field("Timeout", `glue:"" glue:"default"`)

	assert.True(t, Parse("Config", f.Name, &f, &diags))
	assert.Len(t, diags.Recoverable, 1, "the malformed entry is still reported")
}

func TestPartition(t *testing.T) {
	var diags diagnostic.Diagnostics
	d := &decl.Declaration{
		Name: "Config",
		Fields: []decl.Field{
			field("Name", ""),
			field("Timeout", `glue:"default"`),
			field("Retries", ""),
			field("Verbose", `glue:"default"`),
		},
	}

	active, excluded := Partition(d, &diags)

	assert.Equal(t, []int{0, 2}, active)
	assert.Equal(t, []int{1, 3}, excluded)
	assert.True(t, diags.IsValid())
}

func TestIsExclude(t *testing.T) {
	pos := decl.Position{File: "a.go", Line: 1}

	assert.True(t, IsExclude(FromTag(`glue:"default"`, pos)[0]))
	assert.False(t, IsExclude(FromTag(`glue:"skip"`, pos)[0]))
	assert.False(t, IsExclude(FromTag(`glue:"default,skip"`, pos)[0]))
	assert.False(t, IsExclude(FromTag(`glue:""`, pos)[0]))
}

func TestParse_ElementNamesPositionalField(t *testing.T) {
	var diags diagnostic.Diagnostics
	f := field("", `glue:"skip"`)

	assert.False(t, Parse("Ticker", "F0", &f, &diags))
	require.Len(t, diags.Recoverable, 1)
	assert.Equal(t, "F0", diags.Recoverable[0].Element)
}
