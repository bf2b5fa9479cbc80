package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceHelpers(t *testing.T) {
	var none []string
	one := []string{"a"}
	two := []string{"a", "b"}

	assert.True(t, IsEmpty(none))
	assert.False(t, IsEmpty(one))

	assert.True(t, IsSingle(one))
	assert.False(t, IsSingle(two))

	assert.True(t, IsMultiple(two))
	assert.False(t, IsMultiple(one))

	first, ok := First(two)
	assert.True(t, ok)
	assert.Equal(t, "a", first)

	_, ok = First(none)
	assert.False(t, ok)
}

func TestPkgAlias(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "", want: ""},
		{path: "time", want: "time"},
		{path: "net/url", want: "url"},
		{path: "github.com/carlosskii/typeglue/internal/decl", want: "decl"},
		{path: "github.com/hashicorp/hcl/v2", want: "hcl"},
		{path: "github.com/hashicorp/hcl/v2/gohcl", want: "gohcl"},
		{path: "gopkg.in/yaml.v3", want: "yaml"},
		{path: "github.com/davecgh/go-spew/spew", want: "spew"},
		{path: "github.com/goccy/go-json", want: "json"},
		{path: "github.com/zclconf/go-cty/cty", want: "cty"},
		{path: "example.com/v1", want: "v1"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, PkgAlias(tt.path))
		})
	}
}
