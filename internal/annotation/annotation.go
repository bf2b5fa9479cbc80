// Package annotation interprets the per-field exclusion marker.
//
// The only recognized annotation is the struct tag entry glue:"default",
// which removes a field from a generated constructor's parameters and fills
// it from the type's Default method instead.
package annotation

import (
	"strings"

	"github.com/fatih/structtag"

	"github.com/carlosskii/typeglue/internal/decl"
	"github.com/carlosskii/typeglue/internal/diagnostic"
	"github.com/carlosskii/typeglue/internal/match"
)

const (
	// Key is the struct tag key of the marker.
	Key = "glue"
	// Exclude is the single recognized argument.
	Exclude = "default"
)

// FromTag returns every glue entry of a struct tag, in order. Unlike
// reflect.StructTag.Get, repeated keys are all returned. A tag that does not
// follow the struct tag convention yields no annotations.
func FromTag(tag string, pos decl.Position) []decl.Annotation {
	tags, err := structtag.Parse(tag)
	if err != nil || tags == nil {
		return nil
	}

	var out []decl.Annotation

	for _, t := range tags.Tags() {
		if t.Key != Key {
			continue
		}

		out = append(out, decl.Annotation{
			Key:  t.Key,
			Args: args(t),
			Raw:  t.String(),
			Pos:  pos,
		})
	}

	return out
}

// args returns the comma-separated values of t, trimmed; nil for an empty
// value.
func args(t *structtag.Tag) []string {
	if t.Name == "" && len(t.Options) == 0 {
		return nil
	}

	out := make([]string, 0, 1+len(t.Options))
	for _, a := range append([]string{t.Name}, t.Options...) {
		out = append(out, strings.TrimSpace(a))
	}

	return out
}

// IsExclude reports whether a is the recognized exclusion marker.
func IsExclude(a decl.Annotation) bool {
	return a.Key == Key && len(a.Args) == 1 && a.Args[0] == Exclude
}

// Parse reports whether the field is excluded. Every malformed glue
// annotation is recorded as a recoverable diagnostic against
// declName.element; a field with only malformed annotations stays active.
func Parse(declName, element string, f *decl.Field, diags *diagnostic.Diagnostics) bool {
	excluded := false

	for _, a := range f.Annotations {
		if a.Key != Key {
			continue
		}

		if IsExclude(a) {
			excluded = true
			continue
		}

		pos := a.Pos
		if !pos.IsValid() {
			pos = f.Pos
		}

		hint := ""
		if len(a.Args) == 1 {
			hint = match.Hint(a.Args[0], Exclude)
		}

		diags.AddRecoverable(diagnostic.Diagnostic{
			Code:    diagnostic.CodeMalformedAnnotation,
			Message: "unrecognized annotation form " + a.Raw + `, expected glue:"default"` + hint,
			Decl:    declName,
			Element: element,
			Pos:     pos,
		})
	}

	return excluded
}

// Partition splits the fields of d into active and excluded indices, each in
// declaration order.
func Partition(d *decl.Declaration, diags *diagnostic.Diagnostics) (active, excluded []int) {
	for i := range d.Fields {
		if Parse(d.Name, d.Fields[i].Name, &d.Fields[i], diags) {
			excluded = append(excluded, i)
		} else {
			active = append(active, i)
		}
	}

	return active, excluded
}
