package schema

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/carlosskii/typeglue/internal/decl"
	"github.com/carlosskii/typeglue/internal/match"
)

// UnmarshalYAML accepts either an import path or a mapping with name and
// path.
func (e *ImportEntry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var path string

		if err := node.Decode(&path); err != nil {
			return err
		}

		*e = ImportEntry{Path: path}

		return nil

	case yaml.MappingNode:
		type plain ImportEntry

		if err := checkKeys(node, e, "import"); err != nil {
			return err
		}

		return node.Decode((*plain)(e))

	default:
		return fmt.Errorf("line %d: expected import path or mapping", node.Line)
	}
}

// UnmarshalYAML records the declaration's position.
func (d *Declaration) UnmarshalYAML(node *yaml.Node) error {
	type plain Declaration

	if err := checkKeys(node, d, "declaration"); err != nil {
		return err
	}

	if err := node.Decode((*plain)(d)); err != nil {
		return err
	}

	d.Pos = nodePos(node)

	return nil
}

// UnmarshalYAML records the parameter's position.
func (g *Generic) UnmarshalYAML(node *yaml.Node) error {
	type plain Generic

	if err := checkKeys(node, g, "generic"); err != nil {
		return err
	}

	if err := node.Decode((*plain)(g)); err != nil {
		return err
	}

	g.Pos = nodePos(node)

	return nil
}

// UnmarshalYAML records the field's position.
func (f *Field) UnmarshalYAML(node *yaml.Node) error {
	type plain Field

	if err := checkKeys(node, f, "field"); err != nil {
		return err
	}

	if err := node.Decode((*plain)(f)); err != nil {
		return err
	}

	f.Pos = nodePos(node)

	return nil
}

// UnmarshalYAML records the variant's position.
func (v *Variant) UnmarshalYAML(node *yaml.Node) error {
	type plain Variant

	if err := checkKeys(node, v, "variant"); err != nil {
		return err
	}

	if err := node.Decode((*plain)(v)); err != nil {
		return err
	}

	v.Pos = nodePos(node)

	return nil
}

// checkKeys rejects mapping keys that no yaml tag of v's struct type names;
// what names the element in the error.
// Decoding through a plain alias type bypasses the decoder's KnownFields
// setting, so custom unmarshalers check keys themselves.
func checkKeys(node *yaml.Node, v any, what string) error {
	if node.Kind != yaml.MappingNode {
		return nil
	}

	t := reflect.TypeOf(v).Elem()

	known := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("yaml"), ",")
		if name != "" && name != "-" {
			known = append(known, name)
		}
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if !slices.Contains(known, key.Value) {
			return fmt.Errorf("line %d: unknown key %q in %s%s",
				key.Line, key.Value, what, match.Hint(key.Value, known...))
		}
	}

	return nil
}

func nodePos(node *yaml.Node) decl.Position {
	return decl.Position{Line: node.Line, Column: node.Column}
}
