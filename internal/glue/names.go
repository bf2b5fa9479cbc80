package glue

import (
	"fmt"
	"go/token"
	"go/types"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/carlosskii/typeglue/internal/decl"
)

// DefaultsVar holds the Default() value inside constructors.
const DefaultsVar = "defaults"

func constructorName(d *decl.Declaration) string {
	return d.Name + "From"
}

func extractorName(d *decl.Declaration) string {
	return d.Name + "Into"
}

func variantConstructorName(d *decl.Declaration, v *decl.Variant) string {
	return d.Name + "From" + v.Name
}

func variantTypeName(d *decl.Declaration, v *decl.Variant) string {
	return d.Name + v.Name
}

func unionMarker(d *decl.Declaration) string {
	return "is" + d.Name
}

// article returns "a" or "an" followed by name, by its first letter.
func article(name string) string {
	if name != "" && strings.ContainsRune("AEIOUaeiou", rune(name[0])) {
		return "an " + name
	}

	return "a " + name
}

// namer hands out parameter names that are valid, unique within one
// function and clear of the identifiers the function body refers to.
type namer struct {
	used map[string]bool
}

func newNamer(d *decl.Declaration) *namer {
	n := &namer{used: map[string]bool{
		d.Name:      true,
		DefaultsVar: true,
	}}

	for _, p := range d.TypeParams {
		n.used[p.Name] = true
	}

	return n
}

func (n *namer) name(base string) string {
	id := lowerCamel(base)
	if !token.IsIdentifier(id) && !token.IsKeyword(id) {
		id = "v"
	}

	if token.IsKeyword(id) || types.Universe.Lookup(id) != nil {
		id += "_"
	}

	candidate := id
	for i := 2; n.used[candidate]; i++ {
		candidate = fmt.Sprintf("%s%d", id, i)
	}

	n.used[candidate] = true

	return candidate
}

// lowerCamel turns a field name into a parameter name: "Name" becomes
// "name", "ID" becomes "id". Leading underscores are dropped.
func lowerCamel(s string) string {
	return strcase.ToLowerCamel(strings.TrimLeft(s, "_"))
}
