package gen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/carlosskii/typeglue/internal/glue"
)

// renderType generates the Go definition of a schema-declared type, plus the
// marker method when the type is a union variant.
func renderType(t glue.TypeDef, comments bool) string {
	var sb strings.Builder

	if comments && t.Doc != "" {
		sb.WriteString("// " + t.Doc + "\n")
	}

	if t.Interface {
		fmt.Fprintf(&sb, "type %s%s interface {\n\t%s()\n}\n", t.Name, t.TypeParams, t.Marker)
		return sb.String()
	}

	fmt.Fprintf(&sb, "type %s%s struct", t.Name, t.TypeParams)

	if len(t.Fields) == 0 {
		sb.WriteString("{}\n")
	} else {
		sb.WriteString(" {\n")

		for _, f := range t.Fields {
			sb.WriteString("\t" + f.Name + " " + f.Type)

			if f.Tag != "" {
				sb.WriteString(" " + quoteTag(f.Tag))
			}

			sb.WriteString("\n")
		}

		sb.WriteString("}\n")
	}

	if t.Implements != "" {
		fmt.Fprintf(&sb, "\nfunc (%s) %s() {}\n", t.Name, t.Marker)
	}

	return sb.String()
}

// quoteTag writes a struct tag as a raw string unless it contains a
// backquote.
func quoteTag(tag string) string {
	if strings.Contains(tag, "`") {
		return strconv.Quote(tag)
	}

	return "`" + tag + "`"
}
