package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"github.com/carlosskii/typeglue/internal/glue"
)

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory the file belongs in.
	Dir string
	// Filename is the name of the file (e.g., "glue_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// obligation is a rendered default-value assertion.
type obligation struct {
	Doc  string
	Type string
}

// declData holds the rendered pieces of one declaration.
type declData struct {
	Types       []string
	Obligations []obligation
	Funcs       []glue.Func
}

// templateData holds data for the file template.
type templateData struct {
	Package string
	Imports []importSpec
	Decls   []declData
}

// Render produces one Go file holding the outputs of a single package, in
// the given order.
func (b *Builder) Render(dir, filename, pkg string, outputs []*glue.Output) (*GeneratedFile, error) {
	data := &templateData{Package: pkg}

	imports, err := usedImports(outputs)
	if err != nil {
		return nil, err
	}

	data.Imports = imports

	for _, out := range outputs {
		data.Decls = append(data.Decls, b.declData(out))
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if b.config.WriteUnformatted {
			_ = writeDebugUnformatted(dir, filename, buf.Bytes())
		}

		return &GeneratedFile{
			Dir:      dir,
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Dir:      dir,
		Filename: filename,
		Content:  formatted,
	}, nil
}

func (b *Builder) declData(out *glue.Output) declData {
	var d declData

	for _, t := range out.Types {
		d.Types = append(d.Types, renderType(t, b.config.GenerateComments))
	}

	for _, typ := range out.Obligations {
		o := obligation{Type: typ}
		if b.config.GenerateComments {
			o.Doc = fmt.Sprintf("%s must supply the values of its excluded fields.", typ)
		}

		d.Obligations = append(d.Obligations, o)
	}

	for _, fn := range out.Funcs {
		if !b.config.GenerateComments {
			fn.Doc = ""
		}

		d.Funcs = append(d.Funcs, fn)
	}

	return d
}

var fileTemplate = template.Must(template.New("file").Funcs(template.FuncMap{
	"defaultsVar": func() string { return glue.DefaultsVar },
}).Parse(`// Code generated by typeglue. DO NOT EDIT.

package {{.Package}}

{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
{{range .Decls}}{{range .Types}}
{{.}}
{{end}}{{range .Obligations}}
{{if .Doc}}// {{.Doc}}
{{end}}var _ interface{ Default() {{.Type}} } = {{.Type}}{}
{{end}}{{range .Funcs}}
{{template "func" .}}
{{end}}{{end}}
{{define "func"}}{{if .Doc}}// {{.Doc}}
{{end}}func {{.Name}}{{.TypeParams}}({{range $i, $p := .Params}}{{if $i}}, {{end}}{{$p.Name}} {{$p.Type}}{{end}}) {{.Result}} {
{{if .IsExtract}}	return {{.Return}}
{{else}}{{if .Defaults}}	{{defaultsVar}} := {{.Defaults}}{}.Default()

{{end}}	return {{.Literal}}{
{{range .Assigns}}		{{.Field}}: {{.Expr}},
{{end}}	}
{{end}}}{{end}}`))
