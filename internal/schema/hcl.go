package schema

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/carlosskii/typeglue/internal/decl"
)

// hclFile represents the top-level structure of an HCL schema for decoding.
type hclFile struct {
	Version      string       `hcl:"version,optional"`
	Package      string       `hcl:"package"`
	Output       string       `hcl:"output,optional"`
	Imports      []string     `hcl:"imports,optional"`
	ImportBlocks []*hclImport `hcl:"import,block"`
	Structs      []*hclDecl   `hcl:"struct,block"`
	Enums        []*hclDecl   `hcl:"enum,block"`
	Unions       []*hclDecl   `hcl:"union,block"`
}

// hclImport is a named import: import "yaml" { path = "gopkg.in/yaml.v3" }.
type hclImport struct {
	Name string `hcl:"name,label"`
	Path string `hcl:"path"`
}

type hclDecl struct {
	Name     string        `hcl:"name,label"`
	Generics []*hclGeneric `hcl:"generic,block"`
	Fields   []*hclField   `hcl:"field,block"`
	Elems    []*hclElem    `hcl:"elem,block"`
	Variants []*hclVariant `hcl:"variant,block"`
}

type hclGeneric struct {
	Name       string `hcl:"name,label"`
	Constraint string `hcl:"constraint,optional"`
	Const      string `hcl:"const,optional"`
}

// hclField is a named field.
type hclField struct {
	Name string `hcl:"name,label"`
	Type string `hcl:"type"`
	Tag  string `hcl:"tag,optional"`
}

// hclElem is a positional field.
type hclElem struct {
	Type string `hcl:"type"`
	Tag  string `hcl:"tag,optional"`
}

type hclVariant struct {
	Name   string      `hcl:"name,label"`
	Fields []*hclField `hcl:"field,block"`
	Elems  []*hclElem  `hcl:"elem,block"`
}

// ParseHCL parses HCL native syntax into a File. Declarations keep their
// source order across struct, enum and union blocks.
func ParseHCL(data []byte, path string) (*File, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse schema HCL %s: %w", path, diags)
	}

	var hf hclFile

	diags = gohcl.DecodeBody(file.Body, nil, &hf)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode schema HCL %s: %w", path, diags)
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("failed to decode schema HCL %s: not native syntax", path)
	}

	f := &File{
		Path:    path,
		Version: hf.Version,
		Package: hf.Package,
		Output:  hf.Output,
	}

	for _, p := range hf.Imports {
		f.Imports = append(f.Imports, ImportEntry{Path: p})
	}

	for _, imp := range hf.ImportBlocks {
		f.Imports = append(f.Imports, ImportEntry{Name: imp.Name, Path: imp.Path})
	}

	byKind := map[string][]*hclDecl{
		decl.KindStruct: hf.Structs,
		decl.KindEnum:   hf.Enums,
		decl.KindUnion:  hf.Unions,
	}
	next := make(map[string]int)

	for _, block := range body.Blocks {
		decls, ok := byKind[block.Type]
		if !ok || next[block.Type] >= len(decls) {
			continue
		}

		hd := decls[next[block.Type]]
		next[block.Type]++

		f.Declarations = append(f.Declarations, hd.declaration(block))
	}

	applyDefaults(f)

	return f, nil
}

func (hd *hclDecl) declaration(block *hclsyntax.Block) Declaration {
	d := Declaration{
		Name: hd.Name,
		Kind: block.Type,
		Pos:  rangePos(block.DefRange()),
	}

	children := block.Body.Blocks

	genericPos := positions(children, "generic")
	for i, g := range hd.Generics {
		d.Generics = append(d.Generics, Generic{
			Name:       g.Name,
			Constraint: g.Constraint,
			Const:      g.Const,
			Pos:        posAt(genericPos, i),
		})
	}

	d.Fields = fields(children, hd.Fields, hd.Elems)

	variantBlocks := filter(children, "variant")
	for i, v := range hd.Variants {
		variant := Variant{Name: v.Name}
		if i < len(variantBlocks) {
			variant.Pos = rangePos(variantBlocks[i].DefRange())
			variant.Fields = fields(variantBlocks[i].Body.Blocks, v.Fields, v.Elems)
		}

		d.Variants = append(d.Variants, variant)
	}

	return d
}

// fields converts named fields followed by positional ones. A block with
// both kinds describes a mixed record, which is reported as unsupported.
func fields(blocks hclsyntax.Blocks, named []*hclField, elems []*hclElem) []Field {
	var out []Field

	fieldPos := positions(blocks, "field")
	for i, f := range named {
		out = append(out, Field{Name: f.Name, Type: f.Type, Tag: f.Tag, Pos: posAt(fieldPos, i)})
	}

	elemPos := positions(blocks, "elem")
	for i, e := range elems {
		out = append(out, Field{Type: e.Type, Tag: e.Tag, Pos: posAt(elemPos, i)})
	}

	return out
}

func filter(blocks hclsyntax.Blocks, typ string) hclsyntax.Blocks {
	var out hclsyntax.Blocks

	for _, b := range blocks {
		if b.Type == typ {
			out = append(out, b)
		}
	}

	return out
}

func positions(blocks hclsyntax.Blocks, typ string) []decl.Position {
	var out []decl.Position
	for _, b := range filter(blocks, typ) {
		out = append(out, rangePos(b.DefRange()))
	}

	return out
}

func posAt(ps []decl.Position, i int) decl.Position {
	if i < len(ps) {
		return ps[i]
	}

	return decl.Position{}
}

func rangePos(r hcl.Range) decl.Position {
	return decl.Position{File: r.Filename, Line: r.Start.Line, Column: r.Start.Column}
}
