package schema

import "github.com/carlosskii/typeglue/internal/decl"

// CurrentVersion is the only schema version understood.
const CurrentVersion = "1"

// File represents a schema file.
type File struct {
	// Path is the file the schema was loaded from.
	Path string `yaml:"-"`

	Version      string        `yaml:"version,omitempty"`
	Package      string        `yaml:"package"`
	Output       string        `yaml:"output,omitempty"`
	Imports      []ImportEntry `yaml:"imports,omitempty"`
	Declarations []Declaration `yaml:"declarations"`
}

// ImportEntry is a package import available to field types.
type ImportEntry struct {
	Name string `yaml:"name,omitempty"`
	Path string `yaml:"path"`
}

// Declaration is a single schema type.
type Declaration struct {
	Name     string    `yaml:"name"`
	Kind     string    `yaml:"kind"`
	Generics []Generic `yaml:"generics,omitempty"`
	Fields   []Field   `yaml:"fields,omitempty"`
	Variants []Variant `yaml:"variants,omitempty"`

	Pos decl.Position `yaml:"-"`
}

// Generic is a generic parameter. Const marks a constant parameter and holds
// its type.
type Generic struct {
	Name       string `yaml:"name"`
	Constraint string `yaml:"constraint,omitempty"`
	Const      string `yaml:"const,omitempty"`

	Pos decl.Position `yaml:"-"`
}

// Field is a record field or variant payload element. Positional fields
// have no name.
type Field struct {
	Name string `yaml:"name,omitempty"`
	Type string `yaml:"type"`
	Tag  string `yaml:"tag,omitempty"`

	Pos decl.Position `yaml:"-"`
}

// Variant is one alternative of an enum declaration.
type Variant struct {
	Name   string  `yaml:"name"`
	Fields []Field `yaml:"fields,omitempty"`

	Pos decl.Position `yaml:"-"`
}
