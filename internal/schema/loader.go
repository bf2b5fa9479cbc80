package schema

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a schema file from the given path. The format is
// chosen by extension: .yaml, .yml or .hcl.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return ParseYAML(data, path)
	case ".hcl":
		return ParseHCL(data, path)
	default:
		return nil, fmt.Errorf("unsupported schema file extension %q: %s", ext, path)
	}
}

// IsSchemaFile reports whether path names a schema file by its extension.
func IsSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".hcl":
		return true
	default:
		return false
	}
}

// ParseYAML parses YAML data into a File. Unknown keys are rejected.
func ParseYAML(data []byte, path string) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML %s: %w", path, err)
	}

	f.Path = path
	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	for i := range f.Declarations {
		d := &f.Declarations[i]
		d.Pos.File = f.Path

		for j := range d.Generics {
			d.Generics[j].Pos.File = f.Path
		}

		for j := range d.Fields {
			d.Fields[j].Pos.File = f.Path
		}

		for j := range d.Variants {
			v := &d.Variants[j]
			v.Pos.File = f.Path

			for k := range v.Fields {
				v.Fields[k].Pos.File = f.Path
			}
		}
	}
}
