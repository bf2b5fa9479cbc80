package gen

// Config holds configuration for code generation.
type Config struct {
	// Filename is the generated file name used when a declaration does not
	// set one.
	Filename string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
	// WriteUnformatted writes a .unformatted.go sidecar when the generated
	// code cannot be formatted.
	WriteUnformatted bool
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		Filename:         "glue_gen.go",
		GenerateComments: true,
		WriteUnformatted: true,
	}
}
