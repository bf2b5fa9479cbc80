package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/carlosskii/typeglue/internal/gen"
	"github.com/carlosskii/typeglue/internal/schema"
)

// Exit codes.
const (
	exitFailed = 1
	exitUsage  = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config holds the parsed command line.
type Config struct {
	// Patterns are Go package patterns to scan for annotated types.
	Patterns []string
	// Schemas are schema files to generate from.
	Schemas []string
	// OutDir overrides the output directory of schema declarations.
	OutDir string

	DryRun bool
	JSON   bool
	Dump   bool

	LogLevel  string
	LogFormat string

	Gen gen.Config
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("typeglue", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
typeglue - generate construction and extraction functions for composite types.

Usage:
  typeglue [options] [PACKAGE|SCHEMA]...

Arguments:
  PACKAGE
    Go package pattern; types marked //glue:generate are generated.
  SCHEMA
    Schema file (.yaml, .yml or .hcl) declaring types to generate.

Options:
`)
		flagSet.PrintDefaults()
	}

	defaults := gen.DefaultConfig()

	var schemas stringList

	flagSet.Var(&schemas, "schema", "Schema file to generate from (repeatable).")
	outFlag := flagSet.String("out", "", "Output directory for schema declarations. Defaults to the schema's directory.")
	filenameFlag := flagSet.String("filename", defaults.Filename, "Name of the generated file.")
	commentsFlag := flagSet.Bool("comments", defaults.GenerateComments, "Generate doc comments.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Print generated files instead of writing them.")
	jsonFlag := flagSet.Bool("json", false, "Print diagnostics as JSON on stdout.")
	dumpFlag := flagSet.Bool("dump", false, "Dump parsed declarations to stderr.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}

		return nil, false, &ExitError{Code: exitUsage, Message: err.Error()}
	}

	config := &Config{
		Schemas:   schemas,
		OutDir:    *outFlag,
		DryRun:    *dryRunFlag,
		JSON:      *jsonFlag,
		Dump:      *dumpFlag,
		LogFormat: strings.ToLower(*logFormatFlag),
		LogLevel:  strings.ToLower(*logLevelFlag),
		Gen:       defaults,
	}

	config.Gen.Filename = *filenameFlag
	config.Gen.GenerateComments = *commentsFlag

	for _, arg := range flagSet.Args() {
		if schema.IsSchemaFile(arg) {
			config.Schemas = append(config.Schemas, arg)
		} else {
			config.Patterns = append(config.Patterns, arg)
		}
	}

	if len(config.Patterns) == 0 && len(config.Schemas) == 0 {
		flagSet.Usage()
		return nil, true, nil
	}

	if config.LogFormat != "text" && config.LogFormat != "json" {
		return nil, false, &ExitError{Code: exitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	switch config.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: exitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if config.Gen.Filename == "" || !strings.HasSuffix(config.Gen.Filename, ".go") {
		return nil, false, &ExitError{Code: exitUsage, Message: "invalid filename: must end in .go"}
	}

	return config, false, nil
}
