// Package main provides the CLI entrypoint for typeglue.
//
// typeglue generates construction and extraction functions for composite
// types:
//   - Go types marked with //glue:generate in the given packages
//   - Types declared in YAML or HCL schema files, with their definitions
//
// Typical use is a go:generate directive in the package being generated:
//
//	//go:generate go run github.com/carlosskii/typeglue/cmd/typeglue . shapes.yaml
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}

			os.Exit(exitErr.Code)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(stdout, stderr io.Writer, args []string) error {
	config, shouldExit, err := Parse(args, stderr)
	if err != nil {
		return err
	}

	if shouldExit {
		return nil
	}

	logger := newLogger(config.LogLevel, config.LogFormat, stderr)

	return newApp(stdout, stderr, config, logger).Run()
}
