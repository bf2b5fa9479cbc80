package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files into their target directories,
// creating directories that don't exist.
func WriteFiles(files []GeneratedFile) error {
	for _, file := range files {
		dir := file.Dir
		if dir == "" {
			dir = "."
		}

		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}

		if err := os.WriteFile(file.Path(), file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Path(), err)
		}
	}

	return nil
}

// Path returns the file's location on disk.
func (f GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}
