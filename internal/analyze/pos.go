package analyze

import (
	"strconv"
	"strings"
)

// splitPos splits a "file:line:col" position as reported by go/packages.
// Missing parts are returned as zero.
func splitPos(pos string) (file string, line, col int) {
	file = pos

	if i := strings.LastIndex(file, ":"); i >= 0 {
		if n, err := strconv.Atoi(file[i+1:]); err == nil {
			file, col = file[:i], n
		}
	}

	if i := strings.LastIndex(file, ":"); i >= 0 {
		if n, err := strconv.Atoi(file[i+1:]); err == nil {
			file, line = file[:i], n
		}
	}

	if line == 0 && col != 0 {
		line, col = col, 0
	}

	return file, line, col
}
