package common

import (
	"path"
	"strconv"
	"strings"
	"unicode"
)

// PkgAlias returns the name a package is assumed to declare, judging by its
// import path alone: the last path element, skipping a major version
// element ("hcl/v2" is hcl), without a "go-" prefix and cut at the first
// character that cannot appear in an identifier ("yaml.v3" is yaml). An
// empty path yields an empty name.
//
// An import whose package name differs from this needs an explicit alias.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if isMajorVersion(base) {
		if dir := path.Dir(pkgPath); dir != "." {
			base = path.Base(dir)
		}
	}

	base = strings.TrimPrefix(base, "go-")

	if i := strings.IndexFunc(base, notIdentifier); i >= 0 {
		base = base[:i]
	}

	return base
}

// isMajorVersion reports whether elem is a module major version suffix
// such as "v2".
func isMajorVersion(elem string) bool {
	if !strings.HasPrefix(elem, "v") {
		return false
	}

	n, err := strconv.Atoi(elem[1:])

	return err == nil && n >= 2
}

func notIdentifier(r rune) bool {
	return !(r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r))
}
