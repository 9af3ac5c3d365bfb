package spdx

import (
	"fmt"
	"strings"
)

// Sanitize replaces every character outside the SPDX identifier alphabet
// (letters, digits, '.' and '-') with a dash. Applying it twice is a no-op.
func Sanitize(id string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return r
		case r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-':
			return r
		}
		return '-'
	}, id)
}

// PackageId derives the stable identifier for a crate. Two crates only
// share an identifier when they share both name and version, which cargo
// does not allow within one build.
func PackageId(name, version string) string {
	return fmt.Sprintf("SPDXRef-%s", Sanitize(fmt.Sprintf("%s-%s", name, version)))
}

// FileId derives the identifier for a file record. Package name and
// version, when known, scope the path so that equal relative paths from
// different crates stay unique. Distinct raw paths that sanitize to the
// same string collide; that is an accepted limitation.
func FileId(packageName, packageVersion, relativePath string) string {
	parts := make([]string, 0, 3)
	if packageName != "" {
		parts = append(parts, packageName)
	}
	if packageVersion != "" {
		parts = append(parts, packageVersion)
	}
	parts = append(parts, relativePath)
	return fmt.Sprintf("SPDXRef-File-%s", Sanitize(strings.Join(parts, "-")))
}
