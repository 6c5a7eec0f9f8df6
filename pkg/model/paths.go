package model

import (
	"path/filepath"
)

// ArchiveName derives the canonical archive file name for a package
// directory: the directory base name plus the archive format extension.
func ArchiveName(packDir, format string) string {
	return filepath.Base(packDir) + "." + format
}

// ArchivePath places the archive next to the package directory, inside
// that directory's parent.
func ArchivePath(packDir, format string) string {
	return filepath.Join(filepath.Dir(packDir), ArchiveName(packDir, format))
}
