// Package status exports the errors shared between the codec registry,
// codec implementations, and their callers.
package status

import (
	"github.com/openarchive/aipkit/pkg/errors"
)

var (
	// ErrNoDisseminator indicates no disseminator codec is registered
	// under the requested logical name
	ErrNoDisseminator = errors.New("no disseminator codec registered under requested name")

	// ErrNoIngester indicates no ingester codec is registered under the
	// requested logical name
	ErrNoIngester = errors.New("no ingester codec registered under requested name")

	// ErrObjectExists signals that the identity of an ingested object is
	// already present in the repository
	ErrObjectExists = errors.New("object already exists")

	// ErrPackageFormat covers malformed or unreadable package contents
	ErrPackageFormat = errors.New("package format error")

	// ErrCrosswalk covers metadata crosswalk failures while assembling or
	// disassembling a package
	ErrCrosswalk = errors.New("metadata crosswalk error")
)
