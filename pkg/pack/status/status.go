// Package status exports errors produced by the pack orchestration core.
package status

import (
	"github.com/openarchive/aipkit/pkg/errors"
)

var (
	// ErrMissingArchive indicates the archive to unpack does not exist at
	// its expected location
	ErrMissingArchive = errors.New("missing archive for object")

	// ErrIO is the generic I/O failure wrapping packaging and metadata
	// crosswalk errors reported by the codec layer
	ErrIO = errors.New("i/o failure during packaging")

	// ErrUnsupported flags an operation this packer does not implement
	ErrUnsupported = errors.New("not supported")
)
