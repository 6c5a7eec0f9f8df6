// Package status exports errors produced by archive store backends.
package status

import (
	"github.com/openarchive/aipkit/pkg/errors"
)

var (
	// ErrNotFound indicates no archive is stored under the requested key
	ErrNotFound = errors.New("archive not found")
)
