package pack

import (
	"strings"
)

// ContentFilter selects bundles by name when computing size estimates.
// The raw filter expression is also forwarded verbatim to the
// disseminator, which applies the same syntax during serialization.
//
// The zero value is the unconfigured filter: exclude-listed mode with an
// empty list, which includes every bundle.
type ContentFilter struct {
	raw     string
	include bool
	names   map[string]struct{}
}

// ParseContentFilter reads a bundle filter expression. A leading '+'
// keeps only the listed bundles; otherwise the listed bundles are dropped
// and everything else is kept. Names are comma-separated.
func ParseContentFilter(expr string) ContentFilter {
	f := ContentFilter{raw: expr}
	list := expr
	if strings.HasPrefix(expr, "+") {
		f.include = true
		list = expr[1:]
	}
	f.names = make(map[string]struct{})
	for _, name := range strings.Split(list, ",") {
		f.names[name] = struct{}{}
	}
	return f
}

// Included reports whether a bundle of the given name passes the filter.
func (f ContentFilter) Included(bundle string) bool {
	_, listed := f.names[bundle]
	if f.include {
		return listed
	}
	return !listed
}

// Expression is the raw filter expression, empty when unconfigured.
func (f ContentFilter) Expression() string {
	return f.raw
}
