// Package taskconfig resolves packaging parameters for curation-style
// tasks from module-scoped configuration entries.
//
// Entries follow the shape
//
//	<moduleName>.<taskID>.<optionName> = <value>
//
// so that several tasks can share one module configuration without
// stepping on each other's options.
package taskconfig

import (
	"strings"

	"github.com/openarchive/aipkit/pkg/params"
)

// Properties is the narrow configuration surface the resolver reads.
// Implementations enumerate keys scoped to a module namespace and look
// single keys up, nothing more; loading configuration files is someone
// else's job.
type Properties interface {
	// Keys lists every configuration key scoped to the module namespace.
	Keys(module string) []string

	// Value returns the raw string value for a fully qualified key.
	Value(key string) string
}

// Option names mapped onto parameter flags. Any other option passes
// through as an uninterpreted property for the codec to pick up.
const (
	optRecursiveMode         = "recursiveMode"
	optUseWorkflow           = "useWorkflow"
	optUseCollectionTemplate = "useCollectionTemplate"
)

// Resolve merges a module's configuration entries for one task into a
// parameter set.
//
// Only keys whose module-stripped remainder starts with taskID followed
// by a dot are obeyed; entries of other tasks are ignored regardless of
// iteration order. When the module has no configuration entries at all,
// Resolve returns (nil, false); callers must treat that differently from
// a present-but-empty parameter set, which means the module is configured
// but carries nothing for this task.
//
// No cross-key validation happens: when a recognized name occurs more
// than once the last value seen wins, in configuration iteration order.
func Resolve(cfg Properties, module, taskID string) (*params.Parameters, bool) {
	keys := cfg.Keys(module)
	if len(keys) == 0 {
		return nil, false
	}

	p := params.New()
	for _, key := range keys {
		prop := strings.TrimPrefix(key, module+".")
		if !strings.HasPrefix(prop, taskID+".") {
			continue
		}
		option := strings.TrimPrefix(prop, taskID+".")
		value := cfg.Value(key)

		switch {
		case strings.EqualFold(option, optRecursiveMode):
			p.Recursive = parseBool(value)
		case strings.EqualFold(option, optUseWorkflow):
			p.Workflow = parseBool(value)
		case strings.EqualFold(option, optUseCollectionTemplate):
			p.CollectionTemplate = parseBool(value)
		default:
			p.SetProperty(option, value)
		}
	}
	return p, true
}

// Boolean options follow the lenient historical contract: "true" in any
// case is true, everything else (including "1", "yes", or a typo) is
// false, with no error for malformed input.
func parseBool(raw string) bool {
	return strings.EqualFold(raw, "true")
}
