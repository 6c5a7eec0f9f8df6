// Package params holds the packaging parameter set exchanged between task
// configuration, the packer orchestration core, and serialization codecs.
package params

// Parameters collects the recognized packaging flags plus an open set of
// string-valued options that only the downstream codec interprets
// (e.g. filterBundles).
//
// Construction precedence is explicit per-call override, then module
// configuration, then built-in defaults. Parameter sets are built fresh
// per pack or unpack call and never merged after the fact.
type Parameters struct {
	// Replace makes unpack swap the target object for the archive
	// contents instead of restoring with a manifest-resolved parent.
	Replace bool

	// Recursive asks codecs to record child packages for follow-up calls.
	Recursive bool

	// Workflow routes restored items through the submission workflow.
	Workflow bool

	// CollectionTemplate applies the owning collection's item template.
	CollectionTemplate bool

	// SkipIfParentMissing logs and skips objects whose parent is absent,
	// instead of failing. Recommended with Recursive, since a child
	// package can be processed before its parent.
	SkipIfParentMissing bool

	// CreateMetadataFields registers metadata fields referenced by a
	// package but missing from the registry.
	CreateMetadataFields bool

	// KeepExisting leaves already-present objects untouched on conflict.
	KeepExisting bool

	props map[string]string
}

// New returns an empty parameter set.
func New() *Parameters {
	return &Parameters{}
}

// DefaultRestore is the parameter set applied when unpack is invoked
// without any. It suits a wide range of replace and restore runs: replace
// existing objects, restore missing ones, follow child packages, create
// unknown metadata fields, and skip children whose parent is not there yet.
func DefaultRestore() *Parameters {
	return &Parameters{
		Replace:              true,
		Recursive:            true,
		CreateMetadataFields: true,
		SkipIfParentMissing:  true,
	}
}

// SetProperty stores an uninterpreted option for downstream codecs.
func (p *Parameters) SetProperty(name, value string) {
	if p.props == nil {
		p.props = make(map[string]string)
	}
	p.props[name] = value
}

// Property reads an uninterpreted option.
func (p *Parameters) Property(name string) (string, bool) {
	v, ok := p.props[name]
	return v, ok
}

// Properties yields a copy of the uninterpreted options.
func (p *Parameters) Properties() map[string]string {
	if len(p.props) == 0 {
		return nil
	}
	out := make(map[string]string, len(p.props))
	for k, v := range p.props {
		out[k] = v
	}
	return out
}

// IsEmpty reports whether no flag is raised and no property is set.
func (p *Parameters) IsEmpty() bool {
	if p == nil {
		return true
	}
	return !p.Replace && !p.Recursive && !p.Workflow && !p.CollectionTemplate &&
		!p.SkipIfParentMissing && !p.CreateMetadataFields && !p.KeepExisting &&
		len(p.props) == 0
}
