// Package pack orchestrates the backup and restore of repository objects
// as archival information packages (AIPs).
//
// The packer decides what gets packed or unpacked and with which
// parameters; byte-level serialization is delegated to the codecs
// registered in a plugin.Registry. Recursive restoration of a multi-object
// tree is deliberately left to the caller: each Unpack surfaces one layer
// of child package references, so that archives fetched from remote or
// slow storage need only be resident one at a time.
//
// A packer serves one target object at a time and is not safe for
// concurrent use. Codec handles are resolved lazily and cached for the
// instance's remaining lifetime.
package pack

import (
	"context"
	"fmt"

	"github.com/openarchive/aipkit/pkg/errors"
	"github.com/openarchive/aipkit/pkg/model"
	"github.com/openarchive/aipkit/pkg/pack/status"
	"github.com/openarchive/aipkit/pkg/params"
	"github.com/openarchive/aipkit/pkg/plugin"
	pluginstatus "github.com/openarchive/aipkit/pkg/plugin/status"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Packer packs and unpacks AIPs for one repository object.
type Packer struct {
	obj    model.Object
	format string
	filter ContentFilter

	codecs *plugin.Registry
	dip    plugin.Disseminator
	sip    plugin.Ingester

	childRefs []string

	fs afero.Fs
	l  *zap.Logger
}

// New returns a packer for the given target object, producing archives
// with the given format extension (e.g. "zip").
func New(obj model.Object, format string, opts ...Option) *Packer {
	p := &Packer{
		obj:    obj,
		format: format,
		fs:     afero.NewOsFs(),
		l:      zap.NewNop(),
	}
	for _, apply := range opts {
		apply(p)
	}
	return p
}

// Object is the repository object the packer currently works with.
func (p *Packer) Object() model.Object {
	return p.obj
}

// SetObject retargets the packer at another repository object.
func (p *Packer) SetObject(obj model.Object) {
	p.obj = obj
}

// SetContentFilter configures the bundle filter from its expression.
func (p *Packer) SetContentFilter(expr string) {
	p.filter = ParseContentFilter(expr)
}

// SetReferenceFilter is accepted for interface parity with other packers
// but not implemented by the AIP packer.
func (p *Packer) SetReferenceFilter(string) error {
	return status.ErrUnsupported
}

// ChildRefs lists the child package references discovered by the most
// recent Unpack, for caller-driven recursive restore. It is empty before
// any unpack and always empty after unpacking a leaf (item) object.
func (p *Packer) ChildRefs() []string {
	if len(p.childRefs) == 0 {
		return nil
	}
	out := make([]string, len(p.childRefs))
	copy(out, p.childRefs)
	return out
}

// Pack creates the AIP for the target object next to packDir, named after
// the directory plus the archive format extension, and returns the
// archive path.
//
// The disseminator registered under the "AIP" name performs the
// serialization. When a content filter is configured, its raw expression
// travels along as the filterBundles parameter and the codec applies the
// bundle filtering itself. Packaging and crosswalk failures surface as a
// generic I/O failure; Pack is all-or-nothing.
func (p *Packer) Pack(ctx context.Context, packDir string) (string, error) {
	if p.dip == nil {
		if p.codecs == nil {
			return "", pluginstatus.ErrNoDisseminator
		}
		dip, err := p.codecs.Disseminator(plugin.AIP)
		if err != nil {
			return "", err
		}
		p.dip = dip
	}

	pkgParams := params.New()
	if expr := p.filter.Expression(); expr != "" {
		pkgParams.SetProperty("filterBundles", expr)
	}

	archive := model.ArchivePath(packDir, p.format)
	if err := p.dip.Disseminate(ctx, p.obj, pkgParams, archive); err != nil {
		return "", wrapCodecFailure(err)
	}

	p.l.Info("packed archive",
		zap.String("handle", p.obj.Handle()),
		zap.Stringer("type", p.obj.Type()),
		zap.String("archive", archive))
	return archive, nil
}

// Unpack restores or replaces the target object from an archive and
// returns the updated object.
//
// With nil or empty parameters the default restore set applies (replace,
// recursive, createMetadataFields, skipIfParentMissing). Replace mode
// swaps the current target for the archive contents; otherwise a restore
// ingests with no parent supplied and the codec resolves the parent from
// the package manifest. Exactly one of the two runs per call, over a
// single object: callers drive recursion themselves, one archive per
// discovered child reference.
//
// When ingestion reports that the object identity already exists and
// KeepExisting is raised, the conflict is logged and the existing object
// is left untouched; without KeepExisting the conflict propagates
// unchanged, so the enclosing unit of work can roll back everything.
func (p *Packer) Unpack(ctx context.Context, archive string, pkgParams *params.Parameters) (model.Object, error) {
	if archive == "" {
		return nil, status.ErrMissingArchive.Wrap(fmt.Errorf("object %s", p.obj.Handle()))
	}
	exists, err := afero.Exists(p.fs, archive)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, status.ErrMissingArchive.Wrap(fmt.Errorf("object %s", p.obj.Handle()))
	}

	if p.sip == nil {
		if p.codecs == nil {
			return nil, pluginstatus.ErrNoIngester
		}
		sip, err := p.codecs.Ingester(plugin.AIP)
		if err != nil {
			return nil, err
		}
		p.sip = sip
	}

	if pkgParams.IsEmpty() {
		pkgParams = params.DefaultRestore()
	}

	var updated model.Object
	if pkgParams.Replace {
		updated, err = p.sip.Replace(ctx, p.obj, archive, pkgParams)
	} else {
		updated, err = p.sip.Ingest(ctx, nil, archive, pkgParams, "")
	}
	if err != nil {
		if errors.Is(err, pluginstatus.ErrObjectExists) {
			if pkgParams.KeepExisting {
				p.l.Warn("object already exists, keeping it",
					zap.String("handle", p.obj.Handle()),
					zap.String("archive", archive))
				return p.obj, nil
			}
			return nil, err
		}
		return nil, wrapCodecFailure(err)
	}

	p.childRefs = nil
	if updated != nil && updated.Type() != model.TypeItem {
		// only containers reference child packages: item packages carry
		// their bundles and bitstreams inline
		if lister, ok := p.sip.(plugin.ReferenceLister); ok {
			p.childRefs = append(p.childRefs, lister.PackageReferences(updated)...)
		}
	}

	p.l.Info("unpacked archive",
		zap.String("archive", archive),
		zap.Int("childRefs", len(p.childRefs)))
	return updated, nil
}

// UnpackDefault is Unpack with the default restore parameter set.
func (p *Packer) UnpackDefault(ctx context.Context, archive string) (model.Object, error) {
	return p.Unpack(ctx, archive, nil)
}

// Packaging and crosswalk failures are never dropped: they re-surface as
// the generic I/O failure carrying the original diagnostic. Anything else
// passes through untouched.
func wrapCodecFailure(err error) error {
	if errors.Is(err, pluginstatus.ErrPackageFormat) || errors.Is(err, pluginstatus.ErrCrosswalk) {
		return status.ErrIO.Wrap(err)
	}
	return err
}
