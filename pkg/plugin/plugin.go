// Package plugin defines the codec contracts aipkit delegates byte-level
// packaging work to, and a typed registry resolving logical codec names
// to implementations.
//
// Codecs are external collaborators: this package fixes their interfaces
// and error vocabulary but ships no serialization format itself.
package plugin

import (
	"context"

	"github.com/openarchive/aipkit/pkg/model"
	"github.com/openarchive/aipkit/pkg/params"
)

// AIP is the well-known logical name under which the archival package
// disseminator and ingester are registered.
const AIP = "AIP"

// Disseminator serializes one repository object into an archive.
type Disseminator interface {
	// Disseminate writes the package for obj at the dest path. Bundle
	// filtering, when requested through the parameters, is applied by the
	// codec during serialization.
	Disseminate(ctx context.Context, obj model.Object, p *params.Parameters, dest string) error
}

// Ingester reconstructs repository objects from archives.
type Ingester interface {
	// Replace swaps the target object for the archive contents and
	// returns the updated object.
	Replace(ctx context.Context, obj model.Object, archive string, p *params.Parameters) (model.Object, error)

	// Ingest restores the object serialized in the archive under parent.
	// With a nil parent the codec resolves the parent from the package's
	// own manifest. license carries an optional license override.
	Ingest(ctx context.Context, parent model.Object, archive string, p *params.Parameters, license string) (model.Object, error)
}

// ReferenceLister is an optional ingester capability. Codecs that record
// child package references while reading a manifest implement it, so that
// callers can drive a recursive restore one archive at a time.
type ReferenceLister interface {
	// PackageReferences lists the child packages referenced by the
	// manifest of a just-restored object.
	PackageReferences(obj model.Object) []string
}
