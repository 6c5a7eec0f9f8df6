package pack

import (
	"context"
	"sync"

	"github.com/openarchive/aipkit/pkg/model"
	"github.com/openarchive/aipkit/pkg/params"
	"github.com/openarchive/aipkit/pkg/plugin"
)

// mockDisseminator records its last invocation and optionally writes the
// destination file, so tests can assert on parameters and archive naming.
type mockDisseminator struct {
	mu       sync.Mutex
	err      error
	write    func(dest string) error
	lastObj  model.Object
	lastDest string
	lastPrm  *params.Parameters
	calls    int
}

func (d *mockDisseminator) Disseminate(_ context.Context, obj model.Object, p *params.Parameters, dest string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	d.lastObj = obj
	d.lastDest = dest
	d.lastPrm = p
	if d.err != nil {
		return d.err
	}
	if d.write != nil {
		return d.write(dest)
	}
	return nil
}

// mockIngester returns a configured object or error from both entry
// points and records which one ran.
type mockIngester struct {
	updated model.Object
	err     error

	replaceCalls int
	ingestCalls  int
	lastParent   model.Object
	lastPrm      *params.Parameters
}

func (i *mockIngester) Replace(_ context.Context, _ model.Object, _ string, p *params.Parameters) (model.Object, error) {
	i.replaceCalls++
	i.lastPrm = p
	return i.updated, i.err
}

func (i *mockIngester) Ingest(_ context.Context, parent model.Object, _ string, p *params.Parameters, _ string) (model.Object, error) {
	i.ingestCalls++
	i.lastParent = parent
	i.lastPrm = p
	return i.updated, i.err
}

// listingIngester additionally implements plugin.ReferenceLister.
type listingIngester struct {
	mockIngester
	refs []string
}

func (i *listingIngester) PackageReferences(_ model.Object) []string {
	return i.refs
}

var (
	_ plugin.Disseminator    = &mockDisseminator{}
	_ plugin.Ingester        = &mockIngester{}
	_ plugin.ReferenceLister = &listingIngester{}
)
