package pack

import (
	"github.com/openarchive/aipkit/pkg/model"
)

// Size estimates the storage needed to archive the target object and its
// descendants, in bytes. The estimate counts content bitstreams only,
// honoring the configured bundle filter; serialization overhead, metadata
// and format framing are not accounted for.
//
// The traversal is a pure depth-first walk with no caching: repeated
// calls re-visit the full subtree, and very deep trees make this a
// blocking, unbounded-latency call that time-sensitive callers should
// keep off their critical path.
func (p *Packer) Size() int64 {
	switch obj := p.obj.(type) {
	case *model.Site:
		return p.siteSize(obj)
	case *model.Community:
		return p.communitySize(obj)
	case *model.Collection:
		return p.collectionSize(obj)
	case *model.Item:
		return p.itemSize(obj)
	default:
		return 0
	}
}

// The site package itself is tiny, so the estimate is just the total over
// all top-level communities.
func (p *Packer) siteSize(site *model.Site) int64 {
	var size int64
	for _, comm := range site.Communities {
		size += p.communitySize(comm)
	}
	return size
}

func (p *Packer) communitySize(comm *model.Community) int64 {
	var size int64
	if comm.Logo != nil {
		size += comm.Logo.Size
	}
	for _, sub := range comm.Subcommunities {
		size += p.communitySize(sub)
	}
	for _, coll := range comm.Collections {
		size += p.collectionSize(coll)
	}
	return size
}

func (p *Packer) collectionSize(coll *model.Collection) int64 {
	var size int64
	if coll.Logo != nil {
		size += coll.Logo.Size
	}
	for _, item := range coll.Items {
		size += p.itemSize(item)
	}
	return size
}

func (p *Packer) itemSize(item *model.Item) int64 {
	var size int64
	for _, bundle := range item.Bundles {
		if p.filter.Included(bundle.Name) {
			size += bundle.ContentSize()
		}
	}
	return size
}
