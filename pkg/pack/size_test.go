package pack

import (
	"testing"

	"github.com/openarchive/aipkit/pkg/model"
	"github.com/stretchr/testify/assert"
)

func sizeFixtureSite() *model.Site {
	return &model.Site{
		ID: "123456789/0",
		Communities: []*model.Community{
			{
				ID:   "123456789/1",
				Logo: &model.Bitstream{Name: "comm-logo.jpg", Size: 5},
				Subcommunities: []*model.Community{
					{
						ID: "123456789/2",
						Collections: []*model.Collection{
							{
								ID:   "123456789/3",
								Logo: &model.Bitstream{Name: "coll-logo.jpg", Size: 7},
								Items: []*model.Item{
									{
										ID: "123456789/4",
										Bundles: []model.Bundle{
											{Name: "ORIGINAL", Bitstreams: []model.Bitstream{{Name: "a.pdf", Size: 100}}},
											{Name: "LICENSE", Bitstreams: []model.Bitstream{{Name: "license.txt", Size: 10}}},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}
}

func TestSizeEmptySite(t *testing.T) {
	p := New(&model.Site{ID: "123456789/0"}, "zip")
	assert.Equal(t, int64(0), p.Size())
}

func TestSizeItemFiltering(t *testing.T) {
	item := &model.Item{
		ID: "123456789/42",
		Bundles: []model.Bundle{
			{Name: "ORIGINAL", Bitstreams: []model.Bitstream{{Name: "paper.pdf", Size: 100}}},
			{Name: "LICENSE", Bitstreams: []model.Bitstream{{Name: "license.txt", Size: 10}}},
		},
	}

	// include-only keeps just the listed bundle
	p := New(item, "zip", Filter("+ORIGINAL"))
	assert.Equal(t, int64(100), p.Size())

	// exclude-listed drops the listed bundle
	p = New(item, "zip", Filter("LICENSE"))
	assert.Equal(t, int64(100), p.Size())

	// no filter configured counts everything
	p = New(item, "zip")
	assert.Equal(t, int64(110), p.Size())
}

func TestSizeSiteTotalsDescendants(t *testing.T) {
	p := New(sizeFixtureSite(), "zip")
	// 5 (community logo) + 7 (collection logo) + 110 (item content)
	assert.Equal(t, int64(122), p.Size())
}

func TestSizeCommunityAndCollection(t *testing.T) {
	site := sizeFixtureSite()
	comm := site.Communities[0]
	coll := comm.Subcommunities[0].Collections[0]

	p := New(comm, "zip")
	assert.Equal(t, int64(122), p.Size())

	p.SetObject(coll)
	assert.Equal(t, int64(117), p.Size())

	// the filter configured on the packer applies down at item level
	p = New(coll, "zip", Filter("+ORIGINAL"))
	assert.Equal(t, int64(107), p.Size())
}

func TestSizeRepeatedCallsAreStable(t *testing.T) {
	p := New(sizeFixtureSite(), "zip")
	first := p.Size()
	assert.Equal(t, first, p.Size())
}
