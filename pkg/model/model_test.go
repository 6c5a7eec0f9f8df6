package model

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveNaming(t *testing.T) {
	assert.Equal(t, "10045.zip", ArchiveName(filepath.Join("work", "aips", "10045"), "zip"))
	assert.Equal(t, filepath.Join("work", "aips", "10045.zip"),
		ArchivePath(filepath.Join("work", "aips", "10045"), "zip"))

	// a bare directory name lands in the current directory
	assert.Equal(t, "10045.tgz", ArchivePath("10045", "tgz"))
}

func TestBundleContentSize(t *testing.T) {
	b := Bundle{
		Name: "ORIGINAL",
		Bitstreams: []Bitstream{
			{Name: "paper.pdf", Size: 100},
			{Name: "dataset.csv", Size: 250},
		},
	}
	assert.Equal(t, int64(350), b.ContentSize())
	assert.Equal(t, int64(0), Bundle{Name: "EMPTY"}.ContentSize())
}

func TestObjectTypes(t *testing.T) {
	assert.Equal(t, TypeSite, (&Site{}).Type())
	assert.Equal(t, TypeCommunity, (&Community{}).Type())
	assert.Equal(t, TypeCollection, (&Collection{}).Type())
	assert.Equal(t, TypeItem, (&Item{}).Type())

	assert.Equal(t, "site", TypeSite.String())
	assert.Equal(t, "item", TypeItem.String())
}

func TestSiteManifestRoundTrip(t *testing.T) {
	site := &Site{
		ID: "123456789/0",
		Communities: []*Community{
			{
				ID:   "123456789/1",
				Logo: &Bitstream{Name: "logo.jpg", Size: 1024},
				Collections: []*Collection{
					{
						ID: "123456789/2",
						Items: []*Item{
							{
								ID: "123456789/3",
								Bundles: []Bundle{
									{Name: "ORIGINAL", Bitstreams: []Bitstream{{Name: "paper.pdf", Size: 100}}},
								},
							},
						},
					},
				},
			},
		},
	}

	data, err := MarshalSite(site)
	require.NoError(t, err)

	got, err := UnmarshalSite(data)
	require.NoError(t, err)
	assert.Equal(t, site, got)
}

func TestUnmarshalSiteManifest(t *testing.T) {
	manifest := `
handle: 123456789/0
communities:
  - handle: 123456789/10
    collections:
      - handle: 123456789/11
        items:
          - handle: 123456789/12
            bundles:
              - name: ORIGINAL
                bitstreams:
                  - name: thesis.pdf
                    size: 4096
`
	site, err := UnmarshalSite([]byte(manifest))
	require.NoError(t, err)
	require.Len(t, site.Communities, 1)
	require.Len(t, site.Communities[0].Collections, 1)
	require.Len(t, site.Communities[0].Collections[0].Items, 1)

	item := site.Communities[0].Collections[0].Items[0]
	assert.Equal(t, "123456789/12", item.Handle())
	require.Len(t, item.Bundles, 1)
	assert.Equal(t, int64(4096), item.Bundles[0].ContentSize())
}

func TestUnmarshalSiteRejectsGarbage(t *testing.T) {
	_, err := UnmarshalSite([]byte("\t: not yaml"))
	assert.Error(t, err)
}
