package model

// ObjectType discriminates the node kinds of the repository tree.
type ObjectType int

const (
	// TypeSite is the unique root object
	TypeSite ObjectType = iota

	// TypeCommunity is a grouping node, possibly nested
	TypeCommunity

	// TypeCollection owns items
	TypeCollection

	// TypeItem is a leaf of the packaging tree
	TypeItem
)

func (t ObjectType) String() string {
	switch t {
	case TypeSite:
		return "site"
	case TypeCommunity:
		return "community"
	case TypeCollection:
		return "collection"
	case TypeItem:
		return "item"
	default:
		return "unknown"
	}
}

// Object is satisfied by every node of the repository tree.
type Object interface {
	// Type yields the node kind
	Type() ObjectType

	// Handle is the persistent identifier of the object
	Handle() string
}

// Bitstream is a single content file with a known byte size.
type Bitstream struct {
	Name string `json:"name" yaml:"name"`
	Size int64  `json:"size" yaml:"size"`
	_    struct{}
}

// Bundle is a named grouping of bitstreams attached to an item
// (e.g. primary content vs. license text).
type Bundle struct {
	Name       string      `json:"name" yaml:"name"`
	Bitstreams []Bitstream `json:"bitstreams,omitempty" yaml:"bitstreams,omitempty"`
	_          struct{}
}

// ContentSize totals the byte sizes of the bundle's bitstreams.
func (b Bundle) ContentSize() int64 {
	var size int64
	for _, bs := range b.Bitstreams {
		size += bs.Size
	}
	return size
}

// Item is a leaf object owning zero or more bundles.
type Item struct {
	ID      string   `json:"handle" yaml:"handle"`
	Bundles []Bundle `json:"bundles,omitempty" yaml:"bundles,omitempty"`
	_       struct{}
}

// Type yields TypeItem
func (i *Item) Type() ObjectType { return TypeItem }

// Handle is the item's persistent identifier
func (i *Item) Handle() string { return i.ID }

// Collection owns items and an optional logo.
type Collection struct {
	ID    string     `json:"handle" yaml:"handle"`
	Logo  *Bitstream `json:"logo,omitempty" yaml:"logo,omitempty"`
	Items []*Item    `json:"items,omitempty" yaml:"items,omitempty"`
	_     struct{}
}

// Type yields TypeCollection
func (c *Collection) Type() ObjectType { return TypeCollection }

// Handle is the collection's persistent identifier
func (c *Collection) Handle() string { return c.ID }

// Community groups sub-communities and collections, with an optional logo.
type Community struct {
	ID             string        `json:"handle" yaml:"handle"`
	Logo           *Bitstream    `json:"logo,omitempty" yaml:"logo,omitempty"`
	Subcommunities []*Community  `json:"subcommunities,omitempty" yaml:"subcommunities,omitempty"`
	Collections    []*Collection `json:"collections,omitempty" yaml:"collections,omitempty"`
	_              struct{}
}

// Type yields TypeCommunity
func (c *Community) Type() ObjectType { return TypeCommunity }

// Handle is the community's persistent identifier
func (c *Community) Handle() string { return c.ID }

// Site is the unique root of the repository tree.
type Site struct {
	ID          string       `json:"handle" yaml:"handle"`
	Communities []*Community `json:"communities,omitempty" yaml:"communities,omitempty"`
	_           struct{}
}

// Type yields TypeSite
func (s *Site) Type() ObjectType { return TypeSite }

// Handle is the site's persistent identifier
func (s *Site) Handle() string { return s.ID }
