// Package model describes the repository objects manipulated by aipkit.
//
// The object model is a strict, finite tree:
//
//	Site:
//	  The unique root of a repository. It owns the top-level communities.
//
//	Communities:
//	  Grouping nodes. A community may own sub-communities and collections,
//	  and may carry a logo bitstream.
//
//	Collections:
//	  Own items, and may carry a logo bitstream.
//
//	Items:
//	  The leaves of the packaging tree. An item owns named bundles, and
//	  bundles own the actual content bitstreams.
//
// Archival packages (AIPs) serialize one object each; containers reference
// the packages of their children rather than embedding them.
package model
