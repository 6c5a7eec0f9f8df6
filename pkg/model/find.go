package model

// Find locates an object in the site tree by its handle. The site itself
// is found under its own handle. Returns nil when no object matches.
func (s *Site) Find(handle string) Object {
	if s.ID == handle {
		return s
	}
	for _, comm := range s.Communities {
		if obj := findInCommunity(comm, handle); obj != nil {
			return obj
		}
	}
	return nil
}

func findInCommunity(comm *Community, handle string) Object {
	if comm.ID == handle {
		return comm
	}
	for _, sub := range comm.Subcommunities {
		if obj := findInCommunity(sub, handle); obj != nil {
			return obj
		}
	}
	for _, coll := range comm.Collections {
		if coll.ID == handle {
			return coll
		}
		for _, item := range coll.Items {
			if item.ID == handle {
				return item
			}
		}
	}
	return nil
}
