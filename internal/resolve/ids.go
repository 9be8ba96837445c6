package resolve

import "sort"

// IDMap maps external IDs to internal indices. The first occurrence of an ID wins.
type IDMap struct {
	index map[string]int
}

// NewIDMap builds a map from IDs listed in internal-index order.
func NewIDMap(ids []string) IDMap {
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		if _, seen := index[id]; seen {
			continue
		}
		index[id] = i
	}
	return IDMap{index: index}
}

// Resolve looks up an external reference. Empty or unknown references yield NoRef.
func (m IDMap) Resolve(ref string) Ref {
	if ref == "" {
		return NoRef
	}
	i, ok := m.index[ref]
	if !ok {
		return NoRef
	}
	return RefTo(i)
}

// Categories is the interned, sorted category name set.
type Categories struct {
	names []string
	index map[string]int
}

// InternCategories builds the category set from the given name lists.
// Names are deduplicated and sorted so index assignment is reproducible.
func InternCategories(lists ...[]string) Categories {
	seen := map[string]struct{}{}
	for _, list := range lists {
		for _, name := range list {
			if name == "" {
				continue
			}
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}
	return Categories{names: names, index: index}
}

// Names returns the category names in index order.
func (c Categories) Names() []string {
	return append([]string(nil), c.names...)
}

// Len returns the number of categories.
func (c Categories) Len() int {
	return len(c.names)
}

// Lookup returns the index of a category name.
func (c Categories) Lookup(name string) (int, bool) {
	i, ok := c.index[name]
	return i, ok
}
