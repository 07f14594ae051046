package practice

import "sort"

// Bookmarks is a user's set of saved question ids. A session holds the same
// set its owner does, so toggles inside a session are visible everywhere.
// It is not safe for concurrent use; Service serialises access.
type Bookmarks struct {
	ids map[int]struct{}
}

func NewBookmarks(ids ...int) *Bookmarks {
	b := &Bookmarks{ids: make(map[int]struct{}, len(ids))}
	for _, id := range ids {
		b.ids[id] = struct{}{}
	}
	return b
}

// Toggle adds id if it is missing and removes it otherwise. It reports
// whether id is bookmarked afterwards.
func (b *Bookmarks) Toggle(id int) bool {
	if _, ok := b.ids[id]; ok {
		delete(b.ids, id)
		return false
	}
	b.ids[id] = struct{}{}
	return true
}

func (b *Bookmarks) Has(id int) bool {
	_, ok := b.ids[id]
	return ok
}

func (b *Bookmarks) Len() int {
	return len(b.ids)
}

// IDs returns the bookmarked ids in ascending order.
func (b *Bookmarks) IDs() []int {
	out := make([]int, 0, len(b.ids))
	for id := range b.ids {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
