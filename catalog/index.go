package catalog

// EntryKind distinguishes browse row types
type EntryKind uint8

const (
	EntryCategory EntryKind = iota
	EntryEpisode
)

// Entry is one row in the flat browse index. Episode entries carry the
// full path back into the library so mutations stay index-safe.
type Entry struct {
	Kind EntryKind
	Cat  int
	Ser  int // Valid for EntryEpisode
	Sea  int
	Epi  int
}

// Index is the flattened view: category headers followed by their episodes,
// contiguously, so a single viewport integer space covers both tiers.
type Index struct {
	Entries []Entry
	lib     *Library
}

// BuildIndex flattens the library. Rebuild after any structural mutation.
func BuildIndex(lib *Library) *Index {
	idx := &Index{lib: lib}
	for ci, cat := range lib.Categories {
		idx.Entries = append(idx.Entries, Entry{Kind: EntryCategory, Cat: ci})
		for si, ser := range cat.Series {
			for ni, sea := range ser.Seasons {
				for ei := range sea.Episodes {
					idx.Entries = append(idx.Entries, Entry{
						Kind: EntryEpisode,
						Cat:  ci, Ser: si, Sea: ni, Epi: ei,
					})
				}
			}
		}
	}
	return idx
}

// Len returns total row count
func (x *Index) Len() int {
	return len(x.Entries)
}

// At returns the entry at i, with ok=false out of range
func (x *Index) At(i int) (Entry, bool) {
	if i < 0 || i >= len(x.Entries) {
		return Entry{}, false
	}
	return x.Entries[i], true
}

// Episode resolves an episode entry to its data, nil for non-episode or
// out-of-range entries
func (x *Index) Episode(e Entry) *Episode {
	if e.Kind != EntryEpisode {
		return nil
	}
	if e.Cat >= len(x.lib.Categories) {
		return nil
	}
	cat := &x.lib.Categories[e.Cat]
	if e.Ser >= len(cat.Series) {
		return nil
	}
	ser := &cat.Series[e.Ser]
	if e.Sea >= len(ser.Seasons) {
		return nil
	}
	sea := &ser.Seasons[e.Sea]
	if e.Epi >= len(sea.Episodes) {
		return nil
	}
	return &sea.Episodes[e.Epi]
}

// Series resolves the series owning an entry, nil when unavailable
func (x *Index) Series(e Entry) *Series {
	if e.Cat >= len(x.lib.Categories) {
		return nil
	}
	cat := &x.lib.Categories[e.Cat]
	if e.Ser >= len(cat.Series) {
		return nil
	}
	return &cat.Series[e.Ser]
}

// Category resolves the category owning an entry, nil when out of range
func (x *Index) Category(e Entry) *Category {
	if e.Cat >= len(x.lib.Categories) {
		return nil
	}
	return &x.lib.Categories[e.Cat]
}

// ToggleWatched flips the watched flag at browse index i.
// Returns false for category rows and out-of-range indices.
func (x *Index) ToggleWatched(i int) bool {
	e, ok := x.At(i)
	if !ok {
		return false
	}
	ep := x.Episode(e)
	if ep == nil {
		return false
	}
	ep.Watched = !ep.Watched
	return true
}

// Rename sets the episode title at browse index i
func (x *Index) Rename(i int, title string) bool {
	e, ok := x.At(i)
	if !ok {
		return false
	}
	ep := x.Episode(e)
	if ep == nil {
		return false
	}
	ep.Title = title
	return true
}

// Delete removes the episode at browse index i from the library.
// The index is stale afterwards; callers rebuild it.
func (x *Index) Delete(i int) bool {
	e, ok := x.At(i)
	if !ok || e.Kind != EntryEpisode {
		return false
	}
	if x.Episode(e) == nil {
		return false
	}
	sea := &x.lib.Categories[e.Cat].Series[e.Ser].Seasons[e.Sea]
	sea.Episodes = append(sea.Episodes[:e.Epi], sea.Episodes[e.Epi+1:]...)
	return true
}
