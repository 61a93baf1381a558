package classifier

import "ship-registry/feature/fleet/models"

// Table maps a picture-book number to the sources of its pages 1..n, in order.
// Page 0 is always Normal and never listed.
type Table map[int][]PageSource

// Merge returns a new table holding t overlaid with the entries of other.
func (t Table) Merge(other Table) Table {
	out := make(Table, len(t)+len(other))
	for id, sources := range t {
		out[id] = append([]PageSource(nil), sources...)
	}
	for id, sources := range other {
		out[id] = append([]PageSource(nil), sources...)
	}
	return out
}

// Classifier answers which event produced a page of a picture-book entry.
// It is immutable once built and safe for concurrent use.
type Classifier struct {
	table Table
}

// New builds a classifier over a private copy of table.
func New(table Table) *Classifier {
	return &Classifier{table: Table{}.Merge(table)}
}

// Default builds a classifier over DefaultTable.
func Default() *Classifier {
	return &Classifier{table: DefaultTable()}
}

// Len returns the number of documented picture-book numbers.
func (c *Classifier) Len() int {
	return len(c.table)
}

// Documented reports whether the table has an entry for bookNo.
func (c *Classifier) Documented(bookNo int) bool {
	_, ok := c.table[bookNo]
	return ok
}

// Sources returns a copy of the table entry for bookNo, pages 1..n.
func (c *Classifier) Sources(bookNo int) ([]PageSource, bool) {
	sources, ok := c.table[bookNo]
	if !ok {
		return nil, false
	}
	return append([]PageSource(nil), sources...), true
}

// Lookup classifies page of bookNo from the table alone.
// Page 0 is Normal; undocumented numbers and pages past the entry are Unknown.
func (c *Classifier) Lookup(bookNo, page int) PageSource {
	if page == 0 {
		return Event(Normal)
	}
	sources, ok := c.table[bookNo]
	if !ok || page < 0 || page > len(sources) {
		return Event(Unknown)
	}
	return sources[page-1]
}

// Classify classifies page of entry. When the table entry does not describe
// exactly the pages entry has, every page past 0 is Unknown.
func (c *Classifier) Classify(entry models.BookEntry, page int) PageSource {
	if page == 0 {
		return Event(Normal)
	}
	if len(c.table[entry.BookNo])+1 != len(entry.CardList) {
		return Event(Unknown)
	}
	return c.Lookup(entry.BookNo, page)
}

// Pages classifies every page of entry.
func (c *Classifier) Pages(entry models.BookEntry) []PageSource {
	out := make([]PageSource, len(entry.CardList))
	for i := range entry.CardList {
		out[i] = c.Classify(entry, i)
	}
	return out
}
