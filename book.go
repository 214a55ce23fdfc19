package tokentax

import (
	"iter"
	"maps"
	"slices"
	"sort"

	log "github.com/sirupsen/logrus"
)

// Book represents a list of records.
//
// In a Book records are always sorted with Compare, hence in chronological order.
type Book struct {
	name string
	recs []Rec
}

// NewBook creates an empty book.
func NewBook(recs ...Rec) *Book {
	b := &Book{recs: make([]Rec, 0, len(recs))}
	b.Append(recs...)
	return b
}

// Name returns the book name, usually derived from its file name.
func (b *Book) Name() string { return b.name }

// Len returns the number of records.
func (b *Book) Len() int { return len(b.recs) }

// Append appends records to this book and maintains the order of records.
// Identical records are kept, they are legitimate in a book.
func (b *Book) Append(recs ...Rec) {
	for _, r := range recs {
		i := sort.Search(len(b.recs), func(i int) bool { return Compare(b.recs[i], r) > 0 })
		if i > 0 && Equal(b.recs[i-1], r) {
			log.Debugf("%s: duplicate record %v", b.name, r)
		}
		b.recs = slices.Insert(b.recs, i, r)
	}
}

// Recs returns an iterator over the records accepted by all filters, in order.
func (b *Book) Recs(filters ...func(Rec) bool) iter.Seq2[int, Rec] {
	return func(yield func(int, Rec) bool) {
		for i, r := range b.recs {
			accept := true
			for _, filter := range filters {
				if !filter(r) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, r) {
				return
			}
		}
	}
}

// Slice returns a copy of the records accepted by all filters.
func (b *Book) Slice(filters ...func(Rec) bool) []Rec {
	var list []Rec
	for _, r := range b.Recs(filters...) {
		list = append(list, r)
	}
	return list
}

// ByType accepts records of any of the given types.
func ByType(types ...RecType) func(Rec) bool {
	return func(r Rec) bool { return slices.Contains(types, r.Type) }
}

// ByAsset accepts valid records whose Asset is asset.
func ByAsset(asset string) func(Rec) bool {
	return func(r Rec) bool { return r.Validate() == nil && r.Asset() == asset }
}

// ByExchange accepts records from the given exchange.
func ByExchange(exchange string) func(Rec) bool {
	return func(r Rec) bool { return r.Exchange == exchange }
}

// Assets returns the sorted list of assets of the valid records.
func (b *Book) Assets() []string {
	set := make(map[string]struct{})
	for _, r := range b.recs {
		if r.Validate() != nil {
			continue
		}
		set[r.Asset()] = struct{}{}
	}
	return slices.Sorted(maps.Keys(set))
}

// Oldest returns the time of the earliest record, 0 if the book is empty.
func (b *Book) Oldest() int64 {
	if len(b.recs) == 0 {
		return 0
	}
	return b.recs[0].Time
}

// Newest returns the time of the latest record, 0 if the book is empty.
func (b *Book) Newest() int64 {
	if len(b.recs) == 0 {
		return 0
	}
	return b.recs[len(b.recs)-1].Time
}
