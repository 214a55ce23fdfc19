package tokentax

import (
	"cmp"
	"slices"
	"strings"
)

// recField compares a single field of two records.
type recField struct {
	name string
	cmp  func(a, b *Rec) int
}

// recFields is the precedence used by Compare and Equal. Time comes first so
// that sorting records is chronological; the other fields only break ties.
var recFields = []recField{
	{"Date", func(a, b *Rec) int { return cmp.Compare(a.Time, b.Time) }},
	{"Type", func(a, b *Rec) int { return a.Type.Compare(b.Type) }},
	{"BuyCurrency", func(a, b *Rec) int { return strings.Compare(a.BuyCurrency, b.BuyCurrency) }},
	{"SellCurrency", func(a, b *Rec) int { return strings.Compare(a.SellCurrency, b.SellCurrency) }},
	{"FeeCurrency", func(a, b *Rec) int { return strings.Compare(a.FeeCurrency, b.FeeCurrency) }},
	{"BuyAmount", func(a, b *Rec) int { return a.BuyAmount.Compare(b.BuyAmount) }},
	{"SellAmount", func(a, b *Rec) int { return a.SellAmount.Compare(b.SellAmount) }},
	{"FeeAmount", func(a, b *Rec) int { return a.FeeAmount.Compare(b.FeeAmount) }},
	{"Exchange", func(a, b *Rec) int { return strings.Compare(a.Exchange, b.Exchange) }},
	{"Group", func(a, b *Rec) int { return a.Group.Compare(b.Group) }},
	{"Comment", func(a, b *Rec) int { return strings.Compare(a.Comment, b.Comment) }},
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, with or
// after b. It compares Date, Type, BuyCurrency, SellCurrency, FeeCurrency,
// BuyAmount, SellAmount, FeeAmount, Exchange, Group and Comment, in that
// order, and stops on the first difference. An absent amount sorts before
// any present amount.
func Compare(a, b Rec) int {
	for _, f := range recFields {
		if c := f.cmp(&a, &b); c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports whether every field of a and b is equal.
func Equal(a, b Rec) bool { return Compare(a, b) == 0 }

// Equal reports whether every field of r and o is equal.
func (r Rec) Equal(o Rec) bool { return Equal(r, o) }

// Sort sorts records with Compare. Equal records keep their relative order.
func Sort(recs []Rec) {
	slices.SortStableFunc(recs, Compare)
}
