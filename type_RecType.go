package tokentax

import (
	"fmt"
	"strings"
)

// RecType is the category of a record. It decides which amount fields are
// authoritative, see [Rec.Asset].
//
// The zero value is Unknown, which is never a valid input value.
type RecType int

// Record types. They are declared in their sort order, Unknown is always last.
const (
	Unknown RecType = iota
	Income
	Deposit
	Mining
	Gift
	Trade
	Withdrawal
	Spend
	Lost
	Stolen
)

// RecTypes lists the valid record types, in sort order.
var RecTypes = []RecType{Income, Deposit, Mining, Gift, Trade, Withdrawal, Spend, Lost, Stolen}

var recTypeNames = map[RecType]string{
	Income:     "Income",
	Deposit:    "Deposit",
	Mining:     "Mining",
	Gift:       "Gift",
	Trade:      "Trade",
	Withdrawal: "Withdrawal",
	Spend:      "Spend",
	Lost:       "Lost",
	Stolen:     "Stolen",
	Unknown:    "Unknown",
}

// String returns the name of the record type, as written in the Type column.
func (t RecType) String() string {
	if s, ok := recTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("RecType(%d)", int(t))
}

// IsValid reports whether t is one of the record types accepted in a file.
func (t RecType) IsValid() bool { return t >= Income && t <= Stolen }

// rank is the position of t in the sort order. Unknown ranks after every
// valid type.
func (t RecType) rank() int {
	if t == Unknown {
		return int(Stolen) + 1
	}
	return int(t)
}

// Compare returns -1, 0 or +1 depending on whether t sorts before, with or after u.
func (t RecType) Compare(u RecType) int {
	switch a, b := t.rank(), u.rank(); {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// ParseRecType parses the Type column. Matching is exact and case sensitive,
// and "Unknown" is rejected.
func ParseRecType(s string) (RecType, error) {
	for _, t := range RecTypes {
		if recTypeNames[t] == s {
			return t, nil
		}
	}
	return Unknown, fmt.Errorf("unknown record type %q, want one of %s", s, strings.Join(recTypeList(), ", "))
}

func recTypeList() []string {
	names := make([]string, 0, len(RecTypes))
	for _, t := range RecTypes {
		names = append(names, t.String())
	}
	return names
}
