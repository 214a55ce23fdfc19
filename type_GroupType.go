package tokentax

import "fmt"

// GroupType is an optional sub-classification of a record, orthogonal to its type.
// The zero value NoGroup means the record has no group.
type GroupType int

const (
	// NoGroup is the absence of group, written as an empty cell.
	NoGroup GroupType = iota
	// Margin marks margin trading, written as "margin".
	Margin
)

// String returns the token of the group as written in the Group column.
func (g GroupType) String() string {
	switch g {
	case NoGroup:
		return ""
	case Margin:
		return "margin"
	default:
		return fmt.Sprintf("GroupType(%d)", int(g))
	}
}

// GoString is used by %#v, like Amount: "None" or "Some(<group>)".
func (g GroupType) GoString() string {
	switch g {
	case NoGroup:
		return "None"
	case Margin:
		return "Some(Margin)"
	default:
		return g.String()
	}
}

// Compare orders groups by declaration, the absence of group first.
func (g GroupType) Compare(h GroupType) int {
	switch {
	case g < h:
		return -1
	case g > h:
		return 1
	default:
		return 0
	}
}

// ParseGroupType parses the Group column. An empty string is NoGroup.
func ParseGroupType(s string) (GroupType, error) {
	switch s {
	case "":
		return NoGroup, nil
	case "margin":
		return Margin, nil
	default:
		return NoGroup, fmt.Errorf("unknown group %q, want \"margin\" or nothing", s)
	}
}
