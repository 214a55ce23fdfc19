package tokentax

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal. Strings must be
// valid decimals.
func newDecimal[T float64 | int | int64 | uint64 | string | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case uint64:
		return decimal.NewFromUint64(v)
	case string:
		return decimal.RequireFromString(v)
	default:
		panic("unsupported type")
	}
}

// Amount is an optional decimal amount. The zero value is an absent amount,
// which is distinct from a present zero.
type Amount struct {
	value decimal.Decimal
	valid bool
}

// NoAmount is the absent amount.
var NoAmount = Amount{}

// A returns a present amount.
func A[T float64 | int | int64 | uint64 | string | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value), valid: true}
}

// ParseAmount parses a decimal without rounding. An empty string is NoAmount.
func ParseAmount(s string) (Amount, error) {
	if s == "" {
		return NoAmount, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return NoAmount, err
	}
	return Amount{value: d, valid: true}, nil
}

// IsSet reports whether the amount is present.
func (a Amount) IsSet() bool { return a.valid }

// Decimal returns the value and whether it is present.
func (a Amount) Decimal() (decimal.Decimal, bool) { return a.value, a.valid }

// Equal reports whether a and b are both absent, or both present with the same value.
// Trailing zeros are not significant: 312 equals 312.00.
func (a Amount) Equal(b Amount) bool {
	if a.valid != b.valid {
		return false
	}
	return !a.valid || a.value.Equal(b.value)
}

// Compare orders amounts by value, absent amounts first.
func (a Amount) Compare(b Amount) int {
	switch {
	case !a.valid && !b.valid:
		return 0
	case !a.valid:
		return -1
	case !b.valid:
		return 1
	default:
		return a.value.Cmp(b.value)
	}
}

// String returns the exact decimal digits as read, trailing zeros included,
// or "" if absent.
func (a Amount) String() string {
	if !a.valid {
		return ""
	}
	return digits(a.value)
}

// digits keeps the scale of d: 312.00 stays "312.00".
func digits(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// GoString is used by %#v and in diagnostics: "None" or "Some(<value>)".
func (a Amount) GoString() string {
	if !a.valid {
		return "None"
	}
	return "Some(" + digits(a.value) + ")"
}

// MarshalJSON writes the value as an unquoted number, or null if absent.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.valid {
		return []byte("null"), nil
	}
	return []byte(digits(a.value)), nil
}

// UnmarshalJSON reads a number or a string, null is the absent amount.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = NoAmount
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	*a = Amount{value: d, valid: true}
	return nil
}

// check that an Amount pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Amount)(nil)
var _ json.Unmarshaler = (*Amount)(nil)
