package tokentax

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Rec is one TokenTax record.
//
// It is a plain data holder: constructors do not validate, and the accessors
// Asset, OtherAsset and Quantity panic on a record that does not respect the
// per-type invariant. Use Validate to check a record first.
type Rec struct {
	Type         RecType
	BuyAmount    Amount // BuyAmount is the amount received.
	BuyCurrency  string
	SellAmount   Amount // SellAmount is the amount given.
	SellCurrency string
	FeeAmount    Amount
	FeeCurrency  string
	Exchange     string // Exchange is the venue name.
	Group        GroupType
	Comment      string
	Time         int64 // Time is UTC milliseconds since the epoch.
}

// New returns the empty record: type Unknown, no amounts, empty strings and time 0.
// It is the same as Rec{}.
func New() Rec { return Rec{} }

// NewRec creates a record with every field set.
func NewRec(typ RecType, buyAmount Amount, buyCurrency string, sellAmount Amount, sellCurrency string,
	feeAmount Amount, feeCurrency string, exchange string, group GroupType, comment string, time int64) Rec {
	return Rec{
		Type:         typ,
		BuyAmount:    buyAmount,
		BuyCurrency:  buyCurrency,
		SellAmount:   sellAmount,
		SellCurrency: sellCurrency,
		FeeAmount:    feeAmount,
		FeeCurrency:  feeCurrency,
		Exchange:     exchange,
		Group:        group,
		Comment:      comment,
		Time:         time,
	}
}

// side is one of the two legs of a record.
type side int

const (
	buySide side = iota
	sellSide
)

func (s side) other() side { return 1 - s }

func (s side) String() string {
	if s == buySide {
		return "BuyAmount"
	}
	return "SellAmount"
}

// subject returns the leg holding the asset a record of type t is about.
// It panics on Unknown.
func (t RecType) subject() side {
	switch t {
	case Trade, Deposit, Income, Mining:
		return buySide
	case Withdrawal, Spend, Lost, Stolen, Gift:
		return sellSide
	default:
		panic(fmt.Sprintf("record of type %v has no asset", t))
	}
}

func (r Rec) currency(s side) string {
	if s == buySide {
		return r.BuyCurrency
	}
	return r.SellCurrency
}

func (r Rec) amount(s side) Amount {
	if s == buySide {
		return r.BuyAmount
	}
	return r.SellAmount
}

// Asset returns the currency this record is about: BuyCurrency for Trade,
// Deposit, Income and Mining, SellCurrency otherwise.
//
// It panics if the type is Unknown.
func (r Rec) Asset() string { return r.currency(r.Type.subject()) }

// OtherAsset returns the counterpart currency, the one Asset does not return.
//
// It panics if the type is Unknown.
func (r Rec) OtherAsset() string { return r.currency(r.Type.subject().other()) }

// Quantity returns the amount of Asset: BuyAmount for Trade, Deposit, Income
// and Mining, SellAmount otherwise.
//
// It panics if the type is Unknown or if that amount is absent.
func (r Rec) Quantity() decimal.Decimal {
	s := r.Type.subject()
	q, ok := r.amount(s).Decimal()
	if !ok {
		panic(fmt.Sprintf("%v record has no %v", r.Type, s))
	}
	return q
}

// Validate reports whether Asset, OtherAsset and Quantity can be called on r.
func (r Rec) Validate() error {
	if !r.Type.IsValid() {
		return fmt.Errorf("invalid record type %v", r.Type)
	}
	s := r.Type.subject()
	if !r.amount(s).IsSet() {
		return fmt.Errorf("%v record requires a %v", r.Type, s)
	}
	return nil
}

// ValidateAll validates all records and returns every failure, the index
// of the record prefixed.
func ValidateAll(recs []Rec) error {
	var errs []error
	for i, r := range recs {
		if err := r.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("record %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// String is a single line rendering of every field, for diagnostics.
func (r Rec) String() string {
	return fmt.Sprintf("time: %s type: %v buy_amount: %#v buy_currency: %s sell_amount: %#v sell_currency: %s fee_amount: %#v fee_currency: %s exchange: %s group: %#v comment: %s",
		FormatTime(r.Time),
		r.Type,
		r.BuyAmount,
		r.BuyCurrency,
		r.SellAmount,
		r.SellCurrency,
		r.FeeAmount,
		r.FeeCurrency,
		r.Exchange,
		r.Group,
		r.Comment,
	)
}
