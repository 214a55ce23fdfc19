package renderer

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/tokentax"
	"github.com/shopspring/decimal"
)

// Records is the data of a records report.
// All cells are already formatted and escaped for a markdown table.
type Records struct {
	// Name of the book, optional.
	Name string `json:"name,omitempty"`
	// From and To are the dates of the first and last records.
	From string `json:"from"`
	To   string `json:"to"`
	// Rows in book order.
	Rows []RecordRow `json:"rows"`
}

// RecordRow is one record, seen from its asset.
type RecordRow struct {
	Date     string `json:"date"`
	Type     string `json:"type"`
	Asset    string `json:"asset"`
	Quantity string `json:"quantity"`
	Other    string `json:"other"`
	Fee      string `json:"fee"`
	Exchange string `json:"exchange"`
	Group    string `json:"group"`
	Comment  string `json:"comment"`
}

// NewRecords creates the report data for records, in the given order.
func NewRecords(name string, recs []tokentax.Rec) *Records {
	r := &Records{Name: name, Rows: make([]RecordRow, 0, len(recs))}
	for _, rec := range recs {
		r.Rows = append(r.Rows, newRecordRow(rec))
	}
	if len(recs) > 0 {
		r.From = tokentax.FormatTime(recs[0].Time)
		r.To = tokentax.FormatTime(recs[len(recs)-1].Time)
	}
	return r
}

func newRecordRow(rec tokentax.Rec) RecordRow {
	row := RecordRow{
		Date:     tokentax.FormatTime(rec.Time),
		Type:     rec.Type.String(),
		Exchange: cell(rec.Exchange),
		Group:    rec.Group.String(),
		Comment:  cell(rec.Comment),
	}
	if fee, ok := rec.FeeAmount.Decimal(); ok {
		row.Fee = formatAmount(fee, rec.FeeCurrency)
	}
	if rec.Validate() != nil {
		// records that cannot be interpreted are shown, but flagged.
		row.Asset = "?"
		return row
	}
	row.Asset = cell(rec.Asset())
	row.Other = cell(rec.OtherAsset())
	row.Quantity = formatAmount(rec.Quantity(), rec.Asset())
	return row
}

// formatAmount formats ISO currencies known by go-money with their symbol,
// rounded to the currency fraction. Other assets print the exact decimal.
func formatAmount(d decimal.Decimal, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return strings.TrimSpace(cell(d.String() + " " + code))
	}
	return cell(cur.Formatter().Format(d.Shift(int32(cur.Fraction)).Round(0).IntPart()))
}

// cell escapes s to fit in a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
