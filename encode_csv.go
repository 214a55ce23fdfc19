package tokentax

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// this file contains the CSV codec. The mapping between the header and the
// cells is done by gocsv into a dedicated struct of strings, the conversion of
// each cell into the record fields is done here so that a failure can name the
// column and the raw value.

func init() {
	// every column must be present in the header.
	gocsv.FailIfUnmatchedStructTags = true
}

// Header is the CSV header, in column order.
var Header = []string{"Type", "BuyAmount", "BuyCurrency", "SellAmount", "SellCurrency", "FeeAmount", "FeeCurrency", "Exchange", "Group", "Comment", "Date"}

// csvRec is a row as read or written by gocsv.
type csvRec struct {
	Type         string `csv:"Type"`
	BuyAmount    string `csv:"BuyAmount"`
	BuyCurrency  string `csv:"BuyCurrency"`
	SellAmount   string `csv:"SellAmount"`
	SellCurrency string `csv:"SellCurrency"`
	FeeAmount    string `csv:"FeeAmount"`
	FeeCurrency  string `csv:"FeeCurrency"`
	Exchange     string `csv:"Exchange"`
	Group        string `csv:"Group"`
	Comment      string `csv:"Comment"`
	Date         string `csv:"Date"`
}

// decodeRow converts a row into a record. row is the record index for error messages.
func decodeRow(row int, c *csvRec) (r Rec, err error) {
	fail := func(field, value string, err error) error {
		return &DecodeError{Row: row, Field: field, Value: value, Err: err}
	}

	if r.Type, err = ParseRecType(c.Type); err != nil {
		return Rec{}, fail("Type", c.Type, err)
	}
	if r.BuyAmount, err = ParseAmount(c.BuyAmount); err != nil {
		return Rec{}, fail("BuyAmount", c.BuyAmount, err)
	}
	if r.SellAmount, err = ParseAmount(c.SellAmount); err != nil {
		return Rec{}, fail("SellAmount", c.SellAmount, err)
	}
	if r.FeeAmount, err = ParseAmount(c.FeeAmount); err != nil {
		return Rec{}, fail("FeeAmount", c.FeeAmount, err)
	}
	if r.Group, err = ParseGroupType(c.Group); err != nil {
		return Rec{}, fail("Group", c.Group, err)
	}
	if r.Time, err = ParseTime(c.Date); err != nil {
		return Rec{}, fail("Date", c.Date, err)
	}
	r.BuyCurrency = c.BuyCurrency
	r.SellCurrency = c.SellCurrency
	r.FeeCurrency = c.FeeCurrency
	r.Exchange = c.Exchange
	r.Comment = c.Comment
	return r, nil
}

// encodeRow is the inverse of decodeRow.
func encodeRow(r Rec) (*csvRec, error) {
	if !r.Type.IsValid() {
		return nil, fmt.Errorf("cannot encode record of type %v", r.Type)
	}
	return &csvRec{
		Type:         r.Type.String(),
		BuyAmount:    r.BuyAmount.String(),
		BuyCurrency:  r.BuyCurrency,
		SellAmount:   r.SellAmount.String(),
		SellCurrency: r.SellCurrency,
		FeeAmount:    r.FeeAmount.String(),
		FeeCurrency:  r.FeeCurrency,
		Exchange:     r.Exchange,
		Group:        r.Group.String(),
		Comment:      r.Comment,
		Date:         FormatTime(r.Time),
	}, nil
}

// rowReader reads every row regardless of its width, and keeps them so that
// rows with a wrong number of cells can be reported one by one.
type rowReader struct {
	*csv.Reader
	rows [][]string
}

func newRowReader(r io.Reader) *rowReader {
	c := csv.NewReader(r)
	c.FieldsPerRecord = -1
	return &rowReader{Reader: c}
}

func (r *rowReader) ReadAll() ([][]string, error) {
	rows, err := r.Reader.ReadAll()
	r.rows = rows
	return rows, err
}

// DecodeCSV reads records from a CSV stream with a Header line.
//
// Rows that fail to decode, including rows with a wrong number of cells, are
// skipped and reported in a DecodeErrors, the other records are returned in
// input order. Any other error, like a malformed quote or a missing column,
// fails the whole stream.
func DecodeCSV(r io.Reader) ([]Rec, error) {
	in := newRowReader(r)
	var rows []*csvRec
	if err := gocsv.UnmarshalCSV(in, &rows); err != nil {
		return nil, errors.Wrap(err, "cannot read TokenTax CSV")
	}

	// gocsv maps one row per body line, in.rows[0] is the header.
	width := len(in.rows[0])
	recs := make([]Rec, 0, len(rows))
	var errs DecodeErrors
	for i, row := range rows {
		if cells := in.rows[i+1]; len(cells) != width {
			errs = append(errs, &DecodeError{
				Row:   i + 1,
				Field: "row",
				Value: strings.Join(cells, ","),
				Err:   fmt.Errorf("got %d cells, want %d", len(cells), width),
			})
			continue
		}
		rec, err := decodeRow(i+1, row)
		if err != nil {
			errs = append(errs, err.(*DecodeError))
			continue
		}
		recs = append(recs, rec)
	}
	return recs, errs.errOrNil()
}

// EncodeCSV writes the Header line followed by one line per record, in the given order.
func EncodeCSV(w io.Writer, recs []Rec) error {
	rows := make([]*csvRec, 0, len(recs))
	for i, rec := range recs {
		row, err := encodeRow(rec)
		if err != nil {
			return errors.Wrapf(err, "record %d", i)
		}
		rows = append(rows, row)
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return errors.Wrap(err, "cannot write TokenTax CSV")
	}
	return nil
}
