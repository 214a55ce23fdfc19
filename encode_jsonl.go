package tokentax

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// MarshalJSON writes the record as a JSON object with the CSV column names as
// keys, in column order. Absent amounts and empty strings are omitted.
func (r Rec) MarshalJSON() ([]byte, error) {
	if !r.Type.IsValid() {
		return nil, errors.Errorf("cannot encode record of type %v", r.Type)
	}
	var w jsonObjectWriter
	w.Append("Type", r.Type.String())
	w.Optional("BuyAmount", r.BuyAmount)
	w.Optional("BuyCurrency", r.BuyCurrency)
	w.Optional("SellAmount", r.SellAmount)
	w.Optional("SellCurrency", r.SellCurrency)
	w.Optional("FeeAmount", r.FeeAmount)
	w.Optional("FeeCurrency", r.FeeCurrency)
	w.Optional("Exchange", r.Exchange)
	w.Optional("Group", r.Group.String())
	w.Optional("Comment", r.Comment)
	w.Append("Date", FormatTime(r.Time))
	return w.MarshalJSON()
}

// UnmarshalJSON reads a record written by MarshalJSON. Field errors are
// reported as *DecodeError.
func (r *Rec) UnmarshalJSON(data []byte) error {
	// jrec is the object read from the line, enums, amounts and date still as text.
	var jrec struct {
		Type         string          `json:"Type"`
		BuyAmount    json.RawMessage `json:"BuyAmount"`
		BuyCurrency  string          `json:"BuyCurrency"`
		SellAmount   json.RawMessage `json:"SellAmount"`
		SellCurrency string          `json:"SellCurrency"`
		FeeAmount    json.RawMessage `json:"FeeAmount"`
		FeeCurrency  string          `json:"FeeCurrency"`
		Exchange     string          `json:"Exchange"`
		Group        string          `json:"Group"`
		Comment      string          `json:"Comment"`
		Date         string          `json:"Date"`
	}
	if err := json.Unmarshal(data, &jrec); err != nil {
		return err
	}

	typ, err := ParseRecType(jrec.Type)
	if err != nil {
		return &DecodeError{Field: "Type", Value: jrec.Type, Err: err}
	}
	group, err := ParseGroupType(jrec.Group)
	if err != nil {
		return &DecodeError{Field: "Group", Value: jrec.Group, Err: err}
	}
	var buy, sell, fee Amount
	for _, a := range []struct {
		field string
		raw   json.RawMessage
		dst   *Amount
	}{
		{"BuyAmount", jrec.BuyAmount, &buy},
		{"SellAmount", jrec.SellAmount, &sell},
		{"FeeAmount", jrec.FeeAmount, &fee},
	} {
		if len(a.raw) == 0 {
			continue
		}
		if err := a.dst.UnmarshalJSON(a.raw); err != nil {
			return &DecodeError{Field: a.field, Value: string(a.raw), Err: err}
		}
	}
	on, err := ParseTime(jrec.Date)
	if err != nil {
		return &DecodeError{Field: "Date", Value: jrec.Date, Err: err}
	}

	*r = NewRec(typ, buy, jrec.BuyCurrency, sell, jrec.SellCurrency,
		fee, jrec.FeeCurrency, jrec.Exchange, group, jrec.Comment, on)
	return nil
}

// EncodeJSONL writes one JSON record per line.
func EncodeJSONL(w io.Writer, recs []Rec) error {
	for i, rec := range recs {
		data, err := json.Marshal(rec)
		if err != nil {
			return errors.Wrapf(err, "cannot marshal record %d", i)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return errors.Wrap(err, "cannot write JSONL")
		}
	}
	return nil
}

// maxJSONLLine is the longest line DecodeJSONL accepts.
const maxJSONLLine = 16 << 20

// DecodeJSONL reads one JSON record per line, blank lines are ignored.
//
// Like DecodeCSV, records that fail to decode are reported in a DecodeErrors
// and the others are returned. Row is the line number.
func DecodeJSONL(r io.Reader) ([]Rec, error) {
	var recs []Rec
	var errs DecodeErrors
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxJSONLLine)
	line := 0
	for scanner.Scan() {
		line++
		data := bytes.TrimSpace(scanner.Bytes())
		if len(data) == 0 {
			continue
		}
		var rec Rec
		if err := json.Unmarshal(data, &rec); err != nil {
			var derr *DecodeError
			if !errors.As(err, &derr) {
				derr = &DecodeError{Field: "line", Value: string(data), Err: err}
			}
			derr.Row = line
			errs = append(errs, derr)
			continue
		}
		recs = append(recs, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "error reading JSONL")
	}
	return recs, errs.errOrNil()
}
