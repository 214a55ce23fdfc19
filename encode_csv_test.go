package tokentax

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// exportCSV is a TokenTax export as found in the wild: leading blank lines and
// a trailing space after each date.
const exportCSV = `

Type,BuyAmount,BuyCurrency,SellAmount,SellCurrency,FeeAmount,FeeCurrency,Exchange,Group,Comment,Date
Deposit,5125,USD,,,,,binance.us,,,1970-01-01 00:00:00 
Trade,1,ETH,3123.00,USD,0.00124,BNB,binance.us,,,1970-01-01 00:00:00 
Trade,1,ETH,312.00,USD,0.00124,BNB,binance.us,margin,,1970-01-01 00:00:00 
Income,0.001,BNB,,,,,binance.us,,"Referral Commission",1970-01-01 00:00:00 
Withdrawal,,,100,USD,,,some bank,,"AccountId: 123456",1970-01-01 00:00:00 
Spend,,,100,USD,0.01,USD,,,"Gift for wife",1970-01-01 00:00:00 
Lost,,,1,ETH,,,,,"Wallet lost",1970-01-01 00:00:00 
Stolen,,,1,USD,,,,,"Wallet hacked",1970-01-01 00:00:00 
Mining,0.000002,ETH,,,,,binance.us,,"ETH2 validator reward",1970-01-01 00:00:00 
Gift,,,100,USD,,,,,"Gift to friend",1970-01-01 00:00:00 
`

func exportRecs() []Rec {
	return []Rec{
		NewRec(Deposit, A(5125), "USD", NoAmount, "", NoAmount, "", "binance.us", NoGroup, "", 0),
		NewRec(Trade, A(1), "ETH", A("3123.00"), "USD", A("0.00124"), "BNB", "binance.us", NoGroup, "", 0),
		NewRec(Trade, A(1), "ETH", A("312.00"), "USD", A("0.00124"), "BNB", "binance.us", Margin, "", 0),
		NewRec(Income, A("0.001"), "BNB", NoAmount, "", NoAmount, "", "binance.us", NoGroup, "Referral Commission", 0),
		NewRec(Withdrawal, NoAmount, "", A(100), "USD", NoAmount, "", "some bank", NoGroup, "AccountId: 123456", 0),
		NewRec(Spend, NoAmount, "", A(100), "USD", A("0.01"), "USD", "", NoGroup, "Gift for wife", 0),
		NewRec(Lost, NoAmount, "", A(1), "ETH", NoAmount, "", "", NoGroup, "Wallet lost", 0),
		NewRec(Stolen, NoAmount, "", A(1), "USD", NoAmount, "", "", NoGroup, "Wallet hacked", 0),
		NewRec(Mining, A("0.000002"), "ETH", NoAmount, "", NoAmount, "", "binance.us", NoGroup, "ETH2 validator reward", 0),
		NewRec(Gift, NoAmount, "", A(100), "USD", NoAmount, "", "", NoGroup, "Gift to friend", 0),
	}
}

func TestDecodeCSV(t *testing.T) {
	got, err := DecodeCSV(strings.NewReader(exportCSV))
	if err != nil {
		t.Fatalf("DecodeCSV() error = %v", err)
	}
	want := exportRecs()
	if len(got) != len(want) {
		t.Fatalf("DecodeCSV() returned %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if !Equal(got[i], want[i]) {
			t.Errorf("record %d:\n got %v\nwant %v", i, got[i], want[i])
		}
	}
}

// TestDecodeCSV_Quantities checks the per type accessors on decoded records.
func TestDecodeCSV_Quantities(t *testing.T) {
	recs, err := DecodeCSV(strings.NewReader(exportCSV))
	if err != nil {
		t.Fatalf("DecodeCSV() error = %v", err)
	}
	tests := []struct {
		asset, other, quantity string
	}{
		{"USD", "", "5125"},
		{"ETH", "USD", "1"},
		{"ETH", "USD", "1"},
		{"BNB", "", "0.001"},
		{"USD", "", "100"},
		{"USD", "", "100"},
		{"ETH", "", "1"},
		{"USD", "", "1"},
		{"ETH", "", "0.000002"},
		{"USD", "", "100"},
	}
	for i, tt := range tests {
		r := recs[i]
		if got := r.Asset(); got != tt.asset {
			t.Errorf("record %d: Asset() = %q, want %q", i, got, tt.asset)
		}
		if got := r.OtherAsset(); got != tt.other {
			t.Errorf("record %d: OtherAsset() = %q, want %q", i, got, tt.other)
		}
		if got := r.Quantity(); !got.Equal(newDecimal(tt.quantity)) {
			t.Errorf("record %d: Quantity() = %v, want %s", i, got, tt.quantity)
		}
	}
}

func TestCSV_RoundTrip(t *testing.T) {
	want := `Type,BuyAmount,BuyCurrency,SellAmount,SellCurrency,FeeAmount,FeeCurrency,Exchange,Group,Comment,Date
Deposit,5125,USD,,,,,binance.us,,,1970-01-01 00:00:00
Trade,1,ETH,3123.00,USD,0.00124,BNB,binance.us,,,1970-01-01 00:00:00
Trade,1,ETH,312.00,USD,0.00124,BNB,binance.us,margin,,1970-01-01 00:00:00
Income,0.001,BNB,,,,,binance.us,,Referral Commission,1970-01-01 00:00:00
Withdrawal,,,100,USD,,,some bank,,AccountId: 123456,1970-01-01 00:00:00
Spend,,,100,USD,0.01,USD,,,Gift for wife,1970-01-01 00:00:00
Lost,,,1,ETH,,,,,Wallet lost,1970-01-01 00:00:00
Stolen,,,1,USD,,,,,Wallet hacked,1970-01-01 00:00:00
Mining,0.000002,ETH,,,,,binance.us,,ETH2 validator reward,1970-01-01 00:00:00
Gift,,,100,USD,,,,,Gift to friend,1970-01-01 00:00:00
`
	recs, err := DecodeCSV(strings.NewReader(exportCSV))
	if err != nil {
		t.Fatalf("DecodeCSV() error = %v", err)
	}
	var buf bytes.Buffer
	if err := EncodeCSV(&buf, recs); err != nil {
		t.Fatalf("EncodeCSV() error = %v", err)
	}
	if got := buf.String(); got != want {
		t.Errorf("EncodeCSV() =\n%s\nwant\n%s", got, want)
	}

	// the canonical form is stable.
	again, err := DecodeCSV(strings.NewReader(want))
	if err != nil {
		t.Fatalf("DecodeCSV() error = %v", err)
	}
	buf.Reset()
	if err := EncodeCSV(&buf, again); err != nil {
		t.Fatalf("EncodeCSV() error = %v", err)
	}
	if got := buf.String(); got != want {
		t.Errorf("second EncodeCSV() =\n%s\nwant\n%s", got, want)
	}
}

func TestDecodeCSV_Errors(t *testing.T) {
	const header = "Type,BuyAmount,BuyCurrency,SellAmount,SellCurrency,FeeAmount,FeeCurrency,Exchange,Group,Comment,Date\n"
	tests := []struct {
		name  string
		row   string
		field string
		value string
	}{
		{"unknown type", "Airdrop,1,ETH,,,,,,,,1970-01-01 00:00:00", "Type", "Airdrop"},
		{"literal unknown", "Unknown,1,ETH,,,,,,,,1970-01-01 00:00:00", "Type", "Unknown"},
		{"lower case type", "trade,1,ETH,,,,,,,,1970-01-01 00:00:00", "Type", "trade"},
		{"bad amount", "Trade,one,ETH,,,,,,,,1970-01-01 00:00:00", "BuyAmount", "one"},
		{"bad sell amount", "Spend,,,1.2.3,USD,,,,,,1970-01-01 00:00:00", "SellAmount", "1.2.3"},
		{"bad fee", "Spend,,,1,USD,x,USD,,,,1970-01-01 00:00:00", "FeeAmount", "x"},
		{"unknown group", "Trade,1,ETH,,,,,,spot,,1970-01-01 00:00:00", "Group", "spot"},
		{"bad date", "Trade,1,ETH,,,,,,,,1970-01-01T00:00:00Z", "Date", "1970-01-01T00:00:00Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := header + "Deposit,1,USD,,,,,,,,1970-01-01 00:00:00\n" + tt.row + "\n"
			recs, err := DecodeCSV(strings.NewReader(input))
			if err == nil {
				t.Fatal("DecodeCSV() error = nil")
			}
			var derr *DecodeError
			if !errors.As(err, &derr) {
				t.Fatalf("DecodeCSV() error = %v, want a *DecodeError", err)
			}
			if derr.Row != 2 || derr.Field != tt.field || derr.Value != tt.value {
				t.Errorf("DecodeError = {Row: %d, Field: %q, Value: %q}, want {2, %q, %q}", derr.Row, derr.Field, derr.Value, tt.field, tt.value)
			}
			// the valid row is still returned.
			if len(recs) != 1 || recs[0].Type != Deposit {
				t.Errorf("DecodeCSV() = %v, want the Deposit record", recs)
			}
		})
	}
}

func TestDecodeCSV_AllErrors(t *testing.T) {
	input := `Type,BuyAmount,BuyCurrency,SellAmount,SellCurrency,FeeAmount,FeeCurrency,Exchange,Group,Comment,Date
Airdrop,1,ETH,,,,,,,,1970-01-01 00:00:00
Deposit,1,USD,,,,,,,,1970-01-01 00:00:00
Trade,1,ETH,,,,,,spot,,1970-01-01 00:00:00
`
	recs, err := DecodeCSV(strings.NewReader(input))
	var errs DecodeErrors
	if !errors.As(err, &errs) {
		t.Fatalf("DecodeCSV() error = %v, want DecodeErrors", err)
	}
	if len(errs) != 2 || errs[0].Row != 1 || errs[1].Row != 3 {
		t.Errorf("DecodeCSV() errors = %v, want rows 1 and 3", errs)
	}
	if len(recs) != 1 {
		t.Errorf("DecodeCSV() returned %d records, want 1", len(recs))
	}
	if want := `row 1: invalid Type "Airdrop"`; !strings.HasPrefix(err.Error(), want) {
		t.Errorf("error = %q, want prefix %q", err.Error(), want)
	}
}

func TestDecodeCSV_MissingColumn(t *testing.T) {
	input := "Type,BuyAmount,BuyCurrency,SellAmount,SellCurrency,FeeAmount,FeeCurrency,Exchange,Group,Date\n" +
		"Deposit,1,USD,,,,,,,1970-01-01 00:00:00\n"
	recs, err := DecodeCSV(strings.NewReader(input))
	if err == nil {
		t.Fatal("DecodeCSV() error = nil, want missing column error")
	}
	var errs DecodeErrors
	if errors.As(err, &errs) {
		t.Errorf("DecodeCSV() error = %v, want a stream error", err)
	}
	if recs != nil {
		t.Errorf("DecodeCSV() = %v, want nil", recs)
	}
}

func TestDecodeCSV_Empty(t *testing.T) {
	recs, err := DecodeCSV(strings.NewReader(strings.Join(Header, ",") + "\n"))
	if err != nil {
		t.Fatalf("DecodeCSV() error = %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("DecodeCSV() = %v, want none", recs)
	}
}

func TestEncodeCSV_Unknown(t *testing.T) {
	recs := []Rec{exportRecs()[0], New()}
	var buf bytes.Buffer
	err := EncodeCSV(&buf, recs)
	if err == nil {
		t.Fatal("EncodeCSV() error = nil, want error for Unknown record")
	}
	if !strings.Contains(err.Error(), "record 1") {
		t.Errorf("EncodeCSV() error = %q, want it to name record 1", err)
	}
}

func TestDecodeError(t *testing.T) {
	inner := errors.New("boom")
	err := &DecodeError{Field: "Type", Value: "x", Err: inner}
	if got, want := err.Error(), `invalid Type "x": boom`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	err.Row = 4
	if got, want := err.Error(), `row 4: invalid Type "x": boom`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, inner) {
		t.Errorf("errors.Is(err, inner) = false")
	}
	if !errors.Is(DecodeErrors{err}, inner) {
		t.Errorf("errors.Is(DecodeErrors, inner) = false")
	}
}

// TestDecodeCSV_WrongWidth checks that a row with a wrong number of cells is
// reported alone and does not hide the rows around it.
func TestDecodeCSV_WrongWidth(t *testing.T) {
	tests := []struct {
		name string
		row  string
		err  string
	}{
		{"short", "Trade,1,ETH,3123.00,USD,,,binance.us,,1970-01-01 00:00:00", "got 10 cells, want 11"},
		{"long", "Trade,1,ETH,3123.00,USD,,,binance.us,,,1970-01-01 00:00:00,extra", "got 12 cells, want 11"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := strings.Join(Header, ",") + "\n" +
				"Deposit,5125,USD,,,,,binance.us,,,1970-01-01 00:00:00\n" +
				tt.row + "\n" +
				"Deposit,100,USD,,,,,binance.us,,,1970-01-01 00:00:01\n"
			recs, err := DecodeCSV(strings.NewReader(input))

			var errs DecodeErrors
			if !errors.As(err, &errs) {
				t.Fatalf("DecodeCSV() error = %v, want DecodeErrors", err)
			}
			if len(errs) != 1 {
				t.Fatalf("DecodeCSV() errors = %v, want 1", errs)
			}
			if e := errs[0]; e.Row != 2 || e.Field != "row" || e.Value != tt.row || e.Err.Error() != tt.err {
				t.Errorf("DecodeError = {Row: %d, Field: %q, Value: %q, Err: %v}, want {2, \"row\", %q, %s}", e.Row, e.Field, e.Value, e.Err, tt.row, tt.err)
			}
			if len(recs) != 2 || !recs[0].BuyAmount.Equal(A(5125)) || !recs[1].BuyAmount.Equal(A(100)) {
				t.Errorf("DecodeCSV() = %v, want both Deposit records", recs)
			}
		})
	}
}
