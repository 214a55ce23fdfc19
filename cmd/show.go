package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tokentax"
	"github.com/etnz/tokentax/renderer"
	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
)

type showCmd struct {
	asset    string
	typ      string
	exchange string
	raw      bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the records of the book as a table" }
func (*showCmd) Usage() string {
	return `ttr show [-asset <currency>] [-type <type>] [-exchange <name>] [-raw]

  Displays the records in chronological order, each one seen from its asset:
  the currency it is about, its quantity and the counterpart currency.
`
}

func (p *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.asset, "asset", "", "Only show records about this asset.")
	f.StringVar(&p.typ, "type", "", "Only show records of this type (Trade, Deposit, ...).")
	f.StringVar(&p.exchange, "exchange", "", "Only show records from this exchange.")
	f.BoolVar(&p.raw, "raw", false, "Print markdown instead of rendering it.")
}

func (p *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var filters []func(tokentax.Rec) bool
	if p.typ != "" {
		t, err := tokentax.ParseRecType(p.typ)
		if err != nil {
			log.Error(err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, tokentax.ByType(t))
	}
	if p.asset != "" {
		filters = append(filters, tokentax.ByAsset(p.asset))
	}
	if p.exchange != "" {
		filters = append(filters, tokentax.ByExchange(p.exchange))
	}

	book, err := decodeBook()
	if err != nil {
		// show what could be decoded anyway.
		reportDecodeErrors(err)
		if book == nil {
			return subcommands.ExitFailure
		}
	}
	return printMarkdown(renderer.RecordsMarkdown(book, filters...), p.raw)
}
