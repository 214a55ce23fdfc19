package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/tokentax"
	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
)

type checkCmd struct{}

func (*checkCmd) Name() string { return "check" }
func (*checkCmd) Synopsis() string {
	return "reports every row that cannot be decoded or interpreted"
}
func (*checkCmd) Usage() string {
	return `ttr check

  Decodes every row of the book and checks that each record can be
  interpreted: a valid type and the amount its type requires (BuyAmount for
  Trade, Deposit, Income and Mining, SellAmount otherwise).
  All problems are reported, the command fails if there is any.
`
}

func (p *checkCmd) SetFlags(f *flag.FlagSet) {}

func (p *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := decodeBook()
	failed := false
	if err != nil {
		reportDecodeErrors(err)
		failed = true
	}
	if book == nil {
		return subcommands.ExitFailure
	}

	for i, r := range book.Recs() {
		if err := r.Validate(); err != nil {
			log.WithField("record", i).Errorf("%v: %v", err, r)
			failed = true
		}
	}
	if failed {
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "✅ %d records, %d assets: %v\n", book.Len(), len(book.Assets()), book.Assets())
	if book.Len() > 0 {
		fmt.Fprintf(stdout, "from %s to %s\n", tokentax.FormatTime(book.Oldest()), tokentax.FormatTime(book.Newest()))
	}
	return subcommands.ExitSuccess
}
