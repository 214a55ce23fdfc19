package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tokentax"
	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
)

type fmtCmd struct {
	output string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "sorts and formats the book file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `ttr fmt [-o <file>]

  Reads all records of the book, sorts them chronologically (the other fields
  break ties) and writes them back in canonical form. The format follows the
  file extension (.csv or .jsonl).
  The book is rewritten in place unless -o is given. Nothing is written if a
  row cannot be decoded.

Usage Examples:
$ ttr -book binance.csv fmt
$ ttr -book binance.csv fmt -o sorted.csv
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Output file, the book itself by default.")
}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, ok := decodeStrictBook()
	if !ok {
		return subcommands.ExitFailure
	}

	output := p.output
	if output == "" {
		output = *bookFile
	}
	if err := tokentax.SaveBook(output, book); err != nil {
		log.Error(err)
		return subcommands.ExitFailure
	}
	log.Infof("formatted %d records into %q", book.Len(), output)
	return subcommands.ExitSuccess
}
