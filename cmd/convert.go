package cmd

import (
	"context"
	"flag"
	"path/filepath"

	"github.com/etnz/tokentax"
	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
)

type convertCmd struct {
	output string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "converts the book between CSV and JSONL" }
func (*convertCmd) Usage() string {
	return `ttr convert -o <file>

  Writes all records of the book into another file. Formats follow the file
  extensions (.csv or .jsonl), records are sorted.

Usage Examples:
$ ttr -book binance.csv convert -o binance.jsonl
`
}

func (p *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Output file (.csv or .jsonl).")
}

func (p *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.output == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	if filepath.Clean(p.output) == filepath.Clean(*bookFile) {
		log.Errorf("output %q is the book itself, use fmt instead", p.output)
		return subcommands.ExitUsageError
	}

	book, ok := decodeStrictBook()
	if !ok {
		return subcommands.ExitFailure
	}
	if err := tokentax.SaveBook(p.output, book); err != nil {
		log.Error(err)
		return subcommands.ExitFailure
	}
	log.Infof("converted %d records from %q to %q", book.Len(), *bookFile, p.output)
	return subcommands.ExitSuccess
}
