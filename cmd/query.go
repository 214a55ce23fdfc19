package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/tokentax"
	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
)

type queryCmd struct {
	path string
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluates a JSONPath expression over the records" }
func (*queryCmd) Usage() string {
	return `ttr query -path <jsonpath>

  Evaluates a JSONPath expression over the array of records, in their JSON
  form (the keys are the CSV column names), and prints the result as JSON.

Usage Examples:
$ ttr query -path '$[?(@.Type == "Trade")].BuyCurrency'
$ ttr query -path '$[-1:].Date'
`
}

func (p *queryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.path, "path", "$", "JSONPath expression, '$' is the array of records.")
}

func (p *queryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := decodeBook()
	if err != nil {
		reportDecodeErrors(err)
		if book == nil {
			return subcommands.ExitFailure
		}
	}

	result, err := queryRecs(ctx, p.path, book.Slice())
	if err != nil {
		log.Error(err)
		return subcommands.ExitFailure
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Errorf("cannot print result: %v", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, string(out))
	return subcommands.ExitSuccess
}

// queryRecs evaluates path over the JSON array of records.
func queryRecs(ctx context.Context, path string, recs []tokentax.Rec) (any, error) {
	if recs == nil {
		recs = []tokentax.Rec{}
	}
	data, err := json.Marshal(recs)
	if err != nil {
		return nil, fmt.Errorf("cannot marshal records: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("cannot read records back: %w", err)
	}

	eval, err := jsonpath.New(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", path, err)
	}
	jval, err := eval(ctx, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return jval, nil
}
