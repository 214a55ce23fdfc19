// Command ttr manages TokenTax books: CSV or JSONL files of exchange records.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/tokentax"
	"github.com/etnz/tokentax/cmd"
	"github.com/etnz/tokentax/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	os.Exit(run())
}

func run() int {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	// shell completion, when invoked by the shell.
	completion().Complete(name)

	flag.Parse()
	cmd.Setup()
	return int(commander.Execute(context.Background()))
}

// completion builds the completion tree from the commands and their flags.
func completion() *complete.Command {
	books := predict.Or(predict.Files("*.csv"), predict.Files("*.jsonl"))
	root := &complete.Command{
		Sub: map[string]*complete.Command{
			"help":  {},
			"flags": {},
		},
		Flags: map[string]complete.Predictor{
			"book": books,
			"v":    predict.Nothing,
		},
	}
	for _, c := range cmd.Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs.VisitAll(func(f *flag.Flag) {
			switch f.Name {
			case "o":
				sub.Flags[f.Name] = books
			case "type":
				sub.Flags[f.Name] = predict.Set(recTypeNames())
			case "raw":
				sub.Flags[f.Name] = predict.Nothing
			default:
				sub.Flags[f.Name] = predict.Something
			}
		})
		if c.Name() == "topic" {
			topics, _ := docs.GetAllTopics()
			sub.Args = predict.Set(append(topics, "*"))
		}
		root.Sub[c.Name()] = sub
	}
	return root
}

func recTypeNames() []string {
	names := make([]string, 0, len(tokentax.RecTypes))
	for _, t := range tokentax.RecTypes {
		names = append(names, t.String())
	}
	return names
}
