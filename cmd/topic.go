package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tokentax/docs"
	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
)

type topicCmd struct {
	raw bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `ttr topic [-raw] [<topic>...]

  Shows documentation for the given topics, '*' for all of them.
  Without topic, shows the list of topics.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "Print markdown instead of rendering it.")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		log.Errorf("cannot read documentation: %v", err)
		return subcommands.ExitFailure
	}
	return printMarkdown(doc, c.raw)
}
