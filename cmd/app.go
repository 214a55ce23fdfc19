// Package cmd implements the CLI application to manage TokenTax books.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/tokentax"
	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

const (
	EnvBook    = "TTR_BOOK"
	EnvVerbose = "TTR_VERBOSE"
)

var (
	bookFile = flag.String("book", envOr(EnvBook, "tokentax.csv"), "Path to the book file (.csv or .jsonl)")
	Verbose  = flag.Bool("v", os.Getenv(EnvVerbose) != "", "Verbose logging")
)

// stdout is where commands write their results.
var stdout io.Writer = os.Stdout

// Commands lists all the subcommands, a main package registers them.
var Commands = []subcommands.Command{
	&fmtCmd{},
	&checkCmd{},
	&showCmd{},
	&convertCmd{},
	&queryCmd{},
	&topicCmd{},
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Setup configures outputs and logging from the global flags. Call it after flag.Parse.
func Setup() {
	stdout = os.Stdout
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if *Verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// BookFile returns the path of the book selected on the command line.
func BookFile() string { return *bookFile }

// decodeBook loads the book file. If some rows could not be decoded, the
// book holds the others and the error is a tokentax.DecodeErrors.
func decodeBook() (*tokentax.Book, error) {
	log.Debugf("loading book %q", *bookFile)
	b, err := tokentax.LoadBook(*bookFile)
	if b != nil {
		log.Debugf("loaded %d records from %q", b.Len(), *bookFile)
	}
	return b, err
}

// decodeStrictBook loads the book file and fails on any decode error, so
// that commands rewriting files never drop a row.
func decodeStrictBook() (*tokentax.Book, bool) {
	b, err := decodeBook()
	if err != nil {
		reportDecodeErrors(err)
		return nil, false
	}
	return b, true
}

// reportDecodeErrors logs every row error, or the error itself.
func reportDecodeErrors(err error) {
	var derrs tokentax.DecodeErrors
	if !errors.As(err, &derrs) {
		log.Error(err)
		return
	}
	for _, e := range derrs {
		log.WithFields(log.Fields{"row": e.Row, "field": e.Field, "value": e.Value}).Error(e.Err)
	}
	log.Errorf("%d rows could not be decoded in %q", len(derrs), *bookFile)
}

// printMarkdown renders markdown for the terminal, or prints it unchanged if raw.
func printMarkdown(md string, raw bool) subcommands.ExitStatus {
	if raw {
		fmt.Fprint(stdout, md)
		return subcommands.ExitSuccess
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(160))
	if err != nil {
		log.Errorf("cannot create markdown renderer: %v", err)
		return subcommands.ExitFailure
	}
	out, err := r.Render(md)
	if err != nil {
		log.Errorf("cannot render markdown: %v", err)
		return subcommands.ExitFailure
	}
	fmt.Fprint(stdout, out)
	return subcommands.ExitSuccess
}
