// Counts word frequencies in files or stdin, most frequent first.
//
// Example run:
// $ go run ./cmd/wordfreq -n 3 --lower README.md
// 1,024	the
// 512	a
// 377	to
package main

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/anacrolix/envpprof"
	"github.com/anacrolix/log"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/anacrolix/patina/hashmap"
	"github.com/anacrolix/patina/result"
)

var logger = log.Default.WithNames("wordfreq")

var flags = struct {
	Top      int      `arg:"-n,--top,env:WORDFREQ_TOP" help:"only print the N most frequent words, 0 for all"`
	MinCount int      `arg:"--min-count" default:"1" help:"omit words seen fewer times than this"`
	Lower    bool     `help:"fold words to lower case before counting"`
	Files    []string `arg:"positional" help:"files to read, stdin if none are given"`
}{}

func main() {
	defer envpprof.Stop()
	if err := mainErr(); err != nil {
		logger.Levelf(log.Error, "error in main: %v", err)
		os.Exit(1)
	}
}

func mainErr() error {
	arg.MustParse(&flags)
	var counts hashmap.Map[string, int]
	var read, failed int
	for name, input := range openInputs(flags.Files) {
		rc, err := result.Unpack(input)
		if err != nil {
			logger.Levelf(log.Warning, "skipping %q: %v", name, err)
			failed++
			continue
		}
		n := result.From(countInput(rc, flags.Lower, &counts))
		words, err := result.Unpack(n)
		if err != nil {
			return errors.Wrapf(err, "reading %q", name)
		}
		logger.Levelf(log.Debug, "counted %v words in %q", words, name)
		read++
	}
	if read == 0 && failed != 0 {
		return errors.New("no readable inputs")
	}
	for _, wc := range mostFrequent(&counts, flags.Top, flags.MinCount) {
		fmt.Printf("%s\t%s\n", humanize.Comma(int64(wc.Right)), wc.Left)
	}
	return nil
}
