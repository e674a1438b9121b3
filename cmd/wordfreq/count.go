package main

import (
	"bufio"
	"io"
	"iter"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/anacrolix/multiless"
	"github.com/pkg/errors"

	"github.com/anacrolix/patina/hashmap"
	"github.com/anacrolix/patina/option"
	"github.com/anacrolix/patina/result"
)

const stdinName = "-"

// Yields each named input, opened lazily. No names means stdin.
func openInputs(names []string) iter.Seq2[string, result.T[io.ReadCloser, error]] {
	return func(yield func(string, result.T[io.ReadCloser, error]) bool) {
		if len(names) == 0 {
			yield(stdinName, result.Ok[io.ReadCloser, error](io.NopCloser(os.Stdin)))
			return
		}
		for _, name := range names {
			if name == stdinName {
				if !yield(name, result.Ok[io.ReadCloser, error](io.NopCloser(os.Stdin))) {
					return
				}
				continue
			}
			opened := result.Map(result.From(os.Open(name)), func(f *os.File) io.ReadCloser {
				return f
			})
			if !yield(name, opened) {
				return
			}
		}
	}
}

// Returns the word with surrounding punctuation removed, or None if nothing is left.
func normalizeWord(word string, lower bool) option.T[string] {
	word = strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if lower {
		word = strings.ToLower(word)
	}
	return option.Some(word).Filter(func(s string) bool { return s != "" })
}

// Adds the words in r to counts, and returns how many were added.
func countWords(r io.Reader, lower bool, counts *hashmap.Map[string, int]) (n int, err error) {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	for s.Scan() {
		if word, ok := normalizeWord(s.Text(), lower).Get(); ok {
			*counts.Entry(word).OrInsert(0)++
			n++
		}
	}
	err = s.Err()
	return
}

// countInput is countWords followed by closing rc. The close error is returned if counting
// succeeded.
func countInput(rc io.ReadCloser, lower bool, counts *hashmap.Map[string, int]) (n int, err error) {
	defer func() {
		closeErr := rc.Close()
		if err == nil {
			err = errors.Wrap(closeErr, "closing")
		}
	}()
	return countWords(rc, lower, counts)
}

// Returns up to top word counts, highest count first, then alphabetically. top of 0 means no limit.
func mostFrequent(counts *hashmap.Map[string, int], top, minCount int) (ret []option.Pair[string, int]) {
	for word, count := range counts.All() {
		if count >= minCount {
			ret = append(ret, option.NewPair(word, count))
		}
	}
	sort.Slice(ret, func(i, j int) bool {
		l, r := ret[i], ret[j]
		return multiless.New().Int(
			r.Right, l.Right,
		).Cmp(
			strings.Compare(l.Left, r.Left),
		).Less()
	})
	if top > 0 && len(ret) > top {
		ret = ret[:top]
	}
	return
}
