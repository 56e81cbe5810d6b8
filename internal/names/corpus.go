// Package names renders human-readable names from small format templates.
//
// A template is literal text with escape sequences. An escape is an
// introducer ('%' or '@'), an optional '-' flag, an optional decimal width
// and one specifier rune:
//
//	%N %A %C      random noun, adjective or color from the word-list corpus
//	%d %x %X      random decimal, lower-hex or upper-hex digit
//	%l %L         random lower- or upper-case letter
//	@Y @m @d ...  a field of the current local date/time
//	%% @@ %@ @%   a literal introducer
//
// Word escapes are right-aligned to width with '.' filler; the '-' flag
// left-aligns them. Random runs repeat width times. Date fields ignore both.
//
// TEMPLATE GRAMMAR:
// Scanning is rune based. An introducer as the last rune of a template is a
// TrailingSymbolError; an unsupported specifier is an UnknownSpecifierError.
// Widths saturate instead of overflowing, so an absurd width only costs
// filler output. Templates must be valid UTF-8.
//
// WORD LISTS:
// Word lists are plain files named after their category (noun, adjective,
// color) in a corpus directory, one entry per line, blank lines skipped.
// A Corpus reads each list once, on first reference, and keeps it for the
// life of the process. InitCorpus seeds a directory with starter lists.
//
// RENDER FLOW:
//  1. The template is checked for valid UTF-8
//  2. The clock is read once for the whole render
//  3. Escapes are scanned left to right and written as they expand
//  4. The first error stops the render; earlier output stays written
//
// Validate runs the same scan without touching the corpus, the randomness
// source or the clock, which is what the CLI's --check mode relies on.
package names

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/concave-dev/namegen/internal/logging"
)

// Word-list categories.
const (
	CategoryNoun      = "noun"
	CategoryAdjective = "adjective"
	CategoryColor     = "color"
)

// Categories lists every category a template can reference.
var Categories = []string{CategoryNoun, CategoryAdjective, CategoryColor}

// Source is the randomness a render draws from. *math/rand/v2.Rand
// satisfies it.
type Source interface {
	IntN(n int) int
}

// Corpus is a lazily populated cache of word lists read from one directory.
//
// Each list is read at most once, on the first Get that names it, and its
// entries are never refreshed afterwards. A failed load is not cached, so a
// later Get retries the file. Access is serialized by a mutex, which makes a
// Corpus safe to share between renderers running on different goroutines.
type Corpus struct {
	dir string

	mu    sync.Mutex
	lists map[string][]string
}

// NewCorpus returns an empty corpus reading lists from dir.
func NewCorpus(dir string) *Corpus {
	return &Corpus{
		dir:   dir,
		lists: make(map[string][]string),
	}
}

// Dir returns the directory word lists are read from.
func (c *Corpus) Dir() string {
	return c.dir
}

// Get returns a uniformly random entry of the named list, loading the list
// on first use. Exactly one value is drawn from rng per call.
//
// A missing or unreadable file yields an *IOError carrying the path. A file
// with no non-blank lines yields an error wrapping ErrEmptyWordList.
func (c *Corpus) Get(category string, rng Source) (string, error) {
	list, err := c.list(category)
	if err != nil {
		return "", err
	}
	return list[rng.IntN(len(list))], nil
}

func (c *Corpus) list(category string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if list, ok := c.lists[category]; ok {
		return list, nil
	}

	list, err := readWordList(filepath.Join(c.dir, category))
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%s: %w", category, ErrEmptyWordList)
	}

	logging.Debug("Loaded %d %s entries from %s", len(list), category, c.dir)
	c.lists[category] = list
	return list, nil
}

func readWordList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "load", Path: path, Err: err}
	}
	defer f.Close()

	var entries []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			entries = append(entries, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &IOError{Op: "load", Path: path, Err: err}
	}
	return entries, nil
}
