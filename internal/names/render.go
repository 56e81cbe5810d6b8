package names

import (
	"io"
	"strings"
	"time"
	"unicode/utf8"
)

// Filler pads word expansions up to their width.
const Filler = "."

type expansion int

const (
	expandLiteral expansion = iota
	expandWord
	expandRun
	expandDate
)

// wordCategories maps word specifiers to their list.
var wordCategories = map[rune]string{
	'N': CategoryNoun,
	'A': CategoryAdjective,
	'C': CategoryColor,
}

const (
	decimalDigits = "0123456789"
	lowerHex      = "0123456789abcdef"
	upperHex      = "0123456789ABCDEF"
	lowerLetters  = "abcdefghijklmnopqrstuvwxyz"
	upperLetters  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// runAlphabets maps random-run specifiers to the runes they draw from.
var runAlphabets = map[rune]string{
	'd': decimalDigits,
	'x': lowerHex,
	'X': upperHex,
	'l': lowerLetters,
	'L': upperLetters,
}

// classify picks the expansion family for esc.
func classify(esc Escape) (expansion, error) {
	switch {
	case isSymbol(esc.Specifier):
		return expandLiteral, nil
	case esc.Symbol == WordSymbol && wordCategories[esc.Specifier] != "":
		return expandWord, nil
	case esc.Symbol == WordSymbol && runAlphabets[esc.Specifier] != "":
		return expandRun, nil
	case esc.Symbol == DateSymbol && isDateSpecifier(esc.Specifier):
		return expandDate, nil
	default:
		return 0, &UnknownSpecifierError{Symbol: esc.Symbol, Specifier: esc.Specifier}
	}
}

// Renderer expands templates against a corpus, a randomness source and a
// clock.
//
// The three collaborators are injected so that tests and the --seed flag can
// pin every source of variation: a seeded Source makes word and run output
// reproducible, and a fixed clock does the same for date fields. A Renderer
// is not safe for concurrent use because most Source implementations,
// including *rand.Rand, are not.
type Renderer struct {
	corpus *Corpus
	rng    Source
	clock  func() time.Time
}

// NewRenderer returns a renderer drawing words from corpus and randomness
// from rng. A nil clock means time.Now.
func NewRenderer(corpus *Corpus, rng Source, clock func() time.Time) *Renderer {
	if clock == nil {
		clock = time.Now
	}
	return &Renderer{
		corpus: corpus,
		rng:    rng,
		clock:  clock,
	}
}

// Render writes the expansion of template to w followed by a newline.
//
// Output is streamed: each literal rune and escape is written as soon as it
// is expanded, so nothing proportional to the padding width is buffered.
// The clock is read once, so every date field of one render agrees.
//
// Render stops at the first error and returns it unchanged. Whatever was
// already written stays written and no newline follows. A template that is
// not valid UTF-8 returns ErrInvalidUTF8 before anything is written.
func (r *Renderer) Render(w io.Writer, template string) error {
	if !utf8.ValidString(template) {
		return ErrInvalidUTF8
	}
	now := r.clock()

	c := newCursor(template)
	for !c.done() {
		esc, ok, err := scanEscape(c)
		if err != nil {
			return err
		}
		if !ok {
			ch, _ := c.next()
			if err := write(w, string(ch)); err != nil {
				return err
			}
			continue
		}
		if err := r.expand(w, esc, now); err != nil {
			return err
		}
	}

	return write(w, "\n")
}

// RenderString is Render into a string, without the trailing newline.
func (r *Renderer) RenderString(template string) (string, error) {
	var sb strings.Builder
	if err := r.Render(&sb, template); err != nil {
		return "", err
	}
	return strings.TrimSuffix(sb.String(), "\n"), nil
}

func (r *Renderer) expand(w io.Writer, esc Escape, now time.Time) error {
	kind, err := classify(esc)
	if err != nil {
		return err
	}

	switch kind {
	case expandLiteral:
		return write(w, string(esc.Specifier))
	case expandWord:
		word, err := r.corpus.Get(wordCategories[esc.Specifier], r.rng)
		if err != nil {
			return err
		}
		return writeAligned(w, word, esc)
	case expandRun:
		return r.writeRun(w, runAlphabets[esc.Specifier], esc)
	case expandDate:
		if err := writeDateField(w, esc.Specifier, now); err != nil {
			return &IOError{Op: "write", Err: err}
		}
		return nil
	}
	return &UnknownSpecifierError{Symbol: esc.Symbol, Specifier: esc.Specifier}
}

func (r *Renderer) writeRun(w io.Writer, alphabet string, esc Escape) error {
	n := 1
	if esc.HasWidth {
		n = esc.Width
	}
	for range n {
		i := r.rng.IntN(len(alphabet))
		if err := write(w, alphabet[i:i+1]); err != nil {
			return err
		}
	}
	return nil
}

// writeAligned pads word to esc.Width runes, right-aligned unless the
// reverse flag is set. Longer words are never truncated.
func writeAligned(w io.Writer, word string, esc Escape) error {
	pad := 0
	if esc.HasWidth {
		pad = esc.Width - utf8.RuneCountInString(word)
	}

	if esc.Reverse {
		if err := write(w, word); err != nil {
			return err
		}
		return writeFiller(w, pad)
	}
	if err := writeFiller(w, pad); err != nil {
		return err
	}
	return write(w, word)
}

// fillerChunk bounds the memory used for padding; wide escapes stream the
// filler in pieces of this size.
var fillerChunk = strings.Repeat(Filler, 64)

func writeFiller(w io.Writer, n int) error {
	for n > 0 {
		chunk := fillerChunk
		if n < len(chunk) {
			chunk = chunk[:n]
		}
		if err := write(w, chunk); err != nil {
			return err
		}
		n -= len(chunk)
	}
	return nil
}

func write(w io.Writer, s string) error {
	if s == "" {
		return nil
	}
	if _, err := io.WriteString(w, s); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

// Validate checks template syntax and specifiers without drawing any words,
// random runes or clock readings.
func Validate(template string) error {
	if !utf8.ValidString(template) {
		return ErrInvalidUTF8
	}
	c := newCursor(template)
	for !c.done() {
		esc, ok, err := scanEscape(c)
		if err != nil {
			return err
		}
		if !ok {
			c.next()
			continue
		}
		if _, err := classify(esc); err != nil {
			return err
		}
	}
	return nil
}
