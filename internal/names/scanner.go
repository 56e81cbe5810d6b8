package names

import "math"

const (
	// WordSymbol introduces word and random-run escapes.
	WordSymbol = '%'
	// DateSymbol introduces date-field escapes.
	DateSymbol = '@'

	reverseFlag = '-'
)

// Escape is one parsed escape sequence.
type Escape struct {
	Symbol    rune
	Reverse   bool
	Width     int
	HasWidth  bool
	Specifier rune
}

func isSymbol(r rune) bool {
	return r == WordSymbol || r == DateSymbol
}

// cursor walks a template one rune at a time with single-rune lookahead.
type cursor struct {
	runes []rune
	pos   int
}

func newCursor(template string) *cursor {
	return &cursor{runes: []rune(template)}
}

func (c *cursor) peek() (rune, bool) {
	if c.pos >= len(c.runes) {
		return 0, false
	}
	return c.runes[c.pos], true
}

func (c *cursor) next() (rune, bool) {
	r, ok := c.peek()
	if ok {
		c.pos++
	}
	return r, ok
}

func (c *cursor) done() bool {
	return c.pos >= len(c.runes)
}

// scanEscape parses an escape at the cursor. It reports false, leaving the
// cursor untouched, when the next rune is not an introducer. On success the
// cursor is left just past the specifier.
func scanEscape(c *cursor) (Escape, bool, error) {
	symbol, ok := c.peek()
	if !ok || !isSymbol(symbol) {
		return Escape{}, false, nil
	}
	c.next()

	esc := Escape{Symbol: symbol}

	if r, ok := c.peek(); ok && r == reverseFlag {
		c.next()
		esc.Reverse = true
	}

	for {
		r, ok := c.peek()
		if !ok || r < '0' || r > '9' {
			break
		}
		c.next()
		digit := int(r - '0')
		if esc.Width > (math.MaxInt-digit)/10 {
			esc.Width = math.MaxInt
		} else {
			esc.Width = esc.Width*10 + digit
		}
		esc.HasWidth = true
	}

	spec, ok := c.next()
	if !ok {
		return Escape{}, true, &TrailingSymbolError{Symbol: symbol}
	}
	esc.Specifier = spec

	return esc, true, nil
}
