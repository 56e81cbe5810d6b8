package names

import (
	"errors"
	"fmt"
)

// ErrEmptyWordList is returned when a word-list file holds no non-empty lines.
var ErrEmptyWordList = errors.New("word list is empty")

// ErrInvalidUTF8 is returned for templates that are not valid UTF-8. Nothing
// is written in that case.
var ErrInvalidUTF8 = errors.New("template is not valid UTF-8")

// IOError wraps a failed read of a word-list file or a failed write to the
// output sink. Op is "load" or "write"; Path is set for loads only.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// UnknownSpecifierError reports an escape that parsed but names no expansion.
type UnknownSpecifierError struct {
	Symbol    rune
	Specifier rune
}

func (e *UnknownSpecifierError) Error() string {
	return fmt.Sprintf("unknown specifier '%c%c'", e.Symbol, e.Specifier)
}

// TrailingSymbolError reports an introducer at the end of the template with
// no specifier after it.
type TrailingSymbolError struct {
	Symbol rune
}

func (e *TrailingSymbolError) Error() string {
	return fmt.Sprintf("trailing symbol '%c'", e.Symbol)
}
