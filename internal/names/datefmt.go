package names

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
)

// dateSpecifiers are the single-letter strftime tokens accepted after '@'.
const dateSpecifiers = "YCyqmbBdaAwuUWGgVjDxFvHIPpMSfRTXrZz+s"

var dateFormats = mustDateFormats()

func isDateSpecifier(r rune) bool {
	_, ok := dateFormats[r]
	return ok
}

// writeDateField formats t using the single strftime token spec.
func writeDateField(w io.Writer, spec rune, t time.Time) error {
	f, ok := dateFormats[spec]
	if !ok {
		return fmt.Errorf("no date format for %q", spec)
	}
	return f.Format(w, t)
}

// dateExtensions covers the tokens strftime does not ship.
func dateExtensions() map[byte]strftime.Appender {
	return map[byte]strftime.Appender{
		'q': strftime.AppendFunc(func(b []byte, t time.Time) []byte {
			return strconv.AppendInt(b, int64(t.Month()-1)/3+1, 10)
		}),
		'G': strftime.AppendFunc(func(b []byte, t time.Time) []byte {
			year, _ := t.ISOWeek()
			return append(b, fmt.Sprintf("%04d", year)...)
		}),
		'g': strftime.AppendFunc(func(b []byte, t time.Time) []byte {
			year, _ := t.ISOWeek()
			return append(b, fmt.Sprintf("%02d", year%100)...)
		}),
		'P': strftime.AppendFunc(func(b []byte, t time.Time) []byte {
			return append(b, strings.ToLower(t.Format("PM"))...)
		}),
		'f': strftime.AppendFunc(func(b []byte, t time.Time) []byte {
			return append(b, fmt.Sprintf("%09d", t.Nanosecond())...)
		}),
		'+': strftime.AppendFunc(func(b []byte, t time.Time) []byte {
			b = t.AppendFormat(b, "2006-01-02T15:04:05")
			b = appendFraction(b, t.Nanosecond())
			return t.AppendFormat(b, "-07:00")
		}),
		's': strftime.AppendFunc(func(b []byte, t time.Time) []byte {
			return strconv.AppendInt(b, t.Unix(), 10)
		}),
	}
}

func mustDateFormats() map[rune]*strftime.Strftime {
	set := strftime.NewSpecificationSet()
	for c, a := range dateExtensions() {
		if err := set.Set(c, a); err != nil {
			panic(fmt.Sprintf("names: register date token %q: %v", c, err))
		}
	}

	formats := make(map[rune]*strftime.Strftime, len(dateSpecifiers))
	for _, spec := range dateSpecifiers {
		f, err := strftime.New("%"+string(spec), strftime.WithSpecificationSet(set))
		if err != nil {
			panic(fmt.Sprintf("names: compile date token %q: %v", spec, err))
		}
		formats[spec] = f
	}
	return formats
}

// appendFraction writes ns as a dot and 3, 6 or 9 digits, the shortest that
// is exact. Whole seconds get no fraction.
func appendFraction(b []byte, ns int) []byte {
	switch {
	case ns == 0:
		return b
	case ns%1_000_000 == 0:
		return append(b, fmt.Sprintf(".%03d", ns/1_000_000)...)
	case ns%1_000 == 0:
		return append(b, fmt.Sprintf(".%06d", ns/1_000)...)
	default:
		return append(b, fmt.Sprintf(".%09d", ns)...)
	}
}
