// Package locale formats the numbers shown by the calendar (day labels,
// years) for a display language and maps localized digits typed by the
// user back to ASCII.
package locale

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Formatter prints numbers using the digits of a language.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Formatter for the BCP 47 tag s. An empty tag selects English.
func New(s string) (*Formatter, error) {
	tag := language.English
	if s = strings.TrimSpace(s); s != "" {
		t, err := language.Parse(s)
		if err != nil {
			return nil, err
		}
		tag = t
	}
	return &Formatter{tag: tag, printer: message.NewPrinter(tag)}, nil
}

// Tag returns the language of f.
func (f *Formatter) Tag() language.Tag { return f.tag }

// Int formats n without grouping separators so years read as 2024, not 2,024.
func (f *Formatter) Int(n int) string {
	return f.printer.Sprint(number.Decimal(n, number.NoSeparator()))
}

// digitZeros lists the zero of each digit block NormalizeDigits understands.
var digitZeros = []rune{
	'\u0660', // Arabic-Indic
	'\u06F0', // Extended Arabic-Indic (Persian, Urdu)
	'\u0966', // Devanagari
	'\u09E6', // Bengali
	'\u0E50', // Thai
	'\uFF10', // fullwidth
}

var asciiDigits = runes.Map(func(r rune) rune {
	if r <= unicode.MaxASCII {
		return r
	}
	for _, zero := range digitZeros {
		if r >= zero && r <= zero+9 {
			return '0' + (r - zero)
		}
	}
	return r
})

// NormalizeDigits returns s with localized digits replaced by ASCII digits.
func NormalizeDigits(s string) string {
	out, _, err := transform.String(asciiDigits, s)
	if err != nil {
		return s
	}
	return out
}
