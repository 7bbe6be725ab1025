// Package sanitize strips citation artifacts that language-model generators
// leave in outgoing message text.
package sanitize

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Default citation delimiters. Bracket markers look like 【4:0†source】; cite
// markers wrap a "cite" payload in the private-use code points U+E200 and
// U+E201, with U+E202 separating its parts.
const (
	DefaultBracketOpen  = "【"
	DefaultBracketClose = "】"
	DefaultCiteOpen     = "\ue200"
	DefaultCiteClose    = "\ue201"
)

var (
	numericMarker = regexp.MustCompile(`\[\d+\]`)
	spaceRun      = regexp.MustCompile(`  +`)
)

// Delimiters configures the marker spans removed by a Sanitizer.
type Delimiters struct {
	BracketOpen  string
	BracketClose string
	CiteOpen     string
	CiteClose    string
}

// DefaultDelimiters returns the delimiters seen in upstream output samples.
func DefaultDelimiters() Delimiters {
	return Delimiters{
		BracketOpen:  DefaultBracketOpen,
		BracketClose: DefaultBracketClose,
		CiteOpen:     DefaultCiteOpen,
		CiteClose:    DefaultCiteClose,
	}
}

// Validate reports empty or identical open/close pairs.
func (d Delimiters) Validate() error {
	var errs []error
	if d.BracketOpen == "" || d.BracketClose == "" {
		errs = append(errs, errors.New("sanitize: bracket delimiters must not be empty"))
	} else if d.BracketOpen == d.BracketClose {
		errs = append(errs, errors.New("sanitize: bracket open and close delimiters must differ"))
	}
	if d.CiteOpen == "" || d.CiteClose == "" {
		errs = append(errs, errors.New("sanitize: cite delimiters must not be empty"))
	} else if d.CiteOpen == d.CiteClose {
		errs = append(errs, errors.New("sanitize: cite open and close delimiters must differ"))
	}
	return errors.Join(errs...)
}

// Sanitizer removes citation markers from text. It is immutable and safe for
// concurrent use.
type Sanitizer struct {
	markers []*regexp.Regexp
}

// New compiles a Sanitizer for the given delimiters.
func New(d Delimiters) (*Sanitizer, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	bracket, err := regexp.Compile(regexp.QuoteMeta(d.BracketOpen) + `[^` + classQuote(d.BracketClose) + `]*` + regexp.QuoteMeta(d.BracketClose))
	if err != nil {
		return nil, fmt.Errorf("sanitize: bracket pattern: %w", err)
	}
	cite, err := regexp.Compile(regexp.QuoteMeta(d.CiteOpen) + `cite.*?` + regexp.QuoteMeta(d.CiteClose))
	if err != nil {
		return nil, fmt.Errorf("sanitize: cite pattern: %w", err)
	}

	return &Sanitizer{markers: []*regexp.Regexp{bracket, cite, numericMarker}}, nil
}

// Default returns a Sanitizer using DefaultDelimiters.
func Default() *Sanitizer {
	s, err := New(DefaultDelimiters())
	if err != nil {
		panic(err)
	}
	return s
}

// Strip removes bracketed, cite and [n] markers, collapses runs of spaces and
// trims surrounding whitespace. Removal repeats until no marker is left, so
// Strip(Strip(s)) == Strip(s).
func (s *Sanitizer) Strip(text string) string {
	for {
		before := text
		for _, re := range s.markers {
			text = re.ReplaceAllString(text, "")
		}
		if text == before {
			break
		}
	}
	text = spaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

var defaultSanitizer = Default()

// Strip sanitizes text with the default delimiters.
func Strip(text string) string {
	return defaultSanitizer.Strip(text)
}

// classQuote escapes s for use inside a regexp character class. A multi-rune
// close delimiter only excludes its runes individually.
func classQuote(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\', ']', '[', '^', '-':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
