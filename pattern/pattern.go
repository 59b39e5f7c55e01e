package pattern

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/poiesic/textsearch/core"
)

// softSep matches zero or more whitespace characters. Zero, not one: a
// pdf-to-text pass can drop a space just as easily as it can insert one.
const softSep = `\s*`

// Source transforms a literal into regex pattern source.
//
// Transform rules:
//   - Regex metacharacters in the literal are escaped and matched verbatim.
//   - Leading and trailing whitespace is trimmed.
//   - Each internal whitespace run becomes a single soft separator
//     matching zero or more whitespace characters, so "A  B" and "A B"
//     compile identically.
//   - A soft separator is also inserted between consecutive CJK characters
//     and at CJK/non-CJK boundaries, whether or not the literal contains
//     whitespace there.
//   - No separators are inserted between ordinary adjacent characters;
//     doing so would explode both the false-positive rate and the
//     backtracking cost.
//
// Returns core.ErrInvalidLiteral if the literal is empty or all whitespace.
func Source(literal string) (string, error) {
	var b strings.Builder
	var word []rune
	wrote := false

	flush := func() {
		if len(word) == 0 {
			return
		}
		if wrote {
			b.WriteString(softSep)
		}
		b.WriteString(regexp.QuoteMeta(string(word)))
		word = word[:0]
		wrote = true
	}

	for _, r := range literal {
		switch {
		case unicode.IsSpace(r):
			flush()
		case isCJK(r):
			// Each CJK character is its own segment.
			flush()
			word = append(word, r)
			flush()
		default:
			word = append(word, r)
		}
	}
	flush()

	if !wrote {
		return "", core.ErrInvalidLiteral
	}
	return b.String(), nil
}

// isCJK reports whether r is a CJK ideograph or Japanese kana, the ranges
// extraction tools are known to split arbitrarily.
func isCJK(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FA5) || (r >= 0x3040 && r <= 0x30FF)
}

// Option configures literal compilation.
type Option func(*options)

type options struct {
	caseInsensitive bool
}

// CaseInsensitive makes the compiled matcher ignore letter case.
// The default is case-sensitive matching.
func CaseInsensitive() Option {
	return func(o *options) {
		o.caseInsensitive = true
	}
}

// Matcher performs unanchored substring search for one compiled literal.
// A Matcher is immutable after construction and safe for concurrent use.
type Matcher struct {
	re     *regexp.Regexp
	source string
}

// Compile builds a whitespace-tolerant matcher for the literal.
// Returns core.ErrInvalidLiteral if the literal is empty or all whitespace.
func Compile(literal string, opts ...Option) (*Matcher, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	source, err := Source(literal)
	if err != nil {
		return nil, err
	}

	expr := source
	if o.caseInsensitive {
		expr = "(?i)" + source
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}

	return &Matcher{re: re, source: source}, nil
}

// MatchString reports whether the literal occurs anywhere in text.
func (m *Matcher) MatchString(text string) bool {
	return m.re.MatchString(text)
}

// FindIndex returns the byte offsets of the first occurrence in text.
// ok is false when the literal does not occur.
func (m *Matcher) FindIndex(text string) (start, end int, ok bool) {
	loc := m.re.FindStringIndex(text)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

// String returns the pattern source the matcher was built from.
func (m *Matcher) String() string {
	return m.source
}
