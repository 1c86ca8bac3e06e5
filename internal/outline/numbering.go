package outline

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dgallion1/docoutline/internal/doctree"
)

// TokenKind identifies which numbering scheme prefixed a heading.
//
//	AppendixToken = "Appendix" Space CapitalLetter
//	DecimalToken  = Digit+ ("." Digit+)*
//	LetterToken   = CapitalLetter
//
// Any token may be followed by one of ". : -". A token must end at a word
// boundary: "Introduction" does not start with the letter token "I".
type TokenKind int

const (
	NoToken TokenKind = iota
	AppendixToken
	DecimalToken
	LetterToken
)

func (k TokenKind) String() string {
	switch k {
	case AppendixToken:
		return "appendix"
	case DecimalToken:
		return "decimal"
	case LetterToken:
		return "letter"
	}
	return "none"
}

// Numbering is a recognized numbering prefix.
type Numbering struct {
	Kind  TokenKind
	Token string // the numbering token, without separator
	Rest  string // the heading text after token and separator, trimmed
}

// Level maps the numbering to a heading level: appendices are H1, decimal
// sequences nest one level per dot up to H4.
func (n Numbering) Level() doctree.Level {
	if n.Kind == AppendixToken {
		return doctree.H1
	}
	return doctree.Level(min(strings.Count(n.Token, ".")+1, int(doctree.H4)))
}

// ParseNumbering matches a numbering token at the start of s.
func ParseNumbering(s string) (Numbering, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	kind, n := matchAppendix(s), 0
	if kind != NoToken {
		n = len("Appendix") + spaceWidth(s[len("Appendix"):]) + 1
	} else if n = matchDecimal(s); n > 0 {
		kind = DecimalToken
	} else if len(s) > 0 && isUpperASCII(s[0]) {
		kind, n = LetterToken, 1
	}
	if kind == NoToken || !atBoundary(s[n:]) {
		return Numbering{}, false
	}

	token := s[:n]
	rest := strings.TrimLeftFunc(s[n:], unicode.IsSpace)
	if rest != "" && strings.ContainsRune(".:-", rune(rest[0])) {
		rest = rest[1:]
	}
	return Numbering{Kind: kind, Token: token, Rest: strings.TrimSpace(rest)}, true
}

func matchAppendix(s string) TokenKind {
	if !strings.HasPrefix(s, "Appendix") {
		return NoToken
	}
	tail := s[len("Appendix"):]
	w := spaceWidth(tail)
	if w == 0 || len(tail) <= w || !isUpperASCII(tail[w]) {
		return NoToken
	}
	return AppendixToken
}

// matchDecimal returns the byte length of a leading dotted digit sequence.
// A trailing dot with no digits after it is not part of the token.
func matchDecimal(s string) int {
	i := digits(s)
	if i == 0 {
		return 0
	}
	for i < len(s) && s[i] == '.' {
		d := digits(s[i+1:])
		if d == 0 {
			break
		}
		i += 1 + d
	}
	return i
}

func digits(s string) int {
	i := 0
	for i < len(s) && isASCIIDigit(s[i]) {
		i++
	}
	return i
}

// spaceWidth returns the byte width of one leading whitespace rune, or 0.
func spaceWidth(s string) int {
	r, w := utf8.DecodeRuneInString(s)
	if w == 0 || !unicode.IsSpace(r) {
		return 0
	}
	return w
}

func atBoundary(s string) bool {
	if s == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s)
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func isUpperASCII(c byte) bool { return c >= 'A' && c <= 'Z' }
