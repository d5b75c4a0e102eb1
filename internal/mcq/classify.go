package mcq

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Kind tells which of the four line shapes a line has.
type Kind int

const (
	KindText Kind = iota // continuation or unclassified
	KindQuestion
	KindAnswer
	KindOption
)

func (k Kind) String() string {
	switch k {
	case KindQuestion:
		return "question"
	case KindAnswer:
		return "answer"
	case KindOption:
		return "option"
	default:
		return "text"
	}
}

// Line is a classified input line.
//
//	KindQuestion: ID, Text (header remainder)
//	KindAnswer:   Letter (uppercase)
//	KindOption:   Letter (as written), Text (remainder)
//	KindText:     nothing beyond Raw
type Line struct {
	Kind   Kind
	Raw    string // trimmed line
	ID     int
	Letter string
	Text   string
}

// Separators accept Unicode spaces (NBSP is common in extracted PDF text)
// as well as ASCII whitespace.
var (
	questionRe = regexp.MustCompile(`^(\d+)[.)][\s\p{Z}\x{FEFF}]+(.+)`)
	answerRe   = regexp.MustCompile(`(?i)^Answer:[\s\p{Z}\x{FEFF}]*([A-D])`)
	optionRe   = regexp.MustCompile(`^([A-Da-d])[.)][\s\p{Z}\x{FEFF}]+(.+)`)
)

func isSpace(r rune) bool { return unicode.IsSpace(r) || unicode.Is(unicode.Zs, r) || r == '\uFEFF' }

// Trim strips leading and trailing whitespace, including Unicode spaces and
// byte order marks.
func Trim(s string) string { return strings.TrimFunc(s, isSpace) }

// Classify decides the kind of a single line. Checks run in a fixed order:
// question header, answer marker, option header; anything else is text.
func Classify(line string) Line {
	raw := Trim(line)
	l := Line{Kind: KindText, Raw: raw}

	if m := questionRe.FindStringSubmatch(raw); m != nil {
		// ids too large for int fall through and are treated as text
		if id, err := strconv.Atoi(m[1]); err == nil {
			l.Kind = KindQuestion
			l.ID = id
			l.Text = m[2]
			return l
		}
	}
	if m := answerRe.FindStringSubmatch(raw); m != nil {
		l.Kind = KindAnswer
		l.Letter = strings.ToUpper(m[1])
		return l
	}
	if m := optionRe.FindStringSubmatch(raw); m != nil {
		l.Kind = KindOption
		l.Letter = m[1]
		l.Text = m[2]
		return l
	}
	return l
}
