package metric

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// WindowSize is the number of tokens examined around a unit word.
	WindowSize = 6

	// UnitPosition is the index of the unit word inside a Window. The four
	// tokens before it and the one after it carry the quantity.
	UnitPosition = 4

	// inchesPerFoot is the divisor of the "five foot six" idiom. It is applied
	// whatever unit sits between the two number words.
	inchesPerFoot = 12.0
)

// Window is a fixed slice of tokens with the unit word at UnitPosition.
type Window [WindowSize]string

// WindowAt returns the window whose unit word is tokens[i]: tokens[i-4]
// through tokens[i+1]. Positions outside tokens are left empty, and an
// empty token never reads as a number.
func WindowAt(tokens []string, i int) Window {
	var w Window
	for k := range w {
		j := i - UnitPosition + k
		if j >= 0 && j < len(tokens) {
			w[k] = tokens[j]
		}
	}
	return w
}

// Unit returns the token at UnitPosition.
func (w Window) Unit() string {
	return w[UnitPosition]
}

// Quantity is the value read from a Window. Valid is false when the window
// does not express a number.
type Quantity struct {
	Value float64
	Valid bool
}

// Parser reads numeric quantities out of expression windows. A Parser keeps
// a title-casing transformer between calls and is not safe for concurrent
// use.
type Parser struct {
	words NumberWords
	caser cases.Caser
}

// NewParser returns a Parser that recognises the number words in words.
func NewParser(words NumberWords) *Parser {
	return &Parser{words: words, caser: cases.Title(language.English)}
}

var defaultNumberWords = DefaultNumberWords()

// ParseExpression parses w with the default number-word table. It is safe
// for concurrent use.
func ParseExpression(w Window) Quantity {
	return NewParser(defaultNumberWords).Parse(w)
}

// Parse decides whether w encodes a quantity and returns its value.
//
// A digit literal anywhere in the window takes precedence; the first one
// wins. Otherwise the number words of the window are combined:
//
//   - a number word right after the unit means "N unit M" and gives
//     N + M/12 ("five foot six");
//   - a single word gives its value;
//   - two words give the second alone when it is a fraction, their sum when
//     the first is larger ("twenty three") and their product otherwise
//     ("two hundred");
//   - three or more words give first + third when the third is a fraction
//     and are rejected otherwise.
//
// The fraction rules drop information ("three half" reads as 0.5 and the
// middle of three words is ignored). That is how the heuristic has always
// behaved and callers rely on it.
func (p *Parser) Parse(w Window) Quantity {
	var norm Window
	for i, tok := range w {
		norm[i] = strings.TrimRight(p.caser.String(tok), ".,")
	}

	for _, tok := range norm {
		if v, ok := parseLiteral(tok); ok {
			return Quantity{Value: v, Valid: true}
		}
	}

	var n []float64
	for _, tok := range norm {
		if v, ok := p.words.Lookup(tok); ok {
			n = append(n, v)
		}
	}

	if _, trailing := p.words.Lookup(norm[WindowSize-1]); trailing {
		if len(n) < 2 {
			return Quantity{}
		}
		return Quantity{Value: n[0] + n[1]/inchesPerFoot, Valid: true}
	}

	switch {
	case len(n) == 0:
		return Quantity{}
	case len(n) == 1:
		return Quantity{Value: n[0], Valid: true}
	case len(n) == 2:
		switch {
		case n[1] < 1:
			return Quantity{Value: n[1], Valid: true}
		case n[0] > n[1]:
			return Quantity{Value: n[0] + n[1], Valid: true}
		default:
			return Quantity{Value: n[0] * n[1], Valid: true}
		}
	default:
		if n[2] < 1 {
			return Quantity{Value: n[0] + n[2], Valid: true}
		}
		return Quantity{}
	}
}

// parseLiteral reports whether tok is a digit literal (digits with optional
// thousands commas and at most one decimal point) and returns its value.
func parseLiteral(tok string) (float64, bool) {
	s := strings.ReplaceAll(tok, ",", "")
	if s == "" || strings.Count(s, ".") > 1 {
		return 0, false
	}
	digits := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
		default:
			return 0, false
		}
	}
	if digits == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
