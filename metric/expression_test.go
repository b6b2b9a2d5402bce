package metric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpression(t *testing.T) {
	tests := []struct {
		name   string
		window Window
		want   Quantity
	}{
		// Digit literals.
		{"decimal literal", Window{"I", "bought", "a", "12.5", "inch", "screen"}, Quantity{12.5, true}},
		{"literal first position", Window{"12.5", "of", "the", "big", "inch", "screen"}, Quantity{12.5, true}},
		{"literal after unit", Window{"the", "wall", "was", "in", "feet", "3"}, Quantity{3, true}},
		{"thousands separator", Window{"it", "rose", "some", "1,200", "feet", "above"}, Quantity{1200, true}},
		{"first literal wins", Window{"3", "or", "4", "more", "feet", "away"}, Quantity{3, true}},
		{"literal beats number word", Window{"about", "two", "or", "3", "miles", "on"}, Quantity{3, true}},
		{"trailing punctuation stripped", Window{"was", "exactly", "ten", "6.", "feet", "long"}, Quantity{6, true}},
		{"two decimal points rejected", Window{"version", "1.2.3", "of", "the", "feet", "plan"}, Quantity{}},

		// Single number word.
		{"single word", Window{"and", "it", "was", "two", "feet", "wide."}, Quantity{2, true}},
		{"upper case word", Window{"IT", "WAS", "JUST", "TWELVE", "INCHES", "LONG"}, Quantity{12, true}},
		{"trailing comma", Window{"some", "of", "them", "twelve,", "inches", "long"}, Quantity{12, true}},
		{"leading punctuation kept", Window{"some", "of", "them", "(twelve", "inches", "long"}, Quantity{}},
		{"dozen", Window{"at", "least", "a", "dozen", "miles", "off"}, Quantity{12, true}},
		{"indefinite article", Window{"it", "was", "about", "a", "foot", "long"}, Quantity{1, true}},

		// Two number words.
		{"additive", Window{"it", "was", "twenty", "three", "miles", "away"}, Quantity{23, true}},
		{"multiplicative", Window{"about", "two", "hundred", "more", "yards", "off"}, Quantity{200, true}},
		{"equal words multiply", Window{"and", "ten", "by", "ten", "feet", "wide"}, Quantity{100, true}},
		{"fraction discards integer part", Window{"was", "three", "half", "of", "inches", "long"}, Quantity{0.5, true}},
		{"quarter", Window{"for", "about", "a", "quarter", "mile", "then"}, Quantity{0.25, true}},

		// More than two number words.
		{"third word fraction skips middle", Window{"three", "and", "a", "half", "feet", "long"}, Quantity{3.5, true}},
		{"third word not a fraction", Window{"one", "two", "three", "four", "feet", "along"}, Quantity{}},

		// Feet and inches.
		{"feet and inches", Window{"", "He", "is", "five", "foot", "six"}, Quantity{5.5, true}},
		{"divisor ignores unit", Window{"", "it", "was", "two", "miles", "six."}, Quantity{2.5, true}},
		{"lone trailing word", Window{"of", "the", "size", "in", "feet.", "Three"}, Quantity{}},
		{"unit not at window position", Window{"He", "is", "five", "foot", "six", "."}, Quantity{30, true}},

		// Nothing to read.
		{"no quantity", Window{"the", "big", "old", "red", "feet", "here"}, Quantity{}},
		{"empty window", Window{}, Quantity{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseExpression(tt.window)
			assert.Equal(t, tt.want.Valid, got.Valid)
			assert.InDelta(t, tt.want.Value, got.Value, 1e-9)
		})
	}
}

func TestParser_CustomNumberWords(t *testing.T) {
	p := NewParser(NewNumberWords(map[string]float64{"Score": 20}))

	got := p.Parse(Window{"four", "and", "a", "score", "miles", "on"})
	require.True(t, got.Valid)
	assert.Equal(t, 20.0, got.Value)

	assert.False(t, p.Parse(Window{"it", "was", "two", "more", "miles", "on"}).Valid)
}

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		tok  string
		want float64
		ok   bool
	}{
		{"42", 42, true},
		{"12.5", 12.5, true},
		{".5", 0.5, true},
		{"1,000,000", 1000000, true},
		{"1.2.3", 0, false},
		{",", 0, false},
		{".", 0, false},
		{"", 0, false},
		{"12a", 0, false},
		{"-3", 0, false},
		{"1e3", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			got, ok := parseLiteral(tt.tok)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWindowAt(t *testing.T) {
	tokens := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	tests := []struct {
		name string
		i    int
		want Window
	}{
		{"middle", 5, Window{"b", "c", "d", "e", "f", "g"}},
		{"start padded", 1, Window{"", "", "", "a", "b", "c"}},
		{"first token", 0, Window{"", "", "", "", "a", "b"}},
		{"end padded", 7, Window{"d", "e", "f", "g", "h", ""}},
		{"exact fit", 4, Window{"a", "b", "c", "d", "e", "f"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := WindowAt(tokens, tt.i)
			assert.Equal(t, tt.want, w)
			assert.Equal(t, tokens[tt.i], w.Unit())
		})
	}
}
