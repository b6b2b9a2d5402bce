package metric

import (
	"fmt"
	"strings"
)

// Annotation describes one metric value inserted into a text body.
type Annotation struct {
	// Unit is the imperial unit word as matched (e.g., "feet").
	Unit string

	// Value is the quantity read in front of the unit.
	Value float64

	// Converted is Value multiplied by the unit's factor.
	Converted float64

	// MetricUnit is the metric unit name written into the text.
	MetricUnit string

	// Offset is the byte offset of the inserted text in the converted body.
	Offset int

	// Text is the inserted text, e.g. " (0.91 meter)".
	Text string
}

// Converter finds imperial quantities in text and annotates them with their
// metric value. A Converter may be reused for any number of documents but is
// not safe for concurrent use; give each goroutine its own.
type Converter struct {
	units  UnitTable
	parser *Parser
}

// NewConverter returns a Converter for the given unit table and parser.
func NewConverter(units UnitTable, parser *Parser) *Converter {
	return &Converter{units: units, parser: parser}
}

// DefaultConverter returns a new Converter built from DefaultUnits and
// DefaultNumberWords.
func DefaultConverter() *Converter {
	return NewConverter(DefaultUnits(), NewParser(DefaultNumberWords()))
}

// Convert annotates every recognised quantity in body and returns the new
// body with the annotations that were inserted, in order.
//
// Each annotation is placed directly after the unit word and before any
// trailing period or comma: "3 feet wide" becomes "3 feet (0.91 meter) wide".
// Units are located by their token offset, so a unit word inside a longer
// word is never annotated. Text that does not parse as a quantity is left
// untouched.
func (c *Converter) Convert(body string) (string, []Annotation) {
	spans := tokenSpans(body)
	tokens := make([]string, len(spans))
	for i, sp := range spans {
		tokens[i] = sp.text
	}

	var (
		b           strings.Builder
		annotations []Annotation
		written     int // body[:written] has been copied to b
	)
	for i, sp := range spans {
		word := strings.TrimRight(sp.text, ".,")
		unit, ok := c.units.Lookup(word)
		if !ok {
			continue
		}
		q := c.parser.Parse(WindowAt(tokens, i))
		if !q.Valid {
			continue
		}
		split := sp.start + len(word)
		converted := q.Value * unit.Factor
		text := fmt.Sprintf(" (%.2f %s)", converted, unit.Name)

		b.WriteString(body[written:split])
		annotations = append(annotations, Annotation{
			Unit:       word,
			Value:      q.Value,
			Converted:  converted,
			MetricUnit: unit.Name,
			Offset:     b.Len(),
			Text:       text,
		})
		b.WriteString(text)
		written = split
	}

	if len(annotations) == 0 {
		return body, nil
	}
	b.WriteString(body[written:])
	return b.String(), annotations
}
