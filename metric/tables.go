package metric

// Unit is the metric target of an imperial unit word.
type Unit struct {
	// Factor converts one imperial unit into Name units.
	Factor float64

	// Name is the metric unit written into the annotation (e.g., "meter").
	Name string
}

// UnitTable maps imperial unit words, singular and plural, to their metric
// conversion. A UnitTable is read-only once constructed.
type UnitTable struct {
	units map[string]Unit
}

// NewUnitTable builds a UnitTable from m. The map is copied, so later
// changes to m do not affect the table.
func NewUnitTable(m map[string]Unit) UnitTable {
	units := make(map[string]Unit, len(m))
	for word, u := range m {
		units[word] = u
	}
	return UnitTable{units: units}
}

// DefaultUnits returns the unit table used by the converter by default.
// Keys are lower-case and matched exactly.
func DefaultUnits() UnitTable {
	return NewUnitTable(map[string]Unit{
		"inch":    {2.54, "centimeter"},
		"inches":  {2.54, "centimeter"},
		"feet":    {0.3048, "meter"},
		"foot":    {0.3048, "meter"},
		"yard":    {0.9144, "meter"},
		"yards":   {0.9144, "meter"},
		"mile":    {1.60934, "kilometer"},
		"miles":   {1.60934, "kilometer"},
		"pound":   {0.4535, "kilogram"},
		"pounds":  {0.4535, "kilogram"},
		"gallon":  {3.785, "liter"},
		"gallons": {3.785, "liters"},
	})
}

// Lookup returns the metric conversion for word.
func (t UnitTable) Lookup(word string) (Unit, bool) {
	u, ok := t.units[word]
	return u, ok
}

// Len reports the number of unit words in the table.
func (t UnitTable) Len() int {
	return len(t.units)
}

// NumberWords maps spelled-out number words in initial-capital form
// ("Twenty", "Half") to their value. It is read-only once constructed.
type NumberWords struct {
	values map[string]float64
}

// NewNumberWords builds a NumberWords table from m, copying the map.
func NewNumberWords(m map[string]float64) NumberWords {
	values := make(map[string]float64, len(m))
	for word, v := range m {
		values[word] = v
	}
	return NumberWords{values: values}
}

// DefaultNumberWords returns the number-word table used by the parser by
// default: cardinals one to twenty, the tens, magnitudes, the fractions
// "Half" and "Quarter", "Dozen", and the indefinite article "A" as one.
func DefaultNumberWords() NumberWords {
	return NewNumberWords(map[string]float64{
		"Quarter": 0.25, "Half": 0.5,
		"A": 1, "One": 1, "Two": 2, "Three": 3, "Four": 4, "Five": 5,
		"Six": 6, "Seven": 7, "Eight": 8, "Nine": 9, "Ten": 10,
		"Eleven": 11, "Twelve": 12, "Dozen": 12, "Thirteen": 13,
		"Fourteen": 14, "Fifteen": 15, "Sixteen": 16, "Seventeen": 17,
		"Eighteen": 18, "Nineteen": 19, "Twenty": 20, "Thirty": 30,
		"Forty": 40, "Fourty": 40, "Fifty": 50, "Sixty": 60, "Seventy": 70,
		"Eighty": 80, "Ninety": 90, "Hundred": 100, "Thousand": 1000,
		"Million": 1000000,
	})
}

// Lookup returns the value of a normalised number word.
func (n NumberWords) Lookup(word string) (float64, bool) {
	v, ok := n.values[word]
	return v, ok
}
