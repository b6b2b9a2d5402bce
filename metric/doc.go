// Package metric recognises imperial measurements in running text and
// annotates them with metric equivalents.
//
// Text is split into word tokens with [Tokenize]. For every token that names
// a unit in a [UnitTable], a six-token [Window] ending one token after the
// unit is handed to a [Parser], which reads digit literals ("12.5") and
// spelled-out numbers ("twenty-three", "two hundred", "five foot six").
// [Converter.Convert] ties the steps together:
//
//	body, notes := metric.DefaultConverter().Convert("The box is 3 feet wide.")
//	// body == "The box is 3 feet (0.91 meter) wide."
//
// The parser is a heuristic. It never fails; windows it cannot read are
// reported with Quantity.Valid set to false and left unchanged.
package metric
