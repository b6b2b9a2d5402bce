package metric

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// paragraphTag is the inline markup boundary that is treated as a token
// separator in addition to whitespace and hyphens.
const paragraphTag = "<p>"

// Tokenize splits body into word tokens in order of appearance.
//
// The text is split on whitespace, then each piece on hyphens so that
// compounds like "twenty-three" become separate words, then on "<p>" so
// paragraph markers are not glued to neighbouring words. Empty pieces
// produced by the splits are kept and punctuation is left in place.
func Tokenize(body string) []string {
	spans := tokenSpans(body)
	tokens := make([]string, len(spans))
	for i, s := range spans {
		tokens[i] = s.text
	}
	return tokens
}

// span is a token together with its byte offset in the tokenized text.
type span struct {
	text  string
	start int
}

// tokenSpans is Tokenize keeping the offset of every token, so that
// body[s.start:s.start+len(s.text)] == s.text.
func tokenSpans(body string) []span {
	spans := fields(body)
	spans = splitEach(spans, "-")
	spans = splitEach(spans, paragraphTag)
	return spans
}

// fields splits s around runs of white space like strings.Fields.
// Invalid UTF-8 bytes are not white space.
func fields(s string) []span {
	spans := []span{}
	start := -1
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			if start >= 0 {
				spans = append(spans, span{s[start:i], start})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
		i += size
	}
	if start >= 0 {
		spans = append(spans, span{s[start:], start})
	}
	return spans
}

// splitEach splits every span on sep and flattens the result.
func splitEach(spans []span, sep string) []span {
	out := make([]span, 0, len(spans))
	for _, sp := range spans {
		off := sp.start
		for _, piece := range strings.Split(sp.text, sep) {
			out = append(out, span{piece, off})
			off += len(piece) + len(sep)
		}
	}
	return out
}
