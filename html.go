package epub

import (
	"bytes"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// entityNameToNumeric maps lowercase HTML entity names to their XML numeric
// character references. encoding/xml does not recognise HTML named entities,
// so we convert them before parsing the OPF.
var entityNameToNumeric = map[string][]byte{
	"nbsp": []byte("&#160;"), "mdash": []byte("&#8212;"), "ndash": []byte("&#8211;"),
	"hellip": []byte("&#8230;"),
	"lsquo": []byte("&#8216;"), "rsquo": []byte("&#8217;"),
	"ldquo": []byte("&#8220;"), "rdquo": []byte("&#8221;"),
	"copy": []byte("&#169;"), "reg": []byte("&#174;"), "trade": []byte("&#8482;"),
	"bull": []byte("&#8226;"), "middot": []byte("&#183;"),
	"eacute": []byte("&#233;"), "egrave": []byte("&#232;"),
	"ecirc": []byte("&#234;"), "euml": []byte("&#235;"),
	"aacute": []byte("&#225;"), "agrave": []byte("&#224;"),
	"acirc": []byte("&#226;"), "auml": []byte("&#228;"),
	"iacute": []byte("&#237;"), "igrave": []byte("&#236;"),
	"icirc": []byte("&#238;"), "iuml": []byte("&#239;"),
	"oacute": []byte("&#243;"), "ograve": []byte("&#242;"),
	"ocirc": []byte("&#244;"), "ouml": []byte("&#246;"),
	"uacute": []byte("&#250;"), "ugrave": []byte("&#249;"),
	"ucirc": []byte("&#251;"), "uuml": []byte("&#252;"),
	"ntilde": []byte("&#241;"), "ccedil": []byte("&#231;"),
	"times": []byte("&#215;"), "divide": []byte("&#247;"),
	"deg": []byte("&#176;"), "para": []byte("&#182;"), "sect": []byte("&#167;"),
	"laquo": []byte("&#171;"), "raquo": []byte("&#187;"),
	"iexcl": []byte("&#161;"), "iquest": []byte("&#191;"),
}

// htmlEntityPattern matches common HTML named entities case-insensitively.
var htmlEntityPattern = regexp.MustCompile(
	`(?i)&(nbsp|mdash|ndash|hellip|lsquo|rsquo|ldquo|rdquo|copy|reg|trade|bull|middot|` +
		`eacute|egrave|ecirc|euml|aacute|agrave|acirc|auml|iacute|igrave|icirc|iuml|` +
		`oacute|ograve|ocirc|ouml|uacute|ugrave|ucirc|uuml|ntilde|ccedil|` +
		`times|divide|deg|para|sect|laquo|raquo|iexcl|iquest);`)

// preprocessHTMLEntities replaces common HTML named entities with their
// numeric character references so that encoding/xml can parse the data.
// The matching is case-insensitive to handle non-standard ePub content.
func preprocessHTMLEntities(data []byte) []byte {
	return htmlEntityPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		// Extract entity name between & and ;, lowercase for lookup.
		name := strings.ToLower(string(match[1 : len(match)-1]))
		if replacement, ok := entityNameToNumeric[name]; ok {
			return replacement
		}
		return match
	})
}

// BodyOffset returns the byte offset in doc just past the opening <body>
// tag, so that doc[offset:] is the document body. Attributes on the tag are
// allowed and a "<body>" inside a comment or script is not mistaken for it.
// The second result is false when the document has no body element.
func BodyOffset(doc []byte) (int, bool) {
	z := html.NewTokenizer(bytes.NewReader(doc))
	offset := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return 0, false
		}
		// Raw is the unmodified token text; token texts are contiguous.
		offset += len(z.Raw())
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}
		if name, _ := z.TagName(); atom.Lookup(name) == atom.Body {
			return offset, true
		}
	}
}
