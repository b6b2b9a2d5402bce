package epub

import "bytes"

// titleCloseTag ends the dc:title element of an OPF package document.
var titleCloseTag = []byte("</dc:title>")

// AppendTitleSuffix inserts " - " + suffix at the end of the first dc:title
// in the OPF document opf. The rest of the document is left byte for byte
// as it was. It reports false, returning opf unchanged, when no dc:title
// element is present.
func AppendTitleSuffix(opf []byte, suffix string) ([]byte, bool) {
	idx := bytes.Index(opf, titleCloseTag)
	if idx < 0 {
		return opf, false
	}
	insert := " - " + suffix
	out := make([]byte, 0, len(opf)+len(insert))
	out = append(out, opf[:idx]...)
	out = append(out, insert...)
	out = append(out, opf[idx:]...)
	return out, true
}
