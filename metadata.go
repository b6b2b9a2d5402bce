package epub

import "strings"

// extractMetadata converts the raw OPF metadata into the public Metadata struct.
// Empty elements are skipped.
func extractMetadata(opf *opfPackage) Metadata {
	om := &opf.Metadata
	return Metadata{
		Version:     opf.Version,
		Titles:      nonEmptyValues(om.Titles),
		Authors:     nonEmptyValues(om.Creators),
		Language:    nonEmptyValues(om.Languages),
		Identifiers: nonEmptyValues(om.Identifiers),
	}
}

func nonEmptyValues(elems []opfDCElement) []string {
	var out []string
	for _, e := range elems {
		if v := strings.TrimSpace(e.Value); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func copyMetadata(in Metadata) Metadata {
	out := in
	out.Titles = append([]string(nil), in.Titles...)
	out.Authors = append([]string(nil), in.Authors...)
	out.Language = append([]string(nil), in.Language...)
	out.Identifiers = append([]string(nil), in.Identifiers...)
	return out
}
