package epub

// Metadata holds the Dublin Core fields of the OPF that identify a book.
type Metadata struct {
	// Version is the ePub specification version (e.g., "2.0", "3.0").
	Version string

	// Titles contains all dc:title values. The first entry is the primary title.
	Titles []string

	// Authors contains the dc:creator names in document order.
	Authors []string

	// Language contains all dc:language values.
	Language []string

	// Identifiers contains all dc:identifier values (ISBN, UUID, URI, etc.).
	Identifiers []string
}

// Title returns the primary title, or "" when the OPF has none.
func (m Metadata) Title() string {
	if len(m.Titles) == 0 {
		return ""
	}
	return m.Titles[0]
}

// manifestItem represents an entry in the OPF <manifest> element.
type manifestItem struct {
	ID         string
	Href       string
	MediaType  string
	Properties string
}
