package epub

import (
	"encoding/xml"
	"fmt"
)

// xhtmlMediaType is the manifest media-type of ePub content documents.
const xhtmlMediaType = "application/xhtml+xml"

// opfPackage represents the root <package> element of an OPF file.
type opfPackage struct {
	XMLName  xml.Name    `xml:"package"`
	Version  string      `xml:"version,attr"`
	Metadata opfMetadata `xml:"metadata"`
	Manifest opfManifest `xml:"manifest"`
}

// opfMetadata holds the raw Dublin Core elements of the OPF file.
type opfMetadata struct {
	Titles      []opfDCElement `xml:"http://purl.org/dc/elements/1.1/ title"`
	Creators    []opfDCElement `xml:"http://purl.org/dc/elements/1.1/ creator"`
	Languages   []opfDCElement `xml:"http://purl.org/dc/elements/1.1/ language"`
	Identifiers []opfDCElement `xml:"http://purl.org/dc/elements/1.1/ identifier"`
}

type opfDCElement struct {
	Value string `xml:",chardata"`
	ID    string `xml:"id,attr"`
}

type opfManifest struct {
	Items []opfManifestItem `xml:"item"`
}

type opfManifestItem struct {
	ID         string `xml:"id,attr"`
	Href       string `xml:"href,attr"`
	MediaType  string `xml:"media-type,attr"`
	Properties string `xml:"properties,attr"`
}

// parseOPF parses the OPF file content and returns the parsed package structure.
func parseOPF(data []byte) (*opfPackage, error) {
	data = preprocessHTMLEntities(data)
	data = stripBOM(data)

	var pkg opfPackage
	if err := xml.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("epub: parse OPF: %w", err)
	}

	if pkg.Version == "" {
		pkg.Version = "2.0"
	}

	return &pkg, nil
}

// buildManifest indexes the manifest by ZIP-internal path. Hrefs are
// resolved against opfPath; entries that escape the archive root are dropped.
func buildManifest(manifest opfManifest, opfPath string) map[string]*manifestItem {
	byPath := make(map[string]*manifestItem, len(manifest.Items))
	for _, item := range manifest.Items {
		p := resolveHref(opfPath, item.Href)
		if p == "" {
			continue
		}
		byPath[p] = &manifestItem{
			ID:         item.ID,
			Href:       item.Href,
			MediaType:  item.MediaType,
			Properties: item.Properties,
		}
	}
	return byPath
}
