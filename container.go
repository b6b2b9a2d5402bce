package epub

import (
	"encoding/xml"
	"fmt"
	"strings"
)

const (
	containerPath      = "META-INF/container.xml"
	packageMediaType   = "application/oebps-package+xml"
	packageDocumentExt = ".opf"
)

type containerXML struct {
	XMLName   xml.Name `xml:"container"`
	RootFiles []struct {
		FullPath  string `xml:"full-path,attr"`
		MediaType string `xml:"media-type,attr"`
	} `xml:"rootfiles>rootfile"`
}

// locatePackage returns the path of the package document named by
// META-INF/container.xml. The first rootfile with the OPF media type wins,
// then the first non-empty one. Archives without container.xml fall back to
// their first .opf entry.
func locatePackage(a *archive) (string, error) {
	if a.lookup(containerPath) == nil {
		for _, f := range a.files {
			if strings.HasSuffix(strings.ToLower(f.Name), packageDocumentExt) {
				return f.Name, nil
			}
		}
		return "", fmt.Errorf("epub: no container.xml and no .opf entry: %w", ErrInvalidEPub)
	}

	data, err := a.read(containerPath)
	if err != nil {
		return "", fmt.Errorf("epub: read container.xml: %w", err)
	}
	var c containerXML
	if err := xml.Unmarshal(stripBOM(data), &c); err != nil {
		return "", fmt.Errorf("epub: parse container.xml: %w", err)
	}

	var first string
	for _, rf := range c.RootFiles {
		p := strings.TrimSpace(rf.FullPath)
		if p == "" {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(rf.MediaType), packageMediaType) {
			return p, nil
		}
		if first == "" {
			first = p
		}
	}
	if first == "" {
		return "", fmt.Errorf("epub: container.xml names no package document: %w", ErrInvalidEPub)
	}
	return first, nil
}
