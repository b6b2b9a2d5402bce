package epub

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// validContainerXML is a well-formed META-INF/container.xml pointing to an OPF.
const validContainerXML = `<?xml version="1.0" encoding="UTF-8"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`

// testOPF is a package document with a title, an author and a manifest
// covering one .xhtml chapter and one chapter with a non-html extension.
const testOPF = `<?xml version="1.0" encoding="UTF-8"?>
<package version="2.0" xmlns="http://www.idpf.org/2007/opf" unique-identifier="bookid">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/">
    <dc:title>Measures &amp; Weights</dc:title>
    <dc:creator>Jane Doe</dc:creator>
    <dc:language>en</dc:language>
    <dc:identifier id="bookid">urn:uuid:1234</dc:identifier>
  </metadata>
  <manifest>
    <item id="ch1" href="text/ch1.xhtml" media-type="application/xhtml+xml"/>
    <item id="ch2" href="text/ch2.xml" media-type="application/xhtml+xml"/>
    <item id="css" href="style.css" media-type="text/css"/>
  </manifest>
</package>`

// testEPubFiles returns the files of a small but complete ePub.
func testEPubFiles() map[string]string {
	return map[string]string{
		"mimetype":               expectedMimetype,
		"META-INF/container.xml": validContainerXML,
		"OEBPS/content.opf":      testOPF,
		"OEBPS/text/ch1.xhtml":   `<html><body><p>It was 3 feet wide.</p></body></html>`,
		"OEBPS/text/ch2.xml":     `<html><body><p>Two miles on.</p></body></html>`,
		"OEBPS/style.css":        `p { margin: 0 }`,
	}
}

// buildTestZip creates an in-memory ZIP archive from the provided files map
// (path → content) and returns a *zip.Reader over the resulting bytes.
func buildTestZip(t *testing.T, files map[string]string) *zip.Reader {
	t.Helper()
	data := buildTestEPubBytes(t, files)
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("buildTestZip: open reader: %v", err)
	}
	return r
}

// buildTestEPubBytes serialises files as a ZIP archive. The "mimetype"
// entry, when present, is written first; the rest follow in sorted order so
// tests can rely on archive order.
func buildTestEPubBytes(t *testing.T, files map[string]string) []byte {
	t.Helper()
	names := make([]string, 0, len(files))
	for name := range files {
		if name != "mimetype" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := files["mimetype"]; ok {
		names = append([]string{"mimetype"}, names...)
	}

	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	for _, name := range names {
		fw, err := zw.Create(name)
		if err != nil {
			t.Fatalf("buildTestEPubBytes: create %s: %v", name, err)
		}
		if _, err := io.WriteString(fw, files[name]); err != nil {
			t.Fatalf("buildTestEPubBytes: write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("buildTestEPubBytes: close writer: %v", err)
	}
	return buf.Bytes()
}

// buildTestEPubFile writes an ePub archive to a temporary file and returns
// the file path.
func buildTestEPubFile(t *testing.T, files map[string]string) string {
	t.Helper()
	fp := filepath.Join(t.TempDir(), "test.epub")
	if err := os.WriteFile(fp, buildTestEPubBytes(t, files), 0644); err != nil {
		t.Fatalf("buildTestEPubFile: write file: %v", err)
	}
	return fp
}

// openTestBook opens files as a Book through NewReader.
func openTestBook(t *testing.T, files map[string]string) *Book {
	t.Helper()
	data := buildTestEPubBytes(t, files)
	book, err := NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}
	return book
}
