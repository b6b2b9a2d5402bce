package epub

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"
)

// expectedMimetype is the required content of the "mimetype" file in a valid ePub.
const expectedMimetype = "application/epub+zip"

// mimetypeName is the ZIP entry that must come first in an ePub.
const mimetypeName = "mimetype"

// Book is an opened ePub archive. Use Open or NewReader to create one.
//
// A Book is not safe for concurrent use by multiple goroutines.
type Book struct {
	arc      *archive
	closer   io.Closer // non-nil only when created via Open()
	opfPath  string
	manifest map[string]*manifestItem // keyed by ZIP-internal path
	metadata Metadata
	warnings []string
}

// Open opens an ePub file at the given path.
// The caller must call Close when done with the book.
func Open(path string) (*Book, error) {
	zrc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("epub: open %s: %w", path, err)
	}

	b, err := initBook(&zrc.Reader, zrc)
	if err != nil {
		zrc.Close()
		return nil, err
	}
	return b, nil
}

// NewReader creates a Book from an io.ReaderAt with the given size.
// The caller is responsible for the lifetime of r; Close only cleans
// up internal state.
func NewReader(r io.ReaderAt, size int64) (*Book, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("epub: open zip: %w", err)
	}

	return initBook(zr, nil)
}

// initBook performs common initialisation: mimetype validation, container
// parsing, DRM detection and OPF parsing.
func initBook(zr *zip.Reader, closer io.Closer) (*Book, error) {
	b := &Book{
		arc:    newArchive(zr),
		closer: closer,
	}

	b.validateMimetype()

	opfPath, err := locatePackage(b.arc)
	if err != nil {
		return nil, err
	}

	fontObfuscation, err := checkDRM(b.arc)
	if err != nil {
		return nil, err
	}
	if fontObfuscation {
		b.warnings = append(b.warnings, "font obfuscation detected; obfuscated fonts are copied unchanged")
	}

	opfFile := b.arc.lookup(opfPath)
	if opfFile == nil {
		return nil, fmt.Errorf("epub: OPF file not found in archive: %s: %w", opfPath, ErrInvalidEPub)
	}
	// Keep the archive's spelling of the path so the rewriter can match it.
	b.opfPath = opfFile.Name

	opfData, err := readEntry(opfFile, maxEntrySize)
	if err != nil {
		return nil, fmt.Errorf("epub: read OPF file: %w", err)
	}

	pkg, err := parseOPF(opfData)
	if err != nil {
		return nil, err
	}
	b.manifest = buildManifest(pkg.Manifest, b.opfPath)
	b.metadata = extractMetadata(pkg)

	return b, nil
}

// validateMimetype checks that the first ZIP entry is named "mimetype" and
// contains "application/epub+zip". Deviations are recorded as warnings.
func (b *Book) validateMimetype() {
	if len(b.arc.files) == 0 {
		b.warnings = append(b.warnings, "empty ZIP archive; mimetype entry missing")
		return
	}

	first := b.arc.files[0]
	if first.Name != mimetypeName {
		b.warnings = append(b.warnings, "first ZIP entry is not \"mimetype\"")
		return
	}

	data, err := readEntry(first, maxEntrySize)
	if err != nil {
		b.warnings = append(b.warnings, fmt.Sprintf("cannot read mimetype entry: %v", err))
		return
	}

	if string(data) != expectedMimetype {
		b.warnings = append(b.warnings, fmt.Sprintf("unexpected mimetype: %q", string(data)))
	}
}

// Close releases resources held by the Book. When the Book was created via
// Open, Close closes the underlying file. Close is idempotent.
func (b *Book) Close() error {
	if b.closer != nil {
		err := b.closer.Close()
		b.closer = nil
		return err
	}
	return nil
}

// ReadFile reads a file from the ePub archive by its ZIP-internal path.
// The lookup is case-insensitive as a fallback.
func (b *Book) ReadFile(name string) ([]byte, error) {
	return b.arc.read(name)
}

// OPFPath returns the ZIP-internal path of the package document.
func (b *Book) OPFPath() string {
	return b.opfPath
}

// Metadata returns the metadata extracted from the package document.
func (b *Book) Metadata() Metadata {
	return copyMetadata(b.metadata)
}

// Warnings returns the list of non-fatal warnings accumulated while opening.
func (b *Book) Warnings() []string {
	return append([]string(nil), b.warnings...)
}

// ContentDocuments returns the ZIP-internal paths of the HTML documents in
// the archive, in archive order. An entry qualifies when its name ends in
// "html" (.html, .xhtml) or the manifest declares it application/xhtml+xml.
func (b *Book) ContentDocuments() []string {
	var docs []string
	for _, f := range b.arc.files {
		if isContentDocument(f.Name, b.manifest[f.Name]) {
			docs = append(docs, f.Name)
		}
	}
	return docs
}

func isContentDocument(name string, item *manifestItem) bool {
	if strings.HasSuffix(name, "/") {
		return false
	}
	if strings.HasSuffix(strings.ToLower(name), "html") {
		return true
	}
	return item != nil && strings.EqualFold(strings.TrimSpace(item.MediaType), xhtmlMediaType)
}
