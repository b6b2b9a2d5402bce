package epub

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
)

// maxEntrySize caps the decompressed size of a single entry (256 MB).
const maxEntrySize int64 = 256 << 20

// archive indexes the entries of a ZIP file by name. Lookups try the exact
// name first and then a case-insensitive match; when several entries share
// a name the first one in the archive wins.
type archive struct {
	files []*zip.File
	exact map[string]*zip.File
	lower map[string]*zip.File
}

func newArchive(zr *zip.Reader) *archive {
	a := &archive{
		files: zr.File,
		exact: make(map[string]*zip.File, len(zr.File)),
		lower: make(map[string]*zip.File, len(zr.File)),
	}
	for _, f := range zr.File {
		if _, dup := a.exact[f.Name]; !dup {
			a.exact[f.Name] = f
		}
		key := strings.ToLower(f.Name)
		if _, dup := a.lower[key]; !dup {
			a.lower[key] = f
		}
	}
	return a
}

// lookup returns the entry called name, or nil.
func (a *archive) lookup(name string) *zip.File {
	if f := a.exact[name]; f != nil {
		return f
	}
	return a.lower[strings.ToLower(name)]
}

// canonical reports whether f is the entry an exact lookup of its name
// resolves to. Shadowed duplicates are not.
func (a *archive) canonical(f *zip.File) bool {
	return a.exact[f.Name] == f
}

// read returns the content of the entry called name.
func (a *archive) read(name string) ([]byte, error) {
	f := a.lookup(name)
	if f == nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, name)
	}
	return readEntry(f, maxEntrySize)
}

// readEntry decompresses f, refusing names that escape the archive root and
// content larger than limit. The declared size is checked up front and the
// actual size while reading, since headers can lie.
func readEntry(f *zip.File, limit int64) ([]byte, error) {
	if !isSafePath(f.Name) {
		return nil, fmt.Errorf("epub: unsafe zip entry path: %s", f.Name)
	}
	if f.UncompressedSize64 > uint64(limit) {
		return nil, fmt.Errorf("epub: zip entry %s too large: %d bytes (max %d)", f.Name, f.UncompressedSize64, limit)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("epub: open zip entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, limit+1))
	if err != nil {
		return nil, fmt.Errorf("epub: read zip entry %s: %w", f.Name, err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("epub: zip entry %s exceeds %d bytes when decompressed", f.Name, limit)
	}
	return data, nil
}

// resolveHref resolves a manifest href against the directory of the package
// document at opfPath. Percent-escapes are decoded. It returns "" for
// absolute hrefs and for hrefs that climb out of the archive.
func resolveHref(opfPath, href string) string {
	href = strings.TrimSpace(href)
	if strings.HasPrefix(href, "/") {
		return ""
	}
	if unescaped, err := url.PathUnescape(href); err == nil {
		href = unescaped
	}
	p := path.Join(path.Dir(opfPath), href)
	if !isSafePath(p) {
		return ""
	}
	return p
}

// isSafePath reports whether p stays inside the archive root.
func isSafePath(p string) bool {
	p = path.Clean(p)
	return !strings.HasPrefix(p, "/") && p != ".." && !strings.HasPrefix(p, "../")
}

// stripBOM drops a leading UTF-8 byte order mark.
func stripBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, utf8BOM)
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}
