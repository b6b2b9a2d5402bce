package epub

import (
	"archive/zip"
	"fmt"
	"hash/crc32"
	"io"
)

// Rewrite writes a copy of the archive to w, substituting the content of
// the entries named in replace. Keys are ZIP-internal paths spelled as in
// the archive (see ContentDocuments and OPFPath).
//
// The "mimetype" entry is written first, uncompressed and without a data
// descriptor, as ePub readers expect. All other entries keep their original
// order; entries without a replacement are copied without recompression.
func (b *Book) Rewrite(w io.Writer, replace map[string][]byte) error {
	zw := zip.NewWriter(w)

	mt := b.arc.exact[mimetypeName]
	if mt != nil {
		data, ok := replace[mimetypeName]
		if !ok {
			var err error
			if data, err = readEntry(mt, maxEntrySize); err != nil {
				return err
			}
		}
		if err := writeStored(zw, mimetypeName, data); err != nil {
			return err
		}
	}

	for _, f := range b.arc.files {
		if f == mt {
			continue
		}
		data, ok := replace[f.Name]
		if !ok || !b.arc.canonical(f) {
			if err := zw.Copy(f); err != nil {
				return fmt.Errorf("epub: copy zip entry %s: %w", f.Name, err)
			}
			continue
		}
		if err := writeEntry(zw, f, data); err != nil {
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("epub: finish archive: %w", err)
	}
	return nil
}

// writeEntry writes data under the name, timestamp and comment of f.
func writeEntry(zw *zip.Writer, f *zip.File, data []byte) error {
	fh := &zip.FileHeader{
		Name:     f.Name,
		Comment:  f.Comment,
		Method:   zip.Deflate,
		Modified: f.Modified,
	}
	if f.Method == zip.Store {
		fh.Method = zip.Store
	}
	fw, err := zw.CreateHeader(fh)
	if err != nil {
		return fmt.Errorf("epub: create zip entry %s: %w", f.Name, err)
	}
	if _, err := fw.Write(data); err != nil {
		return fmt.Errorf("epub: write zip entry %s: %w", f.Name, err)
	}
	return nil
}

// writeStored writes an uncompressed entry whose sizes and checksum are in
// the local header, with no trailing data descriptor.
func writeStored(zw *zip.Writer, name string, data []byte) error {
	fw, err := zw.CreateRaw(&zip.FileHeader{
		Name:               name,
		Method:             zip.Store,
		CRC32:              crc32.ChecksumIEEE(data),
		CompressedSize64:   uint64(len(data)),
		UncompressedSize64: uint64(len(data)),
	})
	if err != nil {
		return fmt.Errorf("epub: create zip entry %s: %w", name, err)
	}
	if _, err := fw.Write(data); err != nil {
		return fmt.Errorf("epub: write zip entry %s: %w", name, err)
	}
	return nil
}
