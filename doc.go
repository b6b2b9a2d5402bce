// Package epub opens ePub 2 and ePub 3 archives and writes modified copies
// of them.
//
// It locates the package document through META-INF/container.xml (falling
// back to the first .opf entry), extracts the Dublin Core metadata, lists the
// HTML content documents and rejects DRM-protected files with
// [ErrDRMProtected].
//
// # Opening an ePub
//
// Use [Open] to open a file by path, or [NewReader] to read from an [io.ReaderAt]:
//
//	book, err := epub.Open("book.epub")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer book.Close()
//
// # Rewriting
//
// [Book.Rewrite] writes a new archive with some entries replaced. The
// "mimetype" entry is always written first and uncompressed; other entries
// are copied in their original order without recompression:
//
//	doc, _ := book.ReadFile(name)
//	err := book.Rewrite(w, map[string][]byte{name: edit(doc)})
//
// [BodyOffset] finds where the body of an HTML document starts and
// [AppendTitleSuffix] extends the title in a package document, both without
// re-serialising the markup.
//
// # Error Handling
//
// The package defines sentinel errors for common failure cases:
//   - [ErrDRMProtected] – the file is DRM encrypted
//   - [ErrInvalidEPub] – structural validation failed
//   - [ErrFileNotFound] – a requested file is not in the archive
package epub
