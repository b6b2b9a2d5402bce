// Package convert runs the metric annotation of a whole ePub file: it reads
// the book, converts the body of every content document, tags the title and
// writes the result next to the input.
package convert

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	epub "github.com/simp-lee/epub-metric"
	"github.com/simp-lee/epub-metric/metric"
)

// DefaultOutputSuffix is inserted before the extension of the input name
// when Options.Output and Options.OutputSuffix are empty.
const DefaultOutputSuffix = "_converted"

// ErrSameFile is returned when the output path names the input file.
var ErrSameFile = errors.New("convert: output path is the input file")

// Options controls a single Run.
type Options struct {
	// Input is the path of the source ePub.
	Input string

	// Output is the path of the converted ePub. Empty means
	// OutputPath(Input, OutputSuffix).
	Output string

	// OutputSuffix is used to derive Output. Empty means DefaultOutputSuffix.
	OutputSuffix string

	// TitleSuffix is appended to the book title as " - " + TitleSuffix.
	// Empty leaves the title alone.
	TitleSuffix string
}

// Result summarises a completed Run.
type Result struct {
	Output       string
	Documents    int // content documents scanned
	Converted    int // content documents with at least one annotation
	Annotations  int
	TitleUpdated bool
}

// OutputPath derives the output file name from input: a trailing ".epub"
// (any case) is replaced by suffix + ".epub".
func OutputPath(input, suffix string) string {
	if suffix == "" {
		suffix = DefaultOutputSuffix
	}
	base := input
	if ext := filepath.Ext(input); strings.EqualFold(ext, ".epub") {
		base = strings.TrimSuffix(input, ext)
	}
	return base + suffix + ".epub"
}

// Run converts opts.Input with conv and writes the new archive. The output
// is written to a temporary file in the target directory and renamed into
// place, so a failed run leaves no partial file behind.
func Run(opts Options, conv *metric.Converter, log *slog.Logger) (Result, error) {
	out := opts.Output
	if out == "" {
		out = OutputPath(opts.Input, opts.OutputSuffix)
	}
	if same, err := samePath(opts.Input, out); err != nil {
		return Result{}, err
	} else if same {
		return Result{}, fmt.Errorf("%w: %s", ErrSameFile, out)
	}

	book, err := epub.Open(opts.Input)
	if err != nil {
		return Result{}, err
	}
	defer book.Close()

	for _, w := range book.Warnings() {
		log.Warn("epub warning", slog.String("file", opts.Input), slog.String("warning", w))
	}

	res := Result{Output: out}
	replace := make(map[string][]byte)

	for _, name := range book.ContentDocuments() {
		data, err := book.ReadFile(name)
		if err != nil {
			return Result{}, fmt.Errorf("convert: read %s: %w", name, err)
		}
		res.Documents++

		converted, notes := Document(conv, data)
		if len(notes) == 0 {
			log.Debug("no quantities found", slog.String("document", name))
			continue
		}
		replace[name] = converted
		res.Converted++
		res.Annotations += len(notes)
		log.Debug("document converted",
			slog.String("document", name),
			slog.Int("annotations", len(notes)),
		)
	}

	if opts.TitleSuffix != "" {
		opfPath := book.OPFPath()
		opf, err := book.ReadFile(opfPath)
		if err != nil {
			return Result{}, fmt.Errorf("convert: read %s: %w", opfPath, err)
		}
		if tagged, ok := epub.AppendTitleSuffix(opf, opts.TitleSuffix); ok {
			replace[opfPath] = tagged
			res.TitleUpdated = true
		} else {
			log.Warn("package document has no title", slog.String("opf", opfPath))
		}
	}

	if err := writeAtomic(out, func(f *os.File) error {
		return book.Rewrite(f, replace)
	}); err != nil {
		return Result{}, err
	}

	log.Info("book converted",
		slog.String("input", opts.Input),
		slog.String("output", out),
		slog.Int("documents", res.Documents),
		slog.Int("converted", res.Converted),
		slog.Int("annotations", res.Annotations),
	)
	return res, nil
}

// Document converts the body of one HTML document. Everything up to and
// including the <body> start tag is kept as is. A document without a body
// element, or without any quantity, is returned unchanged with no
// annotations.
func Document(conv *metric.Converter, doc []byte) ([]byte, []metric.Annotation) {
	off, ok := epub.BodyOffset(doc)
	if !ok {
		return doc, nil
	}
	body, notes := conv.Convert(string(doc[off:]))
	if len(notes) == 0 {
		return doc, nil
	}
	out := make([]byte, 0, off+len(body))
	out = append(out, doc[:off]...)
	out = append(out, body...)
	return out, notes
}

// writeAtomic creates path through a temporary sibling file.
func writeAtomic(path string, write func(*os.File) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".epubmetric-*.tmp")
	if err != nil {
		return fmt.Errorf("convert: create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("convert: chmod temp file: %w", err)
	}
	if err = write(tmp); err != nil {
		return fmt.Errorf("convert: write %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("convert: close temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("convert: rename to %s: %w", path, err)
	}
	return nil
}

// samePath reports whether a and b refer to the same file. A b that does
// not exist yet is never the same.
func samePath(a, b string) (bool, error) {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true, nil
	}
	bi, err := os.Stat(b)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("convert: stat %s: %w", b, err)
	}
	ai, err := os.Stat(a)
	if err != nil {
		return false, fmt.Errorf("convert: stat %s: %w", a, err)
	}
	return os.SameFile(ai, bi), nil
}
