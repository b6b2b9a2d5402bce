// Command epubmetric annotates imperial measurements in an ePub with their
// metric equivalents.
//
// Usage:
//
//	epubmetric [-config path] [-o output] book.epub
//
// The converted book is written to book_converted.epub unless -o is given.
// Settings come from the optional YAML file and the environment; see
// internal/config.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/simp-lee/epub-metric/internal/config"
	"github.com/simp-lee/epub-metric/internal/convert"
	"github.com/simp-lee/epub-metric/metric"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("epubmetric", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML config file")
	output := fs.String("o", "", "output path (default: <input><output_suffix>.epub)")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: epubmetric [-config path] [-o output] book.epub")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "epubmetric: %v\n", err)
		return 1
	}
	logger := config.NewLogger(cfg.Log, stderr)

	res, err := convert.Run(convert.Options{
		Input:        fs.Arg(0),
		Output:       *output,
		OutputSuffix: cfg.Convert.OutputSuffix,
		TitleSuffix:  cfg.Convert.TitleSuffix,
	}, metric.DefaultConverter(), logger)
	if err != nil {
		logger.Error("conversion failed",
			slog.String("input", fs.Arg(0)),
			slog.String("error", err.Error()),
		)
		return 1
	}

	fmt.Fprintln(stderr, res.Output)
	return 0
}
