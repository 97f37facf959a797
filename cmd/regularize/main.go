package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/regularize"
	"github.com/osuushi/regularize/internal/export"
	"github.com/osuushi/regularize/internal/ingest"
	"github.com/osuushi/regularize/internal/render"
	"gopkg.in/alecthomas/kingpin.v2"
)

const version = "0.1.0"

// Regularize a drawing from the command line. The input is a CSV file in the
// CurveIndex,Static,X,Y format or an SVG file of polylines, and the result is
// written as JSON, CSV or a pretty dump. A summary goes to stderr.
func main() {
	app := kingpin.New("regularize", "Replace the strokes of a hand-drawn sketch with clean shapes.")
	app.Version(version)
	app.HelpFlag.Short('h')

	input := app.Arg("input", "Drawing to regularize (.csv or .svg).").Required().ExistingFile()
	configPath := app.Flag("config", "YAML file with tuning values. Flags override it.").ExistingFile()
	format := app.Flag("format", "Output format.").Default("json").Enum("json", "csv", "pretty")
	outPath := app.Flag("out", "Write the result here instead of stdout.").Short('o').String()
	pngPath := app.Flag("png", "Also render a preview image (format from the extension).").String()
	pngMaxSize := app.Flag("png-max-size", "Longest side of the preview in pixels.").Default("1024").Int()
	showImage := app.Flag("imgcat", "Print the preview inline in the terminal (iTerm only).").Bool()
	noColor := app.Flag("no-color", "Disable colors in the summary.").Bool()
	verbose := app.Flag("verbose", "Trace every stage on stderr.").Short('v').Bool()
	overrides := configFlags(app)

	kingpin.MustParse(app.Parse(os.Args[1:]))
	au := aurora.NewAurora(!*noColor)

	cfg := regularize.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = regularize.LoadConfig(*configPath)
		app.FatalIfError(err, "")
	}
	overrides.apply(&cfg)
	if *verbose {
		cfg.Logger = log.New(os.Stderr, "regularize: ", 0)
		cfg.Debug = true
	}

	curves, err := ingest.ReadFile(*input)
	app.FatalIfError(err, "reading %s", *input)

	collection, err := regularize.Regularize(curves, cfg)
	app.FatalIfError(err, "regularizing %s", *input)

	app.FatalIfError(writeOutput(*outPath, *format, collection), "writing result")

	if *pngPath != "" {
		opts := render.Options{MaxSize: *pngMaxSize, ShowSources: true, ShowSymmetry: true}
		app.FatalIfError(render.Save(collection, *pngPath, opts), "")
		if *showImage {
			render.Cat(*pngPath, os.Stderr)
		}
	}

	summarize(os.Stderr, au, collection)
}

// Write to path, or to stdout when path is empty. The file is closed before
// returning so that a failed flush is reported.
func writeOutput(path, format string, collection *regularize.Collection) error {
	if path == "" {
		return write(os.Stdout, format, collection)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, format, collection); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func write(w io.Writer, format string, collection *regularize.Collection) error {
	switch format {
	case "csv":
		return export.WriteCSV(w, collection)
	case "pretty":
		_, err := pretty.Fprintf(w, "%# v\n", collection)
		return err
	default:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(collection)
	}
}

func summarize(w io.Writer, au aurora.Aurora, collection *regularize.Collection) {
	for _, warning := range collection.Warnings {
		fmt.Fprintf(w, "%s %s\n", au.Yellow("warning:"), warning)
	}
	counts := collection.Counts()
	fmt.Fprintf(w, "%s %d polygons, %d circles, %d strokes, %d residual curves (seed %d)\n",
		au.Green("regularized:"),
		counts[regularize.KindPolygon],
		counts[regularize.KindCircle],
		counts[regularize.KindStroke],
		counts[regularize.KindResidualCurve],
		collection.Stats.Seed,
	)
}
