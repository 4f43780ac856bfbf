// Command lutgen prints color map tables and writes them as PNG color bars.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/irfansharif/colormap/internal/colormap"
	"github.com/irfansharif/colormap/internal/colorspace"
	"github.com/irfansharif/colormap/internal/palette"
)

const logFlags = log.Ltime | log.Lshortfile

var debugLogger *log.Logger = log.New(io.Discard, "", 0)

var (
	listFlag       = flag.Bool("list", false, "list the built-in palettes and exit")
	paletteFlag    = flag.String("palette", "GrayScale", "palette name, prefix or numeric id (see -list)")
	stopsFlag      = flag.String("stops", "", "custom palette as ratio:#rrggbb[:linear|diverging],... (overrides -palette)")
	nFlag          = flag.Int("n", 256, "number of table entries")
	repeatFlag     = flag.Int("repeat", 1, "number of times the palette is tiled across the table")
	gainFlag       = flag.Float64("gain", 1.0, "contrast gain; values above 1 squeeze the palette towards the start")
	offsetFlag     = flag.Int("offset", 0, "window shift in table entries")
	illuminantFlag = flag.String("illuminant", "D65", "reference white for diverging segments (D65 or D50)")
	monoFlag       = flag.Bool("mono", false, "emit a gamma-corrected gray ramp instead of a palette")
	gammaFlag      = flag.Float64("gamma", 1.0, "gamma for -mono")
	formatFlag     = flag.String("format", string(palette.FormatText), "output format: text, csv, hex, describe or raw (packed r,g,b bytes)")
	pngFlag        = flag.String("png", "", "also write the table as a PNG color bar to this path")
	widthFlag      = flag.Int("width", 512, "PNG width in pixels")
	heightFlag     = flag.Int("height", 32, "PNG height in pixels")
)

func init() {
	log.SetFlags(logFlags)

	if os.Getenv("LUTGEN_DEBUG") == "1" {
		debugLogger = log.New(os.Stderr, "[lutgen] ", log.Ltime|log.Lmsgprefix)
	}
}

func main() {
	flag.Parse()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if *listFlag {
		for _, e := range colormap.Names() {
			fmt.Fprintf(out, "%2d %s\n", int(e.ID), e.Name)
		}
		return
	}

	tbl, err := build()
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := palette.WriteTable(out, tbl, palette.Format(*formatFlag)); err != nil {
		log.Fatalf("Writing table: %v", err)
	}

	if *pngFlag != "" {
		if err := writePNG(*pngFlag, tbl); err != nil {
			log.Fatalf("Writing %s: %v", *pngFlag, err)
		}
		debugLogger.Printf("wrote %dx%d color bar to %s", *widthFlag, *heightFlag, *pngFlag)
	}
}

// build computes the table described by the flags.
func build() ([]colormap.RGB, error) {
	n := *nFlag
	if n < 0 {
		return nil, fmt.Errorf("invalid -n %d", n)
	}
	if *monoFlag {
		debugLogger.Printf("mono ramp: n=%d gamma=%v gain=%v offset=%d", n, *gammaFlag, *gainFlag, *offsetFlag)
		return colormap.Mono(n, *gammaFlag, *gainFlag, *offsetFlag), nil
	}

	il, err := colorspace.ParseIlluminant(*illuminantFlag)
	if err != nil {
		return nil, err
	}
	params := colormap.Params{
		Repeat:     *repeatFlag,
		Gain:       *gainFlag,
		Offset:     *offsetFlag,
		Illuminant: il,
	}

	tbl := make([]colormap.RGB, n)
	if *stopsFlag != "" {
		pal, err := palette.ParseStops(*stopsFlag)
		if err != nil {
			return nil, fmt.Errorf("parsing -stops: %w", err)
		}
		debugLogger.Printf("custom palette with %d stops: %+v", len(pal), params)
		colormap.FillPalette(tbl, pal, params)
		return tbl, nil
	}

	// Numeric ids reach palettes whose names are shadowed by a shorter one.
	id := colormap.Resolve(*paletteFlag, colormap.GrayScale)
	if v, err := strconv.Atoi(*paletteFlag); err == nil {
		id = colormap.ID(v)
	}
	if _, ok := colormap.Lookup(id); !ok {
		return nil, fmt.Errorf("palette %q (%v) has no control points", *paletteFlag, id)
	}
	debugLogger.Printf("palette %q resolved to %v: %+v", *paletteFlag, id, params)
	colormap.Fill(tbl, id, params)
	return tbl, nil
}

func writePNG(path string, tbl []colormap.RGB) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return palette.WritePNG(f, tbl, *widthFlag, *heightFlag)
}
