package palette

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"image"
	"image/png"
	"io"
	"strconv"

	xdraw "golang.org/x/image/draw"

	"github.com/irfansharif/colormap/internal/colormap"
)

// Format names an output encoding for WriteTable.
type Format string

const (
	FormatText     Format = "text"
	FormatCSV      Format = "csv"
	FormatHex      Format = "hex"
	FormatDescribe Format = "describe"
	FormatRaw      Format = "raw"
)

// WriteTable writes tbl in the given format.
func WriteTable(w io.Writer, tbl []colormap.RGB, f Format) error {
	switch f {
	case FormatText, "":
		return WriteText(w, tbl)
	case FormatCSV:
		return WriteCSV(w, tbl)
	case FormatHex:
		return WriteHex(w, tbl)
	case FormatDescribe:
		return Describe(w, tbl)
	case FormatRaw:
		_, err := w.Write(colormap.Bytes(tbl))
		return err
	}
	return fmt.Errorf("unknown format %q", f)
}

// WriteText writes one "index r g b" line per entry.
func WriteText(w io.Writer, tbl []colormap.RGB) error {
	bw := bufio.NewWriter(w)
	for i, c := range tbl {
		if _, err := fmt.Fprintf(bw, "%d %d %d %d\n", i, c.R, c.G, c.B); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteCSV writes the table with an index,r,g,b header.
func WriteCSV(w io.Writer, tbl []colormap.RGB) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"index", "r", "g", "b"}); err != nil {
		return err
	}
	for i, c := range tbl {
		rec := []string{
			strconv.Itoa(i),
			strconv.Itoa(int(c.R)),
			strconv.Itoa(int(c.G)),
			strconv.Itoa(int(c.B)),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteHex writes one #rrggbb line per entry.
func WriteHex(w io.Writer, tbl []colormap.RGB) error {
	bw := bufio.NewWriter(w)
	for _, c := range tbl {
		if _, err := fmt.Fprintln(bw, Hex(c)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Describe writes each entry with its CIE L*a*b* and HCL coordinates, as
// computed by go-colorful. Useful for eyeballing perceptual uniformity.
func Describe(w io.Writer, tbl []colormap.RGB) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%5s %-7s %7s %7s %7s %7s %7s\n", "index", "hex", "L", "a", "b", "C", "h")
	for i, c := range tbl {
		cf := toColorful(c)
		l, a, b := cf.Lab()
		h, chroma, _ := cf.Hcl()
		_, err := fmt.Fprintf(bw, "%5d %-7s %7.2f %7.2f %7.2f %7.2f %7.2f\n",
			i, cf.Hex(), clamp(l*100, 0, 100), a*100, b*100, chroma*100, h)
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Image returns the table as a len(tbl)x1 strip.
func Image(tbl []colormap.RGB) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, len(tbl), 1))
	for i, c := range tbl {
		img.SetRGBA(i, 0, toRGBA(c))
	}
	return img
}

// WritePNG encodes the table as a width x height color bar. Each entry is
// stretched over an equal share of the width; width 0 uses one pixel per
// entry.
func WritePNG(w io.Writer, tbl []colormap.RGB, width, height int) error {
	if len(tbl) == 0 {
		return fmt.Errorf("empty table")
	}
	if width <= 0 {
		width = len(tbl)
	}
	if height <= 0 {
		return fmt.Errorf("invalid bar height %d", height)
	}
	strip := Image(tbl)
	bar := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(bar, bar.Bounds(), strip, strip.Bounds(), xdraw.Src, nil)
	if err := png.Encode(w, bar); err != nil {
		return fmt.Errorf("encoding color bar: %w", err)
	}
	return nil
}
