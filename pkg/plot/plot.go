// 20 May 2025

// Package plot draws the identity profile of an alignment as a PNG:
// one bar per window of alignment columns, bar height the fraction
// of matches in that window. Mutation hot spots show up as dips.
package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/andrew-torda/seq_mut/pkg/align"
)

// Args are the plotting choices. Zero values give a 640x240 image
// with no text; labels need FontFile pointing at a ttf file.
type Args struct {
	Width    int
	Height   int
	FontFile string
	Title    string
}

// Identity reduces an alignment to one value per window of columns:
// the fraction of matches. Clipped ends are skipped. The last window
// may cover fewer columns. window values below 1 mean one value per
// column.
func Identity(res *align.Result, window int) []float64 {
	if window < 1 {
		window = 1
	}
	var vals []float64
	matches, seen := 0, 0
	for _, op := range res.Ops {
		switch op {
		case align.XClip, align.YClip:
			continue
		case align.Match:
			matches++
		}
		if seen++; seen == window {
			vals = append(vals, float64(matches)/float64(window))
			matches, seen = 0, 0
		}
	}
	if seen > 0 {
		vals = append(vals, float64(matches)/float64(seen))
	}
	return vals
}

var (
	frameGrey = color.RGBA{90, 90, 90, 255}
	barBlue   = color.RGBA{70, 110, 180, 255}
)

// PNG draws vals as bars in [0,1] and writes the image to w.
func PNG(w io.Writer, vals []float64, args *Args) error {
	if args == nil {
		args = &Args{}
	}
	wd, ht := args.Width, args.Height
	if wd <= 0 {
		wd = 640
	}
	if ht <= 0 {
		ht = 240
	}
	const margin = 24
	img := image.NewRGBA(image.Rect(0, 0, wd, ht))
	for i := range img.Pix {
		img.Pix[i] = 0xff // white
	}

	x0, y0, x1, y1 := margin, margin, wd-margin, ht-margin
	for x := x0; x <= x1; x++ {
		img.Set(x, y0, frameGrey)
		img.Set(x, y1, frameGrey)
	}
	for y := y0; y <= y1; y++ {
		img.Set(x0, y, frameGrey)
		img.Set(x1, y, frameGrey)
	}

	if n := len(vals); n > 0 {
		span := float64(x1-x0) / float64(n)
		for i, v := range vals {
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			bx0 := x0 + 1 + int(float64(i)*span)
			bx1 := x0 + int(float64(i+1)*span)
			top := y1 - int(v*float64(y1-y0-1))
			for x := bx0; x <= bx1 && x < x1; x++ {
				for y := top; y < y1; y++ {
					img.Set(x, y, barBlue)
				}
			}
		}
	}

	if args.FontFile != "" {
		if err := label(img, args); err != nil {
			return err
		}
	}
	return png.Encode(w, img)
}

// label draws the title along the top edge.
func label(img *image.RGBA, args *Args) error {
	fbytes, err := os.ReadFile(args.FontFile)
	if err != nil {
		return fmt.Errorf("font file: %w", err)
	}
	fnt, err := truetype.Parse(fbytes)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args.FontFile, err)
	}
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(fnt)
	ctx.SetFontSize(12)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.Black)
	ctx.SetHinting(font.HintingNone)
	_, err = ctx.DrawString(args.Title, freetype.Pt(4, 16))
	return err
}
