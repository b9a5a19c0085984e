// Package render serializes a GridStore to a PNG raster.
//
// A pixel-exact, one-solid-color-per-cell raster is not a vector-drawing
// problem, so this uses the standard library's image/image/png/color
// packages directly rather than a 2D vector canvas API built for
// drawing shapes (paths, strokes, fills); reaching for one here would
// mean drawing thousands of 1x1 filled rectangles through a vector
// pipeline for no benefit over direct pixel assignment.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"turmite/gridstore"
	"turmite/simerr"
)

// MaxDimension is the default safety threshold beyond which either
// bounding-box dimension refuses to allocate a raster. Callers that load
// a tuning override should pass its MaxImageDimension to Render instead.
const MaxDimension = 50000

// palette is the 8-entry fixed palette assigned to non-'w'/'b' colors in
// first-seen order and cycled.
var palette = []color.RGBA{
	{255, 45, 85, 255},
	{76, 217, 100, 255},
	{88, 86, 214, 255},
	{255, 149, 0, 255},
	{255, 204, 0, 255},
	{255, 59, 48, 255},
	{90, 200, 250, 255},
	{0, 122, 255, 255},
}

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
)

// colorMapper assigns a stable RGBA to each color symbol seen: 'w' and
// 'b' are fixed, and every other symbol gets the next palette entry in
// first-seen order, wrapping around.
type colorMapper struct {
	assigned map[byte]color.RGBA
	next     int
}

func newColorMapper() *colorMapper {
	return &colorMapper{assigned: map[byte]color.RGBA{'w': white, 'b': black}}
}

func (m *colorMapper) colorFor(c byte) color.RGBA {
	if rgba, ok := m.assigned[c]; ok {
		return rgba
	}
	rgba := palette[m.next%len(palette)]
	m.next++
	m.assigned[c] = rgba
	return rgba
}

// Render draws the tight bounding box of every written cell in grid to a
// PNG, writing it to w. Unwritten cells inside the bounding box render
// as white (not C0 — the background default is purely a rendering
// convenience, distinct from the simulation's C0 semantics). Returns
// GridTooLarge if either bounding-box dimension exceeds maxDimension.
func Render(grid *gridstore.GridStore, w io.Writer, maxDimension int) error {
	minX, minY, maxX, maxY, ok := grid.Bounds()
	if !ok {
		// No cells were ever written (e.g. R=0); emit a single white pixel.
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := maxX - minX + 1
	height := maxY - minY + 1
	if width > maxDimension || height > maxDimension {
		return simerr.New(simerr.GridTooLarge, fmt.Sprintf("bounding box %dx%d exceeds safety threshold %d", width, height, maxDimension))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	// Fill with white background first; unwritten cells stay white.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, white)
		}
	}

	// Scan in x-major, y-minor order so that "first-seen order" palette
	// assignment is reproducible rather than dependent on the sparse
	// map's iteration order.
	mapper := newColorMapper()
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			c, ok := grid.Get(gridstore.Position{X: minX + x, Y: minY + y})
			if !ok {
				continue
			}
			// Flip the y-axis so that larger y appears higher in the image.
			img.SetRGBA(x, height-1-y, mapper.colorFor(c))
		}
	}

	return png.Encode(w, img)
}
