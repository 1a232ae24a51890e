package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Grid is a width×height array of RGB samples stored row-major.
//
// The sample for column x and row y lives at index y*width+x. A Grid is
// always at least 1×1; the zero value is not usable, construct grids with
// NewGrid or FromImage.
type Grid struct {
	width  int
	height int
	pix    []RGB
}

// NewGrid allocates a zero-filled (all black) grid.
//
// Returns ErrInvalidArgument if width or height is not positive.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid size %dx%d: %w", width, height, ErrInvalidArgument)
	}
	return newGrid(width, height), nil
}

// newGrid is NewGrid for sizes already known to be positive.
func newGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		pix:    make([]RGB, width*height),
	}
}

// FromImage copies the RGB channels of img into a new grid.
//
// Any color model is accepted. The image is converted to non-premultiplied
// NRGBA and the alpha channel is dropped, so a translucent pixel keeps its
// straight color values. The grid origin is img.Bounds().Min.
func FromImage(img image.Image) (*Grid, error) {
	nrgba := imaging.Clone(img) // rebased to (0,0)
	b := nrgba.Bounds()
	g, err := NewGrid(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			i := nrgba.PixOffset(x, y)
			g.set(x, y, RGB{R: nrgba.Pix[i], G: nrgba.Pix[i+1], B: nrgba.Pix[i+2]})
		}
	}
	return g, nil
}

// Image returns an opaque NRGBA copy of the grid anchored at (0,0).
func (g *Grid) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.width, g.height))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := g.at(x, y)
			i := img.PixOffset(x, y)
			img.Pix[i] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = 0xff
		}
	}
	return img
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Get returns the sample at column x, row y.
//
// Returns ErrOutOfBounds if (x,y) lies outside the grid.
func (g *Grid) Get(x, y int) (RGB, error) {
	if !g.inBounds(x, y) {
		return RGB{}, g.boundsError(x, y)
	}
	return g.at(x, y), nil
}

// Set stores c at column x, row y.
//
// Returns ErrOutOfBounds if (x,y) lies outside the grid.
func (g *Grid) Set(x, y int, c RGB) error {
	if !g.inBounds(x, y) {
		return g.boundsError(x, y)
	}
	g.set(x, y, c)
	return nil
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	out := newGrid(g.width, g.height)
	copy(out.pix, g.pix)
	return out
}

// Equal reports whether both grids have the same size and samples.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.pix {
		if g.pix[i] != other.pix[i] {
			return false
		}
	}
	return true
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

func (g *Grid) boundsError(x, y int) error {
	return fmt.Errorf("pixel (%d,%d) outside %dx%d grid: %w", x, y, g.width, g.height, ErrOutOfBounds)
}

// at and set skip the bounds check; callers iterate within the grid.
func (g *Grid) at(x, y int) RGB {
	return g.pix[y*g.width+x]
}

func (g *Grid) set(x, y int, c RGB) {
	g.pix[y*g.width+x] = c
}

// minSize returns the smallest width and smallest height across grids.
// grids must be non-empty.
func minSize(grids []*Grid) (int, int) {
	w, h := grids[0].width, grids[0].height
	for _, g := range grids[1:] {
		if g.width < w {
			w = g.width
		}
		if g.height < h {
			h = g.height
		}
	}
	return w, h
}
