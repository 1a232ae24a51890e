package imaging

import "fmt"

// Invert returns a grid where every channel c is replaced by 255-c.
func Invert(g *Grid) *Grid {
	out := newGrid(g.width, g.height)
	for i, c := range g.pix {
		out.pix[i] = c.Inverted()
	}
	return out
}

// Grayscale returns a grid where every pixel is replaced by the truncated
// mean of its three channels.
//
// This is a plain (r+g+b)/3 average, not a luminance-weighted conversion.
func Grayscale(g *Grid) *Grid {
	out := newGrid(g.width, g.height)
	for i, c := range g.pix {
		out.pix[i] = c.Gray()
	}
	return out
}

// Rotate turns the grid clockwise by angle degrees.
//
// Parameters:
//   - g: Source grid.
//   - angle: 90, 180 or 270. 270 is equivalent to 90 counter-clockwise.
//
// Returns ErrInvalidArgument for any other angle. For 90 and 270 the output
// width and height are swapped.
//
// # Index Mapping
//
// With inW×inH source dimensions, source pixel (i,j) lands at:
//
//	 90: (inH-1-j, i)
//	180: (inW-1-i, inH-1-j)
//	270: (j, inW-1-i)
//
// Each mapping is a bijection, so every destination pixel is written once.
func Rotate(g *Grid, angle int) (*Grid, error) {
	if err := CheckAngle(angle); err != nil {
		return nil, err
	}
	w, h := g.width, g.height

	var out *Grid
	var dest func(i, j int) (int, int)
	switch angle {
	case 90:
		out = newGrid(h, w)
		dest = func(i, j int) (int, int) { return h - 1 - j, i }
	case 180:
		out = newGrid(w, h)
		dest = func(i, j int) (int, int) { return w - 1 - i, h - 1 - j }
	case 270:
		out = newGrid(h, w)
		dest = func(i, j int) (int, int) { return j, w - 1 - i }
	}

	remap(g, out, dest)
	return out, nil
}

// CheckAngle returns ErrInvalidArgument unless angle is 90, 180 or 270.
func CheckAngle(angle int) error {
	switch angle {
	case 90, 180, 270:
		return nil
	}
	return fmt.Errorf("rotation angle %d not one of 90, 180, 270: %w", angle, ErrInvalidArgument)
}

// Direction selects the axis of a Flip.
type Direction int

const (
	// Horizontal mirrors left to right: column i moves to width-1-i.
	Horizontal Direction = iota + 1
	// Vertical mirrors top to bottom: row j moves to height-1-j.
	Vertical
)

// String returns the command-line token for d.
func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "H"
	case Vertical:
		return "V"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts the tokens "H" and "V" into a Direction.
//
// Any other token returns ErrInvalidArgument.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "H":
		return Horizontal, nil
	case "V":
		return Vertical, nil
	default:
		return 0, fmt.Errorf("flip direction %q not one of H, V: %w", s, ErrInvalidArgument)
	}
}

// Flip mirrors the grid along the given direction.
//
// Returns ErrInvalidArgument if dir is neither Horizontal nor Vertical.
func Flip(g *Grid, dir Direction) (*Grid, error) {
	w, h := g.width, g.height

	var dest func(i, j int) (int, int)
	switch dir {
	case Horizontal:
		dest = func(i, j int) (int, int) { return w - 1 - i, j }
	case Vertical:
		dest = func(i, j int) (int, int) { return i, h - 1 - j }
	default:
		return nil, fmt.Errorf("unknown flip direction %v: %w", dir, ErrInvalidArgument)
	}

	out := newGrid(w, h)
	remap(g, out, dest)
	return out, nil
}

// remap copies every source pixel (i,j) to dest(i,j) in out.
func remap(src, out *Grid, dest func(i, j int) (int, int)) {
	for j := 0; j < src.height; j++ {
		for i := 0; i < src.width; i++ {
			x, y := dest(i, j)
			out.set(x, y, src.at(i, j))
		}
	}
}
