package imaging

import "fmt"

// Blend averages several grids channel by channel.
//
// Parameters:
//   - grids: The inputs, in command-line order. The same grid may appear more
//     than once and is counted once per appearance. Inputs are not modified.
//
// Returns:
//   - *Grid: A new minWidth×minHeight grid.
//   - error: ErrInvalidArgument if grids is empty.
//
// # Cropping
//
// The output takes the smallest width and the smallest height across all
// inputs, which need not come from the same input. Pixels of larger inputs
// outside that region are never read.
//
// # Averaging
//
// Each output channel is the truncated integer mean of that channel over all
// inputs at the same coordinate:
//
//	out.R = (g0.R + g1.R + ... + gn-1.R) / n
//
// A single input therefore comes back as an unchanged copy.
func Blend(grids []*Grid) (*Grid, error) {
	if len(grids) == 0 {
		return nil, fmt.Errorf("blend needs at least one image: %w", ErrInvalidArgument)
	}

	w, h := minSize(grids)
	n := len(grids)
	out := newGrid(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sumR, sumG, sumB int
			for _, g := range grids {
				c := g.at(x, y)
				sumR += int(c.R)
				sumG += int(c.G)
				sumB += int(c.B)
			}
			out.set(x, y, RGB{
				R: uint8(sumR / n),
				G: uint8(sumG / n),
				B: uint8(sumB / n),
			})
		}
	}
	return out, nil
}

// Mosaic interleaves several grids along diagonals.
//
// Parameters:
//   - grids: The inputs, in command-line order. Inputs are not modified.
//
// Returns:
//   - *Grid: A new side×side grid, where side is the smaller of the minimum
//     width and the minimum height across inputs.
//   - error: ErrInvalidArgument if grids is empty.
//
// # Source Selection
//
// Output pixel (i,j) is copied from input number
//
//	((i+j-2) mod n + n) mod n
//
// at the same coordinate. Samples are selected, never averaged, so every
// output pixel equals some input pixel. Anti-diagonals (constant i+j) come
// from one input, and the origin (0,0) comes from input (n-2) mod n.
func Mosaic(grids []*Grid) (*Grid, error) {
	if len(grids) == 0 {
		return nil, fmt.Errorf("mosaic needs at least one image: %w", ErrInvalidArgument)
	}

	w, h := minSize(grids)
	side := min(w, h)
	n := len(grids)
	out := newGrid(side, side)

	for j := 0; j < side; j++ {
		for i := 0; i < side; i++ {
			// Go's % keeps the sign of the dividend; i+j-2 is negative near the origin.
			src := ((i+j-2)%n + n) % n
			out.set(i, j, grids[src].at(i, j))
		}
	}
	return out, nil
}
