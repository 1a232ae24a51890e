package imaging

// Blur applies a 3×3 box blur to the interior of the grid.
//
// Parameters:
//   - g: The source grid. It is not modified.
//
// Returns:
//   - *Grid: A new grid with the same dimensions as g.
//
// # Interior And Border
//
// Every interior pixel (1 <= x <= width-2, 1 <= y <= height-2) becomes the
// truncated mean of itself and its eight neighbors, read from the unmodified
// source. Border pixels are copied unchanged. Grids narrower or shorter than
// three pixels have no interior and are returned as an unmodified copy.
//
// # Kernel
//
// All weights equal, sum 9:
//
//	1 1 1
//	1 1 1
//	1 1 1
func Blur(g *Grid) *Grid {
	out := g.Clone()
	if g.width < 3 || g.height < 3 {
		return out
	}

	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			var sumR, sumG, sumB int
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					c := g.at(x+kx, y+ky)
					sumR += int(c.R)
					sumG += int(c.G)
					sumB += int(c.B)
				}
			}
			out.set(x, y, RGB{
				R: uint8(sumR / 9),
				G: uint8(sumG / 9),
				B: uint8(sumB / 9),
			})
		}
	}
	return out
}
