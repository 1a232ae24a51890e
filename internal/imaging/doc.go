// Package imaging provides the pixel-grid transformation engine for the
// image-transform command.
//
// Images are decoded into a Grid, a width×height array of RGB samples held
// in row-major order. Every transform reads one or more grids and returns a
// new grid; inputs are never modified, so a decoded grid can be shared
// read-only between several uses within a single command.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: column (0 = leftmost pixel), ranges over [0, width)
//   - Y: row (0 = topmost pixel), ranges over [0, height)
//
// # Transforms
//
//   - Invert: each channel c becomes 255-c
//   - Grayscale: each channel becomes the truncated mean (r+g+b)/3
//   - Rotate: 90 (clockwise), 180 or 270 degrees, no interpolation
//   - Flip: mirror across the vertical (Horizontal) or horizontal (Vertical) axis
//   - Blend: per-channel truncated mean across grids, cropped to the smallest
//   - Blur: 3×3 box blur of interior pixels, border copied unchanged
//   - Mosaic: diagonal interleave of grids, cropped to the smallest square
//
// # Error Handling
//
// Failures wrap one of the sentinel errors ErrInvalidArgument,
// ErrOutOfBounds or ErrIO and can be tested with errors.Is.
//
// # Thread Safety
//
// Grids are not synchronized. Transforms only read their inputs and may run
// concurrently on shared grids, but GridCache is intended for a single
// command and is not safe for concurrent use.
package imaging
