// Package cli implements the command dispatcher for image-transform.
//
// The first argument names a command; the remaining positional arguments are
// command specific. Each command's arity is checked against the command table
// before any file is read, and the output path's format is validated before
// inputs are decoded, so a failing command never writes an output file.
//
// # Commands
//
// Transforms (write a new image):
//   - invert <in> <out>
//   - grayscale <in> <out>
//   - rotate <90|180|270> <in> <out>
//   - flip <H|V> <in> <out>
//   - blend <in1> ... <inN> <out>
//   - mosaic <in1> ... <inN> <out>
//   - blur <in> <out>
//
// Inspection (print JSON to the output writer):
//   - info <in>
//   - sample <in> <x> <y>
//
// # Errors
//
// Malformed command lines return an error wrapping ErrUsage, which itself
// wraps imaging.ErrInvalidArgument. Errors from the imaging package are
// returned with their sentinel intact.
package cli
