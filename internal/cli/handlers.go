package cli

import (
	"fmt"
	"strconv"

	"github.com/ironsheep/image-transform/internal/imaging"
)

// === Single-Image Transform Handlers ===

// transformFunc is a transform over one grid.
type transformFunc func(*imaging.Grid) (*imaging.Grid, error)

// applyOne loads in, applies fn and saves the result to out.
func (r *Runner) applyOne(in, out string, fn transformFunc) error {
	if err := imaging.CheckOutputPath(out); err != nil {
		return err
	}
	src, err := r.cache.Load(in)
	if err != nil {
		return err
	}
	r.debugf("Loaded %s (%dx%d)", in, src.Width(), src.Height())

	result, err := fn(src)
	if err != nil {
		return err
	}
	return r.save(result, out)
}

func (r *Runner) handleInvert(args []string) error {
	return r.applyOne(args[0], args[1], func(g *imaging.Grid) (*imaging.Grid, error) {
		return imaging.Invert(g), nil
	})
}

func (r *Runner) handleGrayscale(args []string) error {
	return r.applyOne(args[0], args[1], func(g *imaging.Grid) (*imaging.Grid, error) {
		return imaging.Grayscale(g), nil
	})
}

func (r *Runner) handleBlur(args []string) error {
	return r.applyOne(args[0], args[1], func(g *imaging.Grid) (*imaging.Grid, error) {
		return imaging.Blur(g), nil
	})
}

func (r *Runner) handleRotate(args []string) error {
	angle, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("rotation angle %q is not an integer: %w", args[0], imaging.ErrInvalidArgument)
	}
	if err := imaging.CheckAngle(angle); err != nil {
		return err
	}
	return r.applyOne(args[1], args[2], func(g *imaging.Grid) (*imaging.Grid, error) {
		return imaging.Rotate(g, angle)
	})
}

func (r *Runner) handleFlip(args []string) error {
	dir, err := imaging.ParseDirection(args[0])
	if err != nil {
		return err
	}
	return r.applyOne(args[1], args[2], func(g *imaging.Grid) (*imaging.Grid, error) {
		return imaging.Flip(g, dir)
	})
}

// === Multi-Image Transform Handlers ===

// combineFunc is a transform over an ordered list of grids.
type combineFunc func([]*imaging.Grid) (*imaging.Grid, error)

// applyMany treats the last argument as the output path and every earlier
// argument as an input. Each distinct input path is decoded once.
func (r *Runner) applyMany(args []string, fn combineFunc) error {
	inputs, out := args[:len(args)-1], args[len(args)-1]
	if err := imaging.CheckOutputPath(out); err != nil {
		return err
	}
	grids, err := r.cache.LoadAll(inputs)
	if err != nil {
		return err
	}
	r.debugf("Loaded %d inputs (%d decoded)", len(inputs), r.cache.Decodes())

	result, err := fn(grids)
	if err != nil {
		return err
	}
	return r.save(result, out)
}

func (r *Runner) handleBlend(args []string) error {
	return r.applyMany(args, imaging.Blend)
}

func (r *Runner) handleMosaic(args []string) error {
	return r.applyMany(args, imaging.Mosaic)
}

func (r *Runner) save(g *imaging.Grid, out string) error {
	if err := imaging.Save(g, out); err != nil {
		return err
	}
	r.debugf("Wrote %s (%dx%d)", out, g.Width(), g.Height())
	return nil
}

// === Inspection Handlers ===

func (r *Runner) handleInfo(args []string) error {
	info, err := imaging.LoadInfo(r.cache, args[0])
	if err != nil {
		return err
	}
	return r.printJSON(info)
}

func (r *Runner) handleSample(args []string) error {
	x, err := parseCoordinate("x", args[1])
	if err != nil {
		return err
	}
	y, err := parseCoordinate("y", args[2])
	if err != nil {
		return err
	}
	g, err := r.cache.Load(args[0])
	if err != nil {
		return err
	}
	result, err := imaging.Sample(g, x, y)
	if err != nil {
		return err
	}
	return r.printJSON(result)
}

func parseCoordinate(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s coordinate %q is not an integer: %w", name, s, imaging.ErrInvalidArgument)
	}
	return v, nil
}
