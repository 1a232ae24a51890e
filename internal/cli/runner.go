package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/ironsheep/image-transform/internal/imaging"
)

// Runner executes a single command line.
type Runner struct {
	cache *imaging.GridCache
	out   io.Writer
	debug bool
}

// New creates a Runner that prints inspection results to out.
//
// When debug is true the Runner logs each step through the standard logger.
func New(out io.Writer, debug bool) *Runner {
	return &Runner{
		cache: imaging.NewGridCache(),
		out:   out,
		debug: debug,
	}
}

// Run executes the command in args, where args[0] is the command name.
func (r *Runner) Run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	spec, ok := lookup(args[0])
	if !ok {
		return fmt.Errorf("%w: unknown command: %s", ErrUsage, args[0])
	}
	rest := args[1:]
	if err := spec.checkArity(rest); err != nil {
		return err
	}

	r.debugf("Running %s with %d arguments", spec.Name, len(rest))
	return r.executeCommand(spec.Name, rest)
}

// executeCommand dispatches to the handler for name.
//
// Transform handlers:
//  1. Parse command-specific arguments
//  2. Validate the output path
//  3. Load inputs through the cache
//  4. Call the imaging transform
//  5. Save the result
func (r *Runner) executeCommand(name string, args []string) error {
	switch name {
	// Single-image transforms
	case "invert":
		return r.handleInvert(args)
	case "grayscale":
		return r.handleGrayscale(args)
	case "rotate":
		return r.handleRotate(args)
	case "flip":
		return r.handleFlip(args)
	case "blur":
		return r.handleBlur(args)

	// Multi-image transforms
	case "blend":
		return r.handleBlend(args)
	case "mosaic":
		return r.handleMosaic(args)

	// Inspection
	case "info":
		return r.handleInfo(args)
	case "sample":
		return r.handleSample(args)

	default:
		return fmt.Errorf("%w: unknown command: %s", ErrUsage, name)
	}
}

// printJSON writes v to the output as indented JSON.
func (r *Runner) printJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	if _, err := fmt.Fprintln(r.out, string(b)); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

func (r *Runner) debugf(format string, args ...interface{}) {
	if r.debug {
		log.Printf(format, args...)
	}
}
