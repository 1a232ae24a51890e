package cli

import (
	"fmt"
	"strings"

	"github.com/ironsheep/image-transform/internal/imaging"
)

// ErrUsage reports an unknown command or a wrong number of arguments.
var ErrUsage = fmt.Errorf("usage error: %w", imaging.ErrInvalidArgument)

// unbounded marks a command that accepts any number of arguments above MinArgs.
const unbounded = -1

// CommandSpec describes one command for arity checks and help text.
type CommandSpec struct {
	Name        string
	Usage       string
	Description string
	MinArgs     int // positional arguments after the command name
	MaxArgs     int // unbounded for variadic commands
}

// Commands lists every command in help order.
var Commands = []CommandSpec{
	{
		Name:        "invert",
		Usage:       "invert <in> <out>",
		Description: "Replace every channel c with 255-c.",
		MinArgs:     2,
		MaxArgs:     2,
	},
	{
		Name:        "grayscale",
		Usage:       "grayscale <in> <out>",
		Description: "Set every channel to the truncated mean (r+g+b)/3.",
		MinArgs:     2,
		MaxArgs:     2,
	},
	{
		Name:        "rotate",
		Usage:       "rotate <90|180|270> <in> <out>",
		Description: "Rotate clockwise by a multiple of 90 degrees.",
		MinArgs:     3,
		MaxArgs:     3,
	},
	{
		Name:        "flip",
		Usage:       "flip <H|V> <in> <out>",
		Description: "Mirror horizontally (H) or vertically (V).",
		MinArgs:     3,
		MaxArgs:     3,
	},
	{
		Name:        "blend",
		Usage:       "blend <in1> ... <inN> <out>",
		Description: "Average images channel by channel, cropped to the smallest.",
		MinArgs:     2,
		MaxArgs:     unbounded,
	},
	{
		Name:        "mosaic",
		Usage:       "mosaic <in1> ... <inN> <out>",
		Description: "Interleave images along diagonals into a square.",
		MinArgs:     2,
		MaxArgs:     unbounded,
	},
	{
		Name:        "blur",
		Usage:       "blur <in> <out>",
		Description: "3x3 box blur of interior pixels; border left unchanged.",
		MinArgs:     2,
		MaxArgs:     2,
	},
	{
		Name:        "info",
		Usage:       "info <in>",
		Description: "Print image dimensions, format and file size as JSON.",
		MinArgs:     1,
		MaxArgs:     1,
	},
	{
		Name:        "sample",
		Usage:       "sample <in> <x> <y>",
		Description: "Print the color at a pixel as JSON.",
		MinArgs:     3,
		MaxArgs:     3,
	},
}

// lookup finds the spec for name.
func lookup(name string) (CommandSpec, bool) {
	for _, c := range Commands {
		if c.Name == name {
			return c, true
		}
	}
	return CommandSpec{}, false
}

// checkArity returns an ErrUsage error if args does not fit spec.
func (c CommandSpec) checkArity(args []string) error {
	n := len(args)
	if n < c.MinArgs || (c.MaxArgs != unbounded && n > c.MaxArgs) {
		return fmt.Errorf("%w: %s: got %d arguments, usage: %s", ErrUsage, c.Name, n, c.Usage)
	}
	return nil
}

// Usage renders the help text listing every command.
func Usage(program string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s <command> [arguments]\n\nCommands:\n", program)
	for _, c := range Commands {
		fmt.Fprintf(&b, "  %-32s %s\n", c.Usage, c.Description)
	}
	return b.String()
}
