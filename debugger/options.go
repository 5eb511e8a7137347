package debugger

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/testdmg/hardware/joypad"
	"github.com/jetsetilly/testdmg/hardware/spec"
	"github.com/jetsetilly/testdmg/version"
)

// Options are the command line options
type Options struct {
	Spec     string
	Overlay  bool
	Profile  bool
	Random   bool
	Headless bool
	Frames   int
	PNG      string
	Tiles    string
	Settle   int
}

const programName = "testdmg"

// the number of frames to run in headless mode if the number is not specified
const defaultHeadlessFrames = 60

// ParseArgs parses the command line arguments. Output from the flag package,
// such as usage information, is written to the output writer
func ParseArgs(args []string, output io.Writer) (Options, error) {
	var opts Options

	flgs := flag.NewFlagSet(programName, flag.ContinueOnError)
	flgs.SetOutput(output)
	flgs.Usage = func() {
		fmt.Fprintln(output, version.Summary())
		flgs.PrintDefaults()
	}
	flgs.StringVar(&opts.Spec, "spec", "DMG", "specification of the device: DMG or POCKET")
	flgs.BoolVar(&opts.Overlay, "overlay", false, "add debugging overlay to display")
	flgs.BoolVar(&opts.Profile, "profile", false, "create CPU profile for emulator")
	flgs.BoolVar(&opts.Random, "random", false, "randomise memory on reset")
	flgs.BoolVar(&opts.Headless, "headless", false, "run without a window or a prompt")
	flgs.IntVar(&opts.Frames, "frames", 0, "number of frames to run on startup")
	flgs.StringVar(&opts.PNG, "png", "", "save the final frame to a PNG file (headless only)")
	flgs.StringVar(&opts.Tiles, "tiles", "", "tileset image to load on reset")
	flgs.IntVar(&opts.Settle, "settle", joypad.DefaultSettle, "machine cycles for the joypad select lines to settle")

	err := flgs.Parse(args)
	if err != nil {
		return opts, err
	}

	if len(flgs.Args()) > 0 {
		return opts, fmt.Errorf("too many arguments to debugger")
	}

	opts.Spec = strings.ToUpper(opts.Spec)
	if _, ok := spec.Lookup(opts.Spec); !ok {
		return opts, fmt.Errorf("unsupported specification: %s", opts.Spec)
	}

	if opts.Frames < 0 {
		return opts, fmt.Errorf("number of frames must not be negative")
	}
	if opts.Headless && opts.Frames == 0 {
		opts.Frames = defaultHeadlessFrames
	}
	if opts.PNG != "" && !opts.Headless {
		return opts, fmt.Errorf("the png option requires the headless option")
	}

	if opts.Settle < 0 {
		return opts, fmt.Errorf("settle must not be negative")
	}

	return opts, nil
}
