package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-atoms/internal/config"
)

// ErrInvalidFlags reports flags that could not be parsed.
var ErrInvalidFlags = errors.New("invalid flags")

// commonFlags holds flags shared across actions.
type commonFlags struct {
	root      string
	config    string
	verbose   bool
	logFormat string
}

// siteFlags holds the flags of the dist and config actions.
type siteFlags struct {
	common        commonFlags
	out           string
	depth         int
	depthSet      bool // --depth given, even with an invalid value
	clean         bool
	dry           bool
	hideExtension bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVar(&f.root, "root", "", "project directory (default \".\")")
	fs.StringVar(&f.config, "config", "", "config file name or path")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log debug diagnostics")
	fs.StringVar(&f.logFormat, "log-format", logFormatText, "log format: text, json")
}

// parseSiteFlags parses the flags of action. Remaining arguments are the
// pages to build. Usage goes to w on --help or a parse error.
func parseSiteFlags(action string, args []string, w io.Writer) (*siteFlags, []string, error) {
	fs := flag.NewFlagSet(action, flag.ContinueOnError)
	fs.SetOutput(w)
	f := &siteFlags{}

	fs.StringVar(&f.out, "out", "", "output directory (default <root>/dist)")
	fs.IntVar(&f.depth, "depth", 0, fmt.Sprintf("nested embed limit (1-%d)", config.MaxDepthLimit))
	fs.BoolVarP(&f.clean, "clean", "c", false, "remove the output directory first")
	fs.BoolVarP(&f.dry, "dry", "d", false, "print pages instead of writing them")
	fs.BoolVar(&f.hideExtension, "hide-extension", false, "write page instead of page.html")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printActionUsage(w, action) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	f.depthSet = fs.Changed("depth")

	return f, fs.Args(), nil
}

// mergeFlags applies explicitly set flags on top of cfg.
// Boolean flags can only turn a setting on.
func mergeFlags(f *siteFlags, cfg *config.Config) {
	if f.out != "" {
		cfg.Out = f.out
	}
	if f.depthSet {
		cfg.MaxDepth = f.depth
	}
	if f.clean {
		cfg.Clean = true
	}
	if f.hideExtension {
		cfg.HideExtension = true
	}
	if f.common.verbose {
		cfg.Verbose = true
	}
}
