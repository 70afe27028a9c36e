package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	atoms "github.com/alnah/go-atoms"
	"github.com/alnah/go-atoms/internal/hints"
)

// runDist builds the site described by args.
func runDist(ctx context.Context, args []string, env *Environment) error {
	f, inputs, err := parseSiteFlags("dist", args, env.Stderr)
	if err != nil {
		return err
	}
	warnUnknownEnvVars(env.Stderr)

	s, err := resolveSettings(f)
	if err != nil {
		return err
	}

	logger, err := newLogger(logLevel(s.cfg.Verbose), f.common.logFormat, env.Stderr)
	if err != nil {
		return err
	}
	if s.source != "" {
		logger.Debug("using config", "config", s.source)
	}

	var dry io.Writer
	if f.dry {
		dry = env.Stdout
	}

	b, err := atoms.NewBuilder(s.root, builderOptions(s, inputs, dry, logger)...)
	if err != nil {
		return withHint(err, s.root)
	}

	start := env.Now()
	result, err := b.Build(ctx)
	if !f.dry {
		printSummary(env.Stdout, result, b.OutDir(), env.Now().Sub(start))
	}
	if err != nil {
		return withHint(err, b.Root())
	}
	return nil
}

// printSummary reports the pages written by a build.
func printSummary(w io.Writer, result *atoms.BuildResult, out string, elapsed time.Duration) {
	fmt.Fprintf(w, "Built %d page(s) into %s (%v)\n", len(result.Pages), out, elapsed.Round(time.Millisecond))
	if n := len(result.Failed); n > 0 {
		fmt.Fprintf(w, "%d page(s) failed\n", n)
	}
}

// withHint appends an actionable hint to err when one applies.
func withHint(err error, root string) error {
	var hint string
	switch {
	case errors.Is(err, atoms.ErrInvalidRoot):
		hint = hints.ForInvalidRoot()
	case errors.Is(err, atoms.ErrPageNotFound):
		hint = hints.ForPageNotFound(root)
	case errors.Is(err, atoms.ErrUnknownEngine):
		hint = hints.ForUnknownEngine(engineNames())
	case errors.Is(err, atoms.ErrWriteOutput), errors.Is(err, atoms.ErrCleanOutput):
		hint = hints.ForOutputDirectory()
	}
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}

// engineNames lists the Markdown engines by name.
func engineNames() []string {
	engines := atoms.Engines()
	names := make([]string, len(engines))
	for i, e := range engines {
		names[i] = string(e)
	}
	return names
}
