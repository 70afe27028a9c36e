package main

import (
	"fmt"

	"github.com/alnah/go-atoms/internal/yamlutil"
)

// runConfig prints the effective configuration as YAML, preceded by a
// comment naming its source.
func runConfig(args []string, env *Environment) error {
	f, _, err := parseSiteFlags("config", args, env.Stderr)
	if err != nil {
		return err
	}
	warnUnknownEnvVars(env.Stderr)

	s, err := resolveSettings(f)
	if err != nil {
		return err
	}

	data, err := yamlutil.Marshal(s.cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if s.source != "" {
		fmt.Fprintf(env.Stdout, "# config: %s\n", s.source)
	} else {
		fmt.Fprintln(env.Stdout, "# config: defaults")
	}
	_, err = env.Stdout.Write(data)
	return err
}
