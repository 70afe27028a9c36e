package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/alnah/go-atoms/internal/config"
)

// envPrefix marks the variables read by the CLI.
const envPrefix = "ATOMS_"

// envConfig holds configuration from environment variables.
type envConfig struct {
	Root       string // ATOMS_ROOT: project directory
	Out        string // ATOMS_OUT: output directory
	ConfigPath string // ATOMS_CONFIG: config file name or path
	MaxDepth   int    // ATOMS_MAX_DEPTH: nested embed limit
}

// knownEnvVars lists valid ATOMS_* environment variables.
var knownEnvVars = map[string]bool{
	"ATOMS_ROOT":      true,
	"ATOMS_OUT":       true,
	"ATOMS_CONFIG":    true,
	"ATOMS_MAX_DEPTH": true,
}

// loadEnvConfig reads configuration from environment variables.
// A depth that is not a positive integer is ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		Root:       os.Getenv("ATOMS_ROOT"),
		Out:        os.Getenv("ATOMS_OUT"),
		ConfigPath: os.Getenv("ATOMS_CONFIG"),
	}

	if depth := os.Getenv("ATOMS_MAX_DEPTH"); depth != "" {
		if d, err := strconv.Atoi(depth); err == nil && d > 0 {
			cfg.MaxDepth = d
		}
	}

	return cfg
}

// warnUnknownEnvVars prints a warning per unrecognized ATOMS_* variable,
// in name order.
func warnUnknownEnvVars(w io.Writer) {
	var unknown []string
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	slices.Sort(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig fills config values the file left unset.
// A depth still at its default counts as unset.
// Precedence: CLI flags > config file > env vars > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Out != "" && cfg.Out == "" {
		cfg.Out = env.Out
	}
	if env.MaxDepth > 0 && cfg.MaxDepth == config.DefaultMaxDepth {
		cfg.MaxDepth = env.MaxDepth
	}
}
