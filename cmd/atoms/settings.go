package main

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	atoms "github.com/alnah/go-atoms"
	"github.com/alnah/go-atoms/internal/config"
	"github.com/alnah/go-atoms/internal/fileutil"
	"github.com/alnah/go-atoms/internal/hints"
)

// settings is the merged configuration of one run.
type settings struct {
	root   string
	source string // Config file name or path, empty when none was loaded
	cfg    *config.Config
}

// resolveSettings merges defaults, the config file, ATOMS_* variables and
// flags, then validates the result.
//
// The config file is --config, else ATOMS_CONFIG, else atoms.yaml|.yml in
// the project root when present. A relative out read from the file is
// relative to the project root.
func resolveSettings(f *siteFlags) (*settings, error) {
	envCfg := loadEnvConfig()
	s := &settings{root: cmp.Or(f.common.root, envCfg.Root, ".")}

	name := cmp.Or(f.common.config, envCfg.ConfigPath)
	if name == "" {
		if found, ok := config.Find(s.root); ok {
			name = found
		}
	}

	if name == "" {
		s.cfg = config.DefaultConfig()
	} else {
		cfg, err := config.LoadConfig(name, s.root)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(userConfigCandidates(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		s.cfg, s.source = cfg, name
		if cfg.Out != "" && !filepath.IsAbs(cfg.Out) {
			cfg.Out = filepath.Join(s.root, cfg.Out)
		}
	}

	applyEnvConfig(envCfg, s.cfg)
	mergeFlags(f, s.cfg)

	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// userConfigCandidates lists where a config name is looked up outside the
// project. Paths are returned as is.
func userConfigCandidates(name string) []string {
	if fileutil.IsFilePath(name) {
		return nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(dir, "go-atoms", name+".yaml")}
}

// builderOptions maps settings to Builder options.
// Pages are printed to dry instead of written when dry is not nil.
func builderOptions(s *settings, inputs []string, dry io.Writer, logger *slog.Logger) []atoms.Option {
	cfg := s.cfg
	opts := []atoms.Option{
		atoms.WithLogger(logger),
		atoms.WithMaxDepth(cfg.MaxDepth),
		atoms.WithHideExtension(cfg.HideExtension),
		atoms.WithClean(cfg.Clean),
		atoms.WithVariables(cfg.Context),
		atoms.WithMarkdownEngine(atoms.MarkdownEngine(cfg.Markdown.Engine)),
	}
	if cfg.Out != "" {
		opts = append(opts, atoms.WithOutput(cfg.Out))
	}
	if cfg.Markdown.Highlight {
		opts = append(opts, atoms.WithHighlighting(cfg.Markdown.HighlightStyle))
	}
	if len(inputs) > 0 {
		opts = append(opts, atoms.WithInputs(inputs...))
	}
	if dry != nil {
		opts = append(opts, atoms.WithDryRun(dry))
	}
	return opts
}
