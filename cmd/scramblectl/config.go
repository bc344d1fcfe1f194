package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/scramblectl/internal/scramble"
)

// runConfig is one resolved CLI invocation.
type runConfig struct {
	ProgramPath string
	Input       string
	Mode        scramble.RunMode
	Strict      bool
	Trace       bool
}

type fileConfig struct {
	Program string `toml:"program"`
	Input   string `toml:"input"`
	Mode    string `toml:"mode"`
	Strict  bool   `toml:"strict"`
	Trace   bool   `toml:"trace"`
}

func defaultRunConfig() runConfig {
	return runConfig{Mode: scramble.Forward}
}

// loadRunConfig overlays the keys present in the file onto cfg. A relative
// program path is resolved against the file's directory.
func loadRunConfig(path string, cfg runConfig) (runConfig, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return runConfig{}, fmt.Errorf("load run config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return runConfig{}, fmt.Errorf("load run config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("program") {
		cfg.ProgramPath = strings.TrimSpace(raw.Program)
		if cfg.ProgramPath != "" && !filepath.IsAbs(cfg.ProgramPath) {
			cfg.ProgramPath = filepath.Join(filepath.Dir(path), cfg.ProgramPath)
		}
	}
	if meta.IsDefined("input") {
		cfg.Input = raw.Input
	}
	if meta.IsDefined("mode") {
		mode, err := parseMode(raw.Mode)
		if err != nil {
			return runConfig{}, err
		}
		cfg.Mode = mode
	}
	if meta.IsDefined("strict") {
		cfg.Strict = raw.Strict
	}
	if meta.IsDefined("trace") {
		cfg.Trace = raw.Trace
	}
	return cfg, nil
}

func parseMode(raw string) (scramble.RunMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "scramble", "forward":
		return scramble.Forward, nil
	case "unscramble", "backward":
		return scramble.Backward, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (supported: scramble, unscramble)", raw)
	}
}
