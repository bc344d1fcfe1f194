package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/danmuck/scramblectl/internal/logging"
	"github.com/danmuck/scramblectl/internal/render"
	"github.com/danmuck/scramblectl/internal/scramble"
	"github.com/danmuck/scramblectl/internal/script"
	"github.com/rs/zerolog/log"
)

func main() {
	logging.ConfigureRuntime()
	cfg, err := resolveConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		fatalf("%v", err)
	}
	out, err := run(cfg, os.Stderr)
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Println(out)
}

// resolveConfig applies defaults, then the -config file, then explicit flags.
func resolveConfig(fs *flag.FlagSet, args []string) (runConfig, error) {
	configPath := fs.String("config", "", "optional TOML run file")
	programPath := fs.String("program", "", "program file, one instruction per line")
	input := fs.String("input", "", "buffer to scramble or unscramble")
	mode := fs.String("mode", "scramble", "mode: scramble | unscramble")
	strict := fs.Bool("strict", false, "fail on ambiguous rotate-by-letter inverses")
	trace := fs.Bool("trace", false, "print every step to stderr")
	if err := fs.Parse(args); err != nil {
		return runConfig{}, err
	}

	cfg := defaultRunConfig()
	if *configPath != "" {
		loaded, err := loadRunConfig(*configPath, cfg)
		if err != nil {
			return runConfig{}, err
		}
		cfg = loaded
	}

	var modeErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "program":
			cfg.ProgramPath = *programPath
		case "input":
			cfg.Input = *input
		case "mode":
			cfg.Mode, modeErr = parseMode(*mode)
		case "strict":
			cfg.Strict = *strict
		case "trace":
			cfg.Trace = *trace
		}
	})
	if modeErr != nil {
		return runConfig{}, modeErr
	}
	if cfg.ProgramPath == "" {
		return runConfig{}, fmt.Errorf("program path is required")
	}
	return cfg, nil
}

// run executes cfg and returns the final buffer. Trace lines go to traceOut.
func run(cfg runConfig, traceOut io.Writer) (string, error) {
	f, err := os.Open(cfg.ProgramPath)
	if err != nil {
		return "", fmt.Errorf("open program: %w", err)
	}
	defer f.Close()

	prog, err := script.Parse(f)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", cfg.ProgramPath, err)
	}

	buf := scramble.NewBuffer(cfg.Input)
	if err := buf.Validate(); err != nil {
		return "", fmt.Errorf("input: %w", err)
	}

	runner := scramble.Executor{Strict: cfg.Strict}
	if cfg.Trace {
		runner.Observer = render.NewTracer(traceOut).Observe
	}

	out, err := runner.Run(cfg.Mode, prog, buf)
	if err != nil {
		log.Debug().Err(err).Str("kind", scramble.Kind(err)).Msg("run failed")
		return "", err
	}
	log.Debug().Str("mode", cfg.Mode.String()).Int("ops", len(prog)).Msg("run complete")
	return out.String(), nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "scramblectl: "+format+"\n", args...)
	os.Exit(1)
}
