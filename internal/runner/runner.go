// Package runner orchestrates the read -> diff -> render pipeline.
package runner

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/donaldgifford/diffmark/internal/config"
	"github.com/donaldgifford/diffmark/internal/render"
	"github.com/donaldgifford/diffmark/pkg/diff"
)

// Exit codes, following diff(1).
const (
	ExitSame      = 0
	ExitDifferent = 1
	ExitError     = 2
)

// stdinName is the input name that reads standard input.
const stdinName = "-"

// Options configures the runner behavior. Empty Format, Unit and Color keep
// the configured values.
type Options struct {
	Inputs     []string // Two file paths ("-" for stdin), or two texts with Strings.
	Strings    bool
	Format     string
	Unit       string
	Color      string
	ConfigPath string
	Quiet      bool // Report through the exit code only.
	Log        *logrus.Logger
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
}

// Run executes the pipeline and returns an exit code.
func Run(opts *Options) int {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Log == nil {
		opts.Log = logrus.New()
		opts.Log.SetOutput(io.Discard)
	}

	code, err := run(opts)
	if err != nil {
		writeErr(opts.Stderr, "diffmark: %v\n", err)
		return ExitError
	}
	return code
}

func run(opts *Options) (int, error) {
	if len(opts.Inputs) != 2 {
		return ExitError, fmt.Errorf("expected 2 inputs, got %d", len(opts.Inputs))
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return ExitError, err
	}

	unit, err := diff.ParseUnit(cfg.Diff.Unit)
	if err != nil {
		return ExitError, err
	}
	renderer, err := render.Lookup(cfg.Render.Format)
	if err != nil {
		return ExitError, err
	}

	a, err := readInput(opts, 0)
	if err != nil {
		return ExitError, err
	}
	b, err := readInput(opts, 1)
	if err != nil {
		return ExitError, err
	}

	result, err := diff.Compute(a, b, unit)
	if err != nil {
		return ExitError, err
	}

	opts.Log.WithFields(logrus.Fields{
		"unit":       unit.String(),
		"units_a":    len(result.MarkA),
		"units_b":    len(result.MarkB),
		"matched":    result.Stats.Matched,
		"matches":    result.Stats.Matches,
		"windows":    result.Stats.Windows,
		"max_stack":  result.Stats.MaxStack,
		"similarity": result.Similarity(),
	}).Info("computed diff")

	if !opts.Quiet {
		ropts := &render.Options{
			Config:  &cfg.Render,
			Profile: render.Profile(cfg.Render.Color, opts.Stdout),
		}
		if err := renderer.Render(opts.Stdout, result, ropts); err != nil {
			return ExitError, fmt.Errorf("rendering %s: %w", renderer.Name(), err)
		}
	}

	if result.Identical() {
		return ExitSame, nil
	}
	return ExitDifferent, nil
}

// loadConfig loads the config file and applies option overrides on top.
func loadConfig(opts *Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if opts.Format != "" {
		cfg.Render.Format = opts.Format
	}
	if opts.Unit != "" {
		cfg.Diff.Unit = opts.Unit
	}
	if opts.Color != "" {
		cfg.Render.Color = opts.Color
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts.Log.WithFields(logrus.Fields{
		"config": opts.ConfigPath,
		"format": cfg.Render.Format,
		"unit":   cfg.Diff.Unit,
		"color":  cfg.Render.Color,
	}).Debug("loaded config")
	return cfg, nil
}

var errStdinTwice = errors.New("stdin can be used for only one input")

func readInput(opts *Options, i int) (string, error) {
	name := opts.Inputs[i]
	if opts.Strings {
		return name, nil
	}

	if name == stdinName {
		if i == 1 && opts.Inputs[0] == stdinName {
			return "", errStdinTwice
		}
		src, err := io.ReadAll(opts.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		opts.Log.WithFields(logrus.Fields{"path": stdinName, "bytes": len(src)}).Debug("read input")
		return string(src), nil
	}

	src, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	opts.Log.WithFields(logrus.Fields{"path": name, "bytes": len(src)}).Debug("read input")
	return string(src), nil
}

// writeErr formats and writes to stderr.
func writeErr(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}
