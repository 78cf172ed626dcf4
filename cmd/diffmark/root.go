package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/diffmark/internal/config"
	"github.com/donaldgifford/diffmark/internal/render"
	"github.com/donaldgifford/diffmark/internal/runner"
	"github.com/donaldgifford/diffmark/pkg/diff"
)

type rootOpts struct {
	format     string
	unit       string
	color      string
	configPath string
	strings    bool
	quiet      bool
	verbosity  string
	logFormat  string
	log        *logrus.Logger
	code       int
}

func newRootCmd() (*cobra.Command, *rootOpts) {
	opts := &rootOpts{}
	cmd := &cobra.Command{
		Use:   "diffmark [flags] <a> <b>",
		Short: "Mark the characters two texts share",
		Long: `Mark the characters two texts share.

diffmark repeatedly takes the longest common substring of the two inputs,
marks it on both sides and recurses into the text left and right of it.
Everything left unmarked is printed highlighted.

Inputs are file paths, "-" for standard input, or literal texts with --strings.
The exit status is 0 when the inputs are identical, 1 when they differ and
2 on error.`,
		Example: `
# compare two files
diffmark old.txt new.txt

# compare two strings, marking columns with carets
diffmark -s --format caret 'ababab' 'babababa'

# compare by grapheme cluster and print JSON
diffmark -u grapheme -f json a.txt b.txt

# read the first input from stdin
echo hello | diffmark - greeting.txt`,
		Version:       fmt.Sprintf("%s (%s) %s", version, commit, date),
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE:       opts.preRun,
		RunE:          opts.run,
	}
	cmd.SetVersionTemplate("diffmark {{.Version}}\n")

	flags := cmd.Flags()
	flags.StringVarP(&opts.format, "format", "f", "", "Output format ("+strings.Join(render.Names(), ", ")+")")
	_ = cmd.RegisterFlagCompletionFunc("format", completeList(render.Names()))
	flags.StringVarP(&opts.unit, "unit", "u", "", "Unit of comparison ("+strings.Join(diff.UnitNames(), ", ")+")")
	_ = cmd.RegisterFlagCompletionFunc("unit", completeList(diff.UnitNames()))
	flags.StringVar(&opts.color, "color", "", "Color mode (auto, always, never)")
	_ = cmd.RegisterFlagCompletionFunc("color", completeList([]string{config.ColorAuto, config.ColorAlways, config.ColorNever}))
	flags.StringVar(&opts.configPath, "config", "", "Path to config file")
	flags.BoolVarP(&opts.strings, "strings", "s", false, "Treat arguments as the texts to compare")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Print nothing, report through the exit status")
	flags.StringVarP(&opts.verbosity, "verbosity", "v", logrus.WarnLevel.String(), "Log level (trace, debug, info, warn, error)")
	_ = cmd.RegisterFlagCompletionFunc("verbosity", completeList([]string{"trace", "debug", "info", "warn", "error"}))
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log format (text, json)")
	_ = cmd.RegisterFlagCompletionFunc("log-format", completeList([]string{"text", "json"}))

	return cmd, opts
}

func (opts *rootOpts) preRun(cmd *cobra.Command, _ []string) error {
	lvl, err := logrus.ParseLevel(opts.verbosity)
	if err != nil {
		return fmt.Errorf("unable to parse verbosity %s: %w", opts.verbosity, err)
	}

	opts.log = logrus.New()
	opts.log.SetOutput(cmd.ErrOrStderr())
	opts.log.SetLevel(lvl)
	switch opts.logFormat {
	case "text":
		opts.log.SetFormatter(&logrus.TextFormatter{})
	case "json":
		opts.log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", opts.logFormat)
	}
	return nil
}

func (opts *rootOpts) run(cmd *cobra.Command, args []string) error {
	opts.code = runner.Run(&runner.Options{
		Inputs:     args,
		Strings:    opts.strings,
		Format:     opts.format,
		Unit:       opts.unit,
		Color:      opts.color,
		ConfigPath: opts.configPath,
		Quiet:      opts.quiet,
		Log:        opts.log,
		Stdin:      cmd.InOrStdin(),
		Stdout:     cmd.OutOrStdout(),
		Stderr:     cmd.ErrOrStderr(),
	})
	return nil
}

func completeList(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
