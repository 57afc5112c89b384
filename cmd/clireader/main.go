// Package main provides the clireader tool: it loads flag rules from files, parses
// the arguments after "--" against them and prints the parse report.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"

	"github.com/fatih/color"

	"github.com/toejough/clireader"
	"github.com/toejough/clireader/internal/rulefile"
)

// unexported constants.
const (
	exitOK          = 0
	exitParseFailed = 1
	exitUsage       = 2
	usageLine       = "usage: clireader [--rules <glob>[,<glob>...]] [--limit <n>] " +
		"[--loglevel debug|info|warn|error] [--logformat text|json] [--debug] [--plain] -- <args...>"
)

// unexported variables.
var (
	errUnknownLogFormat = errors.New("unknown log format")
)

func main() {
	os.Exit(runMain())
}

func runMain() int {
	r := &runner{
		args:   os.Args[1:],
		out:    os.Stdout,
		errOut: os.Stderr,
	}

	return r.run()
}

// options are the tool's own settings, taken from the arguments before "--".
type options struct {
	rules     []string
	limit     *int
	logLevel  string
	logFormat string
	plain     bool
}

// runner holds state for a single clireader invocation.
type runner struct {
	args   []string
	out    io.Writer
	errOut io.Writer
}

func (r *runner) run() int {
	own, subject := splitArgs(r.args)

	opts, err := parseOptions(own)
	if err != nil {
		r.logError(err)
		fmt.Fprintln(r.errOut, usageLine)

		return exitUsage
	}

	logger := newLogger(opts.logLevel, opts.logFormat, r.errOut)

	p, err := buildParser(opts, logger)
	if err != nil {
		r.logError(err)
		return exitUsage
	}

	logger.Debug("parsing", "args", len(subject), "rules", len(p.Rules()))

	out, err := p.Parse(subject)
	if err != nil {
		r.logError(err)
		return exitParseFailed
	}

	styles := clireader.DefaultStyles()
	if opts.plain {
		styles = clireader.PlainStyles()
	}

	fmt.Fprint(r.out, out.Report(styles))

	return exitOK
}

func (r *runner) logError(err error) {
	fmt.Fprintf(r.errOut, "%s %v\n", color.RedString("error:"), err)
}

// buildParser assembles the parser for the subject arguments from rule files and options.
func buildParser(opts options, logger *slog.Logger) (*clireader.Parser, error) {
	p := clireader.New()
	p.SetLogger(logger)

	if len(opts.rules) > 0 {
		files, err := rulefile.LoadAll(opts.rules...)
		if err != nil {
			return nil, err
		}

		err = rulefile.Apply(files, p)
		if err != nil {
			return nil, err
		}

		logger.Debug("loaded rule files", "count", len(files))
	}

	if opts.limit != nil {
		err := p.SetOperandLimit(*opts.limit)
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// newLogger builds a logger from level and format names. Unknown levels fall back to info.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level

	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}

	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}

	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

// parseOptions reads the tool's own flags with the same engine it exposes.
func parseOptions(args []string) (options, error) {
	p := clireader.New()
	p.MustRegister("--rules", clireader.ArgOptional)
	p.MustRegister("--limit", clireader.ArgOptional)
	p.MustRegister("--loglevel", clireader.ArgOptional)
	p.MustRegister("--logformat", clireader.ArgOptional)
	p.MustRegister("--debug", clireader.Blank)
	p.MustRegister("--plain", clireader.Blank)

	err := p.SetOperandLimit(0)
	if err != nil {
		return options{}, err
	}

	out, err := p.Parse(args)
	if err != nil {
		return options{}, err
	}

	opts := options{
		rules:     out.Values("--rules"),
		logLevel:  out.Value("--loglevel"),
		logFormat: out.Value("--logformat"),
		plain:     out.Handled("--plain"),
	}

	if out.Handled("--debug") {
		opts.logLevel = "debug"
	}

	if out.Handled("--limit") {
		limit, err := strconv.Atoi(out.Value("--limit"))
		if err != nil {
			return options{}, fmt.Errorf("--limit: %w", err)
		}

		opts.limit = &limit
	}

	if f := opts.logFormat; f != "" && f != "text" && f != "json" {
		return options{}, fmt.Errorf("%w: %q", errUnknownLogFormat, f)
	}

	return opts, nil
}

// splitArgs separates the tool's own arguments from the subject arguments at the first "--".
func splitArgs(args []string) (own, subject []string) {
	i := slices.Index(args, "--")
	if i == -1 {
		return args, nil
	}

	return args[:i], args[i+1:]
}
