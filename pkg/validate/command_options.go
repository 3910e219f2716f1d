package validate

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"k8s.io/cli-runtime/pkg/genericiooptions"

	"github.com/datera/ddct/pkg/doctor"
	"github.com/datera/ddct/pkg/printer"
	"github.com/datera/ddct/pkg/util/api"
	"github.com/datera/ddct/pkg/util/iostreams"
	"github.com/datera/ddct/pkg/util/shell"
)

const (
	flagDescOutput     = "Output format (table|json|yaml)"
	flagDescPlugins    = "Check plugins to load in addition to the built-in checks (repeatable)"
	flagDescVerbose    = "Show progress messages while checks run"
	flagDescDebug      = "Enable debug logging on stderr (implies --verbose)"
	flagDescConfig     = "Path to the config file (JSON, YAML or TOML)"
	flagDescMgmtIP     = "Management IP of the cluster"
	flagDescVIP1IP     = "First access VIP"
	flagDescVIP2IP     = "Second access VIP, skipped when empty"
	flagDescUsername   = "API username"
	flagDescPassword   = "API password"
	flagDescTenant     = "API tenant"
	flagDescTags       = "Run only checks carrying at least one of these tags"
	flagDescNotTags    = "Skip checks carrying any of these tags"
	flagDescRoot       = "Filesystem root that host files are read from"
	flagDescListTags   = "List only checks carrying at least one of these tags"
	flagDescListNoTags = "Do not list checks carrying any of these tags"
)

// ErrChecksFailed is returned by the check command when the verdict is FAIL.
var ErrChecksFailed = errors.New("one or more checks failed")

// SharedOptions contains options common to all validate subcommands.
type SharedOptions struct {
	// IO provides structured access to stdin, stdout, stderr with convenience methods
	IO iostreams.Interface

	// Output specifies the output format (table, json, yaml)
	Output printer.Format

	// Plugins are the optional check plugins to load
	Plugins []string

	// Verbose enables progress messages (default: false, quiet by default)
	Verbose bool

	// Debug enables structured debug logging on stderr
	Debug bool

	// Logger receives run diagnostics (populated during Complete)
	Logger *slog.Logger

	streams genericiooptions.IOStreams
	runner  *doctor.Runner
	api     api.Client
	shell   shell.Runner
}

// NewSharedOptions creates a new SharedOptions with defaults.
func NewSharedOptions(streams genericiooptions.IOStreams) *SharedOptions {
	return &SharedOptions{
		IO:      iostreams.NewIOStreams(streams.In, streams.Out, streams.ErrOut),
		Output:  printer.FormatTable,
		streams: streams,
	}
}

// AddFlags registers the flags every subcommand understands.
func (o *SharedOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP((*string)(&o.Output), "output", "o", string(printer.FormatTable), flagDescOutput)
	fs.StringSliceVar(&o.Plugins, "plugins", nil, flagDescPlugins)
	fs.BoolVarP(&o.Verbose, "verbose", "v", false, flagDescVerbose)
	fs.BoolVar(&o.Debug, "debug", false, flagDescDebug)
}

// Complete sets up streams, logging, colors and the check runner.
func (o *SharedOptions) Complete() error {
	// Default is quiet: progress only with --verbose or --debug
	if !o.Verbose && !o.Debug {
		o.IO = iostreams.NewQuietWrapper(o.IO)
	}

	// Checks write progress concurrently
	o.IO = iostreams.NewSyncWrapper(o.IO)

	if o.Logger == nil {
		o.Logger = newLogger(o.streams.ErrOut, o.Debug)
	}

	if !isTerminal(o.streams.Out) {
		color.NoColor = true
	}

	if o.runner == nil {
		o.runner = doctor.NewRunner(doctor.WithLogger(o.Logger))
	}

	return nil
}

// Validate checks that all shared options are valid.
func (o *SharedOptions) Validate() error {
	if err := o.Output.Validate(); err != nil {
		return err
	}

	for _, name := range o.Plugins {
		if name == "" {
			return errors.New("plugin name cannot be empty")
		}
	}

	return nil
}

func (o *SharedOptions) newPrinter() printer.Printer {
	return printer.NewPrinter(printer.Options{
		Format: o.Output,
		Out:    o.IO.Out(),
	})
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	if !debug || w == nil {
		return slog.New(slog.DiscardHandler)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// CommandOption is a functional option for configuring a validate command.
//
// Example:
//
//	cmd := validate.NewCheckCommand(streams,
//	    validate.WithRunner(doctor.NewRunner(doctor.WithBuiltins(myChecks))),
//	)
type CommandOption func(*SharedOptions)

// WithRunner replaces the check runner built during Complete.
func WithRunner(runner *doctor.Runner) CommandOption {
	return func(o *SharedOptions) {
		o.runner = runner
	}
}

// WithAPIClient replaces the management API client built during Complete.
func WithAPIClient(client api.Client) CommandOption {
	return func(o *SharedOptions) {
		o.api = client
	}
}

// WithShell replaces the host shell runner.
func WithShell(runner shell.Runner) CommandOption {
	return func(o *SharedOptions) {
		o.shell = runner
	}
}

// WithLogger sets the logger instead of deriving one from --debug.
func WithLogger(logger *slog.Logger) CommandOption {
	return func(o *SharedOptions) {
		o.Logger = logger
	}
}
