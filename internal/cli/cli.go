// Package cli implements the depinfo command-line interface.
//
// The single command reports the installed version of a Python package, its
// requirements up to a depth bound, the versions of common build tools and
// information about the platform and Python runtime. Output is written as
// plain text or as markdown tables.
//
// # Exit codes
//
// [CLI.Run] returns 0 on success (including --help and --version), 2 for
// invalid arguments, 1 for runtime failures and 130 when interrupted.
//
// # Logging
//
// Diagnostics go to the log writer through charmbracelet/log using the
// Python level names (DEBUG, INFO, WARNING, ERROR, CRITICAL). The logger is
// passed through context.Context to the command.
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/depinfo/pkg/buildinfo"
	"github.com/matzehuels/depinfo/pkg/deps"
	"github.com/matzehuels/depinfo/pkg/deps/python"
	"github.com/matzehuels/depinfo/pkg/display"
	"github.com/matzehuels/depinfo/pkg/errors"
	"github.com/matzehuels/depinfo/pkg/host"
)

const (
	// appName is the application name used for directories and display.
	appName = "depinfo"

	// depthLimit is the exclusive upper bound of --max-depth.
	depthLimit = 5

	defaultMaxDepth = 1
)

// defaultBuildTools are the build tools reported when none are configured.
var defaultBuildTools = []string{"conda", "flit", "hatch", "mamba", "pbr", "pip", "poetry", "setuptools", "wheel"}

// Exit codes returned by [CLI.Run].
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 2
	ExitInterrupted = 130
)

// DefaultLogLevel is the level used until --log-level is parsed.
const DefaultLogLevel = log.WarnLevel

// CLI holds shared state for the command.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer // report output
	Err    io.Writer // log output and usage hints

	// probe and platform are replaced in tests.
	probe    func(ctx context.Context, exe string) (*host.Interpreter, error)
	platform func() host.Platform
}

// New creates a CLI that writes reports to out and log messages to logOut.
func New(out, logOut io.Writer) *CLI {
	return &CLI{
		Logger:   newLogger(logOut, DefaultLogLevel),
		Out:      out,
		Err:      logOut,
		probe:    host.ProbePython,
		platform: host.DetectPlatform,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// options holds the command's flag values.
type options struct {
	buildTools   string
	maxDepth     int
	markdown     bool
	logLevel     string
	python       string
	sitePackages []string
	lockFile     string
	config       string
}

// RootCommand creates the depinfo command.
func (c *CLI) RootCommand() *cobra.Command {
	opts := options{
		buildTools: strings.Join(defaultBuildTools, ","),
		maxDepth:   defaultMaxDepth,
		logLevel:   "WARNING",
		python:     host.DefaultInterpreter,
	}

	root := &cobra.Command{
		Use:   appName + " [flags] PACKAGE",
		Short: "Report a Python package's dependencies and their installed versions",
		Long: `depinfo prints the installed version of a Python package, its requirements
up to a maximum depth, the versions of common build tools and information
about the platform and Python runtime.

Package metadata is read from the site-packages directories of a Python
interpreter, from explicit --site-packages directories or from a poetry.lock
file. Defaults can be set in $XDG_CONFIG_HOME/depinfo/config.toml.`,
		Example: `  depinfo requests
  depinfo --max-depth 2 --markdown depinfo
  depinfo --build-tools pip,setuptools --site-packages .venv/lib/python3.12/site-packages rich`,
		Version:       buildinfo.Version,
		Args:          exactPackageArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfig(cmd, &opts); err != nil {
				return err
			}
			level, err := parseLogLevel(opts.logLevel)
			if err != nil {
				return err
			}
			c.SetLogLevel(level)
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.run(ctx, cmd.OutOrStdout(), args[0], opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid flags")
	})

	f := root.Flags()
	f.StringVar(&opts.buildTools, "build-tools", opts.buildTools, "comma-separated build tools whose versions are reported")
	f.IntVarP(&opts.maxDepth, "max-depth", "d", opts.maxDepth, fmt.Sprintf("maximum depth of requirements to report (0-%d)", depthLimit-1))
	f.BoolVar(&opts.markdown, "markdown", false, "print the report as markdown tables")
	f.StringVarP(&opts.logLevel, "log-level", "l", opts.logLevel, "log level: CRITICAL, ERROR, WARNING, INFO or DEBUG")
	f.StringVar(&opts.python, "python", opts.python, "python interpreter used to locate site-packages")
	f.StringArrayVar(&opts.sitePackages, "site-packages", nil, "site-packages directory to read metadata from (repeatable)")
	f.StringVar(&opts.lockFile, "lock-file", "", "read package metadata from a poetry.lock file")
	f.StringVar(&opts.config, "config", "", "path to a TOML config file")

	return root
}

func exactPackageArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New(errors.ErrCodeInvalidInput, "expected exactly one PACKAGE argument, got %d", len(args))
	}
	return nil
}

// Run executes the command with args and returns the process exit code.
// Errors are logged before returning.
func (c *CLI) Run(ctx context.Context, args []string) int {
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(c.Out)
	root.SetErr(c.Err)

	err := root.ExecuteContext(ctx)
	code := exitCode(ctx, err)
	switch code {
	case ExitOK, ExitInterrupted:
	case ExitUsage:
		if errors.Is(err, errors.ErrCodeInvalidDepth) {
			c.Logger.Log(log.FatalLevel, errors.UserMessage(err))
		} else {
			c.Logger.Error(errors.FullMessage(err))
			printUsageHint(c.Err, root)
		}
	default:
		c.Logger.Error(errors.FullMessage(err))
	}
	return code
}

func exitCode(ctx context.Context, err error) int {
	switch {
	case err == nil:
		return ExitOK
	case stderrors.Is(err, context.Canceled) || ctx.Err() != nil:
		return ExitInterrupted
	case errors.IsUsage(err):
		return ExitUsage
	default:
		return ExitFailure
	}
}

func (c *CLI) run(ctx context.Context, out io.Writer, name string, opts options) error {
	logger := loggerFromContext(ctx)

	if err := errors.ValidateDepth(opts.maxDepth, depthLimit); err != nil {
		return err
	}
	if err := errors.ValidatePythonPackageName(name); err != nil {
		return err
	}
	format := display.Simple
	if opts.markdown {
		format = display.Markdown
	}

	py, idx, err := c.openIndex(ctx, opts)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	report, err := deps.FromRoot(idx, name, splitList(opts.buildTools), opts.maxDepth,
		deps.WithPlatform(c.platform()),
		deps.WithPython(py),
		deps.WithLogger(logger.Debugf),
	)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Resolved %d packages", len(report.Packages)))

	for _, missing := range report.MissingPackages() {
		logger.Warnf("package %s is not installed", missing)
	}

	return display.Render(out, report, format, opts.maxDepth)
}

// openIndex probes the interpreter and opens the metadata source selected by
// opts. Without an explicit source a failed probe is fatal; otherwise the
// report carries an unknown Python runtime.
func (c *CLI) openIndex(ctx context.Context, opts options) (host.Python, deps.Index, error) {
	logger := loggerFromContext(ctx)
	explicit := opts.lockFile != "" || len(opts.sitePackages) > 0

	py := host.UnknownPython()
	var sitePackages []string
	interp, err := c.probe(ctx, opts.python)
	switch {
	case err == nil:
		py = interp.Python
		sitePackages = interp.SitePackages
		logger.Debugf("probed %s: %s %s", opts.python, py.Name, py.Version)
	case ctx.Err() != nil:
		return py, nil, ctx.Err()
	case !explicit:
		return py, nil, err
	default:
		logger.Warnf("could not probe %s: %s", opts.python, errors.FullMessage(err))
	}

	if opts.lockFile != "" {
		idx, err := python.LoadLockIndex(opts.lockFile)
		if err != nil {
			return py, nil, err
		}
		logger.Infof("Loaded %d packages from %s", idx.Len(), opts.lockFile)
		return py, idx, nil
	}

	if len(opts.sitePackages) > 0 {
		sitePackages = opts.sitePackages
	}
	idx, err := python.NewSiteIndex(sitePackages...)
	if err != nil {
		return py, nil, err
	}
	if idx.Len() == 0 {
		logger.Warnf("no installed distributions found in %s", strings.Join(sitePackages, ", "))
	} else {
		logger.Infof("Indexed %d distributions in %s", idx.Len(), strings.Join(idx.Dirs(), ", "))
	}
	return py, idx, nil
}

// splitList splits a comma-separated list, dropping blank items.
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
