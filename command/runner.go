package command

import (
	"context"
	"errors"
	"fmt"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/saylorsolutions/conkit/message"
	"github.com/saylorsolutions/conkit/terminal"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
)

// Runner validates a [Builder]'s tree, matches arguments against it, and dispatches to the matched [Command].
type Runner struct {
	builder     *Builder
	printer     *message.Printer
	log         *slog.Logger
	help        HelpFunc
	helpEnabled bool
	helpFlags   []string
	appName     string

	preExecMux sync.Mutex
	preExec    []PreExec
}

// RunnerOption configures a [Runner].
type RunnerOption func(r *Runner)

// WithHelp replaces the function used to show help.
// By default, the screen rendered by [HelpPrinter] is printed.
func WithHelp(help HelpFunc) RunnerOption {
	return func(r *Runner) {
		if help == nil {
			panic("nil help function")
		}
		r.help = help
	}
}

// WithHelpEnabled turns handling of help flags on or off.
func WithHelpEnabled(enabled bool) RunnerOption {
	return func(r *Runner) {
		r.helpEnabled = enabled
	}
}

// WithHelpFlags replaces [DefaultHelpFlags].
func WithHelpFlags(flags ...string) RunnerOption {
	return func(r *Runner) {
		if len(flags) > 0 {
			r.helpFlags = flags
		}
	}
}

// WithPrinter sets where user-visible output goes.
// By default, a [terminal.Console] on the standard streams is used.
func WithPrinter(printer *message.Printer) RunnerOption {
	return func(r *Runner) {
		if printer != nil {
			r.printer = printer
		}
	}
}

func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.log = logger
		}
	}
}

// WithAppName sets the program name used in help and prompts, which defaults to the base name of the executable.
func WithAppName(name string) RunnerOption {
	return func(r *Runner) {
		if name = strings.TrimSpace(name); len(name) > 0 {
			r.appName = name
		}
	}
}

// NewRunner creates a [Runner] for the given [Builder].
// Passing a nil [Builder] will panic.
func NewRunner(b *Builder, opts ...RunnerOption) *Runner {
	if b == nil {
		panic("nil builder")
	}
	r := &Runner{
		builder:     b,
		helpEnabled: true,
		helpFlags:   DefaultHelpFlags,
		appName:     filepath.Base(os.Args[0]),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.printer == nil {
		r.printer = message.NewPrinter(terminal.NewConsole())
	}
	if r.log == nil {
		r.log = slog.New(slog.DiscardHandler)
	}
	if r.help == nil {
		r.help = r.printHelp
	}
	return r
}

// Printer returns the [message.Printer] used for user-visible output.
func (r *Runner) Printer() *message.Printer {
	return r.printer
}

// Matcher returns a [Matcher] configured with this Runner's help settings.
func (r *Runner) Matcher() *Matcher {
	return &Matcher{
		Builder:     r.builder,
		HelpFlags:   r.helpFlags,
		HelpEnabled: r.helpEnabled,
	}
}

// HelpPrinter returns the [HelpPrinter] used by default to show help.
func (r *Runner) HelpPrinter() *HelpPrinter {
	return &HelpPrinter{
		Builder:  r.builder,
		AppName:  r.appName,
		HelpFlag: r.helpFlags[0],
	}
}

// Run validates the tree, matches args, and either shows help or executes the matched [Command].
//
// Configuration errors from [Builder.Validate] and the matcher are returned as is.
// A [CommandNotFoundError] is returned when no command matched, and a [WrongCommandUsageError] when the matched command can't run by itself.
// Errors and panics from the [Handler] are wrapped in an [ExecutionError].
func (r *Runner) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return &CommandNotFoundError{Args: args}
	}
	if err := r.builder.Validate(); err != nil {
		return err
	}
	match, err := r.Matcher().Match(args)
	if err != nil {
		return err
	}
	group := deepestGroup(match)
	if r.helpEnabled && match.ContainsHelpOption {
		var cmd *Command
		if match.Command != nil {
			cmd = match.Command.Command
		}
		r.log.Debug("showing help", "group", group.Path(), "command", cmd.Path())
		return r.help(group, cmd)
	}
	if match.Command == nil {
		return &CommandNotFoundError{Args: args, Group: group}
	}
	cmd := match.Command.Command
	r.log.Debug("matched command", "path", cmd.Path(), "group", group.Path())
	if cmd.handler == nil {
		return &WrongCommandUsageError{Command: cmd, Group: group, Reason: "a sub-command is required"}
	}
	if err := r.runPreExec(ctx, cmd); err != nil {
		return err
	}
	return r.execute(ctx, cmd, newArguments(match.Command, args, r.printer))
}

func (r *Runner) execute(ctx context.Context, cmd *Command, args *Arguments) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &ExecutionError{Command: cmd, Err: fmt.Errorf("panic: %v", rec), Stack: debug.Stack()}
		}
	}()
	if err := cmd.handler(ctx, args); err != nil {
		return &ExecutionError{Command: cmd, Err: err}
	}
	return nil
}

// RunSafe is like [Runner.Run], but reports every error to the user instead of returning it.
// The help screen is printed along with dispatch errors.
// The returned value is suitable as an exit code: 0 on success, and 1 otherwise.
func (r *Runner) RunSafe(ctx context.Context, args []string) int {
	err := r.Run(ctx, args)
	if err == nil {
		return 0
	}
	r.report(err)
	return 1
}

func (r *Runner) report(err error) {
	p := r.printer
	var (
		dupErr      *DuplicateCommandError
		notFoundErr *CommandNotFoundError
		usageErr    *WrongCommandUsageError
		execErr     *ExecutionError
	)
	switch {
	case errors.As(err, &execErr):
		r.log.Error("command failed", "command", execErr.Command.Path(), "error", execErr.Err)
		p.Printf("{color:red}An error occurred while executing '%s':{color:default}\n", message.Escape(displayPath(execErr.Command)))
		p.Plainf("%v\n", execErr.Err)
		if len(execErr.Stack) > 0 {
			p.Plain(string(execErr.Stack))
		}
	case errors.As(err, &dupErr):
		r.log.Error("invalid command tree", "error", err)
		p.Printf("{color:red}Command '%s' is defined more than once:{color:default}\n", message.Escape(dupErr.Name))
		p.Plain(conflictTable(dupErr))
	case errors.As(err, &notFoundErr):
		r.log.Warn("command not found", "args", strings.Join(notFoundErr.Args, " "))
		if len(notFoundErr.Args) == 0 {
			p.Println("{color:yellow}No command given.{color:default}")
		} else {
			p.Printf("{color:yellow}Command not found: %s{color:default}\n", message.Escape(strings.Join(notFoundErr.Args, " ")))
		}
		p.Plain("\n" + r.HelpPrinter().Render(notFoundErr.Group, nil))
	case errors.As(err, &usageErr):
		r.log.Warn("wrong command usage", "command", usageErr.Command.Path())
		p.Printf("{color:yellow}%s{color:default}\n", message.Escape(usageErr.Error()))
		p.Plain("\n" + r.HelpPrinter().Render(usageErr.Group, usageErr.Command))
	default:
		r.log.Error("command run failed", "error", err)
		p.Printf("{color:red}%s{color:default}\n", message.Escape(err.Error()))
	}
}

// conflictTable lists the elements sharing a name.
func conflictTable(err *DuplicateCommandError) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"#", "Kind", "Path", "Description"})
	for i, el := range err.Elements {
		kind := "command"
		if _, ok := el.(*Group); ok {
			kind = "group"
		}
		t.AppendRow(table.Row{i + 1, kind, displayPath(el), el.Description()})
	}
	return t.Render() + "\n"
}

func (r *Runner) printHelp(group *Group, cmd *Command) error {
	r.printer.Plain(r.HelpPrinter().Render(group, cmd))
	return nil
}

// deepestGroup finds the group closest to the matched command, or the matched group when no command matched.
func deepestGroup(match *Match) *Group {
	if match.Command != nil {
		for node := match.Command; node != nil; node = node.Parent {
			if node.Group != nil {
				return node.Group
			}
		}
		return nil
	}
	if match.Group != nil {
		return match.Group.Group
	}
	return nil
}
