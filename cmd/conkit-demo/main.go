package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/saylorsolutions/conkit/config"
	"github.com/saylorsolutions/conkit/message"
	"github.com/saylorsolutions/conkit/slogx"
	"github.com/saylorsolutions/conkit/terminal"
	flag "github.com/spf13/pflag"
	"io"
	"os"
)

const (
	appName   = "conkit-demo"
	envPrefix = "CONKIT"
)

func main() {
	ctx, stop := interruptContext(context.Background(), os.Exit, os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

type globalFlags struct {
	config   string
	logLevel string
	logFile  string
	noColor  bool
}

// parseFlags reads the global flags, leaving everything from the first command on to the command runner.
func parseFlags(args []string, errOut io.Writer) (globalFlags, []string, error) {
	var global globalFlags
	flags := flag.NewFlagSet(appName, flag.ContinueOnError)
	flags.SetOutput(errOut)
	flags.SetInterspersed(false)
	flags.StringVarP(&global.config, "config", "c", "", "Reads settings from a TOML or YAML file")
	flags.StringVar(&global.logLevel, "log-level", "", "Sets the log level (debug, info, warn, error)")
	flags.StringVar(&global.logFile, "log-file", "", "Also writes logs as JSON to this file")
	flags.BoolVar(&global.noColor, "no-color", false, "Disables colored output")
	flags.Usage = func() {
		_, _ = fmt.Fprintf(errOut, "usage:\n  %s [global flags] <command> [options]\n\nglobal flags:\n%s", appName, flags.FlagUsages())
	}
	if err := flags.Parse(args); err != nil {
		return global, nil, err
	}
	return global, flags.Args(), nil
}

// loadConfig layers the config file, the environment, and finally the global flags.
func loadConfig(global globalFlags) (config.Config, error) {
	cfg, err := config.Load(global.config)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(envPrefix); err != nil {
		return cfg, err
	}
	if len(global.logLevel) > 0 {
		cfg.Log.Level = global.logLevel
	}
	if len(global.logFile) > 0 {
		cfg.Log.File = global.logFile
	}
	if global.noColor {
		cfg.Color.Enabled = false
	}
	if len(cfg.Help.AppName) == 0 {
		cfg.Help.AppName = appName
	}
	return cfg, cfg.Validate()
}

func run(ctx context.Context, args []string, errOut io.Writer) int {
	global, rest, err := parseFlags(args, errOut)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		_, _ = fmt.Fprintln(errOut, err)
		return 2
	}
	cfg, err := loadConfig(global)
	if err != nil {
		_, _ = fmt.Fprintln(errOut, err)
		return 2
	}
	logger, logCloser, err := slogx.New(slogx.Options{
		Level:   cfg.Log.Level,
		File:    cfg.Log.File,
		Output:  errOut,
		Prefix:  cfg.Help.AppName,
		NoColor: !cfg.Color.Enabled,
	})
	if err != nil {
		_, _ = fmt.Fprintln(errOut, err)
		return 2
	}
	defer func() {
		_ = logCloser.Close()
	}()

	console := terminal.NewConsole(terminal.WithColors(cfg.Color.Enabled))
	defer func() {
		_ = console.Close()
	}()
	a := newApp(message.NewPrinter(console), logger, cfg)
	return a.runner.RunSafe(ctx, rest)
}
