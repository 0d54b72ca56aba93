package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"syscall"
	"unicode/utf8"

	"github.com/h2non/filetype"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"toccer/config"
	"toccer/misc"
	"toccer/state"
	"toccer/toc"
)

// initializeAppContext prepares application context before command
// execution but after the command line has been parsed.
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	if cmd.NArg() == 0 {
		return ctx, nil
	}

	env := state.EnvFromContext(ctx)

	configFile := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	env.Debug = cmd.Bool("debug")
	if env.Debug {
		if env.Rpt, err = env.Cfg.Reporting.Prepare(); err != nil {
			return ctx, fmt.Errorf("unable to prepare debug reporter: %w", err)
		}
		if len(configFile) > 0 {
			if data, err := config.Dump(env.Cfg); err == nil {
				env.Rpt.StoreData(fmt.Sprintf("config/%s", filepath.Base(configFile)), data)
			}
		}
	}
	if env.Log, err = env.Cfg.Logging.Prepare(env.Rpt); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()

	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", misc.GetVersion()), zap.String("runtime", runtime.Version()), zap.String("hash", misc.GetGitHash()))
	if env.Rpt != nil {
		env.Log.Info("Creating debug report", zap.String("location", env.Rpt.Name()))
	}
	if len(configFile) == 0 {
		env.Log.Info("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	}

	env.RestoreStdLog()

	if env.Rpt != nil {
		if er := env.Rpt.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close debug report: %w", er))
		}
	}
	if env.Cfg != nil && len(env.Cfg.Logging.File.Destination) > 0 {
		debug.SetCrashOutput(nil, debug.CrashOptions{})
		fname := filepath.Join(filepath.Dir(env.Cfg.Logging.File.Destination), misc.GetAppName()+"-panic.log")
		if fi, er := os.Stat(fname); er == nil && fi.Size() == 0 {
			if er := os.Remove(fname); er != nil {
				err = multierr.Append(err, fmt.Errorf("unable to remove empty panic log file %q: %w", fname, er))
			}
		}
	}
	return
}

// errWasHandled tracks whether exitErrHandler already logged the error, so
// main's deferred fallback does not print it a second time to stderr.
var errWasHandled bool

func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := state.EnvFromContext(ctx)
	if env.Log != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "infers a table of contents from a plain text article",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "changes program behavior to help troubleshooting, produces report archive"},
		},
		Commands: []*cli.Command{
			{
				Name:         "infer",
				Usage:        "Infers a table of contents for the text file at SOURCE",
				OnUsageError: usageErrorHandler,
				Action:       runInfer,
				ArgsUsage:    "SOURCE",
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       runDumpConfig,
				ArgsUsage:    "DESTINATION",
			},
		},
	}

	var err error
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}

func runInfer(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return fmt.Errorf("missing SOURCE argument")
	}
	env.Source = cmd.Args().Get(0)

	raw, err := os.ReadFile(env.Source)
	if err != nil {
		return fmt.Errorf("unable to read %q: %w", env.Source, err)
	}
	if kind, err := filetype.Match(raw); err == nil && kind != filetype.Unknown && kind.Extension != "" {
		return fmt.Errorf("%q looks like a %s file, not plain text", env.Source, kind.Extension)
	}
	if !utf8.Valid(raw) {
		return fmt.Errorf("%q is not valid UTF-8", env.Source)
	}

	warn := func(format string, args ...any) {
		if env.Log != nil {
			env.Log.Sugar().Warnf(format, args...)
		}
	}

	var diag toc.Diagnostics
	result, err := toc.InferWithDiagnostics(string(raw), warn, &diag)
	if env.Rpt != nil {
		if data, derr := yaml.Marshal(diag.Candidates); derr == nil {
			env.Rpt.StorePatternDump("candidates", data)
		}
		if data, derr := yaml.Marshal(diag.Survivors); derr == nil {
			env.Rpt.StorePatternDump("survivors", data)
		}
	}
	if err != nil {
		return fmt.Errorf("unable to infer table of contents: %w", err)
	}

	var out []byte
	if result == nil {
		out = []byte("null\n")
	} else {
		out, err = yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("unable to marshal result: %w", err)
		}
	}
	if _, err := os.Stdout.Write(out); err != nil {
		return fmt.Errorf("unable to write result: %w", err)
	}
	if env.Log != nil {
		if result == nil {
			env.Log.Debug("No table of contents found")
		} else {
			env.Log.Debug("Table of contents found", zap.String("template", result.Template), zap.Float64("beauty", result.Beauty), zap.Int("entries", len(result.Contents)))
		}
	}
	return nil
}

func runDumpConfig(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}
	fname := cmd.Args().Get(0)

	var (
		err   error
		data  []byte
		which string
	)

	out := os.Stdout
	if len(fname) > 0 {
		out, err = os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file %q: %w", fname, err)
		}
		defer out.Close()
	}

	if cmd.Bool("default") {
		which = "default"
		data, err = config.Prepare()
	} else {
		which = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	if env.Log != nil {
		env.Log.Info("Outputting configuration", zap.String("state", which), zap.String("file", fname))
	}

	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
