// Package cmd holds the command-line front ends for pyscan.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/arjunmahishi/pyscan/internal/logging"
	"github.com/arjunmahishi/pyscan/output"
	"github.com/arjunmahishi/pyscan/pyscan"
	"github.com/lmittmann/tint"
	"github.com/urfave/cli/v3"
	slogctx "github.com/veqryn/slog-context"
	"gitlab.com/tozd/go/errors"
)

// IO bundles the process streams a command reads from and writes to.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// StdIO returns the process's standard streams.
func StdIO() IO {
	return IO{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// usageError is a wrong invocation. Its message goes to standard output,
// where the original tools printed it.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// Run executes app with args (args[0] is the program name) and returns the
// process exit status.
func Run(ctx context.Context, app *cli.Command, args []string, stdio IO) int {
	app.Reader = stdio.Stdin
	app.Writer = stdio.Stdout
	app.ErrWriter = stdio.Stderr

	ctx = logging.Setup(ctx, stdio.Stderr, slog.LevelInfo)

	if err := app.Run(ctx, args); err != nil {
		var usage *usageError
		if errors.As(err, &usage) {
			fmt.Fprintln(stdio.Stdout, usage.msg)
			return 1
		}
		slogctx.Error(ctx, app.Name+" failed", tint.Err(err))
		return 1
	}
	return 0
}

// newCommand builds a root command whose action takes exactly one file
// argument and whose "stdin" subcommand reads standard input instead.
func newCommand[T any](name, usage, usageMsg string, extract func(context.Context, pyscan.Source) ([]T, error)) *cli.Command {
	return &cli.Command{
		Name:            name,
		Usage:           usage,
		ArgsUsage:       "<file>",
		HideHelp:        true,
		HideHelpCommand: true,
		OnUsageError:    passUsageError,
		Commands: []*cli.Command{
			{
				Name:         "stdin",
				Usage:        "read the source from standard input",
				HideHelp:     true,
				OnUsageError: passUsageError,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg() != 0 {
						return &usageError{msg: usageMsg}
					}
					root := cmd.Root()
					return runExtract(ctx, root.Writer, pyscan.ReaderSource("<stdin>", root.Reader), extract)
				},
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return &usageError{msg: usageMsg}
			}
			return runExtract(ctx, cmd.Root().Writer, pyscan.FileSource(cmd.Args().First()), extract)
		},
	}
}

func runExtract[T any](ctx context.Context, w io.Writer, src pyscan.Source, extract func(context.Context, pyscan.Source) ([]T, error)) error {
	records, err := extract(ctx, src)
	if err != nil {
		return err
	}
	return output.New(output.Config{ASCII: true, Output: w}).Write(records)
}

func passUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}
