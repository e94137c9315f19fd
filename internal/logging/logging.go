// Package logging configures the slog logger used by the command-line tools.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	slogctx "github.com/veqryn/slog-context"
	"golang.org/x/term"
)

// Setup installs a tint handler writing to w as the default logger and
// returns a context carrying it. Colour is used only when w is a terminal.
func Setup(ctx context.Context, w io.Writer, level slog.Leveler) context.Context {
	handler := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    !isTerminal(w),
	})

	logger := slog.New(slogctx.NewHandler(handler, nil))
	slog.SetDefault(logger)

	return slogctx.NewCtx(ctx, logger)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
