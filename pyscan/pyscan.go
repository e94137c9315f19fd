// Package pyscan extracts build-rule calls and unittest test methods from
// Python source using tree-sitter.
//
// ExtractRuleCalls and ExtractTestFunctions are pure functions of their
// input. RuleCalls and TestFunctions add the I/O boundary: they read a
// Source and log through the slog logger carried by the context.
package pyscan

import (
	"context"

	"github.com/dustin/go-humanize"
	slogctx "github.com/veqryn/slog-context"
	"gitlab.com/tozd/go/errors"
)

// RuleCalls reads src and extracts its top-level rule calls.
func RuleCalls(ctx context.Context, src Source) ([]CallRecord, error) {
	source, err := read(ctx, src)
	if err != nil {
		return nil, err
	}

	calls, err := ExtractRuleCalls(source)
	if err != nil {
		return nil, errors.Errorf("%s: %w", src.Name(), err)
	}

	slogctx.Debug(ctx, "extracted rule calls", "source", src.Name(), "count", len(calls))
	return calls, nil
}

// TestFunctions reads src and extracts its unittest test methods.
func TestFunctions(ctx context.Context, src Source) ([]TestFunction, error) {
	source, err := read(ctx, src)
	if err != nil {
		return nil, err
	}

	funcs, err := ExtractTestFunctions(source)
	if err != nil {
		return nil, errors.Errorf("%s: %w", src.Name(), err)
	}

	slogctx.Debug(ctx, "extracted test functions", "source", src.Name(), "count", len(funcs))
	return funcs, nil
}

func read(ctx context.Context, src Source) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source, err := src.Read()
	if err != nil {
		return nil, err
	}

	slogctx.Debug(ctx, "read source", "source", src.Name(), "size", humanize.Bytes(uint64(len(source))))
	return source, nil
}
