package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/vk/vbaemu/internal/ctxlog"
)

// ErrLinesFailed is returned by Run when at least one script line could not
// be parsed or evaluated. Every other line is still evaluated.
var ErrLinesFailed = errors.New("script lines failed")

// Run evaluates the configured script line by line, printing each result,
// then prints the action report.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "script", a.config.ScriptPath)

	src, err := os.ReadFile(a.config.ScriptPath)
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}

	lines, container := parseScript(string(src), a.config.ScriptPath)
	a.logger.Info("Script parsed.", "lines", len(lines), "functions", container.CalledFunctions(), "names", container.References())
	if missing := a.evaluator.Unresolved(container); len(missing) > 0 {
		a.logger.Warn("Script calls functions that are not emulated.", "functions", missing)
	}

	failed := 0
	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			return err
		}
		if line.diags.HasErrors() {
			failed++
			fmt.Fprintf(a.outW, "line %d: error: %s\n", line.number, formatFailure(line.diags))
			continue
		}

		result, diags := a.evaluator.Eval(ctx, line.expr)
		if diags.HasErrors() {
			failed++
			fmt.Fprintf(a.outW, "line %d: error: %s\n", line.number, formatFailure(diags))
			continue
		}
		fmt.Fprintf(a.outW, "line %d: %s\n", line.number, formatLiteral(result))
	}

	if err := writeReport(a.outW, a.config.ReportFormat, a.actions.Records()); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.", "failed", failed, "actions", a.actions.Len())
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrLinesFailed, failed, len(lines))
	}
	return nil
}
