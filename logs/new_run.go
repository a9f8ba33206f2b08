package logs

import (
	"context"
	"crypto/rand"
)

type NewRun func(ctx context.Context, what string, args ...any) (context.Context, Run)

func (Module) NewRun(
	logger Logger,
) NewRun {
	return func(ctx context.Context, what string, args ...any) (context.Context, Run) {
		parent := RunOf(ctx)
		run := Run(rand.Text())
		ctx = context.WithValue(ctx, RunKey, run)
		if parent != "" {
			args = append(args, "parent", string(parent))
		}
		logger.InfoContext(ctx, "new run: "+what, args...)
		return ctx, run
	}
}
