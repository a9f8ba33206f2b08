package logs

import (
	"io"
	"os"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Writer receives terminal log output.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}

// Run identifies one simulation run in log records and errors.
type Run string

type runKey struct{}

var RunKey = runKey{}

func RunOf(ctx interface{ Value(any) any }) Run {
	if v, ok := ctx.Value(RunKey).(Run); ok {
		return v
	}
	return ""
}
