package logs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	SetLevel(slog.LevelInfo)
	defer SetLevel(slog.LevelWarn)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("rewrite", "enzyme", "cut", "strand", "ACA")
		logger.Debug("hidden")
	})
	if !strings.Contains(buf.String(), "enzyme=cut strand=ACA") {
		t.Fatalf("got %s", buf.String())
	}
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("got %s", buf.String())
	}
}

func TestNewRun(t *testing.T) {
	buf := new(bytes.Buffer)
	SetLevel(slog.LevelInfo)
	defer SetLevel(slog.LevelWarn)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		newRun NewRun,
		logger Logger,
	) {
		ctx := context.Background()
		ctx1, run1 := newRun(ctx, "simulate", "seed", "CATAAG")
		ctx2, run2 := newRun(ctx1, "replay")
		logger.InfoContext(ctx2, "discovered", "strand", "TAG")

		if run1 == "" || run1 == run2 {
			t.Fatalf("got %v %v", run1, run2)
		}
		if RunOf(ctx2) != run2 {
			t.Fatal()
		}

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 3 {
			t.Fatalf("got %v", lines)
		}
		if !strings.Contains(lines[0], "logs.run="+string(run1)) ||
			!strings.Contains(lines[0], "seed=CATAAG") {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[1], "parent="+string(run1)) {
			t.Fatalf("got %v", lines[1])
		}
		if !strings.Contains(lines[2], "logs.run="+string(run2)) {
			t.Fatalf("got %v", lines[2])
		}
	})
}

func TestWrapRun(t *testing.T) {
	base := errors.New("boom")
	if WrapRun(context.Background(), base) != base {
		t.Fatal()
	}
	if WrapRun(context.Background(), nil) != nil {
		t.Fatal()
	}
	ctx := context.WithValue(context.Background(), RunKey, Run("abc"))
	err := WrapRun(ctx, base)
	if !errors.Is(err, base) {
		t.Fatal()
	}
	if !strings.Contains(err.Error(), "run: abc") {
		t.Fatalf("got %v", err)
	}
}

func TestToJournalKey(t *testing.T) {
	if k := toJournalKey("logs.run"); k != "TYPO_LOGS_RUN" {
		t.Fatalf("got %s", k)
	}
}
