package cmds

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var strand string
	var iterations int
	executor.Define("simulate", Func(func(s string) {
		strand = s
	}))
	executor.Define("-iterations", Func(func(n int) {
		iterations = n
	}))

	if err := executor.Execute([]string{
		"simulate", "CATAAG",
		"-iterations", "500",
	}); err != nil {
		t.Fatal(err)
	}
	if strand != "CATAAG" {
		t.Fatalf("got %q", strand)
	}
	if iterations != 500 {
		t.Fatalf("got %v", iterations)
	}

	err := executor.Execute([]string{
		"translate",
	})
	if !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "translate") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"-iterations", "many",
	})
	if err == nil || !strings.Contains(err.Error(), "convert many to int") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"simulate",
	})
	if !errors.Is(err, ErrMissingArg) {
		t.Fatalf("got %v", err)
	}
}

func TestExecutorReturnsCommandError(t *testing.T) {
	executor := NewExecutor()
	bad := errors.New("bad strand")
	executor.Define("rewrite", Func(func(enzyme string, strand string) error {
		if strand == "" {
			return bad
		}
		return nil
	}))
	if err := executor.Execute([]string{"rewrite", "cut", "ACA"}); err != nil {
		t.Fatal(err)
	}
	if err := executor.Execute([]string{"rewrite", "cut", ""}); !errors.Is(err, bad) {
		t.Fatalf("got %v", err)
	}
}

func TestAlias(t *testing.T) {
	executor := NewExecutor()
	var strands []string
	executor.Define("simulate", Func(func(s string) {
		strands = append(strands, s)
	}).Alias("sim", "walk"))

	if err := executor.Execute([]string{
		"simulate", "CGA",
		"sim", "ACA",
		"walk", "TAG",
	}); err != nil {
		t.Fatal(err)
	}
	if str := strings.Join(strands, ","); str != "CGA,ACA,TAG" {
		t.Fatalf("got %s", str)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("should panic")
		}
	}()
	executor.Define("translate", Func(func() {}).Alias("sim"))
}

func TestDuplicatedCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("fold", Func(func() {}))
	defer func() {
		if recover() == nil {
			t.Fatal("should panic")
		}
	}()
	executor.Define("fold", Func(func() {}))
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var seed int
	var set bool
	executor.Define("mutate", Func(func(s *int) {
		seed = *s
		set = true
	}))

	if err := executor.Execute([]string{"mutate", "7"}); err != nil {
		t.Fatal(err)
	}
	if !set || seed != 7 {
		t.Fatalf("got %v", seed)
	}

	if err := executor.Execute([]string{"mutate"}); err != nil {
		t.Fatal(err)
	}
	if seed != 0 {
		t.Fatalf("got %v", seed)
	}
}

func TestBoolArgument(t *testing.T) {
	executor := NewExecutor()
	var v bool
	executor.Define("-fold-ends", Func(func(b bool) {
		v = b
	}))
	if err := executor.Execute([]string{"-fold-ends", "yes"}); err != nil {
		t.Fatal(err)
	}
	if !v {
		t.Fatal()
	}
	if err := executor.Execute([]string{"-fold-ends", "perhaps"}); err == nil {
		t.Fatal("should error")
	}
}

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	buf := new(bytes.Buffer)
	executor.Output = buf
	executor.Define("rewrite", Func(func(e, s string) {}).
		Desc("apply an enzyme").
		Args("enzyme", "strand"))
	executor.Define("-trace.", Func(func() {}).Desc("reset").Hide())
	executor.Define("simulate", Func(func(s string) {}).
		Desc("random walk").
		Args("strand").
		Alias("sim"))
	executor.PrintUsage()

	out := buf.String()
	for _, want := range []string{
		"rewrite ENZYME STRAND\tapply an enzyme",
		"simulate STRAND (sim)\trandom walk",
		"-h (help, -help, --help)\tprint this usage",
		"print this usage",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in\n%s", want, out)
		}
	}
	if strings.Contains(out, "-trace.") {
		t.Fatalf("hidden command listed:\n%s", out)
	}
	if strings.Count(out, "print this usage") != 1 {
		t.Fatalf("aliases listed twice:\n%s", out)
	}
}
