package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/e5"

	"github.com/reusee/typogenetics/cmds"
	"github.com/reusee/typogenetics/modes"
)

var (
	wrap = e5.Wrap.With(e5.WrapStacktrace)

	ErrNoCommand        = errors.New("no command given")
	ErrMultipleCommands = errors.New("only one command per invocation")
)

// Action runs the command selected on the command line.
type Action func(ctx context.Context, scope dscope.Scope, out io.Writer) error

var action Action

func setAction(a Action) error {
	if action != nil {
		return ErrMultipleCommands
	}
	action = a
	return nil
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) (err error) {
	action = nil
	if err := cmds.Execute(args); err != nil {
		return wrap(err)
	}
	if action == nil {
		cmds.PrintUsage()
		return ErrNoCommand
	}

	// providers panic on bad config files
	defer func() {
		if p := recover(); p != nil {
			e, ok := p.(error)
			if !ok {
				panic(p)
			}
			err = e
		}
	}()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)
	return action(ctx, scope, out)
}
