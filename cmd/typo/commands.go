package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/dscope"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
	"golang.org/x/term"

	"github.com/reusee/typogenetics/cmds"
	"github.com/reusee/typogenetics/debugs"
	"github.com/reusee/typogenetics/logs"
	"github.com/reusee/typogenetics/metrics"
	"github.com/reusee/typogenetics/sims"
	"github.com/reusee/typogenetics/typo"
	"github.com/reusee/typogenetics/typoconfigs"
)

var (
	traceFlag   = cmds.Switch("-trace", "print every step of a rewrite")
	printFlag   = cmds.Switch("-print", "list the discovered strands")
	metricsFlag = cmds.Var[string]("-metrics", "write simulation metrics to a file")
	tapFlag     = cmds.Switch("-tap", "open a REPL on the simulation result")
)

func init() {
	cmds.Define("translate", cmds.Func(func(s string) error {
		return setAction(translate(s))
	}).Desc("print the enzymes coded by a strand").Args("STRAND"))

	cmds.Define("fold", cmds.Func(func(e string) error {
		return setAction(fold(e))
	}).Desc("print the orientation and binding base of an enzyme").Args("ENZYME"))

	cmds.Define("rewrite", cmds.Func(func(e, s string) error {
		return setAction(rewrite(e, s))
	}).Desc("apply an enzyme to a strand").Args("ENZYME", "STRAND").Alias("apply"))

	cmds.Define("simulate", cmds.Func(func(s string) error {
		return setAction(simulate(s))
	}).Desc("let strands act on each other at random").Args("STRAND").Alias("sim"))

	cmds.Define("mutate", cmds.Func(func(s string) error {
		return setAction(mutate(s))
	}).Desc("apply one random point edit to a strand").Args("STRAND"))

	cmds.Define("repl", cmds.Func(func() error {
		return setAction(startREPL)
	}).Desc("start a Starlark session, or run a script from stdin").Alias("shell"))
}

func translate(s string) Action {
	return func(ctx context.Context, scope dscope.Scope, out io.Writer) error {
		strand, err := typo.ParseStrand(s)
		if err != nil {
			return wrap(err)
		}
		scope.Call(func(
			rewriter typo.Rewriter,
		) {
			for _, enzyme := range typo.Translate(strand) {
				orientation := rewriter.Folder.Fold(enzyme)
				fmt.Fprintf(out, "%s\t%s\t%s\n",
					enzyme,
					orientation,
					orientation.BindingAffinity(),
				)
			}
		})
		return nil
	}
}

func fold(e string) Action {
	return func(ctx context.Context, scope dscope.Scope, out io.Writer) error {
		enzyme, err := typo.ParseEnzyme(e)
		if err != nil {
			return wrap(err)
		}
		scope.Call(func(
			rewriter typo.Rewriter,
		) {
			orientation := rewriter.Folder.Fold(enzyme)
			fmt.Fprintf(out, "%s\t%s\n", orientation, orientation.BindingAffinity())
		})
		return nil
	}
}

func rewrite(e, s string) Action {
	return func(ctx context.Context, scope dscope.Scope, out io.Writer) error {
		enzyme, err := typo.ParseEnzyme(e)
		if err != nil {
			return wrap(err)
		}
		strand, err := typo.ParseStrand(s)
		if err != nil {
			return wrap(err)
		}
		scope.Call(func(
			rewriter typo.Rewriter,
		) {
			machine := rewriter.NewMachine(enzyme, strand)
			if *traceFlag {
				traceMachine(out, machine)
			}
			for _, output := range machine.Result() {
				fmt.Fprintln(out, output)
			}
		})
		return nil
	}
}

func traceMachine(out io.Writer, machine *typo.Machine) {
	if !machine.Bound {
		fmt.Fprintln(out, "no binding site")
		return
	}
	fmt.Fprintln(out, machine.Picture())
	for step := range machine.Run {
		fmt.Fprintf(out, "%d %s cursor %d -> %d", step.Index, step.AminoAcid, step.From, step.To)
		if step.CopyMode {
			fmt.Fprint(out, " copy")
		}
		if step.Halt != typo.NotHalted {
			fmt.Fprintf(out, " halt %s", step.Halt)
		}
		fmt.Fprintln(out)
		for _, cleaved := range step.Cleaved {
			fmt.Fprintf(out, "cut off %s\n", cleaved)
		}
		fmt.Fprintln(out, machine.Picture())
	}
	fmt.Fprintln(out)
}

func simulate(s string) Action {
	return func(ctx context.Context, scope dscope.Scope, out io.Writer) (err error) {
		seed, err := typo.ParseStrand(s)
		if err != nil {
			return wrap(err)
		}
		scope.Call(func(
			simulator *sims.Simulator,
			recorder *metrics.Recorder,
			tap debugs.Tap,
		) {
			var result *sims.Result
			result, err = simulator.Simulate(ctx, seed)
			if err != nil {
				err = wrap(err)
				return
			}
			fmt.Fprintf(out, "iterations %d, translations %d, rewrites %d, edits %d, discovered %d\n",
				result.Iterations,
				result.Translations,
				result.Rewrites,
				result.Edits,
				len(result.Discovered),
			)
			if *printFlag {
				for _, strand := range result.Discovered {
					fmt.Fprintln(out, strand)
				}
			}
			if *metricsFlag != "" {
				if err = recorder.WriteTextfile(*metricsFlag); err != nil {
					err = wrap(err)
					return
				}
			}
			if *tapFlag {
				tap(ctx, "simulate", map[string]any{
					"result": result,
				})
			}
		})
		return
	}
}

func mutate(s string) Action {
	return func(ctx context.Context, scope dscope.Scope, out io.Writer) error {
		strand, err := typo.ParseStrand(s)
		if err != nil {
			return wrap(err)
		}
		scope.Call(func(
			editor sims.Editor,
			seed typoconfigs.Seed,
		) {
			edited, kind := editor.Edit(strand, sims.NewRand(int64(seed)))
			fmt.Fprintf(out, "%s\t%s\n", edited, kind)
		})
		return nil
	}
}

func startREPL(ctx context.Context, scope dscope.Scope, out io.Writer) error {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		scope.Call(func(
			tap debugs.Tap,
		) {
			tap(ctx, "repl", nil)
		})
		return nil
	}
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		return wrap(err)
	}
	return runScript(scope, "stdin", src, out)
}

// runScript executes src with the typogenetics builtins; print goes to out.
func runScript(scope dscope.Scope, name string, src []byte, out io.Writer) (err error) {
	scope.Call(func(
		rewriter typo.Rewriter,
		logger logs.Logger,
	) {
		thread := &starlark.Thread{
			Name: name,
			Print: func(_ *starlark.Thread, msg string) {
				fmt.Fprintln(out, msg)
			},
		}
		if _, err = starlark.ExecFileOptions(
			&syntax.FileOptions{
				Set:             true,
				While:           true,
				TopLevelControl: true,
			},
			thread,
			name,
			src,
			debugs.Builtins(rewriter),
		); err != nil {
			logger.Error("script failed", "name", name, "error", err)
			err = wrap(err)
		}
	})
	return
}
