package cmds

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	writeUsage(p.Output, p.commands)
}

func writeUsage(w io.Writer, commands map[string]*Command) {
	names := make([]string, 0, len(commands))
	for name, command := range commands {
		// aliases share the *Command; list it under its defined name only
		if command.Hidden || command.Name != name {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		command := commands[name]
		line := name
		for _, arg := range command.ArgNames {
			line += " " + strings.ToUpper(arg)
		}
		if len(command.Aliases) > 0 {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)
	}
}
