package cmds

import (
	"fmt"
	"reflect"
)

type Command struct {
	Name        string
	Func        reflect.Value
	Description string
	ArgNames    []string
	Aliases     []string

	// Hidden commands run normally but are left out of usage output.
	Hidden bool
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

// Args names the positional arguments for usage output.
func (c *Command) Args(names ...string) *Command {
	c.ArgNames = append(c.ArgNames, names...)
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

func (c *Command) Hide() *Command {
	c.Hidden = true
	return c
}

func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)

	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}

	switch fnType := fnValue.Type(); fnType.NumOut() {
	case 0:
	case 1:
		if fnType.Out(0) != errorType {
			panic(fmt.Errorf("%v: the only result must be error", fnType))
		}
	default:
		panic(fmt.Errorf("%v: too many results", fnType))
	}

	return &Command{
		Func: fnValue,
	}
}
