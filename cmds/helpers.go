package cmds

import "strings"

// Var defines a flag taking one argument. "name." resets it to zero.
func Var[T any](name string, desc ...string) *T {
	var value T

	Define(name, Func(func(v T) {
		value = v
	}).Desc(strings.Join(desc, " ")).Args("value"))

	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Hide())

	return &value
}

// Switch defines a boolean flag; "!name" turns it off.
func Switch(name string, desc ...string) *bool {
	var value bool

	Define(name, Func(func() {
		value = true
	}).Desc(strings.Join(desc, " ")))

	Define("!"+name, Func(func() {
		value = false
	}).Hide())

	return &value
}

// Collect defines a repeatable flag accumulating its arguments.
func Collect[T any](name string, desc ...string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Desc(strings.Join(desc, " ")).Args("value"))
	return &value
}

// Optional is a flag value that remembers whether it was given, so a
// provider can tell an explicit zero or false from an absent flag.
type Optional[T any] struct {
	Value T
	IsSet bool
}

func (o *Optional[T]) Get() (T, bool) {
	return o.Value, o.IsSet
}

// OptionalVar defines a flag taking one argument. "name." unsets it.
func OptionalVar[T any](name string, desc ...string) *Optional[T] {
	ret := new(Optional[T])

	Define(name, Func(func(v T) {
		ret.Value = v
		ret.IsSet = true
	}).Desc(strings.Join(desc, " ")).Args("value"))

	Define(name+".", Func(func() {
		*ret = Optional[T]{}
	}).Hide())

	return ret
}

// OptionalSwitch defines "name" and "!name", both of which count as given.
// "name." unsets it.
func OptionalSwitch(name string, desc ...string) *Optional[bool] {
	ret := new(Optional[bool])

	Define(name, Func(func() {
		*ret = Optional[bool]{Value: true, IsSet: true}
	}).Desc(strings.Join(desc, " ")))

	Define("!"+name, Func(func() {
		*ret = Optional[bool]{Value: false, IsSet: true}
	}).Hide())

	Define(name+".", Func(func() {
		*ret = Optional[bool]{}
	}).Hide())

	return ret
}
