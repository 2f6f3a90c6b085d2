package command

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/conkit/convert"
	"github.com/saylorsolutions/conkit/message"
	"slices"
)

var (
	ErrArgMap   = errors.New("failed to map argument(s)")
	ErrNotBound = errors.New("argument not bound")
)

// Arguments are the options and parameters bound for a matched [Command], aggregated from the root of the tree down to the command.
type Arguments struct {
	args       []string
	command    *Command
	options    []ArgumentOption
	parameters []ArgumentParameter
	printer    *message.Printer
}

func newArguments(node *MatchNode, args []string, printer *message.Printer) *Arguments {
	return &Arguments{
		args:       args,
		command:    node.Command,
		options:    node.AllOptions(),
		parameters: node.AllParameters(),
		printer:    printer,
	}
}

// Args returns a copy of the raw arguments.
func (a *Arguments) Args() []string {
	return slices.Clone(a.args)
}

// Command returns the command being executed.
func (a *Arguments) Command() *Command {
	return a.command
}

// Printer should be used to communicate with the user.
func (a *Arguments) Printer() *message.Printer {
	return a.printer
}

// Options returns every bound option, root level first.
func (a *Arguments) Options() []ArgumentOption {
	return slices.Clone(a.options)
}

// Option returns the value bound to the named option.
// If the name is bound at more than one level, the deepest one wins.
func (a *Arguments) Option(name string) (string, bool) {
	for i := len(a.options) - 1; i >= 0; i-- {
		if a.options[i].Option.Name == name {
			return a.options[i].Value, true
		}
	}
	return "", false
}

// HasFlag reports whether the named option was given.
func (a *Arguments) HasFlag(name string) bool {
	_, ok := a.Option(name)
	return ok
}

// Parameter returns the value bound to the named parameter.
func (a *Arguments) Parameter(name string) (string, bool) {
	for i := len(a.parameters) - 1; i >= 0; i-- {
		if a.parameters[i].Parameter.Name == name {
			return a.parameters[i].Value, true
		}
	}
	return "", false
}

// Parameters returns the bound parameter values in order.
func (a *Arguments) Parameters() []string {
	values := make([]string, len(a.parameters))
	for i, p := range a.parameters {
		values[i] = p.Value
	}
	return values
}

// MapParameters is an easy way to map bound parameters to variables (targets), and require a certain amount.
// This will return an error if there are not enough parameters and/or targets to satisfy the amount required by minArgs.
// Targets elements should not be nil.
func (a *Arguments) MapParameters(minArgs int, targets ...*string) error {
	params := a.Parameters()
	if len(params) < minArgs {
		return fmt.Errorf("%w: not enough parameters (%d) to satisfy minArgs (%d)", ErrArgMap, len(params), minArgs)
	}
	if len(targets) < minArgs {
		return fmt.Errorf("%w: not enough targets (%d) to satisfy minArgs (%d)", ErrArgMap, len(targets), minArgs)
	}
	for i := 0; i < len(params) && i < len(targets); i++ {
		if targets[i] == nil {
			return fmt.Errorf("%w: target %d is nil", ErrArgMap, i)
		}
		*targets[i] = params[i]
	}
	return nil
}

// OptionAs converts the value of the named option with the built-in converter for T.
// [ErrNotBound] is returned if the option wasn't given.
func OptionAs[T any](a *Arguments, name string) (T, error) {
	raw, ok := a.Option(name)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: option '%s'", ErrNotBound, name)
	}
	return convert.To[T](raw)
}

// ParameterAs converts the value of the named parameter with the built-in converter for T.
// [ErrNotBound] is returned if the parameter wasn't given.
func ParameterAs[T any](a *Arguments, name string) (T, error) {
	raw, ok := a.Parameter(name)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: parameter '%s'", ErrNotBound, name)
	}
	return convert.To[T](raw)
}

// MustGet is used with a getter to panic if the value is missing or couldn't be converted.
// The developer usually knows whether a get call will fail, so this makes handlers shorter.
func MustGet[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
