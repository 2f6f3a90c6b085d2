package command

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDuplicateCommand       = errors.New("duplicate command")
	ErrHandlerNotSet          = errors.New("handler not set")
	ErrNameNotSet             = errors.New("name not set")
	ErrDescriptionNotSet      = errors.New("description not set")
	ErrGroupDescriptionNotSet = errors.New("group description not set")
	ErrCommandNotFound        = errors.New("command not found")
	ErrWrongCommandUsage      = errors.New("wrong command usage")
	ErrExecution              = errors.New("command execution failed")
)

// DuplicateCommandError reports siblings sharing a name, or ambiguous root matches.
type DuplicateCommandError struct {
	Name     string
	Elements []Element
}

func (e *DuplicateCommandError) Error() string {
	paths := make([]string, len(e.Elements))
	for i, el := range e.Elements {
		paths[i] = describe(el)
	}
	return fmt.Sprintf("%s '%s': %s", ErrDuplicateCommand, e.Name, strings.Join(paths, ", "))
}

func (e *DuplicateCommandError) Is(err error) bool {
	if err == ErrDuplicateCommand {
		return true
	}
	_, ok := err.(*DuplicateCommandError)
	return ok
}

// HandlerNotSetError is returned when a [Command] has neither a [Handler] nor sub-commands.
type HandlerNotSetError struct {
	Command *Command
}

func (e *HandlerNotSetError) Error() string {
	return fmt.Sprintf("%s for command '%s'", ErrHandlerNotSet, displayPath(e.Command))
}

func (e *HandlerNotSetError) Is(err error) bool {
	if err == ErrHandlerNotSet {
		return true
	}
	_, ok := err.(*HandlerNotSetError)
	return ok
}

// NameNotSetError is returned when a group or non-default command has no name.
// Scope is the path of the element that owns the nameless one, which is empty at the root.
type NameNotSetError struct {
	Scope string
}

func (e *NameNotSetError) Error() string {
	if len(e.Scope) == 0 {
		return fmt.Sprintf("%s for a root element", ErrNameNotSet)
	}
	return fmt.Sprintf("%s for an element of '%s'", ErrNameNotSet, e.Scope)
}

func (e *NameNotSetError) Is(err error) bool {
	if err == ErrNameNotSet {
		return true
	}
	_, ok := err.(*NameNotSetError)
	return ok
}

// DescriptionNotSetError is returned when descriptions are required but missing.
// Group is true when the missing text is a command's group description.
type DescriptionNotSetError struct {
	Element Element
	Group   bool
}

func (e *DescriptionNotSetError) Error() string {
	if e.Group {
		return fmt.Sprintf("%s for '%s'", ErrGroupDescriptionNotSet, displayPath(e.Element))
	}
	return fmt.Sprintf("%s for '%s'", ErrDescriptionNotSet, displayPath(e.Element))
}

func (e *DescriptionNotSetError) Is(err error) bool {
	switch err {
	case ErrDescriptionNotSet:
		return !e.Group
	case ErrGroupDescriptionNotSet:
		return e.Group
	}
	_, ok := err.(*DescriptionNotSetError)
	return ok
}

// CommandNotFoundError is returned when no command matched the arguments.
// Group is the deepest group that did match, if any.
type CommandNotFoundError struct {
	Args  []string
	Group *Group
}

func (e *CommandNotFoundError) Error() string {
	if len(e.Args) == 0 {
		return fmt.Sprintf("%s: no arguments", ErrCommandNotFound)
	}
	if e.Group != nil {
		return fmt.Sprintf("%s in '%s': %s", ErrCommandNotFound, e.Group.Path(), strings.Join(e.Args, " "))
	}
	return fmt.Sprintf("%s: %s", ErrCommandNotFound, strings.Join(e.Args, " "))
}

func (e *CommandNotFoundError) Is(err error) bool {
	if err == ErrCommandNotFound {
		return true
	}
	_, ok := err.(*CommandNotFoundError)
	return ok
}

// WrongCommandUsageError is returned when a matched command can't be run as given.
type WrongCommandUsageError struct {
	Command *Command
	Group   *Group
	Reason  string
}

func (e *WrongCommandUsageError) Error() string {
	if len(e.Reason) == 0 {
		return fmt.Sprintf("%s of '%s'", ErrWrongCommandUsage, displayPath(e.Command))
	}
	return fmt.Sprintf("%s of '%s': %s", ErrWrongCommandUsage, displayPath(e.Command), e.Reason)
}

func (e *WrongCommandUsageError) Is(err error) bool {
	if err == ErrWrongCommandUsage {
		return true
	}
	_, ok := err.(*WrongCommandUsageError)
	return ok
}

// ExecutionError wraps an error returned by a [Handler], or a recovered panic.
// Stack is only populated for panics.
type ExecutionError struct {
	Command *Command
	Err     error
	Stack   []byte
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s '%s': %v", ErrExecution, displayPath(e.Command), e.Err)
}

func (e *ExecutionError) Is(err error) bool {
	if err == ErrExecution {
		return true
	}
	_, ok := err.(*ExecutionError)
	return ok
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

func describe(el Element) string {
	switch el.(type) {
	case *Group:
		return "group " + displayPath(el)
	default:
		return "command " + displayPath(el)
	}
}

func displayPath(el Element) string {
	if el == nil {
		return ""
	}
	if path := el.Path(); len(path) > 0 {
		return path
	}
	return "(default)"
}
