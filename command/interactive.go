package command

import (
	"context"
	"errors"
	"github.com/saylorsolutions/conkit/message"
	"github.com/saylorsolutions/conkit/terminal"
	"io"
	"slices"
	"strings"
	"unicode"
)

const (
	UseCommand  = "$use"  // This is used in interactive mode to indicate that a set of sub-commands should be pushed to the invocation stack.
	BackCommand = "$back" // This is used in interactive mode to indicate that the last element on the invocation stack should be popped.
)

var (
	InteractiveQuitCommands = []string{"quit", "x"} // InteractiveQuitCommands is a slice of strings that should escape from interactive mode.
)

// RunInteractive runs a "shell" over the command tree, reading one command line at a time from the [Printer]'s driver.
// Each line is dispatched in-process with [Runner.RunSafe], so errors are reported and the loop continues.
//
// This loop ends with one of the [InteractiveQuitCommands], when input is exhausted, when the user presses Ctrl+C, or when ctx is done.
func (r *Runner) RunInteractive(ctx context.Context) error {
	var commandStack [][]string
	prefixCommands := func() []string {
		if len(commandStack) == 0 {
			return nil
		}
		return commandStack[len(commandStack)-1]
	}
	p := r.printer
	driver := p.Driver()
	p.Printf("Running '%s' interactively. Enter {color:cyan}%s{color:default} to exit.\n", r.appName, strings.Join(InteractiveQuitCommands, "{color:default} or {color:cyan}"))
	p.Printf("Use the {color:cyan}%s{color:default} command with one or more sub-commands to push them to the execution stack, and {color:cyan}%s{color:default} to pop and return.\n", UseCommand, BackCommand)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if len(commandStack) > 0 {
			p.Plainf("%s %s> ", r.appName, strings.Join(prefixCommands(), " "))
		} else {
			p.Plainf("%s> ", r.appName)
		}
		line, err := driver.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, terminal.ErrInterrupted) {
				return nil
			}
			return err
		}
		segments := splitCommandLine(line)
		if len(segments) == 0 {
			continue
		}
		switch {
		case len(segments) == 1 && slices.Contains(InteractiveQuitCommands, strings.ToLower(segments[0])):
			return nil
		case segments[0] == UseCommand:
			newStack := append(slices.Clone(prefixCommands()), segments[1:]...)
			p.Printf("Using '%s'\n", message.Escape(strings.Join(newStack, " ")))
			commandStack = append(commandStack, newStack)
		case segments[0] == BackCommand:
			if len(commandStack) == 0 {
				p.Println("Already at root command")
				continue
			}
			commandStack = commandStack[:len(commandStack)-1]
		default:
			args := append(slices.Clone(prefixCommands()), segments...)
			r.RunSafe(ctx, args)
		}
	}
}

// splitCommandLine splits a command line into arguments, respecting single and double quotes.
// Inside quotes, a backslash escapes a quote or another backslash.
func splitCommandLine(input string) []string {
	var (
		tokens                       []string
		current                      strings.Builder
		inSingleQuote, inDoubleQuote bool
		quoted                       bool
	)
	runes := []rune(input)
	for i := 0; i < len(runes); i++ {
		char := runes[i]
		switch {
		case char == '\'' && !inDoubleQuote:
			inSingleQuote = !inSingleQuote
			quoted = true
		case char == '"' && !inSingleQuote:
			inDoubleQuote = !inDoubleQuote
			quoted = true
		case char == '\\' && i+1 < len(runes) && (inDoubleQuote || inSingleQuote):
			next := runes[i+1]
			if next == '"' || next == '\'' || next == '\\' {
				current.WriteRune(next)
				i++
			} else {
				current.WriteRune(char)
			}
		case unicode.IsSpace(char) && !inSingleQuote && !inDoubleQuote:
			if current.Len() > 0 || quoted {
				tokens = append(tokens, current.String())
				current.Reset()
				quoted = false
			}
		default:
			current.WriteRune(char)
		}
	}
	if current.Len() > 0 || quoted {
		tokens = append(tokens, current.String())
	}
	return tokens
}
