package command

import (
	"fmt"
	"github.com/mattn/go-runewidth"
	"slices"
	"strings"
)

// HelpFunc shows help for the matched group and command, either of which may be nil.
type HelpFunc func(group *Group, cmd *Command) error

// HelpPrinter renders the help screen for a [Builder]'s tree.
type HelpPrinter struct {
	Builder *Builder
	// AppName is the name used to invoke the program.
	AppName string
	// HelpFlag is shown in the footer.
	HelpFlag string
}

type helpRow struct {
	name        string
	description string
}

type helpBlock struct {
	title string
	rows  []helpRow
}

// Render returns the help screen for the deepest of cmd and group, or the root when both are nil.
//
// The screen is made of a usage block, then parameters, commands, and one options block for every level that declares options.
// Names are padded to the widest name on the screen, plus 4 spaces.
func (h *HelpPrinter) Render(group *Group, cmd *Command) string {
	var target Element
	switch {
	case cmd != nil:
		target = cmd
	case group != nil:
		target = group
	}

	var blocks []helpBlock
	if cmd != nil && len(cmd.parameters) > 0 {
		block := helpBlock{title: "parameters:"}
		for _, p := range cmd.parameters {
			block.rows = append(block.rows, helpRow{name: p.Name, description: p.Description})
		}
		blocks = append(blocks, block)
	}
	if children := h.children(group, cmd); len(children) > 0 {
		blocks = append(blocks, helpBlock{title: "commands:", rows: children})
	}
	for _, el := range lineage(target) {
		if len(el.Options()) == 0 {
			continue
		}
		title := "options:"
		if len(el.Name()) > 0 {
			title = el.Name() + "-options:"
		}
		block := helpBlock{title: title}
		for _, opt := range el.Options() {
			block.rows = append(block.rows, helpRow{name: optionUsage(opt), description: opt.Description})
		}
		blocks = append(blocks, block)
	}

	var width int
	for _, block := range blocks {
		for _, row := range block.rows {
			width = max(width, runewidth.StringWidth(row.name))
		}
	}

	var buf strings.Builder
	buf.WriteString("usage:\n")
	for _, line := range h.usageLines(target, group, cmd) {
		buf.WriteString("  " + line + "\n")
	}
	if target != nil {
		if desc := describeTarget(target, cmd); len(desc) > 0 {
			buf.WriteString("\n" + desc + "\n")
		}
	}
	for _, block := range blocks {
		buf.WriteString("\n" + block.title + "\n")
		for _, row := range block.rows {
			line := "  " + runewidth.FillRight(row.name, width+4) + row.description
			buf.WriteString(strings.TrimRight(line, " ") + "\n")
		}
	}
	buf.WriteString(fmt.Sprintf("\nFor more information about a command, run '%s [command] %s'.\n", h.scopeName(target), h.helpFlag()))
	return buf.String()
}

func (h *HelpPrinter) usageLines(target Element, group *Group, cmd *Command) []string {
	prefix := h.scopeName(target)
	optionsHint := ""
	if hasOptions(target) {
		optionsHint = " [options]"
	}
	var lines []string
	if cmd != nil && cmd.handler != nil {
		line := prefix + optionsHint
		for _, p := range cmd.parameters {
			line += " <" + p.Name + ">"
		}
		lines = append(lines, line)
	}
	if len(h.children(group, cmd)) > 0 {
		lines = append(lines, prefix+" <command>"+optionsHint)
	}
	if len(lines) == 0 {
		lines = append(lines, prefix+optionsHint)
	}
	return lines
}

// children lists what can follow the target, sorted by name with groups and commands interleaved.
func (h *HelpPrinter) children(group *Group, cmd *Command) []helpRow {
	var rows []helpRow
	switch {
	case cmd != nil:
		for _, sub := range cmd.commands {
			rows = append(rows, helpRow{name: sub.name, description: sub.description})
		}
	case group != nil:
		for _, g := range group.groups {
			rows = append(rows, helpRow{name: g.name, description: g.description})
		}
		for _, c := range group.commands {
			rows = append(rows, helpRow{name: c.name, description: c.description})
		}
	case h.Builder != nil:
		for _, g := range h.Builder.groups {
			rows = append(rows, helpRow{name: g.name, description: g.description})
		}
		for _, c := range h.Builder.commands {
			rows = append(rows, helpRow{name: c.name, description: c.description})
		}
	}
	slices.SortStableFunc(rows, func(a, b helpRow) int {
		return strings.Compare(a.name, b.name)
	})
	return rows
}

func (h *HelpPrinter) scopeName(target Element) string {
	if target == nil || len(target.Path()) == 0 {
		return h.AppName
	}
	return h.AppName + " " + target.Path()
}

func (h *HelpPrinter) helpFlag() string {
	if len(h.HelpFlag) == 0 {
		return DefaultHelpFlags[0]
	}
	return h.HelpFlag
}

func describeTarget(target Element, cmd *Command) string {
	if cmd != nil && len(cmd.commands) > 0 && len(cmd.groupDescription) > 0 {
		return cmd.groupDescription
	}
	return target.Description()
}

// lineage returns the elements from the root down to el.
func lineage(el Element) []Element {
	var chain []Element
	for ; el != nil; el = el.Parent() {
		chain = append(chain, el)
	}
	slices.Reverse(chain)
	return chain
}

func hasOptions(el Element) bool {
	for _, e := range lineage(el) {
		if len(e.Options()) > 0 {
			return true
		}
	}
	return false
}

func optionUsage(opt *Option) string {
	switch {
	case opt.IsFlag:
		return opt.Name
	case opt.ValueLocation == SplitByEqual:
		return opt.Name + "=<value>"
	default:
		return opt.Name + " <value>"
	}
}
