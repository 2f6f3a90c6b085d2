package command

import (
	"slices"
	"strings"
)

// DefaultHelpFlags are the arguments that request help by default.
var DefaultHelpFlags = []string{"--help", "-h"}

// ArgumentOption is an [Option] bound to the value it received.
// Flags are bound to their own name.
type ArgumentOption struct {
	Option *Option
	Value  string
}

// ArgumentParameter is a [Parameter] bound to the argument it received.
type ArgumentParameter struct {
	Parameter *Parameter
	Value     string
}

// MatchNode is one matched level of the command tree.
// Nodes link upward to their parent, forming a chain from the deepest match back to the root.
type MatchNode struct {
	Parent        *MatchNode
	Group         *Group
	Command       *Command
	Options       []ArgumentOption
	Parameters    []ArgumentParameter
	HelpRequested bool
}

// Element returns the matched group or command.
func (n *MatchNode) Element() Element {
	if n.Command != nil {
		return n.Command
	}
	return n.Group
}

// Chain returns the nodes from the root down to n.
func (n *MatchNode) Chain() []*MatchNode {
	var chain []*MatchNode
	for node := n; node != nil; node = node.Parent {
		chain = append(chain, node)
	}
	slices.Reverse(chain)
	return chain
}

// AllOptions aggregates the options bound at every level, from the root down to n.
func (n *MatchNode) AllOptions() []ArgumentOption {
	var all []ArgumentOption
	for _, node := range n.Chain() {
		all = append(all, node.Options...)
	}
	return all
}

// AllParameters aggregates the parameters bound at every level, from the root down to n.
func (n *MatchNode) AllParameters() []ArgumentParameter {
	var all []ArgumentParameter
	for _, node := range n.Chain() {
		all = append(all, node.Parameters...)
	}
	return all
}

// Match is the result of matching arguments against a command tree.
// Either node may be nil: a group can match without a command, and nothing matching at all is reported without error.
type Match struct {
	Group              *MatchNode
	Command            *MatchNode
	Args               []string
	ContainsHelpOption bool
}

// Matcher walks arguments against a [Builder]'s tree.
type Matcher struct {
	Builder *Builder
	// HelpFlags are the arguments that request help.
	HelpFlags []string
	// HelpEnabled stops scanning at the first help flag.
	HelpEnabled bool
}

func NewMatcher(b *Builder) *Matcher {
	if b == nil {
		panic("nil builder")
	}
	return &Matcher{
		Builder:     b,
		HelpFlags:   DefaultHelpFlags,
		HelpEnabled: true,
	}
}

// Match finds at most one group path and at most one command path for args.
//
// Matching is greedy and left to right, with no backtracking between siblings.
// Arguments that match nothing are ignored.
// A [DuplicateCommandError] is returned if more than one root group or more than one root command matches.
func (m *Matcher) Match(args []string) (*Match, error) {
	result := &Match{Args: args}
	for _, arg := range args {
		if m.isHelp(arg) {
			result.ContainsHelpOption = true
			break
		}
	}
	if len(args) == 0 {
		return result, nil
	}

	type groupMatch struct {
		group, command *MatchNode
	}
	var (
		groups   []groupMatch
		commands []*MatchNode
	)
	for _, g := range m.Builder.groups {
		if gn, cn := m.matchGroup(g, nil, args, 0); gn != nil {
			groups = append(groups, groupMatch{group: gn, command: cn})
		}
	}
	for _, cmd := range m.Builder.commands {
		if cn := m.matchCommand(cmd, nil, args, 0); cn != nil {
			commands = append(commands, cn)
		}
	}
	if len(groups) > 1 {
		dup := &DuplicateCommandError{Name: args[0]}
		for _, gm := range groups {
			dup.Elements = append(dup.Elements, gm.group.Chain()[0].Group)
		}
		return nil, dup
	}
	if len(commands) > 1 {
		dup := &DuplicateCommandError{Name: args[0]}
		for _, cn := range commands {
			dup.Elements = append(dup.Elements, cn.Chain()[0].Command)
		}
		return nil, dup
	}
	if len(groups) == 1 {
		result.Group = groups[0].group
		result.Command = groups[0].command
	}
	if result.Command == nil && len(commands) == 1 {
		result.Command = commands[0]
	}
	if result.Group == nil && result.Command == nil && m.Builder.defaultCommand != nil {
		result.Command = m.matchCommand(m.Builder.defaultCommand, nil, args, -1)
	}
	return result, nil
}

// matchCommand matches cmd at args[i].
// An index of -1 matches unconditionally, and scans all arguments.
// The deepest matched command's node is returned.
func (m *Matcher) matchCommand(cmd *Command, parent *MatchNode, args []string, i int) *MatchNode {
	if i >= 0 && (i >= len(args) || args[i] != cmd.name) {
		return nil
	}
	node := &MatchNode{Parent: parent, Command: cmd}
	used := map[*Option]struct{}{}
	nextParam := 0
	for j := i + 1; j < len(args); j++ {
		if m.HelpEnabled && m.isHelp(args[j]) {
			node.HelpRequested = true
			return node
		}
		if bound, next, ok := matchOption(cmd.options, used, args, j); ok {
			node.Options = append(node.Options, bound)
			j = next
			continue
		}
		for _, sub := range cmd.commands {
			if child := m.matchCommand(sub, node, args, j); child != nil {
				return child
			}
		}
		if nextParam < len(cmd.parameters) {
			node.Parameters = append(node.Parameters, ArgumentParameter{Parameter: cmd.parameters[nextParam], Value: args[j]})
			nextParam++
		}
	}
	return node
}

// matchGroup matches g at args[i], returning the deepest matched group node and the command node found within it, if any.
func (m *Matcher) matchGroup(g *Group, parent *MatchNode, args []string, i int) (group, command *MatchNode) {
	if i >= len(args) || args[i] != g.name {
		return nil, nil
	}
	node := &MatchNode{Parent: parent, Group: g}
	used := map[*Option]struct{}{}
	for j := i + 1; j < len(args); j++ {
		if m.HelpEnabled && m.isHelp(args[j]) {
			node.HelpRequested = true
			return node, nil
		}
		if bound, next, ok := matchOption(g.options, used, args, j); ok {
			node.Options = append(node.Options, bound)
			j = next
			continue
		}
		for _, sub := range g.groups {
			if gn, cn := m.matchGroup(sub, node, args, j); gn != nil {
				return gn, cn
			}
		}
		for _, cmd := range g.commands {
			if cn := m.matchCommand(cmd, node, args, j); cn != nil {
				return node, cn
			}
		}
		break
	}
	return node, nil
}

// matchOption binds args[j] to the first unused option that accepts it.
// The returned index is the last argument consumed.
func matchOption(options []*Option, used map[*Option]struct{}, args []string, j int) (ArgumentOption, int, bool) {
	arg := args[j]
	for _, opt := range options {
		if _, ok := used[opt]; ok {
			continue
		}
		switch {
		case opt.IsFlag:
			if arg == opt.Name {
				used[opt] = struct{}{}
				return ArgumentOption{Option: opt, Value: opt.Name}, j, true
			}
		case opt.ValueLocation == SplitByEqual:
			if arg == opt.Name {
				used[opt] = struct{}{}
				return ArgumentOption{Option: opt}, j, true
			}
			if value, ok := strings.CutPrefix(arg, opt.Name+"="); ok {
				used[opt] = struct{}{}
				return ArgumentOption{Option: opt, Value: value}, j, true
			}
		default:
			if arg == opt.Name {
				used[opt] = struct{}{}
				if j+1 < len(args) {
					return ArgumentOption{Option: opt, Value: args[j+1]}, j + 1, true
				}
				return ArgumentOption{Option: opt}, j, true
			}
		}
	}
	return ArgumentOption{}, j, false
}

func (m *Matcher) isHelp(arg string) bool {
	return slices.Contains(m.HelpFlags, arg)
}
