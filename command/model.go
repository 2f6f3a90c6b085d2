package command

import (
	"context"
	"slices"
	"strings"
)

// ValueLocation says where a valued [Option] finds its value.
type ValueLocation int

const (
	SplitBySpace ValueLocation = iota // SplitBySpace options take the next argument as their value, as in "--name value".
	SplitByEqual                      // SplitByEqual options take their value after '=' in the same argument, as in "--name=value".
)

// Option is a named switch of a [Command] or [Group].
// A flag expects no value, and its presence is the signal.
type Option struct {
	Name          string
	Description   string
	IsFlag        bool
	ValueLocation ValueLocation
}

// Parameter is a positional argument of a [Command], bound in declaration order.
type Parameter struct {
	Name        string
	Description string
}

// Handler executes a matched [Command].
type Handler func(ctx context.Context, args *Arguments) error

// Element is a node of the command tree, either a [*Group] or a [*Command].
type Element interface {
	Name() string
	Description() string
	Options() []*Option
	Parent() Element
	// Path is the space separated chain of names from the root to this element.
	Path() string
}

var (
	_ Element = (*Command)(nil)
	_ Element = (*Group)(nil)
)

// Command is an executable element of the command tree.
// A command may also own sub-commands, in which case it only needs a [Handler] if it should be runnable by itself.
type Command struct {
	name             string
	description      string
	groupDescription string
	options          []*Option
	parameters       []*Parameter
	commands         []*Command
	handler          Handler
	parent           Element
	isDefault        bool
}

func newCommand(parent Element, configure func(c *Command)) *Command {
	if configure == nil {
		panic("nil command configuration")
	}
	cmd := &Command{parent: parent}
	configure(cmd)
	return cmd
}

func (c *Command) WithName(name string) *Command {
	c.name = strings.TrimSpace(name)
	return c
}

func (c *Command) WithDescription(description string) *Command {
	c.description = description
	return c
}

// WithGroupDescription sets the text shown when this command lists its own sub-commands.
func (c *Command) WithGroupDescription(description string) *Command {
	c.groupDescription = description
	return c
}

// AddOption adds a valued option.
func (c *Command) AddOption(name, description string, location ValueLocation) *Command {
	c.options = append(c.options, &Option{Name: name, Description: description, ValueLocation: location})
	return c
}

// AddFlag adds an option that takes no value.
func (c *Command) AddFlag(name, description string) *Command {
	c.options = append(c.options, &Option{Name: name, Description: description, IsFlag: true})
	return c
}

// AddParameter adds the next positional parameter.
func (c *Command) AddParameter(name, description string) *Command {
	c.parameters = append(c.parameters, &Parameter{Name: name, Description: description})
	return c
}

// SetHandler specifies what runs when this command is matched.
// Passing a nil [Handler] will panic.
func (c *Command) SetHandler(handler Handler) *Command {
	if handler == nil {
		panic("nil command handler")
	}
	c.handler = handler
	return c
}

// AddCommand adds a sub-command, configured by the given function.
func (c *Command) AddCommand(configure func(c *Command)) *Command {
	c.commands = append(c.commands, newCommand(c, configure))
	return c
}

func (c *Command) Name() string {
	return c.name
}

func (c *Command) Description() string {
	return c.description
}

func (c *Command) GroupDescription() string {
	return c.groupDescription
}

func (c *Command) Options() []*Option {
	return c.options
}

func (c *Command) Parameters() []*Parameter {
	return c.parameters
}

func (c *Command) Commands() []*Command {
	return c.commands
}

func (c *Command) Handler() Handler {
	return c.handler
}

func (c *Command) Parent() Element {
	return c.parent
}

// IsDefault reports whether this is the builder's default command.
func (c *Command) IsDefault() bool {
	return c.isDefault
}

func (c *Command) Path() string {
	if c == nil {
		return ""
	}
	return pathOf(c)
}

// Group aggregates sub-groups and commands under a shared name, along with options shared by them.
type Group struct {
	name        string
	description string
	options     []*Option
	commands    []*Command
	groups      []*Group
	parent      *Group
}

func newGroup(parent *Group, configure func(g *Group)) *Group {
	if configure == nil {
		panic("nil group configuration")
	}
	g := &Group{parent: parent}
	configure(g)
	return g
}

func (g *Group) WithName(name string) *Group {
	g.name = strings.TrimSpace(name)
	return g
}

func (g *Group) WithDescription(description string) *Group {
	g.description = description
	return g
}

// AddOption adds a valued option that applies to everything in this group.
func (g *Group) AddOption(name, description string, location ValueLocation) *Group {
	g.options = append(g.options, &Option{Name: name, Description: description, ValueLocation: location})
	return g
}

// AddFlag adds a flag that applies to everything in this group.
func (g *Group) AddFlag(name, description string) *Group {
	g.options = append(g.options, &Option{Name: name, Description: description, IsFlag: true})
	return g
}

func (g *Group) AddCommand(configure func(c *Command)) *Group {
	g.commands = append(g.commands, newCommand(g, configure))
	return g
}

func (g *Group) AddGroup(configure func(g *Group)) *Group {
	g.groups = append(g.groups, newGroup(g, configure))
	return g
}

func (g *Group) Name() string {
	return g.name
}

func (g *Group) Description() string {
	return g.description
}

func (g *Group) Options() []*Option {
	return g.options
}

func (g *Group) Commands() []*Command {
	return g.commands
}

func (g *Group) Groups() []*Group {
	return g.groups
}

func (g *Group) Parent() Element {
	if g.parent == nil {
		return nil
	}
	return g.parent
}

func (g *Group) Path() string {
	if g == nil {
		return ""
	}
	return pathOf(g)
}

func pathOf(el Element) string {
	var names []string
	for ; el != nil; el = el.Parent() {
		if len(el.Name()) > 0 {
			names = append(names, el.Name())
		}
	}
	slices.Reverse(names)
	return strings.Join(names, " ")
}
