package command

// Builder holds the root of a command tree.
// Elements are added with configuration callbacks, which are invoked immediately.
type Builder struct {
	commands            []*Command
	groups              []*Group
	defaultCommand      *Command
	requireDescriptions bool
}

func NewBuilder() *Builder {
	return &Builder{}
}

// AddCommand adds a root command, configured by the given function.
// Passing a nil function will panic.
func (b *Builder) AddCommand(configure func(c *Command)) *Builder {
	b.commands = append(b.commands, newCommand(nil, configure))
	return b
}

// AddGroup adds a root group, configured by the given function.
// Passing a nil function will panic.
func (b *Builder) AddGroup(configure func(g *Group)) *Builder {
	b.groups = append(b.groups, newGroup(nil, configure))
	return b
}

// AddDefaultCommand sets the command that's matched when no named command matches.
// Any name given to it is ignored, and calling this again replaces the previous default.
func (b *Builder) AddDefaultCommand(configure func(c *Command)) *Builder {
	cmd := newCommand(nil, configure)
	cmd.name = ""
	cmd.isDefault = true
	b.defaultCommand = cmd
	return b
}

// RequireDescriptions makes [Builder.Validate] reject named elements without a description.
func (b *Builder) RequireDescriptions(require bool) *Builder {
	b.requireDescriptions = require
	return b
}

func (b *Builder) Commands() []*Command {
	return b.commands
}

func (b *Builder) Groups() []*Group {
	return b.groups
}

// DefaultCommand returns the default command, or nil if none was added.
func (b *Builder) DefaultCommand() *Command {
	return b.defaultCommand
}

// Validate checks the whole tree for configuration mistakes.
// The first problem found is returned, checking each scope for duplicate names before descending into it.
func (b *Builder) Validate() error {
	if err := b.validateScope("", b.groups, b.commands); err != nil {
		return err
	}
	if b.defaultCommand != nil {
		return b.validateCommand(b.defaultCommand)
	}
	return nil
}

func (b *Builder) validateScope(scope string, groups []*Group, commands []*Command) error {
	if err := checkDuplicates(groups); err != nil {
		return err
	}
	if err := checkDuplicates(commands); err != nil {
		return err
	}
	for _, g := range groups {
		if len(g.name) == 0 {
			return &NameNotSetError{Scope: scope}
		}
		if b.requireDescriptions && len(g.description) == 0 {
			return &DescriptionNotSetError{Element: g}
		}
		if err := b.validateScope(g.Path(), g.groups, g.commands); err != nil {
			return err
		}
	}
	for _, cmd := range commands {
		if len(cmd.name) == 0 {
			return &NameNotSetError{Scope: scope}
		}
		if err := b.validateCommand(cmd); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) validateCommand(cmd *Command) error {
	if cmd.handler == nil && len(cmd.commands) == 0 {
		return &HandlerNotSetError{Command: cmd}
	}
	if b.requireDescriptions && !cmd.isDefault {
		if len(cmd.description) == 0 {
			return &DescriptionNotSetError{Element: cmd}
		}
		if len(cmd.commands) > 0 && len(cmd.groupDescription) == 0 {
			return &DescriptionNotSetError{Element: cmd, Group: true}
		}
	}
	return b.validateScope(cmd.Path(), nil, cmd.commands)
}

// checkDuplicates reports the first name, in declaration order, owned by more than one element.
// Nameless elements are left to the name check.
func checkDuplicates[E Element](elements []E) error {
	owners := map[string][]Element{}
	var order []string
	for _, el := range elements {
		name := el.Name()
		if len(name) == 0 {
			continue
		}
		if _, ok := owners[name]; !ok {
			order = append(order, name)
		}
		owners[name] = append(owners[name], el)
	}
	for _, name := range order {
		if len(owners[name]) > 1 {
			return &DuplicateCommandError{Name: name, Elements: owners[name]}
		}
	}
	return nil
}
