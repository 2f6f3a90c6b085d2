package command

import (
	"context"
	"github.com/saylorsolutions/conkit/message"
	"github.com/saylorsolutions/conkit/terminal"
)

type calls struct {
	created []string
	deleted []string
	args    []*Arguments
}

func (c *calls) create(_ context.Context, args *Arguments) error {
	name, _ := args.Parameter("name")
	c.created = append(c.created, name)
	c.args = append(c.args, args)
	return nil
}

func (c *calls) delete(_ context.Context, args *Arguments) error {
	name, _ := args.Parameter("name")
	c.deleted = append(c.deleted, name)
	c.args = append(c.args, args)
	return nil
}

// usersTree is a users group with create and delete commands.
func usersTree(c *calls) *Builder {
	b := NewBuilder()
	b.AddGroup(func(g *Group) {
		g.WithName("users").
			WithDescription("Manages users").
			AddFlag("--admin", "Operate as an administrator").
			AddCommand(func(cmd *Command) {
				cmd.WithName("create").
					WithDescription("Creates a user").
					AddParameter("name", "The user's name").
					AddOption("--expiration", "When the account expires", SplitBySpace).
					SetHandler(c.create)
			}).
			AddCommand(func(cmd *Command) {
				cmd.WithName("delete").
					WithDescription("Deletes a user").
					AddParameter("name", "The user's name").
					SetHandler(c.delete)
			})
	})
	return b
}

func bufferPrinter(opts ...terminal.BufferOption) (*message.Printer, *terminal.Buffer) {
	buf := terminal.NewBuffer(opts...)
	return message.NewPrinter(buf), buf
}
