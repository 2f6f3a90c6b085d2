package command

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestHelpPrinter_Render_Root(t *testing.T) {
	b := usersTree(new(calls))
	b.AddCommand(func(c *Command) {
		c.WithName("backup").WithDescription("Backs up everything").SetHandler(noop)
	})
	b.AddGroup(func(g *Group) {
		g.WithName("audit").WithDescription("Reviews activity")
	})
	h := &HelpPrinter{Builder: b, AppName: "app"}
	expected := `usage:
  app <command>

commands:
  audit     Reviews activity
  backup    Backs up everything
  users     Manages users

For more information about a command, run 'app [command] --help'.
`
	assert.Equal(t, expected, h.Render(nil, nil))
}

func TestHelpPrinter_Render_SubCommands(t *testing.T) {
	b := NewBuilder()
	b.AddCommand(func(c *Command) {
		c.WithName("remote").
			WithDescription("Manages remotes").
			WithGroupDescription("Commands for managing remotes").
			AddParameter("name", "Shows the named remote").
			SetHandler(noop).
			AddCommand(func(c *Command) {
				c.WithName("add").WithDescription("Adds a remote").SetHandler(noop)
			})
	})
	remote := b.Commands()[0]
	h := &HelpPrinter{Builder: b, AppName: "git", HelpFlag: "-h"}
	expected := `usage:
  git remote <name>
  git remote <command>

Commands for managing remotes

parameters:
  name    Shows the named remote

commands:
  add     Adds a remote

For more information about a command, run 'git remote [command] -h'.
`
	assert.Equal(t, expected, h.Render(nil, remote))
}

func ExampleHelpPrinter_Render() {
	b := usersTree(new(calls))
	users := b.Groups()[0]
	create := users.Commands()[0]
	h := &HelpPrinter{Builder: b, AppName: "app"}

	fmt.Print(h.Render(users, create))
	fmt.Println("---")
	fmt.Print(h.Render(users, nil))

	// Output:
	// usage:
	//   app users create [options] <name>
	//
	// Creates a user
	//
	// parameters:
	//   name                    The user's name
	//
	// users-options:
	//   --admin                 Operate as an administrator
	//
	// create-options:
	//   --expiration <value>    When the account expires
	//
	// For more information about a command, run 'app users create [command] --help'.
	// ---
	// usage:
	//   app users <command> [options]
	//
	// Manages users
	//
	// commands:
	//   create     Creates a user
	//   delete     Deletes a user
	//
	// users-options:
	//   --admin    Operate as an administrator
	//
	// For more information about a command, run 'app users [command] --help'.
}
