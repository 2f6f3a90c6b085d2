/*
Package command provides a declarative command tree, a matcher that binds arguments to it, and a runner that dispatches to handlers.

A tree is made of groups and commands, configured with callbacks passed to a [Builder].
Groups carry shared options and nest other groups and commands, while commands carry options, positional parameters, and a [Handler].
A single nameless default command may be added, and it's matched whenever no named group or command matches.

	b := command.NewBuilder()
	b.AddGroup(func(g *command.Group) {
		g.WithName("users").
			WithDescription("Manages users").
			AddFlag("--admin", "Operate as an administrator").
			AddCommand(func(c *command.Command) {
				c.WithName("create").
					WithDescription("Creates a user").
					AddParameter("name", "The user's name").
					AddOption("--expiration", "When the account expires", command.SplitBySpace).
					SetHandler(createUser)
			})
	})
	runner := command.NewRunner(b, command.WithAppName("my-cli"))
	os.Exit(runner.RunSafe(ctx, os.Args[1:]))

# Matching

Arguments are matched greedily, left to right, with no backtracking between siblings.
Within a matched element, each argument is tried as one of its options first, then as a child element, then as the next parameter.
Arguments that match nothing are ignored.
A group may match without any command below it, in which case running reports the group's help.

# Running

[Runner.Run] validates the tree, matches, and then either shows help or calls the matched [Handler], returning typed errors.
[Runner.RunSafe] reports those errors to the user instead, printing the help screen for input mistakes, and returns an exit code.
[Runner.RunInteractive] reads command lines one at a time and dispatches each with [Runner.RunSafe].
*/
package command
