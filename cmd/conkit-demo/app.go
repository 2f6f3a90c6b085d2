package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/saylorsolutions/conkit/command"
	"github.com/saylorsolutions/conkit/config"
	"github.com/saylorsolutions/conkit/message"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"
)

var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
)

type user struct {
	ID      uuid.UUID
	Name    string
	Admin   bool
	Expires *time.Time
}

// app is the demo's command tree, backed by an in-memory user directory.
type app struct {
	cfg    config.Config
	log    *slog.Logger
	runner *command.Runner

	mux   sync.Mutex
	users map[string]user
	newID func() uuid.UUID
}

func newApp(printer *message.Printer, logger *slog.Logger, cfg config.Config) *app {
	a := &app{
		cfg:   cfg,
		log:   logger,
		users: map[string]user{},
		newID: uuid.New,
	}
	b := command.NewBuilder().RequireDescriptions(true)
	b.AddGroup(func(g *command.Group) {
		g.WithName("users").
			WithDescription("Manages the user directory").
			AddFlag("--admin", "Acts on administrators").
			AddCommand(func(c *command.Command) {
				c.WithName("create").
					WithDescription("Adds a user").
					AddParameter("name", "The user's name").
					AddOption("--expiration", "The date the account expires, like 2026-12-31", command.SplitBySpace).
					SetHandler(a.createUser)
			}).
			AddCommand(func(c *command.Command) {
				c.WithName("delete").
					WithDescription("Removes a user").
					AddParameter("name", "The user's name").
					SetHandler(a.deleteUser)
			}).
			AddCommand(func(c *command.Command) {
				c.WithName("list").
					WithDescription("Shows every user").
					SetHandler(a.listUsers)
			})
	})
	b.AddCommand(func(c *command.Command) {
		c.WithName("signup").
			WithDescription("Fills in a sign up form").
			SetHandler(a.signup)
	})
	b.AddCommand(func(c *command.Command) {
		c.WithName("shell").
			WithDescription("Runs commands interactively").
			SetHandler(func(ctx context.Context, _ *command.Arguments) error {
				return a.runner.RunInteractive(ctx)
			})
	})
	b.AddDefaultCommand(func(c *command.Command) {
		c.AddParameter("name", "Who to greet").
			SetHandler(a.greet)
	})

	opts := []command.RunnerOption{
		command.WithPrinter(printer),
		command.WithLogger(logger),
		command.WithHelpEnabled(cfg.Help.Enabled),
		command.WithHelpFlags(cfg.Help.Flags...),
		command.WithAppName(cfg.Help.AppName),
	}
	a.runner = command.NewRunner(b, opts...)
	a.runner.AddPreExec(func(_ context.Context, cmd *command.Command) error {
		a.log.Debug("running command", "path", cmd.Path())
		return nil
	})
	return a
}

func (a *app) createUser(_ context.Context, args *command.Arguments) error {
	var name string
	if err := args.MapParameters(1, &name); err != nil {
		return err
	}
	u := user{ID: a.newID(), Name: name, Admin: args.HasFlag("--admin")}
	if _, ok := args.Option("--expiration"); ok {
		expires, err := command.OptionAs[*time.Time](args, "--expiration")
		if err != nil {
			return err
		}
		u.Expires = expires
	}
	a.mux.Lock()
	defer a.mux.Unlock()
	if _, ok := a.users[strings.ToLower(name)]; ok {
		return fmt.Errorf("%w: '%s'", ErrUserExists, name)
	}
	a.users[strings.ToLower(name)] = u
	args.Printer().Printf("Created %s {color:green}%s{color:default} (%s)\n", role(u.Admin), message.Escape(name), u.ID)
	return nil
}

func (a *app) deleteUser(_ context.Context, args *command.Arguments) error {
	var name string
	if err := args.MapParameters(1, &name); err != nil {
		return err
	}
	a.mux.Lock()
	defer a.mux.Unlock()
	u, ok := a.users[strings.ToLower(name)]
	if !ok || u.Admin != args.HasFlag("--admin") {
		return fmt.Errorf("%w: %s '%s'", ErrUserNotFound, role(args.HasFlag("--admin")), name)
	}
	delete(a.users, strings.ToLower(name))
	args.Printer().Printf("Deleted %s {color:yellow}%s{color:default}\n", role(u.Admin), message.Escape(u.Name))
	return nil
}

func (a *app) listUsers(_ context.Context, args *command.Arguments) error {
	a.mux.Lock()
	defer a.mux.Unlock()
	if len(a.users) == 0 {
		args.Printer().Println("No users.")
		return nil
	}
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Role", "Expires", "ID"})
	for _, key := range slices.Sorted(maps.Keys(a.users)) {
		u := a.users[key]
		if args.HasFlag("--admin") && !u.Admin {
			continue
		}
		expires := "never"
		if u.Expires != nil {
			expires = u.Expires.Format(time.DateOnly)
		}
		t.AppendRow(table.Row{u.Name, role(u.Admin), expires, u.ID})
	}
	args.Printer().Plain(t.Render(), "\n")
	return nil
}

func (a *app) greet(_ context.Context, args *command.Arguments) error {
	name, ok := args.Parameter("name")
	if !ok {
		name = "there"
	}
	args.Printer().Printf("Hello, {color:cyan}%s{color:default}! Try '%s %s' next.\n", message.Escape(name), a.cfg.Help.AppName, a.nextHint())
	return nil
}

func role(admin bool) string {
	if admin {
		return "administrator"
	}
	return "user"
}

// nextHint suggests a command line to try after the greeting.
func (a *app) nextHint() string {
	if !a.cfg.Help.Enabled || len(a.cfg.Help.Flags) == 0 {
		return "signup"
	}
	return "users " + a.cfg.Help.Flags[0]
}
