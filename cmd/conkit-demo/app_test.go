package main

import (
	"context"
	"github.com/google/uuid"
	"github.com/saylorsolutions/conkit/config"
	"github.com/saylorsolutions/conkit/message"
	"github.com/saylorsolutions/conkit/terminal"
	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var testID = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

func testApp(t *testing.T, opts ...terminal.BufferOption) (*app, *terminal.Buffer) {
	t.Helper()
	cfg := config.Default()
	cfg.Help.AppName = appName
	cfg.Form.Confirm = false
	buf := terminal.NewBuffer(opts...)
	a := newApp(message.NewPrinter(buf), slog.New(slog.DiscardHandler), cfg)
	a.newID = func() uuid.UUID {
		return testID
	}
	return a, buf
}

func TestApp_Users(t *testing.T) {
	a, buf := testApp(t)
	ctx := context.Background()

	assert.Equal(t, 0, a.runner.RunSafe(ctx, []string{"users", "create", "ada", "--expiration", "2030-01-31"}))
	assert.Equal(t, 0, a.runner.RunSafe(ctx, []string{"users", "--admin", "create", "root"}))
	assert.Contains(t, buf.Output(), "Created user ada (6ba7b810-9dad-11d1-80b4-00c04fd430c8)\n")
	assert.Contains(t, buf.Output(), "Created administrator root")
	require.Contains(t, a.users, "ada")
	require.NotNil(t, a.users["ada"].Expires)
	assert.Equal(t, "2030-01-31", a.users["ada"].Expires.Format("2006-01-02"))
	assert.True(t, a.users["root"].Admin)

	assert.Equal(t, 1, a.runner.RunSafe(ctx, []string{"users", "create", "Ada"}))
	assert.Contains(t, buf.Output(), "user already exists: 'Ada'")

	assert.Equal(t, 0, a.runner.RunSafe(ctx, []string{"users", "list"}))
	assert.Contains(t, buf.Output(), "2030-01-31")
	assert.Contains(t, buf.Output(), "never")

	assert.Equal(t, 1, a.runner.RunSafe(ctx, []string{"users", "delete", "root"}), "Deleting an administrator requires the flag")
	assert.Equal(t, 0, a.runner.RunSafe(ctx, []string{"users", "--admin", "delete", "root"}))
	assert.NotContains(t, a.users, "root")
}

func TestApp_UsersInvalidExpiration(t *testing.T) {
	a, buf := testApp(t)
	assert.Equal(t, 1, a.runner.RunSafe(context.Background(), []string{"users", "create", "ada", "--expiration", "soon"}))
	assert.Contains(t, buf.Output(), "An error occurred while executing 'users create'")
	assert.Empty(t, a.users)
}

func TestApp_Greet(t *testing.T) {
	a, buf := testApp(t)
	assert.Equal(t, 0, a.runner.RunSafe(context.Background(), []string{"Grace"}))
	assert.Equal(t, "Hello, Grace! Try 'conkit-demo users --help' next.\n", buf.Output())
}

func TestApp_Help(t *testing.T) {
	a, buf := testApp(t)
	assert.Equal(t, 0, a.runner.RunSafe(context.Background(), []string{"users", "--help"}))
	out := buf.Output()
	assert.Contains(t, out, "conkit-demo users <command> [options]")
	assert.Contains(t, out, "create")
	assert.Contains(t, out, "Removes a user")
	assert.Contains(t, out, "--admin")
}

func TestApp_Signup(t *testing.T) {
	a, buf := testApp(t,
		terminal.WithLines("Ada", "36", "", "120.50", "ca", "on"),
		terminal.WithKeys(
			terminal.Press(terminal.KeyDown), terminal.Press(terminal.KeyDown), terminal.Press(terminal.KeyEnter),
			terminal.Press(terminal.KeySpace), terminal.Press(terminal.KeyEnter),
		),
	)
	assert.Equal(t, 0, a.runner.RunSafe(context.Background(), []string{"signup"}))
	screen := buf.Screen()
	assert.Contains(t, screen, "3. Plan: Team\n")
	assert.Contains(t, screen, "4. Seats: 5\n")
	assert.Contains(t, screen, "5. Monthly budget: 120.50\n")
	assert.Contains(t, screen, "7. State or province: ON\n")
	assert.Contains(t, screen, "8. Newsletter topics: releases\n")
	assert.Contains(t, screen, "Welcome, Ada! Your id is 6ba7b810-9dad-11d1-80b4-00c04fd430c8.\n")
	assert.Contains(t, a.users, "ada")
}

func TestApp_SignupAborted(t *testing.T) {
	a, buf := testApp(t, terminal.WithLines("Ada"))
	assert.Equal(t, 1, a.runner.RunSafe(context.Background(), []string{"signup"}))
	assert.Contains(t, buf.Output(), "An error occurred while executing 'signup'")
	assert.Empty(t, a.users)
}

func TestApp_Shell(t *testing.T) {
	a, buf := testApp(t, terminal.WithLines("$use users", "create ada", "list", "$back", "quit"))
	assert.Equal(t, 0, a.runner.RunSafe(context.Background(), []string{"shell"}))
	out := buf.Output()
	assert.Contains(t, out, "conkit-demo users> ")
	assert.Contains(t, out, "Created user ada")
	assert.Contains(t, a.users, "ada")
}

func TestParseFlags(t *testing.T) {
	global, rest, err := parseFlags([]string{"--log-level", "debug", "--no-color", "users", "--admin", "list"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, globalFlags{logLevel: "debug", noColor: true}, global)
	assert.Equal(t, []string{"users", "--admin", "list"}, rest, "Flags after the first command are left alone")

	var out strings.Builder
	_, _, err = parseFlags([]string{"--help"}, &out)
	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, out.String(), "--log-file")
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"warn\"\n\n[color]\nenabled = true\n"), 0600))
	t.Setenv("CONKIT_APP_NAME", "demo")

	cfg, err := loadConfig(globalFlags{config: path, noColor: true})
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "demo", cfg.Help.AppName)
	assert.False(t, cfg.Color.Enabled, "Flags override the file")

	_, err = loadConfig(globalFlags{logLevel: "chatty"})
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestRun_BadFlags(t *testing.T) {
	var out strings.Builder
	assert.Equal(t, 2, run(context.Background(), []string{"--log-level", "chatty", "users"}, &out))
	assert.Contains(t, out.String(), "log level 'chatty'")
	out.Reset()
	assert.Equal(t, 2, run(context.Background(), []string{"--bogus"}, &out))
	assert.Contains(t, out.String(), "unknown flag: --bogus")
}
