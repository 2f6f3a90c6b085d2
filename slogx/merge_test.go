package slogx

import (
	"github.com/stretchr/testify/assert"
	"log/slog"
	"strings"
	"testing"
)

func TestMergeHandlers(t *testing.T) {
	var (
		bufA, bufB, bufC strings.Builder
	)
	log := slog.New(MergeHandlers(
		slog.NewTextHandler(&bufA, &slog.HandlerOptions{}),
		slog.NewTextHandler(&bufB, &slog.HandlerOptions{}),
		slog.NewTextHandler(&bufC, &slog.HandlerOptions{}),
	))
	log.Info("A message", "test", "test")
	a, b, c := bufA.String(), bufB.String(), bufC.String()
	assert.NotEmpty(t, a)
	assert.Equal(t, a, b)
	assert.Equal(t, b, c)
}

func TestMergeHandlers_Levels(t *testing.T) {
	var verbose, quiet strings.Builder
	log := slog.New(MergeHandlers(
		slog.NewTextHandler(&verbose, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&quiet, &slog.HandlerOptions{Level: slog.LevelWarn}),
	))
	log.Debug("matched command")
	log.Warn("Command not found")
	assert.Contains(t, verbose.String(), "matched command")
	assert.Contains(t, verbose.String(), "Command not found")
	assert.NotContains(t, quiet.String(), "matched command")
	assert.Contains(t, quiet.String(), "Command not found")
}

func TestMergeHandlers_WithAttrs(t *testing.T) {
	var bufA, bufB strings.Builder
	base := slog.New(MergeHandlers(
		slog.NewTextHandler(&bufA, &slog.HandlerOptions{}),
		slog.NewTextHandler(&bufB, &slog.HandlerOptions{}),
	))
	derived := base.With("path", "users create")
	base.Info("plain")
	derived.Info("derived")
	assert.NotContains(t, strings.Split(bufA.String(), "\n")[0], "path=", "Deriving a logger must not change its parent")
	assert.Contains(t, bufB.String(), `path="users create"`)
}

func TestMergeHandlers_Nil(t *testing.T) {
	assert.Panics(t, func() {
		MergeHandlers(slog.DiscardHandler, nil)
	})
}
