// Package slogx sets up [log/slog] loggers for console applications, with styled console output and optional JSON log files.
package slogx
