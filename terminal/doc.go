/*
Package terminal defines the console surface used by interactive code in this module.

The [Driver] interface covers key and line input, cursor positioning, colors and window measurement.
Two implementations are provided:

  - [Console] drives the process' standard streams with ANSI escape sequences, using raw mode for single key reads and line editing for full lines.
  - [Buffer] is a scripted, in-memory driver for tests and captured output.

Callers should always check the Can* probes before relying on cursor control.
A [Buffer] reports no cursor control by default, which is how redirected output behaves.
*/
package terminal
