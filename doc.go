/*
Package conkit is a toolkit for console applications. It doesn't export anything itself, the functionality is in its packages.

  - command declares a tree of groups and commands, matches arguments against it, and dispatches to handlers. It can also run the tree as an interactive shell.
  - form asks a sequence of questions in the terminal, redrawing prompts in place, and offers to edit answers before finishing.
  - terminal abstracts the console, with an ANSI implementation and a scripted Buffer for tests.
  - message prints text with inline color tags like {color:red}.
  - convert turns user input into typed values.
  - config and slogx set up the settings and logging an application built with these packages usually needs.

See cmd/conkit-demo for an application using all of them together.
*/
package conkit
