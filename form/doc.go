/*
Package form implements interactive terminal prompts, and a [Form] that runs them in sequence.

Fields are small state machines that prompt, read input from a [terminal.Driver], and re-prompt with a message until the input is valid.

  - [TextField] reads a line and converts it to any type supported by the convert package, or with a custom converter.
  - [TextOption] reads a line that must be one of a fixed set of options.
  - [SingleSelect] and [MultiSelect] are navigated with the arrow keys, checking choices with space and confirming with enter.

A value set ahead of time with WithValue is confirmed without any prompt, unless the field is put into edit mode with [Field.SetEdition].

When the driver can position the cursor, a field redraws only its own lines.
Otherwise the whole screen is cleared and reprinted before each read.
*/
package form
