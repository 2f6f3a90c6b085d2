/*
Package message provides colored console output with a small inline markup.

Markup uses {color:<name-or-int>} and {background:<name-or-int>} tags to switch colors until the next tag of the same kind.
Color names follow the ANSI palette (red, brightblue, darkgray, ...), and integers address the 256-color palette.
The value "default" switches back to whatever color was active when printing started.

	p := message.NewPrinter(terminal.NewConsole())
	p.Println("{color:green}ok{color:default} all done")

User-visible output should go through a [Printer] rather than a logger.
*/
package message
