// Command tuikit-demo is an interactive grid of buttons driven by tuikit's
// decoder, dispatcher and focus manager.
//
// Usage:
//
//	tuikit-demo [--backend raw|tcell] [--config file] [--debug-log file]
//
// Keys: tab/shift+tab and arrows move focus, enter or a click presses a
// button, ? or F1 opens a modal help dialog, escape closes it, q or
// ctrl+c quits.
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
