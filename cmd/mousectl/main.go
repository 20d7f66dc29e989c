// Package main is the deskmouse command-line tool.
package main

import (
	"fmt"
	"os"
)

// main is the entrypoint for mousectl.
func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "mousectl: %v\n", err)
		os.Exit(1)
	}
}
