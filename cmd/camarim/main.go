// Package main provides the camarim CLI: an interactive menu over the
// in-memory dressing-room inventory managers. All state lives for the
// session and is discarded on exit.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
