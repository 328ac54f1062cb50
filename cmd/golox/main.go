// Command golox is a tree-walking interpreter for the Lox language.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/golox/cmd/golox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
