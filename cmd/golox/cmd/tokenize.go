package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file>",
	Short: "Scan a Lox source file and print its tokens",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		return runTokenize(args[0], verbose)
	},
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
}

func runTokenize(path string, verbose bool) error {
	source, err := readSourceFile(path)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("Tokenizing: %s\n", path)
		fmt.Printf("Input length: %d bytes\n", len(source))
		fmt.Println("---")
	}

	tokens, errs := scanSource(source)
	for _, tok := range tokens {
		fmt.Println(tok.String())
	}
	printStaticErrors(errs)

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", len(tokens))
		if len(errs) > 0 {
			fmt.Printf("Errors: %d\n", len(errs))
		}
	}

	if len(errs) > 0 {
		os.Exit(exitCompileError)
	}
	os.Exit(exitOK)
	return nil
}
