package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"
)

func newGrammarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Grammar description tools",
	}

	cmd.AddCommand(newGrammarCheckCmd())

	return cmd
}

// newGrammarCheckCmd verifies EBNF descriptions such as the ones in
// docs/, which document the grammars the parse command evaluates.
func newGrammarCheckCmd() *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Parse and verify an EBNF grammar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			f, err := os.Open(filename)
			if err != nil {
				return fmt.Errorf("open file: %w", err)
			}
			defer f.Close()

			grammar, err := ebnf.Parse(filename, f)
			if err != nil {
				return fmt.Errorf("parse grammar: %w", err)
			}

			if start != "" {
				if err := ebnf.Verify(grammar, start); err != nil {
					return fmt.Errorf("verify grammar: %w", err)
				}
			}

			fmt.Printf("%s: %d productions\n", filename, len(grammar))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "start production for verification (if empty, only checks syntax)")

	return cmd
}
