package main

import (
	"fmt"
	"strings"

	"slha/internal/slha"

	"github.com/spf13/cobra"
)

// lexCmd dumps the classified line stream, for debugging odd input files.
var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Debug line classification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lexer, err := slha.NewLexerFromFile(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%-5s %-13s %-44s %s\n", "Line", "Kind", "Tokens", "Comment")
		count := 0
		for {
			line := lexer.Next()
			if line.Kind == slha.EOF {
				break
			}
			tokens := strings.Join(line.Tokens, " ")
			if len(tokens) > 44 {
				tokens = tokens[:41] + "..."
			}
			fmt.Printf("%-5d %-13s %-44s %s\n", line.Number, line.Kind, tokens, line.Comment)
			count++
		}
		fmt.Printf("%d lines\n", count)
		return nil
	},
}
