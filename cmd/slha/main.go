package main

import (
	"errors"
	"fmt"
	"os"

	"slha/internal/slha"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "slha",
	Short:         "Read, query, edit and rewrite SLHA spectrum files",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log parse warnings (duplicate entries, replaced decay tables)")
	rootCmd.AddCommand(
		blocksCmd, decaysCmd,
		getCmd, setCmd,
		widthCmd, brCmd,
		blockCmd, decayCmd,
		fmtCmd, lexCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var perr *slha.ParseError
		if errors.As(err, &perr) {
			fmt.Fprint(os.Stderr, slha.FormatError(perr))
		} else {
			fmt.Fprintf(os.Stderr, "slha: %v\n", err)
		}
		os.Exit(1)
	}
}

func load(path string) (*slha.Data, error) {
	if !verbose {
		return slha.ReadFile(path)
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	defer log.Sync()
	return slha.ReadFile(path, slha.WithLogger(log))
}
