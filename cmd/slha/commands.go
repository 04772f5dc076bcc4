package main

import (
	"fmt"
	"strconv"

	"slha/internal/slha"

	"github.com/spf13/cobra"
)

var blocksCmd = &cobra.Command{
	Use:   "blocks <file>",
	Short: "List block names in file order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := load(args[0])
		if err != nil {
			return err
		}
		for _, name := range data.Blocks() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var decaysCmd = &cobra.Command{
	Use:   "decays <file>",
	Short: "List particle IDs with decay tables",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := load(args[0])
		if err != nil {
			return err
		}
		for _, pid := range data.Decays() {
			fmt.Fprintln(cmd.OutOrStdout(), pid)
		}
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <file> <block> <index>...",
	Short: "Print one block entry",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := load(args[0])
		if err != nil {
			return err
		}
		key, err := parseKey(args[2:])
		if err != nil {
			return err
		}
		v, err := data.GetValue(args[1], key)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	},
}

var setOutput string

var setCmd = &cobra.Command{
	Use:   "set <file> <block> <index>... <value>",
	Short: "Set a block entry and rewrite the file",
	Args:  cobra.MinimumNArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := load(args[0])
		if err != nil {
			return err
		}
		key, err := parseKey(args[2 : len(args)-1])
		if err != nil {
			return err
		}
		data.SetValue(args[1], key, slha.ParseValue(args[len(args)-1]))
		return data.WriteFile(setOutput)
	},
}

var widthCmd = &cobra.Command{
	Use:   "width <file> <particle>",
	Short: "Print a particle's total decay width",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := load(args[0])
		if err != nil {
			return err
		}
		w, err := data.GetWidthByName(args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%.8E\n", w)
		return nil
	},
}

var brCmd = &cobra.Command{
	Use:   "br <file> <particle> <daughter>...",
	Short: "Print the branching ratio of a decay channel",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := load(args[0])
		if err != nil {
			return err
		}
		br, err := data.GetBRByName(args[1], args[2:]...)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%.8E\n", br)
		return nil
	},
}

var blockCmd = &cobra.Command{
	Use:   "block <file> <name>",
	Short: "Print one block as SLHA text",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := load(args[0])
		if err != nil {
			return err
		}
		s, err := data.GetBlockString(args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s)
		return nil
	},
}

var decayCmd = &cobra.Command{
	Use:   "decay <file> <particle>",
	Short: "Print one decay table as SLHA text",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := load(args[0])
		if err != nil {
			return err
		}
		pid, err := slha.ResolveID(args[1])
		if err != nil {
			return err
		}
		s, err := data.GetDecayString(pid)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s)
		return nil
	},
}

var fmtOutput string

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Re-serialize a file with canonical formatting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := load(args[0])
		if err != nil {
			return err
		}
		return data.WriteFile(fmtOutput)
	},
}

func init() {
	setCmd.Flags().StringVarP(&setOutput, "output", "o", "", "write result to file instead of stdout (.gz compresses)")
	fmtCmd.Flags().StringVarP(&fmtOutput, "output", "o", "", "write result to file instead of stdout (.gz compresses)")

	// particle IDs and daughters can be negative; stop pflag from
	// reading them as flags
	for _, c := range []*cobra.Command{getCmd, setCmd, widthCmd, brCmd, decayCmd} {
		c.Flags().SetInterspersed(false)
	}
}

func parseKey(args []string) (slha.Key, error) {
	key := make(slha.Key, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("bad block index %q: not an integer", a)
		}
		key[i] = n
	}
	return key, nil
}
