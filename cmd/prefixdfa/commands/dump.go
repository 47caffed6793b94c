package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milden6/prefixdfa"
)

func newDumpCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the transition table built from a word list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			result, err := e.build(args[0])
			if err != nil {
				return err
			}

			return result.set.Dump(cmd.OutOrStdout())
		},
	}
}

func newWordsCommand(flags *rootFlags) *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "words <file>",
		Short: "Print the distinct words of a word list in byte order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			result, err := e.build(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var writeErr error
			result.set.Enumerate(func(word []byte, final bool) prefixdfa.EnumerationResult {
				if !related(string(word), prefix) {
					return prefixdfa.Skip
				}
				if final && len(word) >= len(prefix) {
					if _, writeErr = fmt.Fprintf(out, "%s\n", word); writeErr != nil {
						return prefixdfa.Stop
					}
				}
				return prefixdfa.Continue
			})

			return writeErr
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "only print words starting with this prefix")

	return cmd
}

// related reports whether word and prefix lie on one path: one of them is a
// prefix of the other.
func related(word, prefix string) bool {
	n := min(len(word), len(prefix))
	return word[:n] == prefix[:n]
}
