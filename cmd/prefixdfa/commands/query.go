package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/milden6/prefixdfa"
)

// ErrEraseUnsupported is returned when erase is asked of an automaton that
// cannot remove words.
var ErrEraseUnsupported = errors.New("the configured automaton does not support erase")

func newQueryCommand(flags *rootFlags) *cobra.Command {
	var prefixes bool

	cmd := &cobra.Command{
		Use:   "query <file> <word>...",
		Short: "Report which words are present in a word list",
		Args:  cobra.MinimumNArgs(2),
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
			found := color.New(color.FgGreen)
			missing := color.New(color.FgRed)

			for _, word := range args[1:] {
				if result.set.Exists(word) {
					found.Fprintf(out, "%s: found\n", word)
				} else {
					missing.Fprintf(out, "%s: missing\n", word)
				}

				if prefixes {
					fmt.Fprintf(out, "  prefixes: %s\n", strings.Join(result.set.FindAllPrefixesOf(word), " "))
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&prefixes, "prefixes", false, "also list stored words that are prefixes of each query")

	return cmd
}

func newEraseCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "erase <file> <word>...",
		Short: "Erase words from a word list's automaton and report its size",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			result, err := e.build(args[0])
			if err != nil {
				return err
			}

			eraser, ok := result.set.(prefixdfa.Eraser)
			if !ok {
				return fmt.Errorf("%w: %s", ErrEraseUnsupported, e.cfg.Automaton.Variant)
			}

			out := cmd.OutOrStdout()
			for _, word := range args[1:] {
				if eraser.Erase(word) {
					fmt.Fprintf(out, "%s: erased\n", word)
				} else {
					fmt.Fprintf(out, "%s: absent\n", word)
				}
			}

			e.logger.Debug("erased words", "requested", len(args)-1, "words", eraser.Size())

			return writeStats(out, e.cfg.Automaton.Variant, result)
		},
	}
}
