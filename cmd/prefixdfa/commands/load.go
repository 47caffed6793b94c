package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/milden6/prefixdfa"
)

func newLoadCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "load <file>",
		Short: "Build an automaton from a word list and report its size",
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

			return writeStats(cmd.OutOrStdout(), e.cfg.Automaton.Variant, result)
		},
	}
}

// writeStats renders the size of a built automaton as a table.
func writeStats(w io.Writer, variant string, result *buildResult) error {
	set := result.set

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Metric", "Value"})
	tbl.AppendRow(table.Row{"variant", variant})
	tbl.AppendRow(table.Row{"tokens", humanize.Comma(int64(result.tokens))})
	tbl.AppendRow(table.Row{"words", humanize.Comma(int64(set.Size()))})
	tbl.AppendRow(table.Row{"states", humanize.Comma(int64(set.StateCount()))})

	switch s := set.(type) {
	case *prefixdfa.Dfa:
		tbl.AppendRow(table.Row{"free states", humanize.Comma(int64(s.FreeStates()))})
	case *prefixdfa.MemDfa:
		tbl.AppendRow(table.Row{"inline bytes", humanize.Bytes(uint64(s.InlineBytes()))})
	}

	tbl.AppendFooter(table.Row{"elapsed", result.elapsed.Round(time.Microsecond).String()})

	_, err := fmt.Fprintln(w, tbl.Render())

	return err
}
