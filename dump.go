package prefixdfa

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// newDumpTable starts a table whose header is "id", "$" and then the byte of
// every symbol, in id order.
func newDumpTable(a *Alphabet) table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Format.Header = text.FormatDefault
	tbl.Style().Format.Footer = text.FormatDefault

	header := table.Row{"id", "$"}
	for _, ch := range a.Symbols() {
		header = append(header, strconv.QuoteRuneToASCII(rune(ch)))
	}
	tbl.AppendHeader(header)
	return tbl
}

func renderTo(w io.Writer, tbl table.Writer) error {
	_, err := io.WriteString(w, tbl.Render()+"\n")
	return err
}

// Dump writes the transition table to w: one line per state id with its
// acceptance cell and then its transitions in symbol id order. Retired states
// are shown as free.
func (dfa *Dfa) Dump(w io.Writer) error {
	tbl := newDumpTable(&dfa.alphabet)

	for s := startState; int(s) < len(dfa.arena.rows); s++ {
		row := dfa.arena.rows[s]
		if row == nil {
			tbl.AppendRow(table.Row{s, "free"})
			continue
		}

		line := table.Row{s}
		for _, cell := range row {
			line = append(line, cell)
		}
		tbl.AppendRow(line)
	}

	tbl.AppendFooter(table.Row{"words", dfa.size, "states", dfa.StateCount(), "free", dfa.FreeStates()})
	return renderTo(w, tbl)
}

// Dump writes the transition table to w: one line per state id with its
// acceptance cell (E, H or S with the inline suffix) and then its transitions
// in symbol id order.
func (dfa *MemDfa) Dump(w io.Writer) error {
	tbl := newDumpTable(&dfa.alphabet)

	for s := startState; int(s) < len(dfa.rows); s++ {
		row := &dfa.rows[s]
		if row.accept.status == statusHoldsSuffix {
			tbl.AppendRow(table.Row{s, fmt.Sprintf("%s(%d):%q", row.accept.status, len(row.accept.suffix), row.accept.suffix)})
			continue
		}

		line := table.Row{s, row.accept.status}
		for _, edge := range row.edges {
			line = append(line, edge)
		}
		tbl.AppendRow(line)
	}

	tbl.AppendFooter(table.Row{"words", dfa.size, "states", dfa.StateCount()})
	return renderTo(w, tbl)
}
